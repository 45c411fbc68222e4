package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/booking-service/internal/domain"
	bookingRepo "github.com/stayforge/booking-service/internal/infra/storage/booking"
	"github.com/stayforge/booking-service/internal/service/bookings/models"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	byRef    map[string]*domain.Booking
	listed   []*domain.Booking

	gotFilter  domain.RoomBookingsFilter
	cancelled  []int64
	cancelErr  error
	lastReason string
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	if b, ok := f.byRef[reference]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.listed, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	f.lastReason = reason
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		Reference:    "BK-1748779200000-0007",
		Status:       status,
		RoomNumber:   "101",
		RoomType:     "standard",
		CheckInDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		Adults:       2,
		ClientID:     7,
		Amount:       6000,
		TotalAmount:  6000,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		42: testBooking(42, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 3, resp.Nights)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByReference(t *testing.T) {
	b := testBooking(42, domain.StatusPending)
	repo := &fakeRepo{byRef: map[string]*domain.Booking{b.Reference: b}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByReference(context.Background(), b.Reference)
	require.NoError(t, err)
	assert.Equal(t, b.Reference, resp.Reference)

	_, err = svc.GetByReference(context.Background(), "BK-0-0000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetRoomBookings(t *testing.T) {
	repo := &fakeRepo{listed: []*domain.Booking{
		testBooking(1, domain.StatusConfirmed),
		testBooking(2, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	status := "confirmed"
	resp, err := svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{
		RoomNumber: "101",
		Status:     &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
}

func TestService_GetRoomBookings_InvalidInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badStatus := "teleported"
	_, err = svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{
		RoomNumber: "101",
		Status:     &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusConfirmed),
		2: testBooking(2, domain.StatusCheckedIn),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Reason: "guest request"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.Equal(t, "guest request", repo.lastReason)

	// checked-in stays are past the point of cancellation
	err = svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "escaped"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
