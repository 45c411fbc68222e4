package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/booking-service/internal/domain"
	"github.com/stayforge/booking-service/internal/integrations/guestdirectory"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.existing {
		if b.RoomNumber == filter.RoomNumber {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeGuestClient struct {
	client *guestdirectory.Client
	err    error
}

func (f *fakeGuestClient) GetClient(_ context.Context, _ int64) (*guestdirectory.Client, error) {
	return f.client, f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(rooms []*domain.Room, existing []*domain.Booking) (*UseCase, *fakeBookingRepo, *fakeTxManager) {
	bookingRepo := &fakeBookingRepo{existing: existing}
	txManager := &fakeTxManager{}

	uc := &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    &fakeRoomRepo{rooms: rooms},
		guestClient: &fakeGuestClient{
			client: &guestdirectory.Client{ID: 7, Name: "Ada Byron", Status: guestdirectory.ClientStatusActive},
		},
		txManager:    txManager,
		timeProvider: fixedTime{t: today.Add(9 * time.Hour)},
		logger:       nopLogger{},
	}
	return uc, bookingRepo, txManager
}

func TestUseCase_Execute_CreatesBooking(t *testing.T) {
	uc, repo, tx := newTestUseCase(testRooms(), nil)

	resp, err := uc.Execute(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, float64(6000), resp.TotalAmount)
	assert.Equal(t, "Ada Byron", resp.ClientName)
	assert.Regexp(t, `^BK-\d+-\d{4}$`, resp.Reference)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, float64(6000), repo.created.TotalAmount)
}

func TestUseCase_Execute_ValidationFailureBlocksSubmission(t *testing.T) {
	uc, repo, tx := newTestUseCase(testRooms(), nil)

	form := validForm()
	form.TermsAccepted = false
	form.Adults = 0

	_, err := uc.Execute(context.Background(), form)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "termsAccepted")
	assert.Contains(t, vErr.Fields, "adults")

	// No partial submission is ever attempted.
	assert.Nil(t, repo.created)
	assert.Zero(t, tx.calls)
}

func TestUseCase_Execute_SnapshotConflict(t *testing.T) {
	// The catalogue snapshot already knows about the conflicting stay, so
	// the validation pass reports it as an availability field error.
	uc, repo, _ := newTestUseCase(testRooms(), nil)

	form := validForm()
	form.RoomNumber = "102"
	form.RoomType = "suite"
	form.CheckInDate = date(2025, 6, 2)
	form.CheckOutDate = date(2025, 6, 3)

	_, err := uc.Execute(context.Background(), form)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "availability")
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_TransactionalConflict(t *testing.T) {
	// The snapshot is clean but another booking landed in storage between
	// the validation pass and the transaction: the re-check must catch it.
	existing := []*domain.Booking{{
		ID:           42,
		RoomNumber:   "101",
		CheckInDate:  date(2025, 6, 3),
		CheckOutDate: date(2025, 6, 6),
		Status:       domain.StatusConfirmed,
	}}
	uc, repo, _ := newTestUseCase(testRooms(), existing)

	_, err := uc.Execute(context.Background(), validForm())

	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	existing := []*domain.Booking{{
		ID:           42,
		RoomNumber:   "101",
		CheckInDate:  date(2025, 6, 3),
		CheckOutDate: date(2025, 6, 6),
		Status:       domain.StatusCancelled,
	}}
	uc, _, _ := newTestUseCase(testRooms(), existing)

	resp, err := uc.Execute(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, float64(6000), resp.TotalAmount)
}

func TestUseCase_Execute_ClientNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(testRooms(), nil)
	uc.guestClient = &fakeGuestClient{err: guestdirectory.ErrClientNotFound}

	_, err := uc.Execute(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUseCase_Execute_InactiveClient(t *testing.T) {
	uc, _, _ := newTestUseCase(testRooms(), nil)
	uc.guestClient = &fakeGuestClient{
		client: &guestdirectory.Client{ID: 7, Name: "Ada Byron", Status: guestdirectory.ClientStatusBlocked},
	}

	_, err := uc.Execute(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrClientInactive)
}
