package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/stayforge/booking-service/internal/domain"
	"github.com/stayforge/booking-service/pkg/dbwrap"
	"github.com/stayforge/booking-service/pkg/psqlbuilder"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"reference",
	"room_number",
	"room_type",
	"check_in_date",
	"check_out_date",
	"adults",
	"children",
	"extra_beds",
	"extra_bed_rate",
	"special_requests",
	"client_id",
	"payment_method",
	"payment_status",
	"amount",
	"total_amount",
	"terms_accepted",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository stores hotel bookings.
type Repository struct {
	db dbwrap.DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db dbwrap.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. When the context carries an open transaction
// (see pkg/txmanager) the insert joins it; the create_booking use case relies
// on that so the availability re-check and the insert share one serializable
// transaction.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbwrap.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"room_number",
			"room_type",
			"check_in_date",
			"check_out_date",
			"adults",
			"children",
			"extra_beds",
			"extra_bed_rate",
			"special_requests",
			"client_id",
			"payment_method",
			"payment_status",
			"amount",
			"total_amount",
			"terms_accepted",
			"status",
		).
		Values(
			booking.Reference,
			booking.RoomNumber,
			booking.RoomType,
			booking.CheckInDate,
			booking.CheckOutDate,
			booking.Adults,
			booking.Children,
			booking.ExtraBeds,
			booking.ExtraBedRate,
			booking.SpecialRequests,
			booking.ClientID,
			booking.PaymentMethod,
			booking.PaymentStatus,
			booking.Amount,
			booking.TotalAmount,
			booking.TermsAccepted,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: reference=%s", ErrDuplicateReference, booking.Reference)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID returns a booking by its numeric ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByReference returns a booking by its human-readable reference.
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"reference": reference})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbwrap.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByRoomWithFilter returns a room's bookings, optionally narrowed to a
// date window and status. The date window matches any stay overlapping it
// (half-open semantics, same as the availability check).
func (r *Repository) GetByRoomWithFilter(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	executor := dbwrap.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_number": filter.RoomNumber}).
		OrderBy("check_in_date")

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.Gt{"check_out_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.Lt{"check_in_date": *filter.EndDate})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeInactive {
		builder = builder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRoomWithFilter - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// Cancel marks a booking cancelled with the given reason. Only bookings in a
// cancellable state are touched.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbwrap.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// UpdateStatus moves a booking to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbwrap.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.RoomNumber,
		&booking.RoomType,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Adults,
		&booking.Children,
		&booking.ExtraBeds,
		&booking.ExtraBedRate,
		&booking.SpecialRequests,
		&booking.ClientID,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.Amount,
		&booking.TotalAmount,
		&booking.TermsAccepted,
		&booking.Status,
		&booking.CancellationReason,
		&cancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}

	return &booking, nil
}
