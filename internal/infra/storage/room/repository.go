package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/stayforge/booking-service/internal/domain"
	"github.com/stayforge/booking-service/pkg/dbwrap"
	"github.com/stayforge/booking-service/pkg/psqlbuilder"
)

// Repository reads the room catalogue. Rooms are loaded together with the
// date ranges of their active bookings so availability checks always run
// against the snapshot from the same query.
type Repository struct {
	db dbwrap.DBExecutor
}

// NewRepository creates a room repository.
func NewRepository(db dbwrap.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByNumber returns one room with its active booking ranges.
func (r *Repository) GetByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	executor := dbwrap.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_number",
		"room_type",
		"nightly_rate",
		"extra_bed_rate",
		"created_at",
		"updated_at",
	).
		From("rooms").
		Where(squirrel.Eq{"room_number": roomNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.RoomNumber,
		&room.RoomType,
		&room.NightlyRate,
		&room.ExtraBedRate,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: GetByNumber - execute select: %v", ErrExecQuery, err)
	}

	bookings, err := r.activeBookingRanges(ctx, executor, []string{roomNumber})
	if err != nil {
		return nil, err
	}
	room.Bookings = bookings[roomNumber]

	return &room, nil
}

// List returns all rooms with their active booking ranges.
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbwrap.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_number",
		"room_type",
		"nightly_rate",
		"extra_bed_rate",
		"created_at",
		"updated_at",
	).
		From("rooms").
		OrderBy("room_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var (
		rooms       []*domain.Room
		roomNumbers []string
	)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.RoomNumber,
			&room.RoomType,
			&room.NightlyRate,
			&room.ExtraBedRate,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, &room)
		roomNumbers = append(roomNumbers, room.RoomNumber)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	if len(rooms) == 0 {
		return rooms, nil
	}

	bookings, err := r.activeBookingRanges(ctx, executor, roomNumbers)
	if err != nil {
		return nil, err
	}
	for _, room := range rooms {
		room.Bookings = bookings[room.RoomNumber]
	}

	return rooms, nil
}

// activeBookingRanges loads the stay intervals of active bookings for the
// given rooms, keyed by room number.
func (r *Repository) activeBookingRanges(
	ctx context.Context,
	executor dbwrap.DBExecutor,
	roomNumbers []string,
) (map[string][]domain.DateRange, error) {
	query, args, err := psqlbuilder.Select(
		"room_number",
		"check_in_date",
		"check_out_date",
	).
		From("bookings").
		Where(squirrel.Eq{"room_number": roomNumbers}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		OrderBy("room_number", "check_in_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: activeBookingRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: activeBookingRanges - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[string][]domain.DateRange, len(roomNumbers))
	for rows.Next() {
		var (
			roomNumber string
			stay       domain.DateRange
		)
		if err := rows.Scan(&roomNumber, &stay.CheckIn, &stay.CheckOut); err != nil {
			return nil, fmt.Errorf("%w: activeBookingRanges - scan row: %v", ErrScanRow, err)
		}
		result[roomNumber] = append(result[roomNumber], stay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: activeBookingRanges - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}
