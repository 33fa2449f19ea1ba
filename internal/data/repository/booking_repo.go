package repository

import (
	"context"
	"errors"
	"fmt"

	"artstudio-booking/internal/data/entity"
	"artstudio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create inserts the booking with its dates, participants and options.
	Create(ctx context.Context, q database.Querier, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByPaymentToken(ctx context.Context, token string) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, confirmation_code, reservation_id, customer_id, quantity,
		                      total_cents, payment_token, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.ConfirmationCode,
		booking.ReservationID,
		booking.CustomerID,
		booking.Quantity,
		booking.TotalCents,
		booking.PaymentToken,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("confirmation_code", booking.ConfirmationCode),
			zap.String("reservation_id", booking.ReservationID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ConfirmationCode, err)
	}

	for _, d := range booking.Dates {
		_, err := q.Exec(ctx, `
			INSERT INTO booking_dates (id, booking_id, date, participant_count, slot_start, slot_end, created_at)
			VALUES ($1, $2, $3, $4, $5::time, $6::time, $7)
		`, d.ID, booking.ID, d.Date, d.ParticipantCount, d.SlotStart, d.SlotEnd, d.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert booking date %s: %w", d.Date.Format("2006-01-02"), err)
		}
	}

	for _, p := range booking.Participants {
		_, err := q.Exec(ctx, `
			INSERT INTO booking_participants (id, booking_id, first_name, last_name, position, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.ID, booking.ID, p.FirstName, p.LastName, p.Position, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert booking participant %d: %w", p.Position, err)
		}
	}

	for _, o := range booking.Options {
		_, err := q.Exec(ctx, `
			INSERT INTO booking_options (id, booking_id, category_name, choice_name, price_cents, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, o.ID, booking.ID, o.CategoryName, o.ChoiceName, o.PriceCents, o.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert booking option %s / %s: %w", o.CategoryName, o.ChoiceName, err)
		}
	}

	return nil
}

const bookingColumns = `
	id, confirmation_code, reservation_id, customer_id, quantity,
	total_cents, payment_token, status, created_at, updated_at, deleted_at`

func scanBooking(row pgx.Row, b *entity.Booking) error {
	return row.Scan(
		&b.ID,
		&b.ConfirmationCode,
		&b.ReservationID,
		&b.CustomerID,
		&b.Quantity,
		&b.TotalCents,
		&b.PaymentToken,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
	)
}

// FindByID loads a booking with its dates, participants and options.
func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND deleted_at IS NULL`

	var booking entity.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, id), &booking)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	if err := r.loadChildren(ctx, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// FindByPaymentToken returns the booking already paid with token, without
// its children.
func (r *bookingRepository) FindByPaymentToken(ctx context.Context, token string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_token = $1 AND deleted_at IS NULL`

	var booking entity.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, token), &booking)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by payment token", zap.Error(err))
		return nil, fmt.Errorf("find booking by payment token: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) loadChildren(ctx context.Context, b *entity.Booking) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, date, participant_count,
		       to_char(slot_start, 'HH24:MI'), to_char(slot_end, 'HH24:MI'), created_at
		FROM booking_dates WHERE booking_id = $1 ORDER BY date
	`, b.ID)
	if err != nil {
		return fmt.Errorf("find dates of booking %s: %w", b.ID.String(), err)
	}
	for rows.Next() {
		var d entity.BookingDate
		if err := rows.Scan(&d.ID, &d.BookingID, &d.Date, &d.ParticipantCount, &d.SlotStart, &d.SlotEnd, &d.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan booking date row: %w", err)
		}
		b.Dates = append(b.Dates, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate booking date rows: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, booking_id, first_name, last_name, position, created_at
		FROM booking_participants WHERE booking_id = $1 ORDER BY position
	`, b.ID)
	if err != nil {
		return fmt.Errorf("find participants of booking %s: %w", b.ID.String(), err)
	}
	for rows.Next() {
		var p entity.BookingParticipant
		if err := rows.Scan(&p.ID, &p.BookingID, &p.FirstName, &p.LastName, &p.Position, &p.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan booking participant row: %w", err)
		}
		b.Participants = append(b.Participants, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate booking participant rows: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, booking_id, category_name, choice_name, price_cents, created_at
		FROM booking_options WHERE booking_id = $1 ORDER BY created_at, id
	`, b.ID)
	if err != nil {
		return fmt.Errorf("find options of booking %s: %w", b.ID.String(), err)
	}
	defer rows.Close()
	for rows.Next() {
		var o entity.BookingOption
		if err := rows.Scan(&o.ID, &o.BookingID, &o.CategoryName, &o.ChoiceName, &o.PriceCents, &o.CreatedAt); err != nil {
			return fmt.Errorf("scan booking option row: %w", err)
		}
		b.Options = append(b.Options, o)
	}

	return rows.Err()
}
