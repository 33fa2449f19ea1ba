package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artstudio-booking/internal/data/entity"
	"artstudio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `
	id, name, description, price_per_day_cents, start_date, end_date,
	exclude_dates, time_slots_enabled, is_active,
	discount_kind, discount_value, discount_min_days, discount_label,
	created_at, updated_at, deleted_at`

func scanReservation(row pgx.Row, res *entity.Reservation) error {
	return row.Scan(
		&res.ID,
		&res.Name,
		&res.Description,
		&res.PricePerDayCents,
		&res.StartDate,
		&res.EndDate,
		&res.ExcludeDates,
		&res.TimeSlotsEnabled,
		&res.IsActive,
		&res.DiscountKind,
		&res.DiscountValue,
		&res.DiscountMinDays,
		&res.DiscountLabel,
		&res.CreatedAt,
		&res.UpdatedAt,
		&res.DeletedAt,
	)
}

// FindAll lists active offerings, newest first, without add-ons.
func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE deleted_at IS NULL AND is_active
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all reservations limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := scanReservation(rows, &res); err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE deleted_at IS NULL AND is_active`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return count, nil
}

// FindByID loads one offering with its add-on categories and choices.
func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE id = $1 AND deleted_at IS NULL
	`

	var res entity.Reservation
	err := scanReservation(r.db.QueryRow(ctx, query, id), &res)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	categories, err := r.findAddOns(ctx, id)
	if err != nil {
		return nil, err
	}
	res.AddOnCategories = categories

	return &res, nil
}

func (r *reservationRepository) findAddOns(ctx context.Context, reservationID uuid.UUID) ([]entity.AddOnCategory, error) {
	query := `
		SELECT c.id, c.reservation_id, c.name, c.description, c.position, c.created_at,
		       o.id, o.name, o.price_cents, o.position, o.created_at
		FROM add_on_categories c
		LEFT JOIN add_on_choices o ON o.category_id = c.id
		WHERE c.reservation_id = $1
		ORDER BY c.position, c.id, o.position
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find add-ons",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find add-ons for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var categories []entity.AddOnCategory
	for rows.Next() {
		var (
			category        entity.AddOnCategory
			choiceID        *uuid.UUID
			choiceName      *string
			choicePrice     *int64
			choicePosition  *int
			choiceCreatedAt *time.Time
		)
		err := rows.Scan(
			&category.ID,
			&category.ReservationID,
			&category.Name,
			&category.Description,
			&category.Position,
			&category.CreatedAt,
			&choiceID,
			&choiceName,
			&choicePrice,
			&choicePosition,
			&choiceCreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan add-on row", zap.Error(err))
			return nil, fmt.Errorf("scan add-on row: %w", err)
		}

		n := len(categories)
		if n == 0 || categories[n-1].ID != category.ID {
			categories = append(categories, category)
			n++
		}
		if choiceID == nil {
			continue
		}

		choice := entity.AddOnChoice{
			CategoryID: category.ID,
			Name:       *choiceName,
			PriceCents: choicePrice,
		}
		choice.ID = *choiceID
		if choicePosition != nil {
			choice.Position = *choicePosition
		}
		if choiceCreatedAt != nil {
			choice.CreatedAt = *choiceCreatedAt
		}
		categories[n-1].Choices = append(categories[n-1].Choices, choice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate add-on rows: %w", err)
	}

	return categories, nil
}
