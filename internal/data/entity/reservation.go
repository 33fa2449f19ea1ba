package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a bookable offering priced per day per participant.
type Reservation struct {
	Base
	Name             string      `db:"name"`
	Description      string      `db:"description"`
	PricePerDayCents int64       `db:"price_per_day_cents"`
	StartDate        *time.Time  `db:"start_date"`
	EndDate          *time.Time  `db:"end_date"`
	ExcludeDates     []time.Time `db:"exclude_dates"`
	TimeSlotsEnabled bool        `db:"time_slots_enabled"`
	IsActive         bool        `db:"is_active"`

	DiscountKind    *string  `db:"discount_kind"`
	DiscountValue   *float64 `db:"discount_value"`
	DiscountMinDays *int     `db:"discount_min_days"`
	DiscountLabel   *string  `db:"discount_label"`

	AddOnCategories []AddOnCategory `db:"-"`
}

type AddOnCategory struct {
	BaseSimple
	ReservationID uuid.UUID     `db:"reservation_id"`
	Name          string        `db:"name"`
	Description   string        `db:"description"`
	Position      int           `db:"position"`
	Choices       []AddOnChoice `db:"-"`
}

// AddOnChoice has no price when it is free.
type AddOnChoice struct {
	BaseSimple
	CategoryID uuid.UUID `db:"category_id"`
	Name       string    `db:"name"`
	PriceCents *int64    `db:"price_cents"`
	Position   int       `db:"position"`
}
