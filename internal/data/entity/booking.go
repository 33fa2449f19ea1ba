package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one confirmed reservation purchase. PaymentToken is unique so a
// replayed submission cannot charge twice.
type Booking struct {
	Base
	ConfirmationCode string        `db:"confirmation_code"`
	ReservationID    uuid.UUID     `db:"reservation_id"`
	CustomerID       uuid.UUID     `db:"customer_id"`
	Quantity         int           `db:"quantity"`
	TotalCents       int64         `db:"total_cents"`
	PaymentToken     string        `db:"payment_token"`
	Status           BookingStatus `db:"status"`

	Dates        []BookingDate        `db:"-"`
	Participants []BookingParticipant `db:"-"`
	Options      []BookingOption      `db:"-"`
}

type BookingDate struct {
	BaseSimple
	BookingID        uuid.UUID `db:"booking_id"`
	Date             time.Time `db:"date"`
	ParticipantCount int       `db:"participant_count"`
	SlotStart        *string   `db:"slot_start"`
	SlotEnd          *string   `db:"slot_end"`
}

type BookingParticipant struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Position  int       `db:"position"`
}

// BookingOption is one chosen add-on with the price charged for it.
type BookingOption struct {
	BaseSimple
	BookingID    uuid.UUID `db:"booking_id"`
	CategoryName string    `db:"category_name"`
	ChoiceName   string    `db:"choice_name"`
	PriceCents   int64     `db:"price_cents"`
}
