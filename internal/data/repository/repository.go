package repository

import (
	"context"

	"artstudio-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Transactor runs fn inside one database transaction. Repository methods that
// take a database.Querier join whatever transaction fn was given.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(q database.Querier) error) error
}

type pgxTransactor struct {
	db database.PgxIface
}

func (t *pgxTransactor) WithinTx(ctx context.Context, fn func(q database.Querier) error) error {
	return database.WithTx(ctx, t.db, func(tx pgx.Tx) error {
		return fn(tx)
	})
}

type Repository struct {
	Tx           Transactor
	Reservation  ReservationRepository
	Availability AvailabilityRepository
	Booking      BookingRepository
	Customer     CustomerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:           &pgxTransactor{db: db},
		Reservation:  NewReservationRepository(db, log),
		Availability: NewAvailabilityRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Customer:     NewCustomerRepository(db, log),
	}
}
