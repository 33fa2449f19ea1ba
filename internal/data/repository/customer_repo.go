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

type CustomerRepository interface {
	// Save returns the id of the customer matching the email, or the phone
	// when there is no email, after refreshing its contact details. A new
	// customer is inserted when none matches.
	Save(ctx context.Context, q database.Querier, customer *entity.Customer) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Save(ctx context.Context, q database.Querier, c *entity.Customer) (uuid.UUID, error) {
	lookup := `SELECT id FROM customers WHERE email = $1 AND deleted_at IS NULL`
	key := c.Email
	if key == nil {
		lookup = `SELECT id FROM customers WHERE phone = $1 AND email IS NULL AND deleted_at IS NULL`
		key = c.Phone
	}

	var existing uuid.UUID
	err := q.QueryRow(ctx, lookup, key).Scan(&existing)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = q.Exec(ctx, `
			INSERT INTO customers (id, first_name, last_name, email, phone, address_line1, address_line2,
			                       city, state, zip_code, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.AddressLine1, c.AddressLine2,
			c.City, c.State, c.ZipCode, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to create customer", zap.Error(err), zap.String("customer_id", c.ID.String()))
			return uuid.Nil, fmt.Errorf("create customer: %w", err)
		}
		return c.ID, nil

	case err != nil:
		r.log.Error("Failed to look up customer", zap.Error(err))
		return uuid.Nil, fmt.Errorf("find customer by contact: %w", err)
	}

	_, err = q.Exec(ctx, `
		UPDATE customers
		SET first_name = $2, last_name = $3, phone = COALESCE($4, phone), address_line1 = $5,
		    address_line2 = $6, city = $7, state = $8, zip_code = $9, updated_at = $10
		WHERE id = $1
	`, existing, c.FirstName, c.LastName, c.Phone, c.AddressLine1, c.AddressLine2,
		c.City, c.State, c.ZipCode, c.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update customer", zap.Error(err), zap.String("customer_id", existing.String()))
		return uuid.Nil, fmt.Errorf("update customer %s: %w", existing.String(), err)
	}

	return existing, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, address_line1, address_line2,
		       city, state, zip_code, created_at, updated_at, deleted_at
		FROM customers
		WHERE id = $1 AND deleted_at IS NULL
	`

	var c entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.AddressLine1,
		&c.AddressLine2,
		&c.City,
		&c.State,
		&c.ZipCode,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &c, nil
}
