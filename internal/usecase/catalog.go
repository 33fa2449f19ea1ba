package usecase

import (
	"context"
	"fmt"
	"time"

	"artstudio-booking/internal/data/repository"
	"artstudio-booking/internal/reservation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SnapshotCache stores availability snapshots between requests.
type SnapshotCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func availabilityKey(reservationID string) string {
	return "availability:" + reservationID
}

// catalog loads offerings and their availability index. Quote and
// availability reads go through the cache; checkout also reads fresh.
type catalog struct {
	repo  *repository.Repository
	cache SnapshotCache
	ttl   time.Duration
	cal   *reservation.Calendar
	log   *zap.Logger
}

func (c *catalog) offering(ctx context.Context, id string) (*reservation.Offering, error) {
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, invalid("invalid reservation ID %s", id)
	}

	res, err := c.repo.Reservation.FindByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("find reservation %s: %w", id, err)
	}
	if res == nil || !res.IsActive {
		return nil, notFound("reservation %s not found", id)
	}

	return toOffering(c.cal, res), nil
}

// index builds the availability index of an offering, from the cache when
// cached is true and a snapshot is present.
func (c *catalog) index(ctx context.Context, o *reservation.Offering, cached bool) (*reservation.Index, error) {
	key := availabilityKey(o.ID)

	if cached && c.cache != nil {
		var records []reservation.DayRecord
		hit, err := c.cache.Get(ctx, key, &records)
		if err != nil {
			c.log.Warn("Availability cache read failed", zap.String("reservation_id", o.ID), zap.Error(err))
		}
		if hit {
			return c.build(o, records)
		}
	}

	days, err := c.repo.Availability.FindByReservationID(ctx, uuid.MustParse(o.ID))
	if err != nil {
		return nil, fmt.Errorf("load availability for %s: %w", o.ID, err)
	}
	records := toDayRecords(c.cal, days)

	idx, err := c.build(o, records)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, records, c.ttl); err != nil {
			c.log.Warn("Availability cache write failed", zap.String("reservation_id", o.ID), zap.Error(err))
		}
	}
	return idx, nil
}

func (c *catalog) build(o *reservation.Offering, records []reservation.DayRecord) (*reservation.Index, error) {
	idx, err := reservation.BuildIndex(c.cal, o, records, nil)
	if err != nil {
		c.log.Error("Availability data is inconsistent", zap.String("reservation_id", o.ID), zap.Error(err))
		return nil, fmt.Errorf("index availability for %s: %w", o.ID, err)
	}
	return idx, nil
}

func (c *catalog) invalidate(ctx context.Context, reservationID string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, availabilityKey(reservationID)); err != nil {
		c.log.Warn("Availability cache invalidation failed", zap.String("reservation_id", reservationID), zap.Error(err))
	}
}
