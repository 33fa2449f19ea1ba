package wire

import (
	"net/http"

	"artstudio-booking/internal/adaptor"
	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/gateway"
	"artstudio-booking/pkg/middleware"
	"artstudio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireCheckout(
	r chi.Router,
	checkoutHandler *adaptor.CheckoutHandler,
	limiter *middleware.RateLimiter,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	chain := []func(http.Handler) http.Handler{limiter.Limit}
	if rdb != nil {
		chain = append(chain, middleware.Idempotency(rdb, config.Redis.IdempotencyTTL, log))
	} else {
		log.Warn("Redis not configured, Idempotency-Key replay disabled for checkout")
	}

	// POST /api/reservations/{id}/checkout - pay and book
	r.With(chain...).Post("/api/reservations/{id}/checkout", checkoutHandler.Checkout)
}

// newSquare returns the gateway that both authorizes card payments at
// checkout and settles them when the booking is recorded.
func newSquare(config utils.SquareConfig, log *zap.Logger) *gateway.SquareGateway {
	if config.AccessToken == "" || config.LocationID == "" {
		log.Warn("Square credentials missing, paid checkouts will fail until configured")
	}
	return gateway.NewSquareGateway(gateway.SquareConfig{
		AccessToken: config.AccessToken,
		LocationID:  config.LocationID,
		Environment: config.Environment,
		BaseURL:     config.BaseURL,
		Currency:    config.Currency,
		Timeout:     config.Timeout,
	}, nil, log)
}

// newBookingCreator returns nil when bookings are created in process.
func newBookingCreator(config utils.BookingAPIConfig, log *zap.Logger) checkout.BookingCreator {
	if config.URL == "" {
		return nil
	}
	log.Info("Checkout posts bookings to remote API", zap.String("url", config.URL))
	return gateway.NewBookingClient(config.URL, config.Timeout, nil, log)
}
