package wire

import (
	"errors"
	"io"
	"net/http"

	"artstudio-booking/internal/adaptor"
	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/data/repository"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/cache"
	"artstudio-booking/pkg/middleware"
	"artstudio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the router and what has to be drained or closed on shutdown.
type App struct {
	Router     *chi.Mux
	Dispatcher *checkout.Dispatcher
	closers    []io.Closer
}

// Close releases outbound clients such as the Kafka writer.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Wiring builds services, handlers and routes. rdb may be nil, which disables
// the availability cache and Idempotency-Key replay.
func Wiring(repo *repository.Repository, rdb *redis.Client, config *utils.Config, logger *zap.Logger) (*App, error) {
	cal, err := reservation.NewCalendar(config.App.BusinessTimezone)
	if err != nil {
		return nil, err
	}

	app := &App{Dispatcher: checkout.NewDispatcher(config.App.NotifyTimeout, logger)}
	square := newSquare(config.Square, logger)

	deps := usecase.Dependencies{
		Calendar:   cal,
		CacheTTL:   config.Redis.AvailabilityTTL,
		Tokenizer:  square,
		Payments:   square,
		Creator:    newBookingCreator(config.BookingAPI, logger),
		Dispatcher: app.Dispatcher,
	}
	if rdb != nil {
		deps.Cache = cache.NewJSONCache(rdb)
	}

	notifier, closer, err := newNotifier(config.Notify, logger)
	if err != nil {
		return nil, err
	}
	if notifier != nil {
		deps.Notifier = notifier
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	service := usecase.NewService(repo, deps, logger)
	handler := adaptor.NewHandler(service, logger)

	app.Router = setupRouter(handler, rdb, config, logger)
	return app, nil
}

func setupRouter(handler *adaptor.Handler, rdb *redis.Client, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	limiter := middleware.NewRateLimiter(config.RateLimit, logger)

	wireReservation(r, handler.Reservation)
	wireCheckout(r, handler.Checkout, limiter, rdb, config, logger)
	wireBooking(r, handler.Booking, limiter)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
