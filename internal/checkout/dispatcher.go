package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher runs fire-and-forget work after a checkout has already answered
// the customer. Wait lets shutdown drain it.
type Dispatcher struct {
	wg      sync.WaitGroup
	timeout time.Duration
	log     *zap.Logger
}

func NewDispatcher(timeout time.Duration, log *zap.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		timeout: timeout,
		log:     log.With(zap.String("component", "dispatcher")),
	}
}

// Go runs fn on its own goroutine with a context detached from parent's
// cancellation but bounded by the dispatcher timeout.
func (d *Dispatcher) Go(parent context.Context, name string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.log.Error("Background task panicked", zap.String("task", name), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			d.log.Warn("Background task failed", zap.String("task", name), zap.Error(err))
		}
	}()
}

// Wait blocks until every task finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
