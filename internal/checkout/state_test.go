package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTransition(t *testing.T) {
	allowed := [][2]State{
		{StateIdle, StateValidating},
		{StateValidating, StateTokenizing},
		{StateValidating, StateError},
		{StateTokenizing, StateSubmitting},
		{StateTokenizing, StateError},
		{StateSubmitting, StateSuccess},
		{StateSubmitting, StateError},
	}
	for _, edge := range allowed {
		next, err := transition(edge[0], edge[1])
		require.NoError(t, err, "%s -> %s", edge[0], edge[1])
		assert.Equal(t, edge[1], next)
	}

	rejected := [][2]State{
		{StateIdle, StateSubmitting},
		{StateIdle, StateError},
		{StateValidating, StateSubmitting},
		{StateError, StateIdle},
		{StateError, StateSubmitting},
		{StateSuccess, StateSubmitting},
		{StateSuccess, StateError},
	}
	for _, edge := range rejected {
		next, err := transition(edge[0], edge[1])
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", edge[0], edge[1])
		assert.Equal(t, edge[0], next)
	}

	assert.True(t, StateError.Terminal())
	assert.True(t, StateSuccess.Terminal())
	assert.False(t, StateSubmitting.Terminal())
}

func TestPaymentMessage(t *testing.T) {
	assert.Equal(t, "The security code (CVV) is incorrect. Please check and try again.", PaymentMessage("CVV_FAILURE"))
	assert.Equal(t, "Your card has expired. Please use a different card.", PaymentMessage(" expiration_failure "))
	assert.Equal(t, "Too many payment attempts. Please wait a moment and try again.", PaymentMessage("RATE_LIMITED"))
	assert.Equal(t, "Payment failed (brand new code). Please check your card details or try a different card.", PaymentMessage("BRAND_NEW_CODE"))
	assert.Equal(t, "Payment failed. Please check your card details and try again.", PaymentMessage(""))
}

func TestDispatcher_DetachesFromRequestContext(t *testing.T) {
	d := NewDispatcher(time.Second, zap.NewNop())

	parent, cancel := context.WithCancel(context.Background())
	cancel()

	seen := make(chan error, 1)
	d.Go(parent, "notify", func(ctx context.Context) error {
		seen <- ctx.Err()
		return errors.New("ignored")
	})

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	require.NoError(t, d.Wait(waitCtx))
	assert.NoError(t, <-seen)
}

func TestDispatcher_WaitHonoursDeadline(t *testing.T) {
	d := NewDispatcher(time.Second, zap.NewNop())

	release := make(chan struct{})
	d.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})
	defer close(release)

	waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Wait(waitCtx), context.DeadlineExceeded)
}
