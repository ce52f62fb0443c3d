package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishRetrySucceedsWithinBudget(t *testing.T) {
	attempts := 0
	err := publishRetry(context.Background(), 3, time.Millisecond, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("broker unavailable")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPublishRetryExhaustsBudget(t *testing.T) {
	attempts := 0
	fail := errors.New("broker unavailable")
	err := publishRetry(context.Background(), 2, time.Millisecond, func() error {
		attempts++
		return fail
	})
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, 3, attempts, "initial attempt plus two retries")
}

func TestPublishRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := publishRetry(ctx, 5, time.Hour, func() error {
		attempts++
		return errors.New("broker unavailable")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts, "cancellation preempts the retry wait")
}
