package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_AllSucceed(t *testing.T) {
	var a, b int32

	errs := Join(context.Background(), map[string]Task{
		"first": func(ctx context.Context) error {
			atomic.StoreInt32(&a, 1)
			return nil
		},
		"second": func(ctx context.Context) error {
			atomic.StoreInt32(&b, 2)
			return nil
		},
	})

	assert.Nil(t, errs)
	assert.Equal(t, int32(1), atomic.LoadInt32(&a))
	assert.Equal(t, int32(2), atomic.LoadInt32(&b))
}

func TestJoin_PartialFailureIsIsolated(t *testing.T) {
	fetchErr := errors.New("upstream down")

	var result string

	errs := Join(context.Background(), map[string]Task{
		"good": func(ctx context.Context) error {
			result = "data"
			return nil
		},
		"bad": func(ctx context.Context) error {
			return fetchErr
		},
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs["bad"], fetchErr)
	assert.NotContains(t, errs, "good")
	// The failing section must not discard the successful one
	assert.Equal(t, "data", result)
}

func TestJoin_RunsConcurrently(t *testing.T) {
	start := time.Now()
	sleeper := func(ctx context.Context) error {
		time.Sleep(50 * time.Millisecond)
		return nil
	}

	errs := Join(context.Background(), map[string]Task{
		"one": sleeper, "two": sleeper, "three": sleeper,
	})

	assert.Nil(t, errs)
	assert.Less(t, time.Since(start), 140*time.Millisecond)
}

func TestJoin_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errs := Join(ctx, map[string]Task{
		"any": func(ctx context.Context) error {
			return nil
		},
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs["any"], context.Canceled)
}

func TestMessages(t *testing.T) {
	assert.Nil(t, Messages(nil))

	messages := Messages(map[string]error{
		"goals": errors.New("request failed"),
	})
	assert.Equal(t, map[string]string{"goals": "request failed"}, messages)
}
