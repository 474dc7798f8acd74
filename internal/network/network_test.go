package network

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/rusq/slack2teams/teams"
)

func init() {
	// no point in sleeping for real during tests
	waitFn = func(int) time.Duration { return time.Millisecond }
}

func TestWithRetry_ok(t *testing.T) {
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_rateLimited(t *testing.T) {
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		if calls < 3 {
			return &teams.RateLimitedError{RetryAfter: time.Millisecond}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_recoverableStatus(t *testing.T) {
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		if calls == 1 {
			return teams.StatusError{Code: 503, Msg: "service unavailable"}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_permanentError(t *testing.T) {
	boom := errors.New("401 unauthorized")
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_exhausted(t *testing.T) {
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 2, func() error {
		return &teams.RateLimitedError{RetryAfter: time.Millisecond}
	})
	assert.ErrorIs(t, err, ErrRetryFailed)
}
