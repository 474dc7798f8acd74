// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package network provides the retry wrapper for calls to the target
// service.
package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/rusq/slack2teams/teams"
)

// defNumAttempts is the default number of retry attempts.
const defNumAttempts = 3

var (
	// maxAllowedWaitTime is the maximum time to wait for a transient error.
	maxAllowedWaitTime = 5 * time.Minute
	// waitFn returns the amount of time to wait before retrying depending
	// on the current attempt.  This variable exists to reduce the test
	// time.
	waitFn = cubicWait
)

// ErrRetryFailed is returned if the callback wasn't able to complete
// without errors within the allowed number of retries.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// WithRetry runs the callback function fn.  If the function returns a
// rate limit error, it waits out the advertised delay and calls it again,
// up to maxAttempts times.  Server and network errors that are likely
// transient are retried with a growing delay; everything else aborts
// immediately.
func WithRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, fn func() error) error {
	if maxAttempts == 0 {
		maxAttempts = defNumAttempts
	}
	var ok bool
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := lim.Wait(ctx); err != nil {
			return err
		}

		cbErr := fn()
		if cbErr == nil {
			ok = true
			break
		}

		var (
			rle *teams.RateLimitedError
			sce teams.StatusError
			ne  *net.OpError
		)
		switch {
		case errors.As(cbErr, &rle):
			slog.InfoContext(ctx, "got rate limited, sleeping", "retry_after", rle.RetryAfter)
			if err := sleepCtx(ctx, rle.RetryAfter); err != nil {
				return err
			}
			continue
		case errors.As(cbErr, &sce):
			if isRecoverable(sce.Code) {
				delay := waitFn(attempt)
				slog.InfoContext(ctx, "got server error, sleeping", "code", sce.Code, "delay", delay)
				if err := sleepCtx(ctx, delay); err != nil {
					return err
				}
				continue
			}
		case errors.As(cbErr, &ne):
			if ne.Op == "read" || ne.Op == "write" {
				delay := waitFn(attempt)
				slog.InfoContext(ctx, "got network error, sleeping", "op", ne.Op, "delay", delay)
				if err := sleepCtx(ctx, delay); err != nil {
					return err
				}
				continue
			}
		}

		return fmt.Errorf("callback error: %w", cbErr)
	}
	if !ok {
		return ErrRetryFailed
	}
	return nil
}

// isRecoverable returns true if the status code is a recoverable error.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != 501) || statusCode == http.StatusRequestTimeout
}

// cubicWait is the wait time function.  Time is calculated as (x+2)^3
// seconds, where x is the current attempt number, capped at
// maxAllowedWaitTime.
func cubicWait(attempt int) time.Duration {
	x := attempt + 2 // this is to ensure that we sleep at least 8 seconds.
	delay := time.Duration(x*x*x) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
