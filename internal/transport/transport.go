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

// Package transport moves message attachments into the target system.
// Small raster images are embedded directly as hosted content; everything
// else goes through a chunked resumable upload into the channel file
// store.
package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/rusq/slack2teams/teams"
)

const (
	defRetries = 3
	defLimit   = 5.0 // requests per second against the file store
)

// Getter retrieves the attachment content from its source URL.  It exists
// primarily for mocking in tests.
type Getter interface {
	// Get returns the content of the given URL.  The caller closes the
	// reader.
	Get(ctx context.Context, url string) (io.ReadCloser, error)
}

// Transporter is the attachment pipeline.
type Transporter struct {
	cl      teams.Client
	getter  Getter
	limiter *rate.Limiter
	lg      *slog.Logger
	retries int
}

// Option is the transporter option function.
type Option func(*Transporter)

// WithGetter uses the getter instead of the built-in http one.
func WithGetter(g Getter) Option {
	return func(t *Transporter) {
		if g != nil {
			t.getter = g
		}
	}
}

// WithLimiter uses the initialised limiter instead of the built-in.
func WithLimiter(l *rate.Limiter) Option {
	return func(t *Transporter) {
		if l != nil {
			t.limiter = l
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(t *Transporter) {
		if lg != nil {
			t.lg = lg
		}
	}
}

// WithRetries sets the number of attempts for each upload call.
func WithRetries(n int) Option {
	return func(t *Transporter) {
		if n > 0 {
			t.retries = n
		}
	}
}

// New initialises the transporter.
func New(cl teams.Client, opts ...Option) *Transporter {
	t := &Transporter{
		cl:      cl,
		getter:  httpGetter{cl: http.DefaultClient},
		limiter: rate.NewLimiter(defLimit, 1),
		lg:      slog.Default(),
		retries: defRetries,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
