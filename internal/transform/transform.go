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

// Package transform converts slack messages into target markup.  Besides
// the formatted body it returns the side effects of formatting: the
// mentions discovered in the body and the reactions attached to the
// message, both restricted to users that resolved to target identities.
package transform

import (
	"html"
	"log/slog"
	"strings"

	"github.com/rusq/slack2teams/internal/directory"
	"github.com/rusq/slack2teams/types"
)

// Transformer formats messages against a fixed identity directory.
type Transformer struct {
	dir *directory.Directory
	lg  *slog.Logger
}

// Option is the transformer option function.
type Option func(*Transformer)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(t *Transformer) {
		if lg != nil {
			t.lg = lg
		}
	}
}

// New creates a transformer that resolves users and channels through dir.
func New(dir *directory.Directory, opts ...Option) *Transformer {
	t := &Transformer{dir: dir, lg: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Result is the outcome of formatting one message.
type Result struct {
	// Text is the formatted message body (html).
	Text string
	// Mentions are the users mentioned in the body, in marker order.
	Mentions []types.Mention
	// Reactions are the message reactions of resolved reactors.
	Reactions []types.Reaction
}

// Format produces the target markup for the message.  Recognised message
// subtypes take a fixed-shape fast path; everything else goes through the
// rich text walker, falling back to the plain text field when the message
// carries no block structure.
func (t *Transformer) Format(m *types.Message) Result {
	var res Result
	if text, ok := t.formatSubtype(m); ok {
		res.Text = text
	} else if len(m.Blocks.BlockSet) > 0 {
		res.Text, res.Mentions = t.formatBlocks(m)
	} else {
		res.Text = escape(m.Text)
	}
	res.Reactions = t.reactions(m)
	return res
}

// reactions scans the message reaction list and emits one Reaction per
// (emoji, user) pair for every reactor with a resolved target identity.
func (t *Transformer) reactions(m *types.Message) []types.Reaction {
	var rr []types.Reaction
	for _, ir := range m.Reactions {
		code, ok := MapEmoji(ir.Name)
		if !ok {
			t.lg.Warn("unmapped reaction emoji", "name", ir.Name, "ts", m.Timestamp)
		}
		for _, uid := range ir.Users {
			u, found := t.dir.FindUser(uid)
			if !found || !u.IsResolved() {
				continue
			}
			// slack exports do not record reaction times, attribute them
			// to the message time.
			rr = append(rr, types.Reaction{Emoji: code, User: u, Time: m.Time()})
		}
	}
	return rr
}

// senderName returns the display name of the message sender.
func (t *Transformer) senderName(m *types.Message) string {
	if u, ok := t.dir.FindUser(m.SenderID()); ok {
		return u.DisplayName
	}
	return types.NVL(m.Username, m.SenderID())
}

func escape(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
