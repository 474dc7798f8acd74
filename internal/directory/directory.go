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

// Package directory builds and queries the identity directory of the
// migration: the source users and channels, and their mapping onto target
// identities.
package directory

import (
	"log/slog"

	"github.com/rusq/slack2teams/types"
)

// SlackbotID is the well-known ID of the slack system sender.  It never
// appears in the user listing, so lookups fall back to a synthetic bot
// identity.
const SlackbotID = "USLACKBOT"

// Slackbot returns the synthetic identity of the slack system sender.
func Slackbot() *types.User {
	return &types.User{SourceID: SlackbotID, DisplayName: "Slackbot", IsBot: true}
}

// Directory is the in-memory identity table.  It is single-owner within a
// run: there are no concurrent writers.
type Directory struct {
	users    types.Users
	userIdx  map[string]*types.User
	chanIdx  map[string]types.Channel
	slackbot *types.User
	lg       *slog.Logger
}

// Option is the directory option function.
type Option func(*Directory)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(d *Directory) {
		if lg != nil {
			d.lg = lg
		}
	}
}

// New creates a directory over the given users and channels.
func New(uu types.Users, cc []types.Channel, opts ...Option) *Directory {
	d := &Directory{
		users:    uu,
		userIdx:  uu.IndexByID(),
		chanIdx:  make(map[string]types.Channel, len(cc)),
		slackbot: Slackbot(),
		lg:       slog.Default(),
	}
	for _, c := range cc {
		d.chanIdx[c.SourceID] = c
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Users returns the directory users in listing order.
func (d *Directory) Users() types.Users {
	return d.users
}

// FindUser returns the user with the given source ID.  The well-known
// system sender always resolves, even if absent from the table.
func (d *Directory) FindUser(id string) (*types.User, bool) {
	if u, ok := d.userIdx[id]; ok {
		return u, true
	}
	if id == SlackbotID {
		return d.slackbot, true
	}
	return nil, false
}

// FindChannel returns the channel with the given source ID.
func (d *Directory) FindChannel(id string) (types.Channel, bool) {
	c, ok := d.chanIdx[id]
	return c, ok
}

// ReplaceUsers replaces the user table, e.g. with the contents of a
// previously stored snapshot.  The old table is discarded entirely.
func (d *Directory) ReplaceUsers(uu types.Users) {
	d.users = uu
	d.userIdx = uu.IndexByID()
}
