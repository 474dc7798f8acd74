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
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/rusq/slack2teams/teams"
)

// ResolveTargets attempts to resolve every user in the table to a target
// identity.  For each user with a known email it tries, in order: lookup
// by principal name, by email address, by display name, stopping at the
// first hit.  Users without an email, and users that miss on all three,
// are left unresolved, which is not an error.  An error return means the
// lookup operation itself is broken (auth, transport), and the run cannot
// continue.
func (d *Directory) ResolveTargets(ctx context.Context, cl teams.Client) error {
	for _, u := range d.users {
		if u.IsResolved() || u.Email == "" {
			continue
		}
		tu, err := resolveOne(ctx, cl, u.Email, u.DisplayName)
		if err != nil {
			if errors.Is(err, teams.ErrNotFound) {
				d.lg.Warn("no target identity", "source_id", u.SourceID, "display_name", u.DisplayName)
				continue
			}
			return fmt.Errorf("identity lookup for %s: %w", u.SourceID, err)
		}
		u.TargetID = tu.ID
		d.lg.Debug("resolved", "source_id", u.SourceID, "target_id", u.TargetID)
	}
	return nil
}

// resolveOne runs the lookup fallback chain.
func resolveOne(ctx context.Context, cl teams.Client, email, displayName string) (*teams.User, error) {
	lookups := []func() (*teams.User, error){
		func() (*teams.User, error) { return cl.UserByPrincipalName(ctx, email) },
		func() (*teams.User, error) { return cl.UserByMail(ctx, email) },
		func() (*teams.User, error) { return cl.UserByDisplayName(ctx, displayName) },
	}
	for _, fn := range lookups {
		tu, err := fn()
		if err == nil {
			return tu, nil
		}
		if !errors.Is(err, teams.ErrNotFound) {
			return nil, err
		}
	}
	return nil, teams.ErrNotFound
}
