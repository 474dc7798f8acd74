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
package slack2teams

import (
	"context"
	"fmt"

	"github.com/rusq/slack2teams/internal/network"
)

// Finish takes the team and all of its channels out of migration mode and
// assigns the configured owner.  It accepts the team ID directly, without
// consulting the archive, so that a run interrupted after submission can
// be finalised on its own.  A channel that refuses to finalise is logged
// and skipped; finalising the team itself is mandatory.
func (m *Migrator) Finish(ctx context.Context, teamID string) error {
	cc, err := m.listChannels(ctx, teamID)
	if err != nil {
		return fmt.Errorf("channel listing: %w", err)
	}
	for name, chID := range cc {
		if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
			return m.cl.CompleteChannelMigration(ctx, teamID, chID)
		}); err != nil {
			m.lg.WarnContext(ctx, "unable to finalise channel", "channel", name, "error", err)
		}
	}
	if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		return m.cl.CompleteTeamMigration(ctx, teamID)
	}); err != nil {
		return fmt.Errorf("team finalisation: %w", err)
	}
	if m.owner != "" {
		if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
			return m.cl.AddTeamOwner(ctx, teamID, m.owner)
		}); err != nil {
			return fmt.Errorf("owner assignment: %w", err)
		}
	}
	m.lg.InfoContext(ctx, "migration finalised", "team", teamID)
	return nil
}
