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
	"fmt"

	"github.com/rusq/slack"

	"github.com/rusq/slack2teams/internal/archive"
	"github.com/rusq/slack2teams/types"
)

// ScanUsers parses the user listing file.  Entries flagged as bots become
// bot users with no email, so they are never sent to target identity
// resolution.
func ScanUsers(path string) (types.Users, error) {
	var uu types.Users
	for su, err := range archive.JSON[slack.User](path) {
		if err != nil {
			return nil, fmt.Errorf("user listing: %w", err)
		}
		u := types.NewUser(su)
		if u.IsBot {
			u.Email = ""
		}
		uu = append(uu, u)
	}
	return uu, nil
}
