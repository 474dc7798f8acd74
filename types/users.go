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
package types

import "github.com/rusq/slack"

// User is a migration participant, human or bot.  TargetID is empty until
// the user is resolved against the target directory, and is never a guessed
// value.
type User struct {
	SourceID    string `json:"source_id"`
	TargetID    string `json:"target_id,omitempty"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	IsBot       bool   `json:"is_bot,omitempty"`
}

// NewUser converts a slack user listing entry into a User.
func NewUser(u slack.User) *User {
	return &User{
		SourceID:    u.ID,
		DisplayName: NVL(u.Profile.RealNameNormalized, u.RealName, u.Name, u.ID),
		Email:       u.Profile.Email,
		IsBot:       u.IsBot,
	}
}

// IsResolved reports whether the user has been resolved to a target
// identity.
func (u *User) IsResolved() bool {
	return u != nil && u.TargetID != ""
}

// Users is a slice of users.
type Users []*User

// IndexByID returns the mapping of the source user ID to *User.
func (us Users) IndexByID() map[string]*User {
	idx := make(map[string]*User, len(us))
	for _, u := range us {
		idx[u.SourceID] = u
	}
	return idx
}
