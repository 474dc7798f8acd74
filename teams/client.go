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

// Package teams defines the boundary of the target messaging service: the
// operations the migration requires and the wire types they exchange.  The
// transport implementation lives outside of this module; everything here is
// transport-agnostic.
package teams

import (
	"context"
	"errors"
	"fmt"
	"time"
)

//go:generate mockgen -destination=../internal/mocks/mock_teams/mock_client.go . Client

// ErrNotFound is returned by the lookup operations when the entity does not
// exist in the target system.  Callers branch on it: it is a miss, not a
// failure of the service boundary.
var ErrNotFound = errors.New("not found")

// RateLimitedError is returned when the service throttles the caller.  The
// caller is expected to wait for RetryAfter before retrying.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// StatusError is a non-2xx response from the service that is not a rate
// limit.
type StatusError struct {
	Code int
	Msg  string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Msg)
}

// Client is the set of operations the migration requires from the target
// service.
type Client interface {
	// FindTeam returns the ID of the team with the given display name, or
	// ErrNotFound.
	FindTeam(ctx context.Context, name string) (string, error)
	// CreateTeam creates a team in migration mode and returns its ID.
	CreateTeam(ctx context.Context, name, description string, created time.Time) (string, error)
	// ListChannels returns all channels of the team.
	ListChannels(ctx context.Context, teamID string) ([]Channel, error)
	// CreateChannel creates a channel in migration mode within the team and
	// returns its ID.
	CreateChannel(ctx context.Context, teamID string, ch Channel, created time.Time) (string, error)
	// CompleteTeamMigration takes the team out of migration mode.
	CompleteTeamMigration(ctx context.Context, teamID string) error
	// CompleteChannelMigration takes the channel out of migration mode.
	CompleteChannelMigration(ctx context.Context, teamID, channelID string) error
	// AddTeamOwner assigns the user as an owner of the team.
	AddTeamOwner(ctx context.Context, teamID, userID string) error

	// UserByPrincipalName looks up a directory user by the principal name.
	UserByPrincipalName(ctx context.Context, upn string) (*User, error)
	// UserByMail looks up a directory user by the email address.
	UserByMail(ctx context.Context, mail string) (*User, error)
	// UserByDisplayName looks up a directory user by the display name.
	UserByDisplayName(ctx context.Context, name string) (*User, error)

	// PostMessage posts a top-level channel message and returns the message
	// ID.  If m.ID is set, the service stores the message under that key,
	// making the call idempotent.
	PostMessage(ctx context.Context, teamID, channelID string, m *ChatMessage) (string, error)
	// PostReply posts m as a reply to the message rootID.
	PostReply(ctx context.Context, teamID, channelID, rootID string, m *ChatMessage) (string, error)
	// UpdateAttachments replaces the attachment list of a posted message.
	UpdateAttachments(ctx context.Context, teamID, channelID, messageID string, aa []Attachment) error

	// CreateUploadSession opens a resumable upload session for the file at
	// the given path within the channel's file store.
	CreateUploadSession(ctx context.Context, teamID, channelID, path string) (*UploadSession, error)
	// UploadRange uploads one content slice into the session.  The returned
	// drive item is nil until the final slice completes the upload.
	UploadRange(ctx context.Context, uploadURL string, chunk []byte, off, total int64) (*DriveItem, error)
}

// Channel is a target-system channel.
type Channel struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// User is a directory user in the target system.
type User struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
}
