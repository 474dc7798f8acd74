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

// Package dryrun provides a client that accepts everything and posts
// nothing.  It lets a migration run end to end against a local archive, to
// validate the archive and preview the transcript, before pointing the
// tool at a live tenant.
package dryrun

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rusq/slack2teams/teams"
)

// Client implements the service boundary in memory.  Lookups miss, writes
// succeed and are logged.
type Client struct {
	lg    *slog.Logger
	posts atomic.Int64
}

var _ teams.Client = (*Client)(nil)

// New returns a dry run client.
func New(lg *slog.Logger) *Client {
	if lg == nil {
		lg = slog.Default()
	}
	return &Client{lg: lg}
}

// Posts returns the number of messages that would have been posted.
func (c *Client) Posts() int64 {
	return c.posts.Load()
}

func (c *Client) FindTeam(ctx context.Context, name string) (string, error) {
	return "", teams.ErrNotFound
}

func (c *Client) CreateTeam(ctx context.Context, name, description string, created time.Time) (string, error) {
	id := uuid.NewString()
	c.lg.InfoContext(ctx, "DRY: create team", "name", name, "id", id)
	return id, nil
}

func (c *Client) ListChannels(ctx context.Context, teamID string) ([]teams.Channel, error) {
	return nil, nil
}

func (c *Client) CreateChannel(ctx context.Context, teamID string, ch teams.Channel, created time.Time) (string, error) {
	id := uuid.NewString()
	c.lg.InfoContext(ctx, "DRY: create channel", "name", ch.DisplayName, "id", id)
	return id, nil
}

func (c *Client) CompleteTeamMigration(ctx context.Context, teamID string) error {
	c.lg.InfoContext(ctx, "DRY: finalise team", "team", teamID)
	return nil
}

func (c *Client) CompleteChannelMigration(ctx context.Context, teamID, channelID string) error {
	c.lg.InfoContext(ctx, "DRY: finalise channel", "channel", channelID)
	return nil
}

func (c *Client) AddTeamOwner(ctx context.Context, teamID, userID string) error {
	c.lg.InfoContext(ctx, "DRY: assign owner", "team", teamID, "user", userID)
	return nil
}

func (c *Client) UserByPrincipalName(ctx context.Context, upn string) (*teams.User, error) {
	return nil, teams.ErrNotFound
}

func (c *Client) UserByMail(ctx context.Context, mail string) (*teams.User, error) {
	return nil, teams.ErrNotFound
}

func (c *Client) UserByDisplayName(ctx context.Context, name string) (*teams.User, error) {
	return nil, teams.ErrNotFound
}

func (c *Client) PostMessage(ctx context.Context, teamID, channelID string, m *teams.ChatMessage) (string, error) {
	c.posts.Add(1)
	c.lg.DebugContext(ctx, "DRY: post", "channel", channelID, "id", m.ID)
	return m.ID, nil
}

func (c *Client) PostReply(ctx context.Context, teamID, channelID, rootID string, m *teams.ChatMessage) (string, error) {
	c.posts.Add(1)
	c.lg.DebugContext(ctx, "DRY: reply", "channel", channelID, "root", rootID, "id", m.ID)
	return m.ID, nil
}

func (c *Client) UpdateAttachments(ctx context.Context, teamID, channelID, messageID string, aa []teams.Attachment) error {
	c.lg.DebugContext(ctx, "DRY: attach", "message", messageID, "count", len(aa))
	return nil
}

func (c *Client) CreateUploadSession(ctx context.Context, teamID, channelID, path string) (*teams.UploadSession, error) {
	return &teams.UploadSession{
		UploadURL:          "dry://upload/" + uuid.NewString(),
		ExpirationDateTime: time.Now().Add(time.Hour),
	}, nil
}

func (c *Client) UploadRange(ctx context.Context, uploadURL string, chunk []byte, off, total int64) (*teams.DriveItem, error) {
	if off+int64(len(chunk)) < total {
		return nil, nil
	}
	id := uuid.NewString()
	return &teams.DriveItem{
		ID:     id,
		ETag:   fmt.Sprintf("%q", "{"+id+"},1"),
		WebURL: "dry://drive/" + id,
	}, nil
}
