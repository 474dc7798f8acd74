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

// Package slack2teams migrates a slack export archive into a team on the
// target messaging service.  The migration runs channel by channel and
// message file by message file, journaling each completed file, so an
// interrupted run picks up where it left off.
package slack2teams

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rusq/slack2teams/internal/archive"
	"github.com/rusq/slack2teams/internal/checkpoint"
	"github.com/rusq/slack2teams/internal/directory"
	"github.com/rusq/slack2teams/internal/network"
	"github.com/rusq/slack2teams/internal/transcript"
	"github.com/rusq/slack2teams/internal/transform"
	"github.com/rusq/slack2teams/internal/transport"
	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

const (
	defRetries = 3
	defLimit   = 4.0 // requests per second against the service
	// defSettle is how long to wait after creating a team or channel
	// before using it.  The service needs a moment for the new container
	// to become addressable.
	defSettle = 2 * time.Second
)

// Migrator drives the migration of one archive into one team.
type Migrator struct {
	cl  teams.Client
	src *archive.Export
	dir *directory.Directory
	trk checkpoint.Tracker
	tf  *transform.Transformer
	tp  *transport.Transporter
	trx *transcript.Writer
	lim *rate.Limiter
	lg  *slog.Logger

	teamName string
	teamDesc string
	owner    string
	retries  int
	settle   time.Duration
	progress func(file string)
}

// Option is the migrator option function.
type Option func(*Migrator)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(m *Migrator) {
		if lg != nil {
			m.lg = lg
		}
	}
}

// WithTracker sets the completion journal.  The default journal renames
// completed message files within the archive directory.
func WithTracker(trk checkpoint.Tracker) Option {
	return func(m *Migrator) {
		if trk != nil {
			m.trk = trk
		}
	}
}

// WithTranscript enables the side HTML export of submitted messages.
func WithTranscript(w *transcript.Writer) Option {
	return func(m *Migrator) {
		m.trx = w
	}
}

// WithTransporter uses the given attachment transporter instead of the
// default one.
func WithTransporter(tp *transport.Transporter) Option {
	return func(m *Migrator) {
		if tp != nil {
			m.tp = tp
		}
	}
}

// WithLimiter uses the initialised limiter instead of the built-in.
func WithLimiter(l *rate.Limiter) Option {
	return func(m *Migrator) {
		if l != nil {
			m.lim = l
		}
	}
}

// WithOwner sets the target user to assign as the team owner during
// finalisation.
func WithOwner(userID string) Option {
	return func(m *Migrator) {
		m.owner = userID
	}
}

// WithTeamDescription sets the description of the team, should it need to
// be created.
func WithTeamDescription(desc string) Option {
	return func(m *Migrator) {
		m.teamDesc = desc
	}
}

// WithRetries sets the number of attempts for each remote call.
func WithRetries(n int) Option {
	return func(m *Migrator) {
		if n > 0 {
			m.retries = n
		}
	}
}

// WithSettleDuration overrides the post-creation settle delay.
func WithSettleDuration(d time.Duration) Option {
	return func(m *Migrator) {
		if d >= 0 {
			m.settle = d
		}
	}
}

// WithProgressFn registers a callback invoked with each message file name
// before the file is processed.
func WithProgressFn(fn func(file string)) Option {
	return func(m *Migrator) {
		m.progress = fn
	}
}

// New creates a migrator that reads src and posts into the team with the
// given display name, resolving identities through dir.  The directory is
// expected to be populated and target-resolved by the caller.
func New(cl teams.Client, src *archive.Export, dir *directory.Directory, teamName string, opts ...Option) (*Migrator, error) {
	if teamName == "" {
		return nil, errors.New("team name is required")
	}
	m := &Migrator{
		cl:       cl,
		src:      src,
		dir:      dir,
		trk:      checkpoint.NewRename(src.Name()),
		tf:       transform.New(dir),
		lim:      rate.NewLimiter(defLimit, 1),
		lg:       slog.Default(),
		teamName: teamName,
		retries:  defRetries,
		settle:   defSettle,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tp == nil {
		m.tp = transport.New(cl, transport.WithLimiter(m.lim), transport.WithLogger(m.lg))
	}
	return m, nil
}

// Migrate runs the full migration: ensures the team, then walks every
// channel of the archive, and finally takes the team out of migration
// mode.  Failures local to one channel, file or message are logged and
// skipped; errors that make the service boundary unusable abort the run.
func (m *Migrator) Migrate(ctx context.Context) error {
	channels, err := m.src.Channels()
	if err != nil {
		return fmt.Errorf("channel listing: %w", err)
	}
	teamID, err := m.ensureTeam(ctx, earliest(channels))
	if err != nil {
		return fmt.Errorf("team %q: %w", m.teamName, err)
	}
	existing, err := m.listChannels(ctx, teamID)
	if err != nil {
		return fmt.Errorf("channel listing for team %q: %w", m.teamName, err)
	}

	for _, ch := range channels {
		if err := ctx.Err(); err != nil {
			return err
		}
		chID, err := m.ensureChannel(ctx, teamID, existing, ch)
		if err != nil {
			m.lg.WarnContext(ctx, "skipping channel", "channel", ch.Name, "error", err)
			continue
		}
		if err := m.processChannel(ctx, teamID, chID, ch); err != nil {
			return fmt.Errorf("channel %q: %w", ch.Name, err)
		}
	}

	return m.Finish(ctx, teamID)
}

// ensureTeam finds the team by display name, creating it in migration mode
// if it does not exist yet.
func (m *Migrator) ensureTeam(ctx context.Context, created time.Time) (string, error) {
	var id string
	err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		var err error
		id, err = m.cl.FindTeam(ctx, m.teamName)
		return err
	})
	if err == nil {
		m.lg.InfoContext(ctx, "found existing team", "team", m.teamName, "id", id)
		return id, nil
	}
	if !errors.Is(err, teams.ErrNotFound) {
		return "", err
	}
	if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		var err error
		id, err = m.cl.CreateTeam(ctx, m.teamName, m.teamDesc, created)
		return err
	}); err != nil {
		return "", err
	}
	m.lg.InfoContext(ctx, "created team", "team", m.teamName, "id", id)
	return id, m.settleWait(ctx)
}

func (m *Migrator) listChannels(ctx context.Context, teamID string) (map[string]string, error) {
	var cc []teams.Channel
	if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		var err error
		cc, err = m.cl.ListChannels(ctx, teamID)
		return err
	}); err != nil {
		return nil, err
	}
	idx := make(map[string]string, len(cc))
	for _, c := range cc {
		idx[strings.ToLower(c.DisplayName)] = c.ID
	}
	return idx, nil
}

// ensureChannel finds the channel by display name in the index built from
// the remote listing, creating it in migration mode if absent.  Created
// channels are added to the index.
func (m *Migrator) ensureChannel(ctx context.Context, teamID string, existing map[string]string, ch types.Channel) (string, error) {
	if id, ok := existing[strings.ToLower(ch.Name)]; ok {
		m.lg.InfoContext(ctx, "found existing channel", "channel", ch.Name, "id", id)
		return id, nil
	}
	var id string
	if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		var err error
		id, err = m.cl.CreateChannel(ctx, teamID, teams.Channel{
			DisplayName: ch.Name,
			Description: ch.Description,
		}, ch.Created)
		return err
	}); err != nil {
		return "", err
	}
	existing[strings.ToLower(ch.Name)] = id
	m.lg.InfoContext(ctx, "created channel", "channel", ch.Name, "id", id)
	return id, m.settleWait(ctx)
}

// processChannel walks the pending message files of the channel in
// chronological order.
func (m *Migrator) processChannel(ctx context.Context, teamID, chID string, ch types.Channel) error {
	files, err := m.src.MessageFiles(ch.Folder, func(name string) bool {
		return filepath.Ext(name) == ".json"
	})
	if err != nil {
		m.lg.WarnContext(ctx, "skipping channel without message files", "channel", ch.Name, "error", err)
		return nil
	}
	for _, name := range files {
		done, err := m.trk.IsDone(ctx, name)
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		if done {
			m.lg.DebugContext(ctx, "already done", "file", name)
			continue
		}
		if m.progress != nil {
			m.progress(name)
		}
		if err := m.processFile(ctx, teamID, chID, ch, name); err != nil {
			return err
		}
	}
	return nil
}

// processFile submits every message of one message file and journals the
// file as done.  A message that fails to post is logged and skipped; the
// file is still marked done, matching the file-level granularity of the
// journal.
func (m *Migrator) processFile(ctx context.Context, teamID, chID string, ch types.Channel, name string) error {
	var entries []transcript.Entry
	for msg, err := range m.src.Messages(name) {
		if err != nil {
			m.lg.WarnContext(ctx, "skipping damaged message file", "file", name, "error", err)
			return nil
		}
		cm := m.assemble(ctx, teamID, chID, ch, &msg)
		if cm == nil {
			continue
		}
		msgID, err := m.post(ctx, teamID, chID, &msg, cm)
		if err != nil {
			m.lg.WarnContext(ctx, "skipping message", "file", name, "ts", msg.Timestamp, "error", err)
			continue
		}
		m.updateAttachments(ctx, teamID, chID, msgID, cm.Attachments)
		entries = append(entries, transcript.Entry{
			Sender: senderDisplayName(cm),
			Time:   cm.CreatedDateTime,
			HTML:   cm.Body.Content,
		})
	}
	if m.trx != nil {
		if err := m.trx.WriteBatch(name, entries); err != nil {
			return fmt.Errorf("transcript %s: %w", name, err)
		}
	}
	if err := m.trk.MarkDone(ctx, name); err != nil {
		return fmt.Errorf("journal %s: %w", name, err)
	}
	m.lg.InfoContext(ctx, "done", "file", name, "messages", len(entries))
	return nil
}

// post submits the chat message, as a threaded reply if the source message
// was one.
func (m *Migrator) post(ctx context.Context, teamID, chID string, msg *types.Message, cm *teams.ChatMessage) (string, error) {
	var msgID string
	err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		var err error
		if msg.IsInThread() && !msg.IsThreadRoot() {
			msgID, err = m.cl.PostReply(ctx, teamID, chID, msg.ThreadID(), cm)
		} else {
			msgID, err = m.cl.PostMessage(ctx, teamID, chID, cm)
		}
		return err
	})
	return msgID, err
}

// updateAttachments attaches the uploaded file references to the posted
// message.  Best effort: the message is already in, a failure here only
// loses the paper clips.
func (m *Migrator) updateAttachments(ctx context.Context, teamID, chID, msgID string, aa []teams.Attachment) {
	if len(aa) == 0 {
		return
	}
	if err := network.WithRetry(ctx, m.lim, m.retries, func() error {
		return m.cl.UpdateAttachments(ctx, teamID, chID, msgID, aa)
	}); err != nil {
		m.lg.WarnContext(ctx, "unable to attach files", "message", msgID, "error", err)
	}
}

func (m *Migrator) settleWait(ctx context.Context) error {
	t := time.NewTimer(m.settle)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// earliest returns the creation time of the oldest channel, falling back
// to the current time for archives without any.
func earliest(cc []types.Channel) time.Time {
	var t time.Time
	for _, c := range cc {
		if c.Created.IsZero() {
			continue
		}
		if t.IsZero() || c.Created.Before(t) {
			t = c.Created
		}
	}
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func senderDisplayName(cm *teams.ChatMessage) string {
	if cm.From == nil {
		return ""
	}
	return cm.From.User.DisplayName
}
