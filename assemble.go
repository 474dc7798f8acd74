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

// in this file: source message to chat message conversion

import (
	"context"
	"fmt"
	"strings"

	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

// assemble converts one source message into a chat message ready for
// submission: formats the body, resolves the attachments, and collects
// mentions and reactions.  It returns nil for messages that would end up
// completely empty.
func (m *Migrator) assemble(ctx context.Context, teamID, chID string, ch types.Channel, msg *types.Message) *teams.ChatMessage {
	aa := make([]*types.Attachment, 0, len(msg.Files))
	for i := range msg.Files {
		aa = append(aa, types.NewAttachment(&msg.Files[i]))
	}
	hosted := m.tp.Process(ctx, teamID, chID, ch.Name, aa)

	res := m.tf.Format(msg)

	var body strings.Builder
	body.WriteString(res.Text)
	for _, hc := range hosted {
		fmt.Fprintf(&body, `<img src="../hostedContents/%s/$value">`, hc.TemporaryID)
	}

	var refs []teams.Attachment
	for _, a := range aa {
		if !a.IsResolved() || a.ContentURL == "" {
			continue
		}
		refs = append(refs, teams.Attachment{
			ID:          a.ContentID,
			ContentType: teams.AttachmentReference,
			ContentURL:  a.ContentURL,
			Name:        a.Name,
		})
	}

	if body.Len() == 0 && len(refs) == 0 {
		m.lg.DebugContext(ctx, "nothing to post", "ts", msg.Timestamp)
		return nil
	}

	return &teams.ChatMessage{
		ID:              msg.ID(),
		CreatedDateTime: msg.Time(),
		From:            m.identity(msg),
		Body: teams.ItemBody{
			ContentType: teams.ContentTypeHTML,
			Content:     body.String(),
		},
		Attachments:    refs,
		Mentions:       convertMentions(res.Mentions),
		HostedContents: hosted,
		Reactions:      convertReactions(res.Reactions),
	}
}

// identity attributes the message to a target identity.  Senders without a
// resolved target user keep their display name only; completely unknown
// senders yield no attribution at all.
func (m *Migrator) identity(msg *types.Message) *teams.IdentitySet {
	if u, ok := m.dir.FindUser(msg.SenderID()); ok {
		id := teams.Identity{DisplayName: u.DisplayName}
		if u.IsResolved() {
			id.ID = u.TargetID
		}
		return &teams.IdentitySet{User: id}
	}
	if name := types.NVL(msg.Username, msg.SenderID()); name != "" {
		return &teams.IdentitySet{User: teams.Identity{DisplayName: name}}
	}
	return nil
}

func convertMentions(mm []types.Mention) []teams.Mention {
	if len(mm) == 0 {
		return nil
	}
	out := make([]teams.Mention, 0, len(mm))
	for _, mn := range mm {
		out = append(out, teams.Mention{
			ID:          mn.ID,
			MentionText: mn.User.DisplayName,
			Mentioned: &teams.IdentitySet{User: teams.Identity{
				ID:          mn.User.TargetID,
				DisplayName: mn.User.DisplayName,
			}},
		})
	}
	return out
}

func convertReactions(rr []types.Reaction) []teams.Reaction {
	if len(rr) == 0 {
		return nil
	}
	out := make([]teams.Reaction, 0, len(rr))
	for _, r := range rr {
		out = append(out, teams.Reaction{
			ReactionType:    r.Emoji,
			CreatedDateTime: r.Time,
			User: &teams.IdentitySet{User: teams.Identity{
				ID:          r.User.TargetID,
				DisplayName: r.User.DisplayName,
			}},
		})
	}
	return out
}
