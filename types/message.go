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

import (
	"time"

	"github.com/rusq/slack"
)

// Message is a single message from a slack export message file.  It embeds
// slack.Msg and adds the fields that are present in export files but not in
// the API responses.
type Message struct {
	slack.Msg

	// additional fields not defined by the slack library, but present
	// in slack exports.
	UserTeam   string `json:"user_team,omitempty"`
	SourceTeam string `json:"source_team,omitempty"`
}

// IsInThread reports whether the message belongs to a thread, i.e. it is
// either a thread starter or a reply.
func (m *Message) IsInThread() bool {
	return m.ThreadTimestamp != ""
}

// IsThreadRoot reports whether the message is the thread starter message.
func (m *Message) IsThreadRoot() bool {
	return m.ThreadTimestamp != "" && m.ThreadTimestamp == m.Timestamp
}

// ID returns the derived message identifier (see SequenceID).
func (m *Message) ID() string {
	return SequenceID(m.Timestamp)
}

// ThreadID returns the identifier of the thread the message belongs to.  It
// is always defined: for messages outside of any thread it falls back to
// the message's own identifier.
func (m *Message) ThreadID() string {
	return SequenceID(NVL(m.ThreadTimestamp, m.Timestamp))
}

// Time returns the message time.
func (m *Message) Time() time.Time {
	ts, _ := ParseSlackTS(m.Timestamp)
	return ts
}

// SenderID returns the source identifier of the message sender, which,
// depending on the sender type, is the user ID, bot ID or the username.
func (m *Message) SenderID() string {
	return NVL(m.User, m.BotID, m.Username)
}
