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
package transform

// in this file: fixed-shape markup for recognised message subtypes

import (
	"fmt"

	"github.com/rusq/slack2teams/types"
)

const (
	subtypeBotMessage   = "bot_message"
	subtypeChannelJoin  = "channel_join"
	subtypeChannelLeave = "channel_leave"
)

// formatSubtype returns the specialised markup for the message subtype and
// true, or ("", false) when the message should go through generic
// formatting.
func (t *Transformer) formatSubtype(m *types.Message) (string, bool) {
	switch m.SubType {
	case subtypeBotMessage:
		return fmt.Sprintf("<b>%s</b><br>%s", escape(t.senderName(m)), escape(m.Text)), true
	case subtypeChannelJoin:
		return fmt.Sprintf("<i>%s joined the channel</i>", escape(t.senderName(m))), true
	case subtypeChannelLeave:
		return fmt.Sprintf("<i>%s left the channel</i>", escape(t.senderName(m))), true
	}
	return "", false
}
