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
	"strings"
	"time"

	"github.com/rusq/slack"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Channel is a conversation container from the source archive.
type Channel struct {
	// SourceID is the slack channel ID.
	SourceID string
	// Name is the normalised display name for the target system.
	Name string
	// Folder is the name of the subdirectory of the archive that holds the
	// channel's message files.  Slack names it after the channel.
	Folder      string
	Description string
	Created     time.Time
	IsArchived  bool
	// Creator is the source ID of the user who created the channel.
	Creator string
}

// GeneralChannel is the display name of the channel that every target team
// has from the start.  The slack "general" channel maps onto it instead of
// being created anew.
const GeneralChannel = "General"

var titleCaser = cases.Title(language.English)

// NewChannel converts the slack channel listing entry into a Channel,
// normalising the display name.
func NewChannel(ch slack.Channel) Channel {
	return Channel{
		SourceID:    ch.ID,
		Name:        displayName(ch.Name),
		Folder:      ch.Name,
		Description: ch.Purpose.Value,
		Created:     ch.Created.Time().UTC(),
		IsArchived:  ch.IsArchived,
		Creator:     ch.Creator,
	}
}

// displayName normalises the slack channel name ("project-alpha_2") into a
// title-cased display name ("Project Alpha 2").  The "general" channel is
// pinned to the canonical name of the default target channel.
func displayName(name string) string {
	if strings.EqualFold(name, GeneralChannel) {
		return GeneralChannel
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(name)
}
