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

// Attachment is a file referenced by a message.  ContentURL and ContentID
// are empty until the transport step either uploads the file or embeds it
// as hosted content; a message is never submitted with an attachment that
// has neither.
type Attachment struct {
	// URL is the source download URL.
	URL      string
	Name     string
	MimeType string
	FileType string
	Size     int
	Created  time.Time
	// ContentURL is the URL of the uploaded content in the target system.
	ContentURL string
	// ContentID is the opaque target content identifier: the drive item ID
	// for uploaded files, or the locally generated hosted content ID for
	// inline content.
	ContentID string
}

// NewAttachment converts the slack file descriptor into an Attachment.
func NewAttachment(f *slack.File) *Attachment {
	return &Attachment{
		URL:      NVL(f.URLPrivateDownload, f.URLPrivate),
		Name:     NVL(f.Name, f.ID),
		MimeType: f.Mimetype,
		FileType: f.Filetype,
		Size:     f.Size,
		Created:  f.Created.Time().UTC(),
	}
}

// IsResolved reports whether the attachment has been resolved to a target
// content reference.
func (a *Attachment) IsResolved() bool {
	return a.ContentID != ""
}

// Mention is a user mention registered while formatting a message body.
// ID is the sequential marker number within the message, starting at zero.
type Mention struct {
	ID   int
	User *User
}

// Reaction is a single emoji reaction event: one instance per (emoji, user)
// pair.  Emoji is the code in the target system's emoji space.
type Reaction struct {
	Emoji string
	User  *User
	Time  time.Time
}
