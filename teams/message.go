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
package teams

// in this file: chat message wire types

import "time"

// ChatMessage is a message submitted to a channel.
type ChatMessage struct {
	// ID is the stable message key: the millisecond timestamp derived from
	// the source message.  Replies reference their thread root by this key.
	ID              string          `json:"id,omitempty"`
	CreatedDateTime time.Time       `json:"createdDateTime"`
	From            *IdentitySet    `json:"from,omitempty"`
	Body            ItemBody        `json:"body"`
	Attachments     []Attachment    `json:"attachments,omitempty"`
	Mentions        []Mention       `json:"mentions,omitempty"`
	HostedContents  []HostedContent `json:"hostedContents,omitempty"`
	Reactions       []Reaction      `json:"reactions,omitempty"`
}

// ItemBody is the message body.  ContentType is "html" for all migrated
// messages.
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

const ContentTypeHTML = "html"

// IdentitySet identifies the actor of a message or reaction.
type IdentitySet struct {
	User Identity `json:"user"`
}

// Identity is a single directory identity.  ID may be empty for senders
// that did not resolve to a directory user; the display name is then the
// only attribution.
type Identity struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Attachment is a file reference attached to a message.
type Attachment struct {
	ID          string `json:"id"`
	ContentType string `json:"contentType"`
	ContentURL  string `json:"contentUrl,omitempty"`
	Name        string `json:"name,omitempty"`
}

// AttachmentReference is the content type of an attachment that points at
// an uploaded file.
const AttachmentReference = "reference"

// Mention is an @-mention within the message body.  ID corresponds to the
// marker in the body markup: <at id="N">text</at>.
type Mention struct {
	ID          int          `json:"id"`
	MentionText string       `json:"mentionText"`
	Mentioned   *IdentitySet `json:"mentioned"`
}

// HostedContent is raster content embedded directly into the message
// instead of being uploaded to the file store.  The body references it by
// the temporary ID.
type HostedContent struct {
	TemporaryID  string `json:"@microsoft.graph.temporaryId"`
	ContentType  string `json:"contentType"`
	ContentBytes []byte `json:"contentBytes"`
}

// Reaction is an emoji reaction to a message.
type Reaction struct {
	ReactionType    string       `json:"reactionType"`
	CreatedDateTime time.Time    `json:"createdDateTime"`
	User            *IdentitySet `json:"user,omitempty"`
}
