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
package fixtures

// SimpleMessageJSON is a plain message with a user mention in a rich text
// section.
const SimpleMessageJSON = `{
	"ts": "1577694990.000400",
	"user": "U1",
	"text": "hi Ann",
	"blocks": [
		{
			"type": "rich_text",
			"block_id": "b1",
			"elements": [
				{
					"type": "rich_text_section",
					"elements": [
						{"type": "text", "text": "hi"},
						{"type": "user", "user_id": "U1"}
					]
				}
			]
		}
	]
}`

// StyledMessageJSON exercises text styles, links, emoji, channel and
// broadcast nodes.
const StyledMessageJSON = `{
	"ts": "1577695000.000100",
	"user": "U2",
	"blocks": [
		{
			"type": "rich_text",
			"block_id": "b2",
			"elements": [
				{
					"type": "rich_text_section",
					"elements": [
						{"type": "text", "text": "deploy", "style": {"bold": true}},
						{"type": "text", "text": " & "},
						{"type": "text", "text": "rollback", "style": {"code": true}},
						{"type": "link", "url": "https://example.com/run"},
						{"type": "link", "url": "https://example.com/doc", "text": "the <doc>"},
						{"type": "emoji", "name": "smile", "unicode": "1f604"},
						{"type": "emoji", "name": "broken"},
						{"type": "channel", "channel_id": "C1"},
						{"type": "channel", "channel_id": "C404"},
						{"type": "broadcast", "range": "here"},
						{"type": "usergroup", "usergroup_id": "S1"},
						{"type": "color", "value": "#AABBCC"}
					]
				}
			]
		}
	]
}`

// ListMessageJSON is a rich text list of two items.
const ListMessageJSON = `{
	"ts": "1577695010.000000",
	"user": "U1",
	"blocks": [
		{
			"type": "rich_text",
			"block_id": "b3",
			"elements": [
				{
					"type": "rich_text_list",
					"style": "bullet",
					"elements": [
						{"type": "rich_text_section", "elements": [{"type": "text", "text": "one"}]},
						{"type": "rich_text_section", "elements": [{"type": "text", "text": "two"}]}
					]
				}
			]
		}
	]
}`

// ReactedMessageJSON carries reactions from a resolved and an unresolved
// user.
const ReactedMessageJSON = `{
	"ts": "1577695020.000000",
	"user": "U1",
	"text": "shipped",
	"reactions": [
		{"name": "+1", "count": 2, "users": ["U1", "U2"]},
		{"name": "zzz_unknown", "count": 1, "users": ["U1"]}
	]
}`

// BotMessageJSON is an automated message with the bot_message subtype.
const BotMessageJSON = `{
	"ts": "1577695030.000000",
	"subtype": "bot_message",
	"bot_id": "B1",
	"username": "deploybot",
	"text": "build 1234 passed"
}`

// ChannelJoinJSON is the channel join system event.
const ChannelJoinJSON = `{
	"ts": "1577695040.000000",
	"subtype": "channel_join",
	"user": "U1",
	"text": "<@U1> has joined the channel"
}`

// AttachedMessageJSON is a message with two files: a small raster image
// and a large archive.
const AttachedMessageJSON = `{
	"ts": "1577695050.000000",
	"user": "U1",
	"text": "see attached",
	"files": [
		{
			"id": "F1",
			"name": "screenshot.png",
			"mimetype": "image/png",
			"size": 204800,
			"created": 1577695049,
			"url_private_download": "https://files.example.com/F1/screenshot.png"
		},
		{
			"id": "F2",
			"name": "logs.zip",
			"mimetype": "application/zip",
			"size": 10485760,
			"created": 1577695049,
			"url_private_download": "https://files.example.com/F2/logs.zip"
		}
	]
}`
