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

// in this file: the rich text block walker.  Each node is dispatched by
// its type tag through the handler tables below; unknown tags are logged
// and skipped, so that new slack node kinds degrade to omission instead of
// breaking the migration.

import (
	"fmt"
	"html"
	"strings"

	"github.com/rusq/slack"

	"github.com/rusq/slack2teams/types"
)

// walker accumulates the formatting state of a single message.  Threading
// it explicitly keeps the recursive handlers free of shared mutable state.
type walker struct {
	t        *Transformer
	msgTS    string
	buf      strings.Builder
	mentions []types.Mention
}

// rteHandlers is assigned in init: rteList dispatches its items back
// through element, so a composite literal would be an initialisation
// cycle.
var rteHandlers map[slack.RichTextElementType]func(*walker, slack.RichTextElement)

func init() {
	rteHandlers = map[slack.RichTextElementType]func(*walker, slack.RichTextElement){
		slack.RTESection: (*walker).rteSection,
		slack.RTEList:    (*walker).rteList,
	}
}

var rtseHandlers = map[slack.RichTextSectionElementType]func(*walker, slack.RichTextSectionElement){
	slack.RTSEText:      (*walker).rtseText,
	slack.RTSELink:      (*walker).rtseLink,
	slack.RTSEUser:      (*walker).rtseUser,
	slack.RTSEUserGroup: (*walker).rtseUserGroup,
	slack.RTSEChannel:   (*walker).rtseChannel,
	slack.RTSEBroadcast: (*walker).rtseBroadcast,
	slack.RTSEEmoji:     (*walker).rtseEmoji,
	slack.RTSEColor:     (*walker).rtseColor,
}

// formatBlocks walks the message block structure and returns the formatted
// body together with the mentions collected along the way.
func (t *Transformer) formatBlocks(m *types.Message) (string, []types.Mention) {
	w := walker{t: t, msgTS: m.Timestamp}
	for _, b := range m.Blocks.BlockSet {
		rtb, ok := b.(*slack.RichTextBlock)
		if !ok {
			t.lg.Debug("skipping block", "block_type", b.BlockType(), "ts", w.msgTS)
			continue
		}
		for _, el := range rtb.Elements {
			w.element(el)
		}
	}
	return w.buf.String(), w.mentions
}

func (w *walker) element(el slack.RichTextElement) {
	fn, ok := rteHandlers[el.RichTextElementType()]
	if !ok {
		w.t.lg.Debug("unhandled rich text element", "type", el.RichTextElementType(), "ts", w.msgTS)
		return
	}
	fn(w, el)
}

func (w *walker) section(elements []slack.RichTextSectionElement) {
	for _, el := range elements {
		fn, ok := rtseHandlers[el.RichTextSectionElementType()]
		if !ok {
			w.t.lg.Debug("unhandled section element", "type", el.RichTextSectionElementType(), "ts", w.msgTS)
			continue
		}
		fn(w, el)
	}
}

func (w *walker) rteSection(ie slack.RichTextElement) {
	e, ok := ie.(*slack.RichTextSection)
	if !ok {
		return
	}
	w.section(e.Elements)
}

// rteList renders every list item as a flat bullet line.  The target
// markup has no reliable nested list support in migration mode.
func (w *walker) rteList(ie slack.RichTextElement) {
	e, ok := ie.(*slack.RichTextList)
	if !ok {
		return
	}
	for _, el := range e.Elements {
		w.buf.WriteString("<br>&bull; ")
		w.element(el)
	}
}

func (w *walker) rtseText(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionTextElement)
	if !ok {
		return
	}
	w.buf.WriteString(applyStyle(escape(e.Text), e.Style))
}

// applyStyle wraps s in the markup of the first set style flag.  Styles are
// deliberately not combined: slack rarely nests them and the original
// messages read fine with a single emphasis.
func applyStyle(s string, style *slack.RichTextSectionTextStyle) string {
	if style == nil {
		return s
	}
	switch {
	case style.Bold:
		return fmt.Sprintf("<b>%s</b>", s)
	case style.Code:
		return fmt.Sprintf("<code>%s</code>", s)
	case style.Italic:
		return fmt.Sprintf("<i>%s</i>", s)
	}
	return s
}

func (w *walker) rtseLink(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionLinkElement)
	if !ok {
		return
	}
	text := e.Text
	if text == "" {
		text = html.EscapeString(e.URL)
	} else {
		text = escape(text)
	}
	fmt.Fprintf(&w.buf, "<a href=\"%s\">%s</a>", html.EscapeString(e.URL), text)
}

// rtseUser emits a mention marker for users with a resolved target
// identity, registering the mention; everybody else becomes plain
// bracketed text.
func (w *walker) rtseUser(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionUserElement)
	if !ok {
		return
	}
	u, found := w.t.dir.FindUser(e.UserID)
	if !found {
		w.t.lg.Debug("user not found", "user_id", e.UserID, "ts", w.msgTS)
		fmt.Fprintf(&w.buf, "[%s]", e.UserID)
		return
	}
	if !u.IsResolved() {
		fmt.Fprintf(&w.buf, "[%s]", escape(u.DisplayName))
		return
	}
	id := len(w.mentions)
	fmt.Fprintf(&w.buf, "<at id=\"%d\">%s</at>", id, escape(u.DisplayName))
	w.mentions = append(w.mentions, types.Mention{ID: id, User: u})
}

// rtseUserGroup has no structural equivalent in the target, it is
// represented textually only.
func (w *walker) rtseUserGroup(slack.RichTextSectionElement) {
	w.buf.WriteString("[user group]")
}

func (w *walker) rtseChannel(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionChannelElement)
	if !ok {
		return
	}
	name := "unknown channel"
	if c, found := w.t.dir.FindChannel(e.ChannelID); found {
		name = c.Name
	} else {
		w.t.lg.Debug("channel not found", "channel_id", e.ChannelID, "ts", w.msgTS)
	}
	fmt.Fprintf(&w.buf, "[%s]", escape(name))
}

// rtseBroadcast renders @here/@channel/@everyone textually, there is no
// broadcast mention in the target.
func (w *walker) rtseBroadcast(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionBroadcastElement)
	if !ok {
		return
	}
	fmt.Fprintf(&w.buf, "[@%s]", e.Range)
}

// rtseEmoji emits the escaped unicode code points of the emoji.  Nodes
// without code points carry nothing renderable and are dropped.
func (w *walker) rtseEmoji(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionEmojiElement)
	if !ok {
		return
	}
	if e.Unicode == "" {
		return
	}
	for cp := range strings.SplitSeq(e.Unicode, "-") {
		fmt.Fprintf(&w.buf, "&#x%s;", strings.ToUpper(cp))
	}
}

func (w *walker) rtseColor(ie slack.RichTextSectionElement) {
	e, ok := ie.(*slack.RichTextSectionColorElement)
	if !ok {
		return
	}
	fmt.Fprintf(&w.buf, "[%s]", e.Value)
}
