package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/slack2teams/internal/directory"
	"github.com/rusq/slack2teams/internal/fixtures"
	"github.com/rusq/slack2teams/types"
)

var (
	tfAnn = &types.User{SourceID: "U1", TargetID: "T1", DisplayName: "Ann"}
	tfBob = &types.User{SourceID: "U2", DisplayName: "Bob"} // unresolved
)

func testTransformer() *Transformer {
	d := directory.New(
		types.Users{tfAnn, tfBob},
		[]types.Channel{{SourceID: "C1", Name: "General"}},
	)
	return New(d)
}

func TestFormat_mention(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.SimpleMessageJSON)

	res := tf.Format(m)
	assert.Equal(t, `hi<at id="0">Ann</at>`, res.Text)
	require.Len(t, res.Mentions, 1)
	assert.Equal(t, 0, res.Mentions[0].ID)
	assert.Same(t, tfAnn, res.Mentions[0].User)
}

func TestFormat_styledSection(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.StyledMessageJSON)

	res := tf.Format(m)
	want := `<b>deploy</b> &amp; <code>rollback</code>` +
		`<a href="https://example.com/run">https://example.com/run</a>` +
		`<a href="https://example.com/doc">the &lt;doc&gt;</a>` +
		`&#x1F604;` + // the code-less emoji node is dropped
		`[General][unknown channel][@here][user group][#AABBCC]`
	assert.Equal(t, want, res.Text)
	assert.Empty(t, res.Mentions, "unresolved sender produces no mentions")
}

func TestFormat_list(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.ListMessageJSON)

	res := tf.Format(m)
	assert.Equal(t, "<br>&bull; one<br>&bull; two", res.Text)
}

func TestFormat_listWithMention(t *testing.T) {
	// list items route back through the element dispatch table; a mention
	// inside an item must render and register like a top-level one.
	tf := testTransformer()
	var m types.Message
	m.Timestamp = "1577695070.000000"
	m.Blocks = fixtures.Load[types.Message](`{"blocks":[{"type":"rich_text","block_id":"b9","elements":[
		{"type":"rich_text_list","style":"bullet","elements":[
			{"type":"rich_text_section","elements":[{"type":"text","text":"ping "},{"type":"user","user_id":"U1"}]}
		]}
	]}]}`).Blocks

	res := tf.Format(&m)
	assert.Equal(t, `<br>&bull; ping <at id="0">Ann</at>`, res.Text)
	require.Len(t, res.Mentions, 1)
}

func TestFormat_linkEscaping(t *testing.T) {
	tf := testTransformer()
	var m types.Message
	m.Timestamp = "1577695080.000000"
	m.Blocks = fixtures.Load[types.Message](`{"blocks":[{"type":"rich_text","block_id":"b10","elements":[
		{"type":"rich_text_section","elements":[
			{"type":"link","url":"https://example.com/?a=1&b=2"},
			{"type":"link","url":"https://example.com/?x=\"y\"","text":"quoted"}
		]}
	]}]}`).Blocks

	res := tf.Format(&m)
	want := `<a href="https://example.com/?a=1&amp;b=2">https://example.com/?a=1&amp;b=2</a>` +
		`<a href="https://example.com/?x=&#34;y&#34;">quoted</a>`
	assert.Equal(t, want, res.Text)
}

func TestFormat_plainFallback(t *testing.T) {
	tf := testTransformer()
	m := &types.Message{}
	m.Timestamp = "1577695020.000000"
	m.Text = "a < b & c\nnext"

	res := tf.Format(m)
	assert.Equal(t, "a &lt; b &amp; c<br>next", res.Text)
}

func TestFormat_reactions(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.ReactedMessageJSON)

	res := tf.Format(m)
	// U2 is unresolved: only Ann's reactions survive.
	require.Len(t, res.Reactions, 2)
	thumbsUp, ok := MapEmoji("+1")
	require.True(t, ok)
	assert.Equal(t, thumbsUp, res.Reactions[0].Emoji)
	assert.Same(t, tfAnn, res.Reactions[0].User)
	assert.Equal(t, "zzz_unknown", res.Reactions[1].Emoji, "unmapped name passes through verbatim")
	assert.False(t, res.Reactions[0].Time.IsZero())
}

func TestFormat_botMessage(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.BotMessageJSON)

	res := tf.Format(m)
	assert.Equal(t, "<b>deploybot</b><br>build 1234 passed", res.Text)
}

func TestFormat_channelJoin(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.ChannelJoinJSON)

	res := tf.Format(m)
	assert.Equal(t, "<i>Ann joined the channel</i>", res.Text)
}

func TestFormat_unresolvedMention(t *testing.T) {
	tf := testTransformer()
	m := fixtures.LoadPtr[types.Message](fixtures.SimpleMessageJSON)
	// repoint the mention at the unresolved user
	m.Blocks = fixtures.Load[types.Message](`{"blocks":[{"type":"rich_text","block_id":"b1","elements":[{"type":"rich_text_section","elements":[{"type":"user","user_id":"U2"}]}]}]}`).Blocks

	res := tf.Format(m)
	assert.Equal(t, "[Bob]", res.Text)
	assert.Empty(t, res.Mentions)
}

func TestFormat_unknownUserMention(t *testing.T) {
	tf := testTransformer()
	var m types.Message
	m.Timestamp = "1577695060.000000"
	m.Blocks = fixtures.Load[types.Message](`{"blocks":[{"type":"rich_text","block_id":"b1","elements":[{"type":"rich_text_section","elements":[{"type":"user","user_id":"U404"}]}]}]}`).Blocks

	res := tf.Format(&m)
	assert.Equal(t, "[U404]", res.Text)
	assert.Empty(t, res.Mentions)
}
