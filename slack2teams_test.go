package slack2teams

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/rusq/slack2teams/internal/archive"
	"github.com/rusq/slack2teams/internal/directory"
	"github.com/rusq/slack2teams/internal/fixtures"
	"github.com/rusq/slack2teams/internal/mocks/mock_teams"
	"github.com/rusq/slack2teams/internal/transport"
	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

const (
	testChannelsJSON = `[{"id":"C1","name":"random","created":1577664000,"purpose":{"value":"Anything goes"}}]`
	testMessagesJSON = `[
		{"type":"message","user":"U1","text":"hello","ts":"1577695000.000100"},
		{"type":"message","user":"U1","text":"root","ts":"1577695002.000300","thread_ts":"1577695002.000300"},
		{"type":"message","user":"U1","text":"reply","ts":"1577695003.000400","thread_ts":"1577695002.000300"}
	]`
)

// makeExport lays out a minimal one-channel export in a temporary
// directory.
func makeExport(t *testing.T) *archive.Export {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, archive.FChannels), []byte(testChannelsJSON), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "random"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "random", "2020-01-01.json"), []byte(testMessagesJSON), 0o644))
	src, err := archive.Open(dir)
	require.NoError(t, err)
	return src
}

func makeDirectory(t *testing.T, src *archive.Export) *directory.Directory {
	t.Helper()
	cc, err := src.Channels()
	require.NoError(t, err)
	uu := types.Users{
		{SourceID: "U1", TargetID: "TT1", DisplayName: "Ann", Email: "ann@example.com"},
	}
	return directory.New(uu, cc)
}

func testMigrator(t *testing.T, cl teams.Client, src *archive.Export, opts ...Option) *Migrator {
	t.Helper()
	opts = append([]Option{
		WithLimiter(rate.NewLimiter(rate.Inf, 1)),
		WithSettleDuration(0),
		WithOwner("OWNER"),
	}, opts...)
	m, err := New(cl, src, makeDirectory(t, src), "Migrated Workspace", opts...)
	require.NoError(t, err)
	return m
}

func TestMigrate(t *testing.T) {
	src := makeExport(t)

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)

	mcl.EXPECT().FindTeam(gomock.Any(), "Migrated Workspace").Return("", teams.ErrNotFound)
	mcl.EXPECT().
		CreateTeam(gomock.Any(), "Migrated Workspace", "", time.Unix(1577664000, 0).UTC()).
		Return("T1", nil)
	// once before the channel loop, once during finalisation.
	gomock.InOrder(
		mcl.EXPECT().ListChannels(gomock.Any(), "T1").Return(nil, nil),
		mcl.EXPECT().ListChannels(gomock.Any(), "T1").
			Return([]teams.Channel{{ID: "CH1", DisplayName: "Random"}}, nil),
	)
	mcl.EXPECT().
		CreateChannel(gomock.Any(), "T1", teams.Channel{DisplayName: "Random", Description: "Anything goes"}, time.Unix(1577664000, 0).UTC()).
		Return("CH1", nil)

	var posted []*teams.ChatMessage
	mcl.EXPECT().
		PostMessage(gomock.Any(), "T1", "CH1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, cm *teams.ChatMessage) (string, error) {
			posted = append(posted, cm)
			return cm.ID, nil
		}).
		Times(2)
	var replyRoot string
	mcl.EXPECT().
		PostReply(gomock.Any(), "T1", "CH1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, rootID string, cm *teams.ChatMessage) (string, error) {
			replyRoot = rootID
			return cm.ID, nil
		})

	mcl.EXPECT().CompleteChannelMigration(gomock.Any(), "T1", "CH1").Return(nil)
	mcl.EXPECT().CompleteTeamMigration(gomock.Any(), "T1").Return(nil)
	mcl.EXPECT().AddTeamOwner(gomock.Any(), "T1", "OWNER").Return(nil)

	m := testMigrator(t, mcl, src)
	require.NoError(t, m.Migrate(t.Context()))

	require.Len(t, posted, 2)
	assert.Equal(t, "1577695000000", posted[0].ID)
	assert.Equal(t, "hello", posted[0].Body.Content)
	assert.Equal(t, "Ann", posted[0].From.User.DisplayName)
	assert.Equal(t, "TT1", posted[0].From.User.ID)
	assert.Equal(t, "root", posted[1].Body.Content, "thread roots post as top-level messages")
	assert.Equal(t, "1577695002000", replyRoot, "reply addresses the thread root by its derived key")

	// the completed file is renamed, a rerun would find nothing to do.
	_, err := os.Stat(src.Abs("random/2020-01-01.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(src.Abs("random/2020-01-01.json.done"))
	assert.NoError(t, err)
}

func TestMigrate_resume(t *testing.T) {
	src := makeExport(t)
	// everything is already done: rerun must not post anything.
	require.NoError(t, os.Rename(
		src.Abs("random/2020-01-01.json"),
		src.Abs("random/2020-01-01.json.done"),
	))

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	mcl.EXPECT().FindTeam(gomock.Any(), "Migrated Workspace").Return("T1", nil)
	// remote name differs in case only: matching is case-insensitive, no
	// create call is expected.
	gomock.InOrder(
		mcl.EXPECT().ListChannels(gomock.Any(), "T1").
			Return([]teams.Channel{{ID: "CH1", DisplayName: "RANDOM"}}, nil),
		mcl.EXPECT().ListChannels(gomock.Any(), "T1").
			Return([]teams.Channel{{ID: "CH1", DisplayName: "RANDOM"}}, nil),
	)
	mcl.EXPECT().CompleteChannelMigration(gomock.Any(), "T1", "CH1").Return(nil)
	mcl.EXPECT().CompleteTeamMigration(gomock.Any(), "T1").Return(nil)
	mcl.EXPECT().AddTeamOwner(gomock.Any(), "T1", "OWNER").Return(nil)

	m := testMigrator(t, mcl, src)
	require.NoError(t, m.Migrate(t.Context()))
}

func TestMigrate_messageFailureIsSkipped(t *testing.T) {
	src := makeExport(t)

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	mcl.EXPECT().FindTeam(gomock.Any(), gomock.Any()).Return("T1", nil)
	mcl.EXPECT().ListChannels(gomock.Any(), "T1").Return(nil, nil).Times(2)
	mcl.EXPECT().CreateChannel(gomock.Any(), "T1", gomock.Any(), gomock.Any()).Return("CH1", nil)
	// the first post fails permanently, the rest of the file proceeds.
	gomock.InOrder(
		mcl.EXPECT().PostMessage(gomock.Any(), "T1", "CH1", gomock.Any()).
			Return("", teams.StatusError{Code: 400, Msg: "bad request"}),
		mcl.EXPECT().PostMessage(gomock.Any(), "T1", "CH1", gomock.Any()).
			Return("1577695000000", nil),
	)
	mcl.EXPECT().PostReply(gomock.Any(), "T1", "CH1", gomock.Any(), gomock.Any()).
		Return("1577695001000", nil)
	mcl.EXPECT().CompleteTeamMigration(gomock.Any(), "T1").Return(nil)
	mcl.EXPECT().AddTeamOwner(gomock.Any(), "T1", "OWNER").Return(nil)

	m := testMigrator(t, mcl, src)
	require.NoError(t, m.Migrate(t.Context()))

	// the file is still journaled: submission is best effort.
	_, err := os.Stat(src.Abs("random/2020-01-01.json.done"))
	assert.NoError(t, err)
}

func TestFinish_channelFailureNonFatal(t *testing.T) {
	src := makeExport(t)

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	mcl.EXPECT().ListChannels(gomock.Any(), "T1").
		Return([]teams.Channel{{ID: "CH1", DisplayName: "Random"}}, nil)
	mcl.EXPECT().CompleteChannelMigration(gomock.Any(), "T1", "CH1").
		Return(teams.StatusError{Code: 400, Msg: "not in migration mode"})
	mcl.EXPECT().CompleteTeamMigration(gomock.Any(), "T1").Return(nil)
	mcl.EXPECT().AddTeamOwner(gomock.Any(), "T1", "OWNER").Return(nil)

	m := testMigrator(t, mcl, src)
	assert.NoError(t, m.Finish(t.Context(), "T1"))
}

// cannedGetter serves fixed content for any URL it knows about.
type cannedGetter map[string][]byte

func (g cannedGetter) Get(_ context.Context, url string) (io.ReadCloser, error) {
	b, ok := g[url]
	if !ok {
		return nil, errors.New("no such file")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func TestAssemble_attachments(t *testing.T) {
	src := makeExport(t)
	img := []byte("\x89PNG image bytes")

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	// the oversized archive fails to upload and is dropped from the message.
	mcl.EXPECT().
		CreateUploadSession(gomock.Any(), "T1", "CH1", gomock.Any()).
		Return(nil, teams.StatusError{Code: 403, Msg: "quota exceeded"})

	tp := transport.New(mcl,
		transport.WithGetter(cannedGetter{"https://files.example.com/F1/screenshot.png": img}),
		transport.WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)
	m := testMigrator(t, mcl, src, WithTransporter(tp))

	msg := fixtures.LoadPtr[types.Message](fixtures.AttachedMessageJSON)
	ch := types.Channel{SourceID: "C1", Name: "Random"}
	cm := m.assemble(t.Context(), "T1", "CH1", ch, msg)
	require.NotNil(t, cm)

	require.Len(t, cm.HostedContents, 1)
	assert.Equal(t, img, cm.HostedContents[0].ContentBytes)
	assert.Contains(t, cm.Body.Content, "see attached")
	assert.Contains(t, cm.Body.Content,
		`<img src="../hostedContents/`+cm.HostedContents[0].TemporaryID+`/$value">`)
	assert.Empty(t, cm.Attachments, "failed upload yields no reference")
}

func TestNew_requiresTeamName(t *testing.T) {
	src := makeExport(t)
	_, err := New(nil, src, makeDirectory(t, src), "")
	assert.Error(t, err)
}
