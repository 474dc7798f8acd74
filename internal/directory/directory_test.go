package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/slack2teams/types"
)

var (
	testAnn = &types.User{SourceID: "U01", DisplayName: "Ann Chovey", Email: "ann@example.com"}
	testBob = &types.User{SourceID: "U02", DisplayName: "Bob Marlin", Email: "bob@example.com"}
	testBot = &types.User{SourceID: "B01", DisplayName: "deploybot", IsBot: true}
)

func testDirectory() *Directory {
	return New(
		types.Users{testAnn, testBob, testBot},
		[]types.Channel{{SourceID: "C01", Name: "General", Folder: "general"}},
	)
}

func TestDirectory_FindUser(t *testing.T) {
	d := testDirectory()

	u, ok := d.FindUser("U01")
	require.True(t, ok)
	assert.Equal(t, "Ann Chovey", u.DisplayName)

	_, ok = d.FindUser("UNOSUCH")
	assert.False(t, ok)

	// well-known system sender resolves even though it is not in the table
	sb, ok := d.FindUser(SlackbotID)
	require.True(t, ok)
	assert.True(t, sb.IsBot)
	assert.Equal(t, "Slackbot", sb.DisplayName)
}

func TestDirectory_FindChannel(t *testing.T) {
	d := testDirectory()
	c, ok := d.FindChannel("C01")
	require.True(t, ok)
	assert.Equal(t, "General", c.Name)
	_, ok = d.FindChannel("C99")
	assert.False(t, ok)
}

func TestDirectory_ReplaceUsers(t *testing.T) {
	d := testDirectory()
	d.ReplaceUsers(types.Users{{SourceID: "U09", DisplayName: "Niner"}})
	_, ok := d.FindUser("U01")
	assert.False(t, ok, "old table must be fully discarded")
	u, ok := d.FindUser("U09")
	require.True(t, ok)
	assert.Equal(t, "Niner", u.DisplayName)
}

func TestScanUsers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"U01","profile":{"real_name_normalized":"Ann Chovey","email":"ann@example.com"}},
		{"id":"B01","is_bot":true,"profile":{"real_name_normalized":"deploybot","email":"bot@example.com"}}
	]`), 0o644))

	uu, err := ScanUsers(path)
	require.NoError(t, err)
	require.Len(t, uu, 2)
	assert.Equal(t, testAnn, uu[0])
	assert.True(t, uu[1].IsBot)
	assert.Empty(t, uu[1].Email, "bot users carry no email")
}

func TestScanUsers_missing(t *testing.T) {
	_, err := ScanUsers(filepath.Join(t.TempDir(), "users.json"))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	uu := types.Users{
		{SourceID: "U01", TargetID: "aad-0001", DisplayName: "Ann Chovey", Email: "ann@example.com"},
		{SourceID: "U02", DisplayName: "Bob Marlin", Email: "bob@example.com"},
		{SourceID: "B01", DisplayName: "deploybot", IsBot: true},
	}
	filename := filepath.Join(t.TempDir(), "identities.json")
	require.NoError(t, SaveUsers(filename, uu))

	got, err := LoadUsers(filename)
	require.NoError(t, err)
	assert.Equal(t, uu, got)
}

func TestSaveUsers_overwrites(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "identities.json")
	require.NoError(t, SaveUsers(filename, types.Users{testAnn, testBob}))
	require.NoError(t, SaveUsers(filename, types.Users{testBot}))
	got, err := LoadUsers(filename)
	require.NoError(t, err)
	assert.Equal(t, types.Users{testBot}, got)
}
