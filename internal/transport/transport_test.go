package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/rusq/slack2teams/internal/mocks/mock_teams"
	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

// fakeGetter serves canned content by URL.
type fakeGetter map[string][]byte

func (g fakeGetter) Get(_ context.Context, url string) (io.ReadCloser, error) {
	b, ok := g[url]
	if !ok {
		return nil, errors.New("no such file")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func testTransporter(cl teams.Client, g Getter) *Transporter {
	return New(cl, WithGetter(g), WithLimiter(rate.NewLimiter(rate.Inf, 1)))
}

func TestIsInlineEligible(t *testing.T) {
	tests := []struct {
		name string
		a    types.Attachment
		want bool
	}{
		{"small png", types.Attachment{MimeType: "image/png", Size: 204800}, true},
		{"small gif", types.Attachment{MimeType: "image/gif", Size: 1}, true},
		{"jpeg at limit", types.Attachment{MimeType: "image/jpeg", Size: MaxInlineSize}, false},
		{"jpeg under limit", types.Attachment{MimeType: "image/jpeg", Size: MaxInlineSize - 1}, true},
		{"zero size", types.Attachment{MimeType: "image/png", Size: 0}, false},
		{"negative size", types.Attachment{MimeType: "image/png", Size: -1}, false},
		{"archive", types.Attachment{MimeType: "application/zip", Size: 1024}, false},
		{"no mime type", types.Attachment{Size: 1024}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInlineEligible(&tt.a))
		})
	}
}

func TestInline(t *testing.T) {
	content := []byte("\x89PNG fake image data")
	g := fakeGetter{"https://files.example.com/a.png": content}
	tr := testTransporter(nil, g)

	a := &types.Attachment{
		URL:      "https://files.example.com/a.png",
		Name:     "a.png",
		MimeType: "image/png",
		Size:     len(content),
	}
	hc, err := tr.Inline(t.Context(), a)
	require.NoError(t, err)
	assert.Equal(t, content, hc.ContentBytes)
	assert.Equal(t, "image/png", hc.ContentType)
	assert.NotEmpty(t, hc.TemporaryID)
	assert.Equal(t, hc.TemporaryID, a.ContentID, "attachment must reference the hosted content")
}

func TestInline_downloadError(t *testing.T) {
	tr := testTransporter(nil, fakeGetter{})
	a := &types.Attachment{URL: "https://files.example.com/gone.png"}
	_, err := tr.Inline(t.Context(), a)
	assert.Error(t, err)
	assert.False(t, a.IsResolved())
}

func TestUpload(t *testing.T) {
	// content spans two slices: one full and a short tail.
	content := bytes.Repeat([]byte{0x42}, sliceSize+10)

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	mcl.EXPECT().
		CreateUploadSession(gomock.Any(), "TEAM", "CHAN", "random/20200101123000-logs.zip").
		Return(&teams.UploadSession{UploadURL: "https://up.example.com/s1"}, nil)

	var offsets []int64
	gomock.InOrder(
		mcl.EXPECT().
			UploadRange(gomock.Any(), "https://up.example.com/s1", gomock.Len(sliceSize), int64(0), int64(len(content))).
			DoAndReturn(func(_ context.Context, _ string, _ []byte, off, _ int64) (*teams.DriveItem, error) {
				offsets = append(offsets, off)
				return nil, nil
			}),
		mcl.EXPECT().
			UploadRange(gomock.Any(), "https://up.example.com/s1", gomock.Len(10), int64(sliceSize), int64(len(content))).
			DoAndReturn(func(_ context.Context, _ string, _ []byte, off, _ int64) (*teams.DriveItem, error) {
				offsets = append(offsets, off)
				return &teams.DriveItem{
					Name:   "20200101123000-logs.zip",
					ETag:   `"{DEAD-BEEF},2"`,
					WebURL: "https://store.example.com/logs.zip",
				}, nil
			}),
	)

	g := fakeGetter{"https://files.example.com/logs.zip": content}
	tr := testTransporter(mcl, g)

	a := &types.Attachment{
		URL:      "https://files.example.com/logs.zip",
		Name:     "logs.zip",
		MimeType: "application/zip",
		Size:     len(content),
		Created:  time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC),
	}
	err := tr.Upload(t.Context(), "TEAM", "CHAN", "random", a)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, sliceSize}, offsets)
	assert.Equal(t, "https://store.example.com/logs.zip", a.ContentURL)
	assert.Equal(t, "DEAD-BEEF", a.ContentID)
	assert.Equal(t, "20200101123000-logs.zip", a.Name)
}

func TestUpload_incomplete(t *testing.T) {
	content := []byte("short")

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	mcl.EXPECT().
		CreateUploadSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&teams.UploadSession{UploadURL: "https://up.example.com/s2"}, nil)
	// store never returns the drive item
	mcl.EXPECT().
		UploadRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	g := fakeGetter{"https://files.example.com/x.bin": content}
	tr := testTransporter(mcl, g)

	a := &types.Attachment{URL: "https://files.example.com/x.bin", Name: "x.bin", Size: len(content)}
	err := tr.Upload(t.Context(), "TEAM", "CHAN", "random", a)
	assert.ErrorContains(t, err, "without completing")
	assert.False(t, a.IsResolved())
}

func TestProcess(t *testing.T) {
	img := []byte("\x89PNG image")

	ctrl := gomock.NewController(t)
	mcl := mock_teams.NewMockClient(ctrl)
	// the zip attachment fails at the session stage and gets skipped.
	mcl.EXPECT().
		CreateUploadSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("quota exceeded")).
		Times(1)

	g := fakeGetter{"https://files.example.com/shot.png": img}
	tr := testTransporter(mcl, g)

	aa := []*types.Attachment{
		{URL: "https://files.example.com/shot.png", Name: "shot.png", MimeType: "image/png", Size: len(img)},
		{URL: "https://files.example.com/big.zip", Name: "big.zip", MimeType: "application/zip", Size: 10485760},
	}
	hosted := tr.Process(t.Context(), "TEAM", "CHAN", "random", aa)
	require.Len(t, hosted, 1)
	assert.Equal(t, img, hosted[0].ContentBytes)
	assert.True(t, aa[0].IsResolved())
	assert.False(t, aa[1].IsResolved(), "failed upload leaves the attachment unresolved")
}
