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
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/dustin/go-humanize"

	"github.com/rusq/slack2teams/internal/network"
	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

const (
	// uploadFragUnit is the slice granularity imposed by the file store:
	// every non-final slice must be a multiple of it.
	uploadFragUnit = 320 << 10
	// sliceSize is the size of one upload slice (10 units).
	sliceSize = uploadFragUnit * 10
)

// Upload streams the attachment content into the channel file store through
// a resumable upload session, and records the resulting content reference
// on the attachment.  The attachment name is rewritten to the name the
// store assigned.
func (t *Transporter) Upload(ctx context.Context, teamID, channelID, channelName string, a *types.Attachment) error {
	var sess *teams.UploadSession
	if err := network.WithRetry(ctx, t.limiter, t.retries, func() error {
		var err error
		sess, err = t.cl.CreateUploadSession(ctx, teamID, channelID, uploadPath(channelName, a))
		return err
	}); err != nil {
		return fmt.Errorf("upload session: %w", err)
	}

	rc, err := t.getter.Get(ctx, a.URL)
	if err != nil {
		return err
	}
	defer rc.Close()

	item, err := t.uploadSlices(ctx, sess.UploadURL, rc, int64(a.Size))
	if err != nil {
		return err
	}
	a.ContentURL = item.WebURL
	a.ContentID = item.ContentID()
	if a.ContentID == "" {
		return fmt.Errorf("no content ID in the store response for %q", a.Name)
	}
	if item.Name != "" {
		a.Name = item.Name
	}
	t.lg.DebugContext(ctx, "uploaded", "name", a.Name, "size", humanize.Bytes(uint64(a.Size)))
	return nil
}

// uploadSlices sends the content slice by slice.  The store returns the
// drive item only on the slice that completes the upload.
func (t *Transporter) uploadSlices(ctx context.Context, uploadURL string, r io.Reader, total int64) (*teams.DriveItem, error) {
	var (
		item *teams.DriveItem
		off  int64
		buf  = make([]byte, sliceSize)
	)
	for off < total {
		n, err := io.ReadFull(r, buf)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("reading content at offset %d: %w", off, err)
		}
		if n == 0 {
			break
		}
		chunk := buf[:n]
		if err := network.WithRetry(ctx, t.limiter, t.retries, func() error {
			var err error
			item, err = t.cl.UploadRange(ctx, uploadURL, chunk, off, total)
			return err
		}); err != nil {
			return nil, fmt.Errorf("slice at offset %d: %w", off, err)
		}
		off += int64(n)
	}
	if item == nil {
		return nil, fmt.Errorf("upload ended at offset %d of %d without completing", off, total)
	}
	return item, nil
}

// uploadPath is the target path within the channel file store.  The
// timestamp prefix keeps same-named files from different messages apart.
func uploadPath(channelName string, a *types.Attachment) string {
	return path.Join(channelName, a.Created.Format("20060102150405")+"-"+a.Name)
}
