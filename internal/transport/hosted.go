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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

// Inline downloads the attachment content and wraps it into a hosted
// content entry with a locally generated temporary ID.  The attachment's
// content ID is set to that temporary ID so that the message body can
// reference it.
func (t *Transporter) Inline(ctx context.Context, a *types.Attachment) (*teams.HostedContent, error) {
	rc, err := t.getter.Get(ctx, a.URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", a.URL, err)
	}
	hc := &teams.HostedContent{
		TemporaryID:  uuid.NewString(),
		ContentType:  a.MimeType,
		ContentBytes: data,
	}
	a.ContentID = hc.TemporaryID
	t.lg.DebugContext(ctx, "embedded", "name", a.Name, "size", humanize.Bytes(uint64(len(data))))
	return hc, nil
}
