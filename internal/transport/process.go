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

	"github.com/rusq/slack2teams/teams"
	"github.com/rusq/slack2teams/types"
)

// Process resolves all attachments of one message.  Inline-eligible ones
// are returned as hosted contents; the rest are uploaded into the channel
// file store, enriching the attachment in place.  A failed attachment is
// logged with its source URL and left unresolved, the rest of the batch
// proceeds.
func (t *Transporter) Process(ctx context.Context, teamID, channelID, channelName string, aa []*types.Attachment) []teams.HostedContent {
	var hosted []teams.HostedContent
	for _, a := range aa {
		if IsInlineEligible(a) {
			hc, err := t.Inline(ctx, a)
			if err != nil {
				t.lg.WarnContext(ctx, "unable to embed attachment, skipping", "url", a.URL, "error", err)
				continue
			}
			hosted = append(hosted, *hc)
			continue
		}
		if err := t.Upload(ctx, teamID, channelID, channelName, a); err != nil {
			t.lg.WarnContext(ctx, "unable to upload attachment, skipping", "url", a.URL, "error", err)
		}
	}
	return hosted
}
