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

// in this file: resumable upload session types

import (
	"strings"
	"time"
)

// UploadSession is a resumable upload session in the channel file store.
type UploadSession struct {
	UploadURL          string    `json:"uploadUrl"`
	ExpirationDateTime time.Time `json:"expirationDateTime"`
}

// DriveItem is the file store entry created by a completed upload.
type DriveItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	ETag   string `json:"eTag"`
	WebURL string `json:"webUrl"`
}

// ContentID returns the opaque content identifier of the item, which the
// service smuggles inside the eTag metadata: `"{GUID},N"`.  It returns an
// empty string if the eTag does not carry one.
func (d *DriveItem) ContentID() string {
	i := strings.IndexByte(d.ETag, '{')
	if i == -1 {
		return ""
	}
	j := strings.IndexByte(d.ETag[i:], '}')
	if j == -1 {
		return ""
	}
	return d.ETag[i+1 : i+j]
}
