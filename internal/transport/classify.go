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

import "github.com/rusq/slack2teams/types"

// MaxInlineSize is the hosted content size ceiling.  Files of this size
// and above must go through the upload session path.
const MaxInlineSize = 4_100_000

// inlineMimeTypes are the raster types the target renders inline.
var inlineMimeTypes = map[string]bool{
	"image/gif":  true,
	"image/jpeg": true,
	"image/png":  true,
}

// IsInlineEligible reports whether the attachment qualifies for inline
// hosted content embedding: a raster image with a known positive size
// below the ceiling.  Zero-sized files are rejected outright: a zero
// size in the export usually means the file was deleted upstream.
func IsInlineEligible(a *types.Attachment) bool {
	return 0 < a.Size && a.Size < MaxInlineSize && inlineMimeTypes[a.MimeType]
}
