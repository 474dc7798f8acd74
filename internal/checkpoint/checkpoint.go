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

// Package checkpoint tracks which message files have been fully submitted,
// making interrupted runs resumable at file granularity.  Two backends are
// provided: one that renames completed files in place within the archive
// directory, and one that records them in a sqlite database, leaving the
// archive untouched.
package checkpoint

import "context"

// Tracker is the file completion journal.  Names are archive-relative
// message file paths.
type Tracker interface {
	// IsDone reports whether the file has been fully processed.
	IsDone(ctx context.Context, name string) (bool, error)
	// MarkDone records the file as fully processed.  The write must be
	// atomic: a crash mid-call leaves the file either marked or untouched,
	// never half-marked.
	MarkDone(ctx context.Context, name string) error
	// Close releases the backend resources.
	Close() error
}
