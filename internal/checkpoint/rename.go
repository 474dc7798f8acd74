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
package checkpoint

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DoneSuffix is appended to the name of a completed message file.
const DoneSuffix = ".done"

// Rename is a tracker that marks files by renaming them within the archive
// directory.  A file with the done suffix is skipped by the archive
// listing, so the journal doubles as the work queue filter.
type Rename struct {
	dir string
}

// NewRename returns a rename tracker rooted at the archive directory.
func NewRename(dir string) *Rename {
	return &Rename{dir: dir}
}

func (r *Rename) IsDone(_ context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(r.dir, name+DoneSuffix))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (r *Rename) MarkDone(_ context.Context, name string) error {
	src := filepath.Join(r.dir, name)
	return os.Rename(src, src+DoneSuffix)
}

func (r *Rename) Close() error { return nil }
