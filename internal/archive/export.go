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
package archive

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/rusq/slack"

	"github.com/rusq/slack2teams/types"
)

const (
	// FChannels and FUsers are the listing files of the export.
	FChannels = "channels.json"
	FUsers    = "users.json"
)

// Export is a slack export unpacked into a directory.
type Export struct {
	dir string
	lg  *slog.Logger
}

// Open opens the export directory.  It fails if the directory does not
// contain a channel listing.
func Open(dir string) (*Export, error) {
	if _, err := os.Stat(filepath.Join(dir, FChannels)); err != nil {
		return nil, fmt.Errorf("not an export directory %q: %w", dir, err)
	}
	return &Export{dir: dir, lg: slog.Default()}, nil
}

// Name returns the export directory path.
func (e *Export) Name() string {
	return e.dir
}

// UsersPath returns the path of the user listing file.
func (e *Export) UsersPath() string {
	return filepath.Join(e.dir, FUsers)
}

// Channels reads the channel listing.
func (e *Export) Channels() ([]types.Channel, error) {
	var cc []types.Channel
	for sc, err := range JSON[slack.Channel](filepath.Join(e.dir, FChannels)) {
		if err != nil {
			return nil, err
		}
		cc = append(cc, types.NewChannel(sc))
	}
	return cc, nil
}

// MessageFiles returns the sorted relative paths of the channel's message
// files for which keep returns true.  The argument of keep is the base name
// of the file.
func (e *Export) MessageFiles(folder string, keep func(name string) bool) ([]string, error) {
	des, err := os.ReadDir(filepath.Join(e.dir, folder))
	if err != nil {
		return nil, fmt.Errorf("channel directory %q: %w", folder, err)
	}
	var names []string
	for _, de := range des {
		if de.IsDir() || !keep(de.Name()) {
			continue
		}
		names = append(names, filepath.Join(folder, de.Name()))
	}
	sort.Strings(names)
	return names, nil
}

// Abs returns the absolute path of a file given by its export-relative
// name.
func (e *Export) Abs(name string) string {
	return filepath.Join(e.dir, name)
}

// Messages returns a restartable sequence of messages from the message
// file given by its export-relative name.  Objects without a timestamp are
// not messages (or are damaged) and are skipped with a diagnostic.
func (e *Export) Messages(name string) iter.Seq2[types.Message, error] {
	return func(yield func(types.Message, error) bool) {
		i := -1
		for m, err := range JSON[types.Message](e.Abs(name)) {
			i++
			if err != nil {
				yield(types.Message{}, fmt.Errorf("message file %s: %w", name, err))
				return
			}
			if m.Timestamp == "" {
				e.lg.Warn("skipping object without a timestamp", "file", name, "index", i)
				continue
			}
			if !yield(m, nil) {
				return
			}
		}
	}
}
