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
package directory

// in this file: identity table snapshot persistence.  The snapshot is a
// JSONL file, deliberately human-editable so that resolution mistakes can
// be corrected by hand between runs.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rusq/slack2teams/types"
)

// SaveUsers stores the user table in the file, overwriting it entirely.
// The write goes through a temporary file renamed over the target, so a
// crash cannot leave a half-written snapshot.
func SaveUsers(filename string, uu types.Users) error {
	f, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+"*")
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	tmp := f.Name()
	if err := writeUsers(f, uu); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("snapshot %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("snapshot %s: %w", filename, err)
	}
	return os.Rename(tmp, filename)
}

func writeUsers(w io.Writer, uu types.Users) error {
	enc := json.NewEncoder(w)
	for _, u := range uu {
		if err := enc.Encode(u); err != nil {
			return fmt.Errorf("failed to encode data: %w", err)
		}
	}
	return nil
}

// LoadUsers reads the user table snapshot.  The caller replaces the
// in-memory table with the result in full (see Directory.ReplaceUsers).
func LoadUsers(filename string) (types.Users, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	uu, err := readUsers(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", filename, err)
	}
	return uu, nil
}

func readUsers(r io.Reader) (types.Users, error) {
	dec := json.NewDecoder(r)
	var uu = make(types.Users, 0, 500) // 500 users. reasonable?
	for {
		var u types.User
		if err := dec.Decode(&u); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		uu = append(uu, &u)
	}
	return uu, nil
}
