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

// Package archive reads the slack export directory: the channel and user
// listings and the per-day message files.  Files are streamed, not slurped:
// a message file can be a JSON array, a sequence of JSON objects, or
// newline-delimited objects, and the readers below accept all three.
package archive

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

// objects returns a sequence of top-level JSON objects decoded from r.
func objects[T any](r io.Reader) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		br := bufio.NewReader(r)
		first, err := peekByte(br)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				yield(zero, err)
			}
			return
		}
		dec := json.NewDecoder(br)
		if first == '[' {
			if _, err := dec.Token(); err != nil { // consume '['
				yield(zero, err)
				return
			}
			for dec.More() {
				var t T
				if err := dec.Decode(&t); err != nil {
					yield(zero, err)
					return
				}
				if !yield(t, nil) {
					return
				}
			}
			return
		}
		// concatenated or newline-delimited objects
		for {
			var t T
			if err := dec.Decode(&t); err != nil {
				if !errors.Is(err, io.EOF) {
					yield(zero, err)
				}
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

// peekByte returns the first non-whitespace byte of r without consuming it.
func peekByte(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := r.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}

// JSON returns a lazy, restartable sequence of top-level JSON objects found
// in the file.  The file is reopened on every iteration, so the sequence
// can be ranged over more than once.
func JSON[T any](path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			var zero T
			yield(zero, fmt.Errorf("archive: %w", err))
			return
		}
		defer f.Close()
		for t, err := range objects[T](f) {
			if !yield(t, err) {
				return
			}
		}
	}
}
