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

// Package transcript writes the side HTML export of submitted messages.
// It is a human-readable audit trail of what the run sent, one HTML file
// per message file, laid out the same way as the archive.
package transcript

import (
	"fmt"
	"html"
	"path"
	"strings"
	"time"

	"github.com/rusq/fsadapter"
)

// Entry is one submitted message.
type Entry struct {
	Sender string
	Time   time.Time
	// HTML is the rendered message body, already in target markup.
	HTML string
}

// Writer writes transcripts into the filesystem given by fs, which may be
// a directory or a zip file.
type Writer struct {
	fs fsadapter.FS
}

// New returns a transcript writer on fs.
func New(fs fsadapter.FS) *Writer {
	return &Writer{fs: fs}
}

// WriteBatch writes all entries of one message file.  Name is the archive
// relative message file name; the transcript file gets the same name with
// the .html extension.  Entries with empty bodies are omitted.
func (w *Writer) WriteBatch(name string, entries []Entry) error {
	var buf strings.Builder
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n", html.EscapeString(name))
	for _, e := range entries {
		if e.HTML == "" {
			continue
		}
		fmt.Fprintf(&buf, "<div><b>%s</b> <i>%s</i><br>%s</div>\n",
			html.EscapeString(e.Sender), e.Time.Format("2006-01-02 15:04:05"), e.HTML)
	}
	buf.WriteString("</body></html>\n")
	return w.fs.WriteFile(htmlName(name), []byte(buf.String()), 0o644)
}

func htmlName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ".html"
}
