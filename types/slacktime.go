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
package types

// in this file: slack timestamp parsing functions

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ParseSlackTS parses the slack timestamp ("1577694990.000400") into a
// time.Time.
func ParseSlackTS(timestamp string) (time.Time, error) {
	const (
		base = 10
		bit  = 64
	)
	sSec, sMicro, found := strings.Cut(timestamp, ".")
	if sSec == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var t int64
	var err error
	if !found {
		t, err = strconv.ParseInt(sSec+"000000", base, bit)
	} else {
		t, err = strconv.ParseInt(sSec+sMicro, base, bit)
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(t).UTC(), nil
}

// SequenceID derives the stable message identifier from the slack
// timestamp: the first 13 digits with the separator stripped, i.e. the
// millisecond epoch time.  It is the key messages are submitted under and
// the key replies address their thread root by.
func SequenceID(timestamp string) string {
	var b strings.Builder
	b.Grow(13)
	for _, r := range timestamp {
		if r < '0' || '9' < r {
			continue
		}
		b.WriteByte(byte(r))
		if b.Len() == 13 {
			break
		}
	}
	return b.String()
}
