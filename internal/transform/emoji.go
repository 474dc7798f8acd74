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
package transform

// in this file: slack reaction shortcode to target emoji mapping.  There
// is no authoritative list of every shortcode a workspace may use, so the
// mapping degrades in steps from exact to best-guess instead of failing.

import (
	"sort"
	"strings"
	"sync"

	"github.com/enescakir/emoji"
)

// slackAliases maps irregular slack shortcodes onto the aliases of the
// emoji table.  Hand-curated; extend as unmapped names surface in the
// logs.
var slackAliases = map[string]string{
	"+1":               "thumbs_up",
	"-1":               "thumbs_down",
	"thumbsup":         "thumbs_up",
	"thumbsdown":       "thumbs_down",
	"smile":            "grinning_face_with_smiling_eyes",
	"simple_smile":     "slightly_smiling_face",
	"laughing":         "grinning_squinting_face",
	"satisfied":        "grinning_squinting_face",
	"joy":              "face_with_tears_of_joy",
	"sweat_smile":      "grinning_face_with_sweat",
	"rofl":             "rolling_on_the_floor_laughing",
	"heart":            "red_heart",
	"hearts":           "revolving_hearts",
	"tada":             "party_popper",
	"100":              "hundred_points",
	"pray":             "folded_hands",
	"clap":             "clapping_hands",
	"raised_hands":     "raising_hands",
	"wave":             "waving_hand",
	"white_check_mark": "check_mark_button",
	"heavy_check_mark": "check_mark",
	"boom":             "collision",
	"memo":             "memo",
}

var emojiIdx = sync.OnceValue(buildEmojiIndex)

type emojiIndex struct {
	// exact maps the normalised alias to the emoji.
	exact map[string]string
	// aliases is the sorted list of normalised aliases, for the prefix
	// scan.  Sorted so that the prefix match is deterministic.
	aliases []string
}

func buildEmojiIndex() emojiIndex {
	m := emoji.Map()
	keys := make([]string, 0, len(m))
	for alias := range m {
		keys = append(keys, alias)
	}
	sort.Strings(keys) // make collisions between aliases deterministic
	idx := emojiIndex{
		exact:   make(map[string]string, len(m)),
		aliases: make([]string, 0, len(m)),
	}
	for _, alias := range keys {
		n := normalize(strings.Trim(alias, ":"))
		if _, exists := idx.exact[n]; exists {
			continue
		}
		idx.exact[n] = m[alias]
		idx.aliases = append(idx.aliases, n)
	}
	sort.Strings(idx.aliases)
	return idx
}

// normalize strips underscores and lowercases the name, so that
// "thumbs_up", "ThumbsUp" and "thumbsup" compare equal.
func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// MapEmoji maps a slack reaction shortcode to the target emoji.  It tries,
// in order: an exact match against the emoji table, the name with a "face"
// suffix, a prefix match, and the curated alias table.  If everything
// misses, the name is returned verbatim with ok == false, and the caller
// is expected to log it.
func MapEmoji(name string) (code string, ok bool) {
	idx := emojiIdx()
	n := normalize(name)
	if e, ok := idx.exact[n]; ok {
		return e, true
	}
	if e, ok := idx.exact[n+"face"]; ok {
		return e, true
	}
	if n != "" {
		i := sort.SearchStrings(idx.aliases, n)
		if i < len(idx.aliases) && strings.HasPrefix(idx.aliases[i], n) {
			return idx.exact[idx.aliases[i]], true
		}
	}
	if alias, ok := slackAliases[name]; ok {
		if e, ok := idx.exact[normalize(alias)]; ok {
			return e, true
		}
	}
	return name, false
}
