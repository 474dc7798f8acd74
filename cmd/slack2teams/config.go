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
package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config is the tool configuration.  Values given on the command line
// override the file.
type Config struct {
	// Team is the display name of the target team.
	Team string `toml:"team"`
	// Description is used if the team has to be created.
	Description string `toml:"description"`
	// Owner is the target user ID to assign as the team owner.
	Owner string `toml:"owner"`
	// Archive is the path to the unpacked export directory.
	Archive string `toml:"archive"`
	// Users is the identity snapshot file.  It is created on the first run
	// and may be edited by hand to fix resolution mistakes.
	Users string `toml:"users"`
	// Transcript is where the HTML transcript goes: a directory or a .zip
	// file.  Empty disables the transcript.
	Transcript string `toml:"transcript"`
	// Journal is the path of the sqlite completion journal.  If empty,
	// completed message files are renamed in place instead.
	Journal string `toml:"journal"`
	// DryRun validates the archive without talking to the service.
	DryRun bool `toml:"dry_run"`
}

// defConfig is the configuration before the file and flags are applied.
var defConfig = Config{
	Users: "slack2teams.users.jsonl",
}

// loadConfig reads the TOML configuration file.  A missing file is not an
// error, the defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if un := meta.Undecoded(); len(un) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, un[0].String())
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Archive == "" {
		return errors.New("archive directory is required (flag -archive or config)")
	}
	if c.Team == "" {
		return errors.New("team name is required (flag -team or config)")
	}
	return nil
}
