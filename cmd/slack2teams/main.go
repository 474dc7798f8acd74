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

// Command slack2teams migrates a slack export archive into a team on the
// target service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rusq/fsadapter"
	"github.com/schollz/progressbar/v3"

	"github.com/rusq/slack2teams"
	"github.com/rusq/slack2teams/internal/archive"
	"github.com/rusq/slack2teams/internal/checkpoint"
	"github.com/rusq/slack2teams/internal/directory"
	"github.com/rusq/slack2teams/internal/dryrun"
	"github.com/rusq/slack2teams/internal/transcript"
	"github.com/rusq/slack2teams/teams"
)

var (
	cfgFile    = flag.String("c", "slack2teams.toml", "configuration `file`")
	archDir    = flag.String("archive", "", "export archive `directory` (overrides config)")
	teamName   = flag.String("team", "", "target team display `name` (overrides config)")
	dryRunFlag = flag.Bool("n", false, "dry run: process the archive without posting anything")
	finishTeam = flag.String("finish", "", "finalise the stuck migration of the team with the given `ID` and exit")
	verbose    = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	initLog(*verbose)
	// secrets, such as the service credentials, live in .env, not in the
	// config file.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("dotenv", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func initLog(verbose bool) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	if *archDir != "" {
		cfg.Archive = *archDir
	}
	if *teamName != "" {
		cfg.Team = *teamName
	}
	if *dryRunFlag {
		cfg.DryRun = true
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	cl, err := newClient(cfg)
	if err != nil {
		return err
	}

	src, err := archive.Open(cfg.Archive)
	if err != nil {
		return err
	}
	dir, err := loadDirectory(ctx, cl, src, cfg)
	if err != nil {
		return err
	}

	opts := []slack2teams.Option{
		slack2teams.WithOwner(cfg.Owner),
		slack2teams.WithTeamDescription(cfg.Description),
	}

	if cfg.Journal != "" {
		trk, err := checkpoint.NewDB(ctx, cfg.Journal)
		if err != nil {
			return err
		}
		defer trk.Close()
		opts = append(opts, slack2teams.WithTracker(trk))
	}

	if cfg.Transcript != "" {
		fsa, err := fsadapter.New(cfg.Transcript)
		if err != nil {
			return fmt.Errorf("transcript location: %w", err)
		}
		defer fsa.Close()
		opts = append(opts, slack2teams.WithTranscript(transcript.New(fsa)))
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("migrating"),
		progressbar.OptionSpinnerType(8),
	)
	opts = append(opts, slack2teams.WithProgressFn(func(file string) {
		bar.Describe(file)
		bar.Add(1)
	}))

	m, err := slack2teams.New(cl, src, dir, cfg.Team, opts...)
	if err != nil {
		return err
	}
	defer bar.Finish()

	if *finishTeam != "" {
		return m.Finish(ctx, *finishTeam)
	}
	return m.Migrate(ctx)
}

// newClient constructs the service client.  The live transport is supplied
// by the deployment build; this distribution carries the dry run client
// only.
func newClient(cfg Config) (teams.Client, error) {
	if !cfg.DryRun {
		return nil, errors.New("live mode is not available in this build, rerun with -n")
	}
	return dryrun.New(slog.Default()), nil
}

// loadDirectory populates the identity directory: from the snapshot file
// if one exists, otherwise from the archive user listing, resolving the
// users against the service directory and saving the snapshot for the next
// run.
func loadDirectory(ctx context.Context, cl teams.Client, src *archive.Export, cfg Config) (*directory.Directory, error) {
	cc, err := src.Channels()
	if err != nil {
		return nil, err
	}
	if uu, err := directory.LoadUsers(cfg.Users); err == nil {
		slog.Info("using identity snapshot", "file", cfg.Users, "users", len(uu))
		return directory.New(uu, cc), nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	uu, err := directory.ScanUsers(src.UsersPath())
	if err != nil {
		return nil, err
	}
	dir := directory.New(uu, cc)
	if err := dir.ResolveTargets(ctx, cl); err != nil {
		return nil, err
	}
	if err := directory.SaveUsers(cfg.Users, dir.Users()); err != nil {
		return nil, err
	}
	slog.Info("identity snapshot saved", "file", cfg.Users, "users", len(uu))
	return dir, nil
}
