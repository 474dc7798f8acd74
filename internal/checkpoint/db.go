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
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Driver is the database/sql driver name.
const Driver = "sqlite"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is a tracker that journals completed files in a sqlite database,
// keeping the archive directory read-only.
type DB struct {
	conn *sqlx.DB
}

// NewDB opens (creating if necessary) the journal database at path and
// brings the schema up to date.
func NewDB(ctx context.Context, path string) (*DB, error) {
	conn, err := sqlx.Open(Driver, path)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

func migrate(ctx context.Context, conn *sqlx.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, conn.DB, "migrations")
}

func (d *DB) IsDone(ctx context.Context, name string) (bool, error) {
	var n int
	if err := d.conn.GetContext(ctx, &n, "SELECT COUNT(1) FROM DONE_FILE WHERE FILENAME = ?", name); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *DB) MarkDone(ctx context.Context, name string) error {
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO DONE_FILE (FILENAME, COMPLETED_AT) VALUES (?, ?) ON CONFLICT (FILENAME) DO NOTHING",
		name, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (d *DB) Close() error {
	return d.conn.Close()
}
