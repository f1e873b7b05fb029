// resolution-de-problemes-combinatoires - a Sudoku solving and generation service.
// Copyright (C) 2026 Erwann Lesech.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package dbprep

import (
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// The schema ships inside the binary, so deployments never need
// the source tree around to prepare their database.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// databaseUrl resolves the database to prepare.
func databaseUrl() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return "postgres://localhost/sudoku?sslmode=disable"
}

// newMigrator builds a migrator over the embedded migration
// files.  Callers must call the returned cleanup when done with
// it.
func newMigrator() (*migrate.Migrate, func(), error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("Can't read embedded migrations: %v", err)
	}
	db, err := sql.Open("pgx", databaseUrl())
	if err != nil {
		return nil, nil, fmt.Errorf("Bad database URL %q: %v", databaseUrl(), err)
	}
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("Can't open database at %q for migration: %v", databaseUrl(), err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("Can't build migrator: %v", err)
	}
	return m, func() { m.Close() }, nil
}

// EnsureSchema brings the database schema up to date.  A
// database that's already current is left alone.
func EnsureSchema() error {
	m, cleanup, err := newMigrator()
	if err != nil {
		return err
	}
	defer cleanup()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table creation had errors: %v", err)
	}
	return nil
}

// RemoveSchema tears down everything the migrations created.  A
// database with no schema is left alone.
func RemoveSchema() error {
	m, cleanup, err := newMigrator()
	if err != nil {
		return err
	}
	defer cleanup()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the migration version of the database,
// 0 when no migration has ever been applied.
func SchemaVersion() (uint, error) {
	m, cleanup, err := newMigrator()
	if err != nil {
		return 0, err
	}
	defer cleanup()
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Can't read schema version: %v", err)
	}
	if dirty {
		return version, fmt.Errorf("Schema version %d is dirty and needs manual repair", version)
	}
	return version, nil
}
