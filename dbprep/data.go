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
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// EnsureData loads the sample puzzles into the database, which
// must already have its schema.  A database that has the samples
// is left alone.
func EnsureData() error {
	return applyFunctions(upFunctions)
}

// RemoveData removes the sample puzzles from the database.  Do
// this before tearing the schema down.
func RemoveData() error {
	return applyFunctions(downFunctions)
}

// applyFunctions runs dataFunctions against the database.  Each
// runs in its own transaction, so later ones can rely on the
// effect of earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseUrl())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// runs one function inside a transaction, rolling back on
	// any problem
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	for i, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("Data function %d failed: %v", i+1, err)
		}
	}
	return nil
}

/*

sample puzzles

*/

type samplePuzzle struct {
	name       string
	size       int
	difficulty string
	cells      string
}

// The starter library: one of each size users meet first, with a
// spread of difficulties.  Every grid here is solvable; the
// tests hold the package to that.
var samplePuzzles = []samplePuzzle{
	{"sample-1", 4, "easy",
		"1.3..3.13.1..1.3"},
	{"sample-2", 9, "easy",
		"4....35.2..95.634.........8....3486...46.52...2879...." +
			"9.........873.29..5.29....6"},
	{"sample-3", 9, "hard",
		"9..45...8.2..........1724...79...68.2.......5.43...27." +
			"..8325..........6.4...16..3"},
	{"sample-4", 16, "easy",
		".......89ABCDEFG......BCDEFG123......EFG123456......123456789..." +
			"...56789ABCD......89ABCDEFG......BCDEFG123......EFG123456......." +
			"3456789A.......2789ABCD.......56BCDEFG.......89AFG123.......BCDE" +
			"4567.......FG12389A.......234567CD.......56789ABG.......89ABCDEF"},
}

// insertSamples adds the sample puzzles to the library.
func insertSamples(tx pgx.Tx) error {
	ctx := context.Background()

	// idempotency: if the first sample is already there, so is
	// the rest of the load
	var count int64
	row := tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM puzzles WHERE name = $1", samplePuzzles[0].name)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("Database error looking for sample %q: %v", samplePuzzles[0].name, err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for i, sample := range samplePuzzles {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (name, sideLength, difficulty, cells, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			sample.name, int32(sample.size), sample.difficulty, sample.cells, now)
		if err != nil {
			return fmt.Errorf("Database error inserting sample %d: %v", i+1, err)
		}
	}
	return nil
}

// deleteSamples removes the sample puzzles from the library.
func deleteSamples(tx pgx.Tx) error {
	ctx := context.Background()
	for i, sample := range samplePuzzles {
		_, err := tx.Exec(ctx,
			"DELETE FROM puzzles WHERE name = $1", sample.name)
		if err != nil {
			return fmt.Errorf("Database error deleting sample %d: %v", i+1, err)
		}
	}
	return nil
}
