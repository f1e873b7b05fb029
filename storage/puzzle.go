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

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

/*

solution cache

*/

// A SolutionEntry is the recorded outcome of solving one puzzle.
// Identical puzzles always have identical outcomes, so entries
// are cached by the puzzle's wire form and shared by every
// session that hits the same puzzle.  Unsolvable puzzles are
// cached too, with Solved false and no solution.
type SolutionEntry struct {
	Puzzle   string        `json:"puzzle"`             // wire form of the puzzle
	Solved   bool          `json:"solved"`             // whether a solution exists
	Solution string        `json:"solution,omitempty"` // wire form of the solution
	Elapsed  time.Duration `json:"elapsed"`            // how long the search took
}

func solutionKey(wire string) string {
	return "solution:" + wire
}

// LookupSolution returns the cached solving outcome for the
// puzzle with the given wire form, if there is one.
func LookupSolution(wire string) (entry *SolutionEntry, found bool) {
	var bytes []byte
	body := func(conn redis.Conn) error {
		b, err := redis.Bytes(conn.Do("GET", solutionKey(wire)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Cache failure loading solution of %q: %v", wire, err)
		}
		bytes = b
		return nil
	}
	rdExecute(body)
	if bytes == nil {
		return
	}
	entry = &SolutionEntry{}
	if err := json.Unmarshal(bytes, entry); err != nil {
		panic(fmt.Errorf("Cache holds an unreadable solution of %q: %v", wire, err))
	}
	found = true
	return
}

// StoreSolution caches a solving outcome under its puzzle's wire
// form and appends an audit row for the solve to the database.
func StoreSolution(entry *SolutionEntry) {
	bytes, err := json.Marshal(entry)
	if err != nil {
		panic(fmt.Errorf("Can't encode solution of %q: %v", entry.Puzzle, err))
	}
	body := func(conn redis.Conn) error {
		if _, err := conn.Do("SET", solutionKey(entry.Puzzle), bytes); err != nil {
			return fmt.Errorf("Cache failure storing solution of %q: %v", entry.Puzzle, err)
		}
		return nil
	}
	rdExecute(body)
	RecordSolve(entry)
}

// RecordSolve appends one row to the database's solve audit
// trail.
func RecordSolve(entry *SolutionEntry) {
	body := func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(),
			"INSERT INTO solves (puzzle, solved, solution, elapsedMicros, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			entry.Puzzle, entry.Solved, entry.Solution,
			entry.Elapsed.Microseconds(), time.Now())
		if err != nil {
			return fmt.Errorf("Database failure recording solve of %q: %v", entry.Puzzle, err)
		}
		return nil
	}
	pgExecute(body)
}

/*

puzzle library

*/

// A PuzzleInfo describes one puzzle in the library: retrievable
// by name, with its grid in wire form.
type PuzzleInfo struct {
	Name       string    `json:"name"`
	Size       int       `json:"size"`
	Difficulty string    `json:"difficulty,omitempty"`
	Cells      string    `json:"cells"`
	Created    time.Time `json:"created,omitempty"`
}

// Grid rebuilds the library puzzle's grid from its wire form.
func (info *PuzzleInfo) Grid() (*puzzle.Grid, error) {
	return puzzle.DecodeWire(info.Cells)
}

func puzzleKey(name string) string {
	return "puzzle:" + name
}

// LookupPuzzle finds a library puzzle by name.  It tries the
// cache first, falls back to the database, and caches any
// database hit for next time.  The second return is false when
// the library has no puzzle with that name.
func LookupPuzzle(name string) (*PuzzleInfo, bool) {
	info := &PuzzleInfo{Name: name}
	if info.cacheLoad() {
		return info, true
	}
	if !info.databaseLoad() {
		return nil, false
	}
	info.cacheInsert()
	return info, true
}

// InsertPuzzle adds a puzzle to the library and caches it.  The
// name must not already be in the library.
func InsertPuzzle(info *PuzzleInfo) {
	if info.Created.IsZero() {
		info.Created = time.Now()
	}
	body := func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(),
			"INSERT INTO puzzles (name, sideLength, difficulty, cells, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			info.Name, info.Size, info.Difficulty, info.Cells, info.Created)
		if err != nil {
			return fmt.Errorf("Database failure inserting puzzle %q: %v", info.Name, err)
		}
		return nil
	}
	pgExecute(body)
	info.cacheInsert()
	log.Infof("Added puzzle %q (size %d) to the library.", info.Name, info.Size)
}

// PuzzleNames returns the names of every puzzle in the library,
// in name order.
func PuzzleNames() []string {
	var names []string
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			"SELECT name FROM puzzles ORDER BY name")
		if err != nil {
			return fmt.Errorf("Database failure listing puzzle names: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("Database failure reading puzzle name: %v", err)
			}
			names = append(names, name)
		}
		return rows.Err()
	}
	pgExecute(body)
	return names
}

// ListPuzzles returns every entry in the library, in database
// order.  Sort the result with ByName or BySize as needed.
func ListPuzzles() []*PuzzleInfo {
	var infos []*PuzzleInfo
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			"SELECT name, sideLength, difficulty, cells, created FROM puzzles")
		if err != nil {
			return fmt.Errorf("Database failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			info := &PuzzleInfo{}
			err := rows.Scan(&info.Name, &info.Size, &info.Difficulty,
				&info.Cells, &info.Created)
			if err != nil {
				return fmt.Errorf("Database failure reading puzzle: %v", err)
			}
			infos = append(infos, info)
		}
		return rows.Err()
	}
	pgExecute(body)
	return infos
}

// cacheLoad fills the info from the cache, returning whether it
// was found there.  Entries that don't decode are treated as
// absent so the database copy can repair them.
func (info *PuzzleInfo) cacheLoad() bool {
	var bytes []byte
	body := func(conn redis.Conn) error {
		b, err := redis.Bytes(conn.Do("GET", puzzleKey(info.Name)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Cache failure loading puzzle %q: %v", info.Name, err)
		}
		bytes = b
		return nil
	}
	rdExecute(body)
	if bytes == nil {
		return false
	}
	loaded := &PuzzleInfo{}
	if err := json.Unmarshal(bytes, loaded); err != nil || loaded.Name != info.Name {
		log.Warnf("Ignoring bad cache entry for puzzle %q.", info.Name)
		return false
	}
	*info = *loaded
	return true
}

// cacheInsert writes the info through to the cache.
func (info *PuzzleInfo) cacheInsert() {
	bytes, err := json.Marshal(info)
	if err != nil {
		panic(fmt.Errorf("Can't encode puzzle %q: %v", info.Name, err))
	}
	body := func(conn redis.Conn) error {
		if _, err := conn.Do("SET", puzzleKey(info.Name), bytes); err != nil {
			return fmt.Errorf("Cache failure storing puzzle %q: %v", info.Name, err)
		}
		return nil
	}
	rdExecute(body)
}

// databaseLoad fills the info from the database, returning
// whether the library has it.
func (info *PuzzleInfo) databaseLoad() (found bool) {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(context.Background(),
			"SELECT sideLength, difficulty, cells, created FROM puzzles WHERE name = $1",
			info.Name)
		err := row.Scan(&info.Size, &info.Difficulty, &info.Cells, &info.Created)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Database failure loading puzzle %q: %v", info.Name, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

/*

sort orders for library listings

*/

// ByName orders library listings by puzzle name.
type ByName []*PuzzleInfo

func (infos ByName) Len() int           { return len(infos) }
func (infos ByName) Swap(i, j int)      { infos[i], infos[j] = infos[j], infos[i] }
func (infos ByName) Less(i, j int) bool { return infos[i].Name < infos[j].Name }

// BySize orders library listings by side length, then by name
// within a size.
type BySize []*PuzzleInfo

func (infos BySize) Len() int      { return len(infos) }
func (infos BySize) Swap(i, j int) { infos[i], infos[j] = infos[j], infos[i] }
func (infos BySize) Less(i, j int) bool {
	if infos[i].Size != infos[j].Size {
		return infos[i].Size < infos[j].Size
	}
	return infos[i].Name < infos[j].Name
}
