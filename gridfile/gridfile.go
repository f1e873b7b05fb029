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

// Package gridfile reads and writes grids as text files, and
// knows the directory conventions the tools share: puzzles live
// under <data>/raw, their solutions under <data>/resolved.
package gridfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

const gridsDirectoryEnvVar = "GRIDS_DIRECTORY"

var defaultGridsDirectory = "data"

// Directory returns the data directory all the file conventions
// hang off of.
func Directory() string {
	if dir := os.Getenv(gridsDirectoryEnvVar); dir != "" {
		return dir
	}
	return defaultGridsDirectory
}

// RawPath returns the conventional path for a named puzzle file.
func RawPath(name string) string {
	return filepath.Join(Directory(), "raw", name)
}

// SolutionPath maps a puzzle file path to the conventional path
// for its solution.
func SolutionPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(Directory(), "resolved", stem+"_solution.txt")
}

// FindRaw resolves a puzzle file argument: a path that exists is
// used as given, anything else is looked up as a name in the raw
// directory.  When neither exists the argument comes back
// unchanged, so the caller's open fails with the original name.
func FindRaw(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if !filepath.IsAbs(name) &&
		!strings.HasPrefix(name, Directory()+string(filepath.Separator)) {
		if raw := RawPath(name); fileExists(raw) {
			return raw
		}
	}
	return name
}

// Load reads a grid from a text file, one row of symbols per
// line.
func Load(path string) (*puzzle.Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return puzzle.DecodeString(string(b))
}

// Save writes a grid as a text file, creating parent directories
// as needed.
func Save(path string, g *puzzle.Grid) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(g.String()), 0644)
}

// ImportWire reads a file holding one wire-form grid per line and
// decodes them all.  Blank lines are skipped; a line that doesn't
// decode fails the whole import.
func ImportWire(path string) ([]*puzzle.Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var grids []*puzzle.Grid
	for i, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := puzzle.DecodeWire(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		grids = append(grids, g)
	}
	if len(grids) == 0 {
		return nil, fmt.Errorf("no grids in %s", path)
	}
	return grids, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
