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

package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

/*

Sudoku grid generation

A complete grid comes out of the same backtracking search the
solver uses; the only difference is the candidate-ordering
policy, which shuffles the values freshly for every cell so that
successive runs construct different grids.  A puzzle is then a
complete grid with a difficulty-dependent number of cells
blanked in random order.

*/

// A Difficulty names a removal tier for puzzle derivation.  It
// is a transient parameter of generation, never stored on the
// grid, and it is only an approximation: more removed cells,
// harder puzzle.  No solvability analysis is done.
type Difficulty int

// The difficulty tiers, easiest first.
const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = []string{"easy", "medium", "hard"}

// String returns the lowercase tier name.
func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return "unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty maps a tier name to its Difficulty,
// case-insensitively.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: DifficultyAttribute,
		Condition: InvalidArgumentCondition,
		Values:    ErrorData{name},
	}
}

// removalCount is the number of cells a tier blanks in a grid of
// the given size, clamped so at least one row's worth of cells
// stays filled.  The clamp is a heuristic floor, not a
// solvability guarantee.
func removalCount(size int, d Difficulty) int {
	var count int
	switch d {
	case Easy:
		count = size * 7
	case Hard:
		count = size * 9
	default:
		count = size * 8
	}
	if max := size*size - size; count > max {
		count = max
	}
	return count
}

/*

Generators

*/

// A Generator constructs complete grids and derives puzzles from
// them.  All its randomness comes from the one source it was
// built with, so a Generator over a fixed-seed source reproduces
// the same grids run after run; that's what the tests rely on.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator makes a Generator drawing from the given source.
// Passing nil gets a time-seeded source, which is what the
// interactive callers want.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// CompleteGrid builds a fully assigned valid grid of the given
// size.  It fails only when the size itself is invalid; the
// shuffled backtracking fill of an empty grid always finds an
// assignment.
func (gen *Generator) CompleteGrid(size int) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	if !search(g, shuffledOrder(gen.rnd)) {
		// can't happen: an empty grid always admits a full assignment
		panic(fmt.Errorf("fill of an empty size %v grid found no assignment", size))
	}
	return g, nil
}

// CreatePuzzle builds a puzzle: a complete grid with the tier's
// removal count of cells blanked, chosen as the first cells of a
// shuffled enumeration of all positions.  Nothing checks that
// the resulting puzzle has a unique solution (or any solution
// other than the one it was carved from); that's a documented
// property of this derivation, and CreatePuzzleUnique is the
// opt-in alternative.
func (gen *Generator) CreatePuzzle(size int, difficulty Difficulty) (*Grid, error) {
	g, err := gen.CompleteGrid(size)
	if err != nil {
		return nil, err
	}
	positions := gen.shuffledCells(size)
	for _, pos := range positions[:removalCount(size, difficulty)] {
		g.values[pos] = 0
	}
	return g, nil
}

// CreatePuzzleUnique derives a puzzle like CreatePuzzle but
// skips any removal that would leave the puzzle with more than
// one solution, so the result always has exactly one.  It may
// blank fewer cells than the tier asks for when no further
// removal preserves uniqueness.  Noticeably slower than
// CreatePuzzle: every candidate removal costs a solution count.
func (gen *Generator) CreatePuzzleUnique(size int, difficulty Difficulty) (*Grid, error) {
	g, err := gen.CompleteGrid(size)
	if err != nil {
		return nil, err
	}
	removed, target := 0, removalCount(size, difficulty)
	for _, pos := range gen.shuffledCells(size) {
		if removed == target {
			break
		}
		saved := g.values[pos]
		g.values[pos] = 0
		if CountSolutions(g, 2) != 1 {
			g.values[pos] = saved
			continue
		}
		removed++
	}
	return g, nil
}

// shuffledCells returns every cell index of a size x size grid
// in random order.
func (gen *Generator) shuffledCells(size int) []int {
	cells := make([]int, size*size)
	for i := range cells {
		cells[i] = i
	}
	gen.rnd.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return cells
}
