// Copyright 2026 Erwann Lesech.  All rights reserved.

// Package puzzle provides a model for square Sudoku grids and
// the two algorithms that operate on them: an exhaustive
// backtracking solver and a randomized puzzle generator.  It
// also provides the text codecs for grids and the summary types
// a web service needs to ship grids to clients.
//
// In this package, grids are made of cells which are either
// empty (represented with a 0 value) or hold a value between 1
// and the side length of the grid (inclusive).  The side length
// must be a perfect square, so the grid divides into
// non-overlapping square boxes; a solved grid has every value
// exactly once in each row, each column, and each box.
//
// Solving and generation are the same depth-first backtracking
// search over the empty cells, differing only in the order each
// tries candidate values: solving uses ascending order, which
// makes its output deterministic, and generation uses a fresh
// shuffle per cell from an explicit random source, which makes
// its output reproducible per seed.  There is no constraint
// propagation of any kind; unsolvable grids are discovered by
// exhausting the search, and reported as a plain false return
// rather than an error.
package puzzle

/*

Wire types

These are the JSON shapes the web service exchanges with its
clients.  Only required fields should be specified, so as to
minimize the JSON-encoded form.

*/

// A Summary is the client-facing state of a grid: the
// dimensions, the cell values in reading order, and the derived
// facts clients always want (how many cells are empty, whether
// the grid is solved).
type Summary struct {
	Size    int   `json:"size"`
	BoxSize int   `json:"boxSize"`
	Values  []int `json:"values"`
	Empty   int   `json:"empty,omitempty"`
	Solved  bool  `json:"solved,omitempty"`
}

// Summary returns the client-facing state of the grid.  The
// returned values share no storage with the grid.
func (g *Grid) Summary() Summary {
	empty := g.Empty()
	return Summary{
		Size:    g.size,
		BoxSize: g.boxSize,
		Values:  g.Values(),
		Empty:   empty,
		Solved:  empty == 0 && g.Solved(),
	}
}

// A Cell names one cell and a value for it.  It is the body of
// an assignment request.
type Cell struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// A Step records one applied assignment so it can be undone: the
// cell, the value that was placed, and the value the cell held
// before (0 for a previously empty cell).  Sessions keep their
// steps as a stack.
type Step struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Prior int `json:"prior"`
	Value int `json:"value"`
}
