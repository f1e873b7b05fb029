package puzzle

import (
	"math/rand"
)

/*

Sudoku grid search

Both solving and random grid construction are the same
depth-first search that uses a stack for backtracking.  The
stack technique is called Ariadne's thread, after the mythical
heroine who used a ball of yarn as a stack in her depth-first
search for an exit from the minotaur's maze.

1. Find the first empty cell in reading order (row-major).  If
there is none, the grid is full and the search has succeeded.

2. Push a thread entry for that cell holding the sequence of
candidate values to try there.  The sequence is produced by the
search's ordering policy: ascending order when solving, a fresh
shuffle per cell when constructing random grids.

3. Place the first candidate that doesn't conflict with the
value's row, column, or box, and go to step 1.

4. If no candidate fits, "rewind your thread": clear the cell,
pop the entry, clear the previous entry's cell, and continue
with that entry's remaining candidates.

5. If the thread is completely unwound, the search has failed.
Every placement made during the search has been undone by then,
so the grid is back in the exact state the caller passed in.

Because the empty-cell scan order is fixed and the ascending
policy is deterministic, solving the same grid always produces
the same solution.  Randomness enters only through the
construction policy's shuffle.

*/

// A candidateOrder produces the sequence of values a search
// tries in an empty cell.  Every policy must yield each value in
// [1, size] exactly once.
type candidateOrder func(size int) []int

// ascendingOrder is the solving policy: candidates 1..size in
// increasing order.
func ascendingOrder(size int) []int {
	vals := make([]int, size)
	for i := range vals {
		vals[i] = i + 1
	}
	return vals
}

// shuffledOrder returns the construction policy: a permutation
// of 1..size drawn freshly from the given source for every cell
// the search asks about.
func shuffledOrder(rnd *rand.Rand) candidateOrder {
	return func(size int) []int {
		vals := ascendingOrder(size)
		rnd.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		return vals
	}
}

// A choice is one cell the search is filling: where it is and
// the candidate values not yet tried there.
type choice struct {
	index int   // cell index in the grid's value slice
	cnext []int // candidates not yet tried
}

// A thread is a stack of choices.
type thread []choice

// search fills every empty cell of the grid with values that
// respect the row/column/box constraint, trying candidates in
// the policy's order.  Returns true with the grid fully
// assigned, or false with the grid restored to its entry state.
func search(g *Grid, order candidateOrder) bool {
	row, col, ok := g.FindEmptyCell()
	if !ok {
		return true
	}
	t := thread{{index: g.cellIndex(row, col), cnext: order(g.size)}}
	for len(t) > 0 {
		top := &t[len(t)-1]
		row, col := top.index/g.size, top.index%g.size
		placed := false
		for len(top.cnext) > 0 {
			v := top.cnext[0]
			top.cnext = top.cnext[1:]
			if g.IsValid(row, col, v) {
				g.values[top.index] = v
				placed = true
				break
			}
		}
		if !placed {
			// rewind: this cell is out of candidates, so clear it,
			// pop it, and reopen the previous choice
			g.values[top.index] = 0
			t[len(t)-1] = choice{} // release storage held in choice before pop
			t = t[:len(t)-1]
			if len(t) > 0 {
				g.values[t[len(t)-1].index] = 0
			}
			continue
		}
		row, col, ok := g.FindEmptyCell()
		if !ok {
			return true
		}
		t = append(t, choice{index: g.cellIndex(row, col), cnext: order(g.size)})
	}
	return false
}

// Solve finds an assignment for all empty cells of the grid that
// satisfies the solved invariant, using exhaustive backtracking
// with ascending candidate order.  On success it returns true
// and the grid holds the full solution.  On failure it returns
// false and the grid is byte-for-byte in its pre-call state; an
// over-constrained or contradictory grid is simply unsolvable,
// never an error.
//
// The search is exponential in the number of empty cells, which
// is fine up through size 16 grids; brute force at size 25 is
// impractical no matter how this is coded.
func Solve(g *Grid) bool {
	if _, _, ok := g.FindEmptyCell(); !ok {
		// fully assigned already: solved iff it's valid
		return g.Solved()
	}
	return search(g, ascendingOrder)
}

// CountSolutions counts the assignments that solve the grid,
// stopping early once limit is reached (pass 2 to test
// uniqueness; a limit < 1 counts them all).  The count is done
// on an internal copy, so the caller's grid is never modified.
func CountSolutions(g *Grid, limit int) int {
	work := g.Copy()
	row, col, ok := work.FindEmptyCell()
	if !ok {
		// fully assigned: it's its own single solution if it's valid
		if work.Solved() {
			return 1
		}
		return 0
	}
	count := 0
	t := thread{{index: work.cellIndex(row, col), cnext: ascendingOrder(work.size)}}
	for len(t) > 0 {
		top := &t[len(t)-1]
		row, col := top.index/work.size, top.index%work.size
		placed := false
		for len(top.cnext) > 0 {
			v := top.cnext[0]
			top.cnext = top.cnext[1:]
			if work.IsValid(row, col, v) {
				work.values[top.index] = v
				placed = true
				break
			}
		}
		if !placed {
			work.values[top.index] = 0
			t[len(t)-1] = choice{}
			t = t[:len(t)-1]
			if len(t) > 0 {
				work.values[t[len(t)-1].index] = 0
			}
			continue
		}
		row, col, ok := work.FindEmptyCell()
		if !ok {
			// found one; record it and keep searching as if this
			// branch had failed
			count++
			if limit > 0 && count >= limit {
				return count
			}
			work.values[top.index] = 0
			continue
		}
		t = append(t, choice{index: work.cellIndex(row, col), cnext: ascendingOrder(work.size)})
	}
	return count
}
