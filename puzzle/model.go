package puzzle

/*

Sudoku grid representation

*/

/*

Grids

*/

// A Grid is the state of one puzzle: a size x size board of
// cells, stored row-major, where each cell holds a value in
// [1, size] or 0 for "empty."  The board divides into
// boxSize x boxSize boxes, and a solved grid has each value
// exactly once in every row, every column, and every box.
//
// A Grid is created empty at a given size, decoded from text, or
// deep-copied from another Grid.  The search routines mutate it
// in place; callers who need the original afterwards keep their
// own Copy.  Grids are not safe for concurrent mutation.
type Grid struct {
	size    int
	boxSize int
	values  []int
}

// New creates an empty Grid with the given side length.  The
// side length must be a perfect square (so the grid divides into
// boxes); otherwise an Error with NonSquareCondition (or the
// appropriate bounds condition) is returned and no Grid is made.
func New(size int) (*Grid, error) {
	boxSize, err := checkSize(size)
	if err != nil {
		return nil, err
	}
	return &Grid{size: size, boxSize: boxSize, values: make([]int, size*size)}, nil
}

// newFromValues makes a Grid over an existing row-major value
// slice.  The codecs use this after they have validated the
// dimensions; it doesn't validate anything itself, and it takes
// ownership of the slice.
func newFromValues(size, boxSize int, values []int) *Grid {
	return &Grid{size: size, boxSize: boxSize, values: values}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// BoxSize returns the side length of one box.
func (g *Grid) BoxSize() int {
	return g.boxSize
}

// Empty returns the number of unassigned cells.
func (g *Grid) Empty() int {
	count := 0
	for _, v := range g.values {
		if v == 0 {
			count++
		}
	}
	return count
}

// At returns the value in the given cell, 0 if it's empty.
// Out-of-bounds coordinates panic, like slice indexing would.
func (g *Grid) At(row, col int) int {
	if row < 0 || row >= g.size {
		panic(rangeError(RowAttribute, row, 0, g.size-1))
	}
	if col < 0 || col >= g.size {
		panic(rangeError(ColumnAttribute, col, 0, g.size-1))
	}
	return g.values[g.cellIndex(row, col)]
}

// Set puts a value into the given cell, 0 to clear it.  Returns
// a range Error when the coordinates are off the grid or the
// value is outside [0, size].  No conflict checking is done
// here; that's what IsValid is for.
func (g *Grid) Set(row, col, value int) error {
	if row < 0 || row >= g.size {
		return rangeError(RowAttribute, row, 0, g.size-1)
	}
	if col < 0 || col >= g.size {
		return rangeError(ColumnAttribute, col, 0, g.size-1)
	}
	if value < 0 || value > g.size {
		return rangeError(ValueAttribute, value, 0, g.size)
	}
	g.values[g.cellIndex(row, col)] = value
	return nil
}

// Values returns a copy of the cell values in row-major order.
// The copy shares no storage with the grid.
func (g *Grid) Values() []int {
	return append([]int(nil), g.values...)
}

// Copy returns a deep copy of the grid.  Mutating the copy never
// affects the original and vice versa.
func (g *Grid) Copy() *Grid {
	if g == nil {
		return nil
	}
	return &Grid{
		size:    g.size,
		boxSize: g.boxSize,
		values:  append([]int(nil), g.values...),
	}
}

// IsValid reports whether value could be placed in the given
// cell without duplicating a value already in the same row,
// column, or box.  It does not check that the cell itself is
// empty: finding empty cells is the caller's job, and the search
// routines only ever place into cells FindEmptyCell returned.
func (g *Grid) IsValid(row, col, value int) bool {
	if !g.inBounds(row, col) || value < 1 || value > g.size {
		return false
	}
	// row and column
	for i := 0; i < g.size; i++ {
		if g.values[g.cellIndex(row, i)] == value {
			return false
		}
		if g.values[g.cellIndex(i, col)] == value {
			return false
		}
	}
	// containing box
	baseRow, baseCol := g.boxOrigin(row, col)
	for r := baseRow; r < baseRow+g.boxSize; r++ {
		for c := baseCol; c < baseCol+g.boxSize; c++ {
			if g.values[g.cellIndex(r, c)] == value {
				return false
			}
		}
	}
	return true
}

// FindEmptyCell returns the coordinates of the first empty cell
// in row-major order (row ascending, then column ascending), or
// ok == false when the grid is fully assigned.  The scan order
// is deterministic on purpose: it fixes the order in which the
// search fills cells, which makes solver output reproducible.
func (g *Grid) FindEmptyCell() (row, col int, ok bool) {
	for i, v := range g.values {
		if v == 0 {
			return i / g.size, i % g.size, true
		}
	}
	return 0, 0, false
}

// Solved reports whether the grid satisfies the full solved
// invariant: every row, every column, and every box contains
// each value in [1, size] exactly once.
func (g *Grid) Solved() bool {
	seen := make([]bool, g.size+1)
	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}
	check := func(v int) bool {
		if v < 1 || v > g.size || seen[v] {
			return false
		}
		seen[v] = true
		return true
	}
	for row := 0; row < g.size; row++ {
		reset()
		for col := 0; col < g.size; col++ {
			if !check(g.values[g.cellIndex(row, col)]) {
				return false
			}
		}
	}
	for col := 0; col < g.size; col++ {
		reset()
		for row := 0; row < g.size; row++ {
			if !check(g.values[g.cellIndex(row, col)]) {
				return false
			}
		}
	}
	for box := 0; box < g.size; box++ {
		reset()
		baseRow := (box / g.boxSize) * g.boxSize
		baseCol := (box % g.boxSize) * g.boxSize
		for r := baseRow; r < baseRow+g.boxSize; r++ {
			for c := baseCol; c < baseCol+g.boxSize; c++ {
				if !check(g.values[g.cellIndex(r, c)]) {
					return false
				}
			}
		}
	}
	return true
}

/*

Errors: used to report problems making and operating on grids.

*/

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}
