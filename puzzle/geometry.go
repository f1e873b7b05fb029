package puzzle

/*

Grid Geometry

In this module there is only one grid shape: the classic square
Sudoku, whose side length must be a perfect square so the grid
divides evenly into square boxes.  All the dimension checks and
the cell index arithmetic live here, so the model and the search
code never recompute them.

*/

// Bounds on accepted side lengths.  The lower bound rules out
// degenerate grids.  The upper bound is fixed by the symbol
// alphabet: ".", "1"-"9", "A"-"Z" covers values 0 through 35,
// and the next square side after 25 would need a value 36.
const (
	MinSize = 4
	MaxSize = 25
)

// Find the integer square root of val, if it exists.
func findIntSquareRoot(val int) (int, bool) {
	var i int
	for i = 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return i - 1, false
}

// checkSize validates a requested side length and returns the
// derived box side length.  The side length must be a perfect
// square between MinSize and MaxSize.
func checkSize(size int) (int, error) {
	if size < MinSize {
		return 0, sizeError(size, TooSmallCondition, MinSize)
	}
	if size > MaxSize {
		return 0, sizeError(size, TooLargeCondition, MaxSize)
	}
	boxSize, ok := findIntSquareRoot(size)
	if !ok {
		return 0, sizeError(size, NonSquareCondition, 0)
	}
	return boxSize, nil
}

// cellIndex maps grid coordinates to the row-major index in the
// values slice.
func (g *Grid) cellIndex(row, col int) int {
	return row*g.size + col
}

// boxOrigin returns the top-left coordinates of the box that
// contains the given cell.
func (g *Grid) boxOrigin(row, col int) (int, int) {
	return (row / g.boxSize) * g.boxSize, (col / g.boxSize) * g.boxSize
}

// inBounds reports whether the coordinates name a cell of the
// grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

/*

Errors

*/

func sizeError(val int, cond ErrorCondition, limit int) Error {
	err := Error{
		Scope:     GridScope,
		Structure: AttributeValueStructure,
		Attribute: SizeAttribute,
		Condition: cond,
		Values:    ErrorData{val},
	}
	if cond == TooSmallCondition || cond == TooLargeCondition {
		err.Values = append(err.Values, limit)
	}
	return err
}
