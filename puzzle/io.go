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
	"strings"
)

/*

Print forms of grid values

*/

var (
	valueStrings = []string{
		".", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
		"U", "V", "W", "X", "Y", "Z",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

// symbolValue decodes one cell symbol for a grid of the given
// size.  "." is empty, "1"-"9" are themselves, and letters carry
// the values 10 through 35 (lowercase reads the same as
// uppercase).  A symbol outside the alphabet, or one whose value
// exceeds the grid size, gets an InvalidSymbol error.
func symbolValue(what string, c rune, size int) (int, error) {
	var v int
	switch {
	case c == '.':
		return 0, nil
	case c >= '1' && c <= '9':
		v = int(c - '0')
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	default:
		return 0, symbolError(what, c, size)
	}
	if v > size {
		return 0, symbolError(what, c, size)
	}
	return v, nil
}

/*

Line form

One line per row, one symbol per cell.  This is the file format:
the line count fixes the grid size, so no size declaration is
needed anywhere in the text.  Readers ignore blank lines and
spaces inside lines; writers emit neither.

*/

// DecodeLines builds a grid from its line-based text form.
// Blank lines and spaces within lines are ignored; the remaining
// line count must be a legal grid size and every line must hold
// exactly that many symbols.
func DecodeLines(lines []string) (*Grid, error) {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.ReplaceAll(line, " ", ""))
		if line != "" {
			rows = append(rows, line)
		}
	}
	size := len(rows)
	boxSize, err := checkSize(size)
	if err != nil {
		return nil, err
	}
	values := make([]int, size*size)
	for i, row := range rows {
		what := fmt.Sprintf("line %d", i+1)
		symbols := []rune(row)
		if len(symbols) != size {
			return nil, dimensionError(what, len(symbols), size)
		}
		for j, c := range symbols {
			v, err := symbolValue(what, c, size)
			if err != nil {
				return nil, err
			}
			values[i*size+j] = v
		}
	}
	return newFromValues(size, boxSize, values), nil
}

// DecodeString is DecodeLines over a newline-separated string.
func DecodeString(s string) (*Grid, error) {
	return DecodeLines(strings.Split(s, "\n"))
}

// EncodeLines returns the line-based text form of the grid, one
// string per row, uppercase symbols.
func (g *Grid) EncodeLines() []string {
	lines := make([]string, g.size)
	for row := 0; row < g.size; row++ {
		var b strings.Builder
		for col := 0; col < g.size; col++ {
			b.WriteString(vstr(g.values[g.cellIndex(row, col)]))
		}
		lines[row] = b.String()
	}
	return lines
}

// String returns the line-based text form as one
// newline-terminated string.
func (g *Grid) String() string {
	return strings.Join(g.EncodeLines(), "\n") + "\n"
}

/*

Wire form

A whole grid on a single line, size*size symbols in row-major
order (81 characters for a 9x9).  This is the import format for
puzzle collections and the form grids take in storage keys.

*/

// DecodeWire builds a grid from its one-line form.  The length
// of the line fixes the cell count, which must be the fourth
// power the geometry demands: a perfect square whose root is a
// legal grid size.
func DecodeWire(s string) (*Grid, error) {
	line := strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	if line == "" {
		return nil, Error{
			Scope:     DecodeScope,
			Structure: ScopeStructure,
			Condition: InvalidArgumentCondition,
			Values:    ErrorData{"wire form"},
		}
	}
	symbols := []rune(line)
	size, ok := findIntSquareRoot(len(symbols))
	if !ok {
		return nil, Error{
			Scope:     DecodeScope,
			Structure: AttributeValueStructure,
			Attribute: SizeAttribute,
			Condition: NonSquareCondition,
			Values:    ErrorData{"wire form", len(symbols)},
		}
	}
	boxSize, err := checkSize(size)
	if err != nil {
		return nil, err
	}
	values := make([]int, size*size)
	for i, c := range symbols {
		what := fmt.Sprintf("position %d", i+1)
		v, err := symbolValue(what, c, size)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return newFromValues(size, boxSize, values), nil
}

// WireString returns the one-line form of the grid.
func (g *Grid) WireString() string {
	var b strings.Builder
	b.Grow(len(g.values))
	for _, v := range g.values {
		b.WriteString(vstr(v))
	}
	return b.String()
}

/*

Pretty-printed grids in strings, for people.

*/

// DisplayString gives a box-ruled view of the grid.  Cells are
// two characters wide through size 9 and three beyond that, with
// a dashed rule between box bands and a bar between box columns.
func (g *Grid) DisplayString() (result string) {
	if g == nil {
		return
	}
	cellWidth := 2
	if g.size > 9 {
		cellWidth = 3
	}
	separator := strings.Repeat("-", g.size*cellWidth+g.boxSize+1)
	result += separator + "\n"
	for row := 0; row < g.size; row++ {
		if row > 0 && row%g.boxSize == 0 {
			result += separator + "\n"
		}
		result += "|"
		for col := 0; col < g.size; col++ {
			if col > 0 && col%g.boxSize == 0 {
				result += "|"
			}
			if g.size > 9 {
				result += fmt.Sprintf(" %2s", vstr(g.values[g.cellIndex(row, col)]))
			} else {
				result += " " + vstr(g.values[g.cellIndex(row, col)])
			}
		}
		result += "|\n"
	}
	result += separator
	return
}

/*

Errors

*/

func symbolError(what string, c rune, size int) Error {
	return Error{
		Scope:     DecodeScope,
		Structure: AttributeValueStructure,
		Attribute: SymbolAttribute,
		Condition: InvalidSymbolCondition,
		Values:    ErrorData{what, string(c), size},
	}
}

func dimensionError(what string, got, want int) Error {
	return Error{
		Scope:     DecodeScope,
		Structure: AttributeValueStructure,
		Attribute: LineAttribute,
		Condition: DimensionMismatchCondition,
		Values:    ErrorData{what, got, want},
	}
}
