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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Puzzle Creation

*/

// A Creation gives the parameters for a generated puzzle.  It is
// the body of a creation request; both fields are optional and
// default to a size 9 grid of easy difficulty.
type Creation struct {
	Size       int    `json:"size,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// NewPuzzleHandler is a POST handler that reads a JSON-encoded
// Creation value from the request body and generates a puzzle
// grid to match.  The new grid's Summary is sent as a 200
// response, and the grid itself is returned to the golang
// caller.  Bad creation parameters are sent as a 400 response
// and also returned to the caller.
//
// If we can't decode the posted Creation, we send a 400 response
// and return the error to the caller.
func NewPuzzleHandler(w http.ResponseWriter, r *http.Request) (*Grid, error) {
	dec := json.NewDecoder(r.Body)
	var c Creation
	e := dec.Decode(&c)
	if e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	difficulty := Easy
	if c.Difficulty != "" {
		difficulty, e = ParseDifficulty(c.Difficulty)
		if e != nil {
			err := e.(Error)
			err.Message = err.Error()
			return nil, writeJSON(err, http.StatusBadRequest, w, r)
		}
	}
	size := c.Size
	if size == 0 {
		size = 9
	}
	g, e := NewGenerator(nil).CreatePuzzle(size, difficulty)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"NewPuzzleHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return g, g.SummaryHandler(w, r)
}

/*

Grid Download Methods

*/

// SummaryHandler responds with the grid's Summary.  If we can't
// encode the response to the client successfully, we give both
// the client and the golang caller an Error response.
func (g *Grid) SummaryHandler(w http.ResponseWriter, r *http.Request) error {
	if g == nil {
		return writeError(noPuzzleError, ErrorData{r.URL.Path}, w, r)
	}
	return writeJSON(g.Summary(), http.StatusOK, w, r)
}

// SolutionHandler solves a copy of the grid and responds with
// the solved grid's Summary, returning the solved grid to the
// golang caller (so it can cache it).  A grid with no solution
// gets a 400 response, and the caller gets the Error.
func (g *Grid) SolutionHandler(w http.ResponseWriter, r *http.Request) (*Grid, error) {
	if g == nil {
		return nil, writeError(noPuzzleError, ErrorData{r.URL.Path}, w, r)
	}
	solved := g.Copy()
	if !Solve(solved) {
		err := Error{
			Scope:     GridScope,
			Structure: ScopeStructure,
			Condition: GeneralCondition,
			Values:    ErrorData{"No assignment of the empty cells solves this grid"},
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return solved, writeJSON(solved.Summary(), http.StatusOK, w, r)
}

/*

Grid Updates

*/

// Assign puts a value into an empty cell of the grid, enforcing
// the rules a player plays under: the cell must be on the grid,
// the value must be in [1, size], the cell must be empty, and
// the value must not already appear in the cell's row, column,
// or box.  On success it returns the Step that will undo the
// assignment; on failure the grid is unchanged and the returned
// Error says which rule was broken.
//
// Note that Assign enforces more than Set does: Set is the
// model-level write used by the search and the codecs, Assign is
// the move a player makes.
func (g *Grid) Assign(c Cell) (Step, error) {
	if c.Row < 0 || c.Row >= g.size {
		return Step{}, rangeError(RowAttribute, c.Row, 0, g.size-1)
	}
	if c.Col < 0 || c.Col >= g.size {
		return Step{}, rangeError(ColumnAttribute, c.Col, 0, g.size-1)
	}
	if c.Value < 1 || c.Value > g.size {
		return Step{}, rangeError(ValueAttribute, c.Value, 1, g.size)
	}
	if prior := g.values[g.cellIndex(c.Row, c.Col)]; prior != 0 {
		return Step{}, Error{
			Scope:     RequestScope,
			Structure: ScopeStructure,
			Condition: OccupiedCondition,
			Values:    ErrorData{cellName(c.Row, c.Col), prior},
		}
	}
	if !g.IsValid(c.Row, c.Col, c.Value) {
		return Step{}, Error{
			Scope:     CellScope,
			Structure: ScopeStructure,
			Condition: ConflictCondition,
			Values:    ErrorData{cellName(c.Row, c.Col), c.Value},
		}
	}
	g.values[g.cellIndex(c.Row, c.Col)] = c.Value
	return Step{Row: c.Row, Col: c.Col, Prior: 0, Value: c.Value}, nil
}

// Undo reverses a Step previously returned by Assign, restoring
// the cell to the value it held before.  The cell must still
// hold the step's value; if it doesn't, the step stack and the
// grid have gotten out of sync, which is an internal error.
func (g *Grid) Undo(s Step) error {
	if s.Row < 0 || s.Row >= g.size {
		return rangeError(RowAttribute, s.Row, 0, g.size-1)
	}
	if s.Col < 0 || s.Col >= g.size {
		return rangeError(ColumnAttribute, s.Col, 0, g.size-1)
	}
	if got := g.values[g.cellIndex(s.Row, s.Col)]; got != s.Value {
		return Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: NamedAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{"Undo", fmt.Sprintf(
				"cell %v holds %d, not the recorded %d",
				cellName(s.Row, s.Col), got, s.Value)},
		}
	}
	g.values[g.cellIndex(s.Row, s.Col)] = s.Prior
	return nil
}

// AssignHandler is a POST handler that assigns a posted Cell
// value to the grid.  The client gets the updated Summary (or
// the Error), and the golang caller gets the Step to push on its
// undo stack (or the same Error).
//
// If we can't decode the posted Cell, we send a 400 response and
// return the error to the caller.
//
// If we can't encode the response to the client (which should
// never happen), then the client gets an error response and the
// golang caller gets both the step and the encoding Error (as a
// signal that the client didn't get the update).
func (g *Grid) AssignHandler(w http.ResponseWriter, r *http.Request) (Step, error) {
	if g == nil {
		return Step{}, writeError(noPuzzleError, ErrorData{r.URL.Path}, w, r)
	}
	dec := json.NewDecoder(r.Body)
	var cell Cell
	e := dec.Decode(&cell)
	if e != nil {
		return Step{}, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	step, e := g.Assign(cell)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return Step{}, writeError(errorFormatError, ErrorData{"AssignHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return Step{}, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return step, writeJSON(g.Summary(), http.StatusOK, w, r)
}

/*

Utilities

*/

// ErrorHandler sends an error that arose outside the handlers in
// this package (a session store failure, an empty undo stack) in
// the same JSON form the handlers use, so clients see one error
// shape everywhere.  Errors in the Internal scope (and non-Error
// errors) get a 500 response; the rest get a 400.
func ErrorHandler(e error, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		return writeError(errorFormatError, ErrorData{r.URL.Path, e.Error()}, w, r)
	}
	err.Message = err.Error()
	status := http.StatusBadRequest
	if err.Scope == InternalScope {
		status = http.StatusInternalServerError
	}
	return writeJSON(err, status, w, r)
}

// cellName formats grid coordinates the way the error messages
// quote them.
func cellName(row, col int) string {
	return fmt.Sprintf("(%d, %d)", row, col)
}

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	noPuzzleError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case noPuzzleError:
		status = http.StatusNotFound
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeValueStructure,
			Attribute: URLAttribute,
			Condition: UnknownPuzzleCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: NamedAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: NamedAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
