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
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

// A Session tracks one client's progress on one puzzle.  Behind
// the scenes the session persists as a cache hash plus a cache
// list of the steps taken, so any process connected to the same
// cache can pick the session up.  The live grid is rebuilt from
// the persisted cell values on load; it is never stored itself.
type Session struct {
	SID     string       `redis:"sid"`     // session identifier
	Name    string       `redis:"name"`    // name of the puzzle being solved
	Size    int          `redis:"size"`    // side length of the puzzle
	Start   string       `redis:"start"`   // wire form of the puzzle as given
	Cells   string       `redis:"cells"`   // wire form of the current state
	Created string       `redis:"created"` // RFC3339, when the session was first saved
	Saved   string       `redis:"saved"`   // RFC3339, when the session was last saved
	Puzzle  *puzzle.Grid `redis:"-"`       // the live grid, decoded from Cells
}

// cache keys for the session hash and its step list
func (session *Session) key() string {
	return "session:" + session.SID
}

func (session *Session) stepsKey() string {
	return session.key() + ":steps"
}

// LoadSession returns the session with the given id.  The second
// return is false when no such session has ever been saved, in
// which case the returned session is a blank one for that id and
// the caller is expected to start a puzzle in it.
func LoadSession(id string) (session *Session, found bool) {
	session = &Session{SID: id}
	body := func(conn redis.Conn) error {
		vals, err := redis.Values(conn.Do("HGETALL", session.key()))
		if err != nil {
			return fmt.Errorf("Cache failure loading session %q: %v", id, err)
		}
		if len(vals) == 0 {
			return nil
		}
		if err := redis.ScanStruct(vals, session); err != nil {
			return fmt.Errorf("Cache failure reading session %q: %v", id, err)
		}
		found = true
		return nil
	}
	rdExecute(body)
	if found {
		session.Puzzle = decodeSessionGrid(session.SID, session.Cells)
	}
	return
}

// Save writes the session hash to the cache, stamping the save
// time.  The step list is untouched.
func (session *Session) Save() {
	session.Saved = time.Now().Format(time.RFC3339)
	if session.Created == "" {
		session.Created = session.Saved
	}
	body := func(conn redis.Conn) error {
		_, err := conn.Do("HSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		if err != nil {
			return fmt.Errorf("Cache failure saving session %q: %v", session.SID, err)
		}
		return nil
	}
	rdExecute(body)
}

// StartPuzzle puts the session on a new puzzle: the given grid
// becomes both the starting point and the current state, and the
// step list is cleared.  Starting over on the same puzzle is just
// starting its original grid again.
func (session *Session) StartPuzzle(name string, g *puzzle.Grid) {
	session.Name = name
	session.Size = g.Size()
	session.Start = g.WireString()
	session.Cells = session.Start
	session.Puzzle = g.Copy()
	session.Saved = time.Now().Format(time.RFC3339)
	if session.Created == "" {
		session.Created = session.Saved
	}
	body := func(conn redis.Conn) error {
		conn.Send("HSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		if _, err := conn.Do("DEL", session.stepsKey()); err != nil {
			return fmt.Errorf("Cache failure starting puzzle in session %q: %v", session.SID, err)
		}
		return nil
	}
	rdExecute(body)
	log.Infof("Session %q now on puzzle %q (size %d).", session.SID, session.Name, session.Size)
}

// Update persists the live grid as the session's current state.
// Call it after every applied assignment or undo.
func (session *Session) Update() {
	session.Cells = session.Puzzle.WireString()
	session.Save()
}

// Original returns a fresh copy of the puzzle the session
// started from.
func (session *Session) Original() *puzzle.Grid {
	return decodeSessionGrid(session.SID, session.Start)
}

// decodeSessionGrid rebuilds a grid from its persisted wire
// form.  A session that fails to decode was corrupted outside
// this package, so that's a panic rather than an error.
func decodeSessionGrid(sid, wire string) *puzzle.Grid {
	g, err := puzzle.DecodeWire(wire)
	if err != nil {
		panic(fmt.Errorf("Session %q holds an unreadable grid %q: %v", sid, wire, err))
	}
	return g
}

/*

step stack

*/

// PushStep appends a step to the session's undo stack.
func (session *Session) PushStep(step puzzle.Step) {
	bytes, err := json.Marshal(step)
	if err != nil {
		panic(fmt.Errorf("Can't encode step %+v: %v", step, err))
	}
	body := func(conn redis.Conn) error {
		if _, err := conn.Do("RPUSH", session.stepsKey(), bytes); err != nil {
			return fmt.Errorf("Cache failure pushing step for session %q: %v", session.SID, err)
		}
		return nil
	}
	rdExecute(body)
}

// PopStep removes and returns the most recent step.  The second
// return is false when there are no steps left to undo.
func (session *Session) PopStep() (step puzzle.Step, ok bool) {
	var bytes []byte
	body := func(conn redis.Conn) error {
		b, err := redis.Bytes(conn.Do("LINDEX", session.stepsKey(), -1))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Cache failure reading steps of session %q: %v", session.SID, err)
		}
		bytes = b
		if _, err := conn.Do("LTRIM", session.stepsKey(), 0, -2); err != nil {
			return fmt.Errorf("Cache failure popping step of session %q: %v", session.SID, err)
		}
		return nil
	}
	rdExecute(body)
	if bytes == nil {
		return
	}
	if err := json.Unmarshal(bytes, &step); err != nil {
		panic(fmt.Errorf("Session %q holds an unreadable step %q: %v", session.SID, bytes, err))
	}
	ok = true
	return
}

// StepCount returns the number of steps available to undo.
func (session *Session) StepCount() int {
	var count int
	body := func(conn redis.Conn) error {
		c, err := redis.Int(conn.Do("LLEN", session.stepsKey()))
		if err != nil {
			return fmt.Errorf("Cache failure counting steps of session %q: %v", session.SID, err)
		}
		count = c
		return nil
	}
	rdExecute(body)
	return count
}

// ClearSteps empties the session's undo stack.
func (session *Session) ClearSteps() {
	body := func(conn redis.Conn) error {
		if _, err := conn.Do("DEL", session.stepsKey()); err != nil {
			return fmt.Errorf("Cache failure clearing steps of session %q: %v", session.SID, err)
		}
		return nil
	}
	rdExecute(body)
}
