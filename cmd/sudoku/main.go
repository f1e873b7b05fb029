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

// The sudoku command serves the solver web application: the
// solver page at the root, its static resources, and the JSON
// API the page's scripts call.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/client"
	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/storage"
)

var log = logrus.New()

const (
	cookieName        = "sudokuID"
	cookiePath        = "/"
	defaultPuzzleName = "sample-2"
)

/*

session plumbing

*/

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
//
// Browser tabs served over different protocols look like
// different sessions to the browser even when they share the
// endpoint, so the session ID carries the protocol a reverse
// proxy reports in X-Forwarded-Proto, and a cookie minted for
// one protocol is not honored for another.
func getCookie(w http.ResponseWriter, r *http.Request) string {
	proto := "httpx" // absent other indicators, protocol is unknown
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		proto = forwarded
	}

	// check for an existing cookie whose value matches the protocol
	if sc, e := r.Cookie(cookieName); e == nil {
		if rest, ok := strings.CutPrefix(sc.Value, proto+"-"); ok {
			if _, e := uuid.Parse(rest); e == nil {
				return sc.Value
			}
		}
	}

	// no session cookie or not a valid session cookie,
	// start a new session with a new cookie
	sid := proto + "-" + uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: sid, Path: cookiePath})
	return sid
}

// sessionSelect finds the stored session for the request's
// cookie, or starts a new one on the default puzzle.
func sessionSelect(w http.ResponseWriter, r *http.Request) *storage.Session {
	session, found := storage.LoadSession(getCookie(w, r))
	if !found {
		name, g := defaultPuzzle()
		session.StartPuzzle(name, g)
	}
	return session
}

// defaultPuzzle picks the grid a brand-new session starts on:
// the default library puzzle when the library has it, otherwise
// a freshly generated one.
func defaultPuzzle() (string, *puzzle.Grid) {
	if info, found := storage.LookupPuzzle(defaultPuzzleName); found {
		if g, err := info.Grid(); err == nil {
			return info.Name, g
		}
		log.Warnf("Library puzzle %q is corrupt, generating instead.", defaultPuzzleName)
	}
	g, err := puzzle.NewGenerator(nil).CreatePuzzle(9, puzzle.Easy)
	if err != nil {
		panic(err)
	}
	return "generated-9x9-easy", g
}

/*

request handlers

*/

// errorWrapper turns a panic out of a handler (usually a storage
// failure) into the same JSON error shape the puzzle handlers
// produce.
func errorWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				e, ok := rec.(error)
				if !ok {
					e = fmt.Errorf("%v", rec)
				}
				log.Errorf("Panic handling %s %s: %v", r.Method, r.URL.Path, e)
				puzzle.ErrorHandler(puzzle.Error{
					Scope:     puzzle.InternalScope,
					Structure: puzzle.ScopeStructure,
					Condition: puzzle.GeneralCondition,
					Values:    puzzle.ErrorData{e.Error()},
				}, w, r)
			}
		}()
		handler(w, r)
	}
}

// requireMethod rejects requests with the wrong verb before the
// handler sees them.
func requireMethod(method string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, fmt.Sprintf("%s requires %s", r.URL.Path, method),
				http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

func gridHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	session.Puzzle.SummaryHandler(w, r)
}

func assignHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	step, e := session.Puzzle.AssignHandler(w, r)
	if e != nil {
		log.Infof("Assign failed in session %q, no session change.", session.SID)
		return
	}
	session.PushStep(step)
	session.Update()
}

func undoHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	step, ok := session.PopStep()
	if !ok {
		puzzle.ErrorHandler(puzzle.Error{
			Scope:     puzzle.RequestScope,
			Structure: puzzle.ScopeStructure,
			Condition: puzzle.GeneralCondition,
			Values:    puzzle.ErrorData{"No steps to undo"},
		}, w, r)
		return
	}
	if e := session.Puzzle.Undo(step); e != nil {
		puzzle.ErrorHandler(e, w, r)
		return
	}
	session.Update()
	session.Puzzle.SummaryHandler(w, r)
}

func resetHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	session.StartPuzzle(session.Name, session.Original())
	log.Infof("Reset session %q to the start of %q.", session.SID, session.Name)
	session.Puzzle.SummaryHandler(w, r)
}

// solutionHandler answers with the solution of the session's
// original puzzle, consulting the solution cache first and
// filling it on a miss.  The session's own grid is left alone,
// and an unsolvable puzzle is an answer, not a failure.
func solutionHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	wire := session.Original().WireString()
	entry, found := storage.LookupSolution(wire)
	if !found {
		solved, err := puzzle.DecodeWire(wire)
		if err != nil {
			puzzle.ErrorHandler(err, w, r)
			return
		}
		start := time.Now()
		ok := puzzle.Solve(solved)
		entry = &storage.SolutionEntry{
			Puzzle:  wire,
			Solved:  ok,
			Elapsed: time.Since(start),
		}
		if ok {
			entry.Solution = solved.WireString()
		}
		storage.StoreSolution(entry)
		log.Infof("Solved %q for session %q in %v (solvable: %v).",
			session.Name, session.SID, entry.Elapsed, ok)
	}
	w.Header().Set("Content-Type", "application/json")
	if e := json.NewEncoder(w).Encode(entry); e != nil {
		log.Errorf("Couldn't encode solution entry: %v", e)
	}
}

// A newPuzzleRequest asks for a library puzzle by name, or a
// generated one by size and difficulty.
type newPuzzleRequest struct {
	Name       string `json:"name,omitempty"`
	Size       int    `json:"size,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

func newHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	var req newPuzzleRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		puzzle.ErrorHandler(puzzle.Error{
			Scope:     puzzle.RequestScope,
			Structure: puzzle.AttributeStructure,
			Attribute: puzzle.DecodeAttribute,
			Condition: puzzle.GeneralCondition,
			Values:    puzzle.ErrorData{e.Error()},
		}, w, r)
		return
	}

	var name string
	var g *puzzle.Grid
	if req.Name != "" {
		info, found := storage.LookupPuzzle(req.Name)
		if !found {
			puzzle.ErrorHandler(puzzle.Error{
				Scope:     puzzle.RequestScope,
				Structure: puzzle.AttributeValueStructure,
				Attribute: puzzle.NamedAttribute,
				Condition: puzzle.UnknownPuzzleCondition,
				Values:    puzzle.ErrorData{req.Name},
			}, w, r)
			return
		}
		grid, e := info.Grid()
		if e != nil {
			puzzle.ErrorHandler(e, w, r)
			return
		}
		name, g = info.Name, grid
	} else {
		difficulty := puzzle.Easy
		if req.Difficulty != "" {
			var e error
			if difficulty, e = puzzle.ParseDifficulty(req.Difficulty); e != nil {
				puzzle.ErrorHandler(e, w, r)
				return
			}
		}
		size := req.Size
		if size == 0 {
			size = 9
		}
		grid, e := puzzle.NewGenerator(nil).CreatePuzzle(size, difficulty)
		if e != nil {
			puzzle.ErrorHandler(e, w, r)
			return
		}
		name, g = fmt.Sprintf("generated-%dx%d-%s", size, size, difficulty), grid
	}

	session.StartPuzzle(name, g)
	log.Infof("Session %q started puzzle %q.", session.SID, name)
	session.Puzzle.SummaryHandler(w, r)
}

// solverHandler serves the statics and the solver page; anything
// else under the root is a 404.
func solverHandler(w http.ResponseWriter, r *http.Request) {
	if client.StaticHandler(w, r) {
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	session := sessionSelect(w, r)
	body := client.SolverPage(session.SID, session.Name, session.Puzzle.Values())
	hs := w.Header()
	hs.Add("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

/*

server

*/

// serveMux wires all the handlers; the tests serve the same mux
// through httptest.
func serveMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/grid", errorWrapper(requireMethod("GET", gridHandler)))
	mux.HandleFunc("/api/assign", errorWrapper(requireMethod("POST", assignHandler)))
	mux.HandleFunc("/api/undo", errorWrapper(requireMethod("POST", undoHandler)))
	mux.HandleFunc("/api/reset", errorWrapper(requireMethod("POST", resetHandler)))
	mux.HandleFunc("/api/solution", errorWrapper(requireMethod("GET", solutionHandler)))
	mux.HandleFunc("/api/new", errorWrapper(requireMethod("POST", newHandler)))
	mux.HandleFunc("/", errorWrapper(solverHandler))
	return mux
}

// logRequests writes one line per request served.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Infof("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func main() {
	if _, _, err := storage.Connect(); err != nil {
		log.Fatalf("Exiting: can't connect to storage: %v", err)
	}
	defer storage.Close()

	if err := client.VerifyResources(); err != nil {
		log.Fatalf("Exiting: client resource check failed: %v", err)
	}

	// sense the environment port; a bare port number means we are
	// behind a router, no port at all means local development
	port := os.Getenv("PORT")
	if port == "" {
		port = "localhost:8080"
	} else {
		port = ":" + port
	}

	srv := &http.Server{Addr: port, Handler: logRequests(serveMux())}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.Infof("Listening on %s...", port)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		log.Fatalf("Exiting: listener failure: %v", err)
	case s := <-sigc:
		log.Infof("Received %v, shutting down.", s)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Shutdown error: %v", err)
		}
	}
}
