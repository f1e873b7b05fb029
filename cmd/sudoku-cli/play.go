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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/gridfile"
	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Interactive puzzle shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listener(cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}
}

/*

shell state

*/

// A playState is the shell's working puzzle and where it came from.
type playState struct {
	grid *puzzle.Grid
	name string
}

func (state *playState) requireGrid(w io.Writer) bool {
	if state.grid == nil {
		fmt.Fprintf(w, "No working puzzle; load or generate one first.\n")
		return false
	}
	return true
}

/*

command listener

*/

// A request is one parsed input line.  The command word is matched
// case-blind; the arguments are kept as typed, because they can be
// file paths.
type request struct {
	inline  string
	command string
	args    []string
}

// listener reads and dispatches commands until quit or EOF.  It
// prompts only when the output is a terminal, so piped sessions and
// tests just see the responses.
func listener(out io.Writer, in io.Reader) error {
	prompt := false
	if f, ok := out.(*os.File); ok {
		if stat, err := f.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			prompt = true
		}
	}

	state := &playState{}
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(out, "sudoku> ")
		}
		if !scanner.Scan() {
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return scanner.Err()
		}
		r := &request{inline: strings.TrimSpace(scanner.Text())}
		fields := strings.Split(r.inline, " ")
		r.command = strings.ToLower(fields[0])
		switch r.command {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		for _, arg := range fields[1:] {
			if len(arg) > 0 {
				r.args = append(r.args, arg)
			}
		}
		dispatchCommand(state, out, r)
	}
}

/*

command dispatch

*/

type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*playState, io.Writer, *request)
}

// the command dispatch info, sorted for easy usage printing
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"generate", "[size [difficulty]]", "make a fresh working puzzle", generateShellHandler},
		{"help", "", "show this command list", helpShellHandler},
		{"load", "file", "load a puzzle file as the working puzzle", loadShellHandler},
		{"save", "file", "write the working puzzle to a file", saveShellHandler},
		{"show", "", "display the working puzzle", showShellHandler},
		{"solve", "", "solve a copy of the working puzzle", solveShellHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

// dispatchCommand runs one request against the shell state.  Handler
// panics are reported as command failures, not shell failures.
func dispatchCommand(state *playState, w io.Writer, r *request) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w)
		return
	}
	ci.handler(state, w, r)
}

func usageHandler(msg string, w io.Writer) {
	if msg != "" {
		fmt.Fprintf(w, "Error: %s\n", msg)
	}
	fmt.Fprintf(w, "Usage:\n")
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-19s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

/*

command handlers

*/

func loadShellHandler(state *playState, w io.Writer, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a file argument", r.command), w)
		return
	}
	path := gridfile.FindRaw(r.args[0])
	g, err := gridfile.Load(path)
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	state.grid, state.name = g, path
	fmt.Fprintf(w, "Loaded %s: %dx%d, %d empty.\n", path, g.Size(), g.Size(), g.Empty())
}

func showShellHandler(state *playState, w io.Writer, r *request) {
	if !state.requireGrid(w) {
		return
	}
	fmt.Fprintf(w, "%s\n", state.grid.DisplayString())
}

func solveShellHandler(state *playState, w io.Writer, r *request) {
	if !state.requireGrid(w) {
		return
	}
	solved := state.grid.Copy()
	start := time.Now()
	if !puzzle.Solve(solved) {
		fmt.Fprintf(w, "No assignment of the empty cells solves this puzzle (searched for %v).\n",
			time.Since(start))
		return
	}
	fmt.Fprintf(w, "%s\nSolved in %v.\n", solved.DisplayString(), time.Since(start))
}

func generateShellHandler(state *playState, w io.Writer, r *request) {
	size := 9
	difficulty := puzzle.Easy
	if len(r.args) > 0 {
		n, err := strconv.Atoi(r.args[0])
		if err != nil {
			usageHandler(fmt.Sprintf("%s size (%s) must be a number", r.command, r.args[0]), w)
			return
		}
		size = n
	}
	if len(r.args) > 1 {
		d, err := puzzle.ParseDifficulty(r.args[1])
		if err != nil {
			usageHandler(fmt.Sprintf("%s difficulty (%s) must be easy, medium, or hard",
				r.command, r.args[1]), w)
			return
		}
		difficulty = d
	}
	g, err := puzzle.NewGenerator(nil).CreatePuzzle(size, difficulty)
	if err != nil {
		fmt.Fprintf(w, "Generate failed: %v\n", err)
		return
	}
	state.grid = g
	state.name = fmt.Sprintf("generated %dx%d %s", size, size, difficulty)
	fmt.Fprintf(w, "Generated a %dx%d %s puzzle, %d empty.\n", size, size, difficulty, g.Empty())
}

func saveShellHandler(state *playState, w io.Writer, r *request) {
	if !state.requireGrid(w) {
		return
	}
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a file argument", r.command), w)
		return
	}
	if err := gridfile.Save(r.args[0], state.grid); err != nil {
		fmt.Fprintf(w, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Wrote %s to %s.\n", state.name, r.args[0])
}

func helpShellHandler(state *playState, w io.Writer, r *request) {
	usageHandler("", w)
}
