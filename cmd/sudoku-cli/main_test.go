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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/gridfile"
)

var (
	simpleLines = "1.3.\n.3.1\n3.1.\n.1.3\n"
	noSolution  = ".234\n1...\n....\n....\n"
)

/*

shell listener

*/

// runShell feeds one scripted session to the listener and returns
// everything it wrote.
func runShell(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := listener(&out, strings.NewReader(input)); err != nil {
		t.Fatalf("Listener failed on %q: %v", input, err)
	}
	return out.String()
}

func TestNullInput(t *testing.T) {
	var out bytes.Buffer
	if err := listener(&out, &bytes.Buffer{}); err != nil {
		t.Errorf("Listener failed on null input: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Null input produced output: %q", out.String())
	}
}

func TestQuitStopsListener(t *testing.T) {
	body := runShell(t, "help\nquit\nhelp\n")
	if n := strings.Count(body, "Usage:"); n != 1 {
		t.Errorf("Expected 1 usage listing before quit, got %d: %q", n, body)
	}
	if !strings.Contains(body, "'quit' or EOF") {
		t.Errorf("Usage listing is missing the exit line: %q", body)
	}
}

func TestUnknownCommand(t *testing.T) {
	body := runShell(t, "frobnicate\n")
	if !strings.Contains(body, `"frobnicate" is not a known command`) {
		t.Errorf("No unknown-command message: %q", body)
	}
	if !strings.Contains(body, "Usage:") {
		t.Errorf("No usage listing after unknown command: %q", body)
	}
}

func TestNoWorkingPuzzle(t *testing.T) {
	body := runShell(t, "show\nsolve\nsave anywhere.txt\n")
	if n := strings.Count(body, "No working puzzle"); n != 3 {
		t.Errorf("Expected 3 missing-puzzle complaints, got %d: %q", n, body)
	}
}

func TestGenerateShowSolve(t *testing.T) {
	body := runShell(t, "generate 4 easy\nshow\nsolve\n")
	if !strings.Contains(body, "Generated a 4x4 easy puzzle, 12 empty.") {
		t.Errorf("No generation report: %q", body)
	}
	if !strings.Contains(body, "|") {
		t.Errorf("No grid display: %q", body)
	}
	if !strings.Contains(body, "Solved in") {
		t.Errorf("No solve report: %q", body)
	}
}

func TestGenerateBadArguments(t *testing.T) {
	body := runShell(t, "generate four\ngenerate 4 brutal\ngenerate 5\n")
	if !strings.Contains(body, "must be a number") {
		t.Errorf("Non-numeric size was not rejected: %q", body)
	}
	if !strings.Contains(body, "must be easy, medium, or hard") {
		t.Errorf("Unknown difficulty was not rejected: %q", body)
	}
	if !strings.Contains(body, "Generate failed") {
		t.Errorf("Non-square size was not rejected: %q", body)
	}
}

func TestLoadSaveShell(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "simple.txt")
	if err := os.WriteFile(in, []byte(simpleLines), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	out := filepath.Join(dir, "copy.txt")
	body := runShell(t, "load "+in+"\nsave "+out+"\n")
	if !strings.Contains(body, "Loaded "+in+": 4x4, 8 empty.") {
		t.Errorf("No load report: %q", body)
	}
	if !strings.Contains(body, "Wrote "+in+" to "+out+".") {
		t.Errorf("No save report: %q", body)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read saved puzzle: %v", err)
	}
	if string(b) != simpleLines {
		t.Errorf("Saved puzzle differs: %q vs %q", string(b), simpleLines)
	}
}

func TestSolveUnsolvableShell(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "stuck.txt")
	if err := os.WriteFile(in, []byte(noSolution), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	body := runShell(t, "load "+in+"\nsolve\n")
	if !strings.Contains(body, "No assignment of the empty cells solves this puzzle") {
		t.Errorf("Unsolvable puzzle was not reported: %q", body)
	}
}

/*

cobra commands

*/

// runCommand executes the root command against a scratch data
// directory and returns the combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeRaw places a puzzle fixture where the data directory
// conventions expect it.
func writeRaw(t *testing.T, dir, name, content string) string {
	t.Helper()
	raw := filepath.Join(dir, "raw")
	if err := os.MkdirAll(raw, 0755); err != nil {
		t.Fatalf("Failed to make raw directory: %v", err)
	}
	path := filepath.Join(raw, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "simple.txt", simpleLines)
	body, err := runCommand(t, "--data", dir, "solve", "simple.txt")
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !strings.Contains(body, "Solved ") {
		t.Errorf("No solve report: %q", body)
	}
	solution := filepath.Join(dir, "resolved", "simple_solution.txt")
	if !strings.Contains(body, "Wrote the solution to "+solution) {
		t.Errorf("No solution-file report: %q", body)
	}
	g, err := gridfile.Load(solution)
	if err != nil {
		t.Fatalf("Failed to load the solution file: %v", err)
	}
	if g.Empty() != 0 || !g.Solved() {
		t.Errorf("Solution file is not solved: %d empty", g.Empty())
	}
}

func TestSolveCommandNoSave(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "simple.txt", simpleLines)
	if _, err := runCommand(t, "--data", dir, "solve", "simple.txt", "--no-save"); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	solution := filepath.Join(dir, "resolved", "simple_solution.txt")
	if _, err := os.Stat(solution); err == nil {
		t.Errorf("Solution file was written despite --no-save: %s", solution)
	}
}

func TestSolveCommandUnsolvable(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "stuck.txt", noSolution)
	_, err := runCommand(t, "--data", dir, "solve", "stuck.txt")
	if err == nil {
		t.Fatalf("Unsolvable puzzle did not fail the command")
	}
	if !strings.Contains(err.Error(), "has no solution") {
		t.Errorf("Unexpected failure: %v", err)
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	body, err := runCommand(t, "--data", dir,
		"generate", "--size", "4", "--difficulty", "medium", "--seed", "42")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	path := filepath.Join(dir, "raw", "sudoku_4x4_medium.txt")
	if !strings.Contains(body, path) {
		t.Errorf("No generation report for %s: %q", path, body)
	}
	g, err := gridfile.Load(path)
	if err != nil {
		t.Fatalf("Failed to load the generated puzzle: %v", err)
	}
	if g.Size() != 4 {
		t.Errorf("Generated puzzle has size %d", g.Size())
	}
	if g.Empty() != 12 {
		t.Errorf("Generated puzzle has %d empty cells, expected 12", g.Empty())
	}
}

func TestBatchCommandRefusesHugeSizes(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "--data", dir, "batch", "--sizes", "25")
	if err == nil {
		t.Fatalf("Batch accepted size 25")
	}
	if !strings.Contains(err.Error(), "refused") {
		t.Errorf("Unexpected failure: %v", err)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCommand(t, "--data", dir, "batch", "--sizes", "4", "--seed", "7"); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	for _, name := range []string{
		"test_sudoku_4x4_easy.txt",
		"test_sudoku_4x4_medium.txt",
		"test_sudoku_4x4_hard.txt",
	} {
		path := filepath.Join(dir, "raw", name)
		if _, err := gridfile.Load(path); err != nil {
			t.Errorf("Batch puzzle %s is missing or corrupt: %v", name, err)
		}
	}
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	wires := filepath.Join(dir, "wires.txt")
	content := "1.3..3.13.1..1.3\n\n3.1..1.31.3..3.1\n"
	if err := os.WriteFile(wires, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	body, err := runCommand(t, "--data", dir, "import", wires)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !strings.Contains(body, "Imported 2 grids") {
		t.Errorf("No import report: %q", body)
	}
	for _, name := range []string{"wires_1.txt", "wires_2.txt"} {
		g, err := gridfile.Load(filepath.Join(dir, "raw", name))
		if err != nil {
			t.Fatalf("Imported puzzle %s is missing or corrupt: %v", name, err)
		}
		if g.Size() != 4 {
			t.Errorf("Imported puzzle %s has size %d", name, g.Size())
		}
	}
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "simple.txt", simpleLines)
	body, err := runCommand(t, "--data", dir, "show", "simple.txt")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if !strings.Contains(body, "| 1 .| 3 .|") {
		t.Errorf("No grid display: %q", body)
	}
}
