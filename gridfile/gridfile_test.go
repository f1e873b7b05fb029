package gridfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ErwannLesech/R-solution-de-probl-mes-combinatoires/puzzle"
)

/*

Test Values

*/

var (
	simpleFourLines  = "1.3.\n.3.1\n3.1.\n.1.3\n"
	simpleFourValues = []int{
		1, 0, 3, 0,
		0, 3, 0, 1,
		3, 0, 1, 0,
		0, 1, 0, 3,
	}
	simpleFourWire = "1.3..3.13.1..1.3"
)

func TestLoadSave(t *testing.T) {
	g, err := puzzle.DecodeString(simpleFourLines)
	if err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}

	path := filepath.Join(t.TempDir(), "deep", "nested", "grid.txt")
	if err := Save(path, g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read of saved file failed: %v", err)
	}
	if string(b) != simpleFourLines {
		t.Errorf("Saved file holds %q, expected %q", b, simpleFourLines)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Values(), simpleFourValues) {
		t.Errorf("Loaded values were %v", loaded.Values())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-file.txt")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}

	path := filepath.Join(t.TempDir(), "garbled.txt")
	if err := os.WriteFile(path, []byte("zz\nzz\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load of a garbled file succeeded")
	}
}

func TestDirectory(t *testing.T) {
	t.Setenv(gridsDirectoryEnvVar, "")
	if dir := Directory(); dir != "data" {
		t.Errorf("Default directory was %q", dir)
	}
	t.Setenv(gridsDirectoryEnvVar, "elsewhere")
	if dir := Directory(); dir != "elsewhere" {
		t.Errorf("Directory was %q, expected %q", dir, "elsewhere")
	}
}

type solutionPathTestcase struct {
	in  string
	out string
}

func TestPaths(t *testing.T) {
	t.Setenv(gridsDirectoryEnvVar, "data")
	if p := RawPath("grid.txt"); p != filepath.Join("data", "raw", "grid.txt") {
		t.Errorf("RawPath was %q", p)
	}

	tcs := []solutionPathTestcase{
		solutionPathTestcase{"grid.txt",
			filepath.Join("data", "resolved", "grid_solution.txt")},
		solutionPathTestcase{filepath.Join("data", "raw", "sudoku_9x9_easy.txt"),
			filepath.Join("data", "resolved", "sudoku_9x9_easy_solution.txt")},
		solutionPathTestcase{filepath.Join("somewhere", "else", "puzzle.sudoku"),
			filepath.Join("data", "resolved", "puzzle_solution.txt")},
		solutionPathTestcase{"noext",
			filepath.Join("data", "resolved", "noext_solution.txt")},
	}
	for i, tc := range tcs {
		if p := SolutionPath(tc.in); p != tc.out {
			t.Errorf("TestPaths case %d: SolutionPath(%q) was %q, expected %q",
				i+1, tc.in, p, tc.out)
		}
	}
}

func TestFindRaw(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(gridsDirectoryEnvVar, dir)

	raw := filepath.Join(dir, "raw", "present.txt")
	if err := os.MkdirAll(filepath.Dir(raw), 0755); err != nil {
		t.Fatalf("Failed to create raw directory: %v", err)
	}
	if err := os.WriteFile(raw, []byte(simpleFourLines), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if p := FindRaw(raw); p != raw {
		t.Errorf("Literal path came back as %q", p)
	}
	if p := FindRaw("present.txt"); p != raw {
		t.Errorf("Bare name came back as %q, expected %q", p, raw)
	}
	if p := FindRaw("absent.txt"); p != "absent.txt" {
		t.Errorf("Missing name came back as %q", p)
	}
	under := filepath.Join(dir, "raw", "absent.txt")
	if p := FindRaw(under); p != under {
		t.Errorf("Missing path under the data directory came back as %q", p)
	}

	// a relative name already under the data directory is not
	// looked up a second time
	t.Setenv(gridsDirectoryEnvVar, "datadir")
	rel := filepath.Join("datadir", "raw", "absent.txt")
	if p := FindRaw(rel); p != rel {
		t.Errorf("Relative path under the data directory came back as %q", p)
	}
}

func TestImportWire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wires.txt")
	content := simpleFourWire + "\n\n" +
		strings.Repeat(".", 16) + "\n" + strings.Repeat(".", 81) + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	grids, err := ImportWire(path)
	if err != nil {
		t.Fatalf("ImportWire failed: %v", err)
	}
	if len(grids) != 3 {
		t.Fatalf("ImportWire returned %d grids, expected 3", len(grids))
	}
	if !reflect.DeepEqual(grids[0].Values(), simpleFourValues) {
		t.Errorf("First grid values were %v", grids[0].Values())
	}
	if grids[1].Size() != 4 || grids[1].Empty() != 16 {
		t.Errorf("Second grid is size %d with %d empty cells",
			grids[1].Size(), grids[1].Empty())
	}
	if grids[2].Size() != 9 || grids[2].Empty() != 81 {
		t.Errorf("Third grid is size %d with %d empty cells",
			grids[2].Size(), grids[2].Empty())
	}
}

func TestImportWireErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ImportWire(filepath.Join(dir, "missing.txt")); err == nil {
		t.Errorf("ImportWire of a missing file succeeded")
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := ImportWire(empty); err == nil {
		t.Errorf("ImportWire of an empty file succeeded")
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte(simpleFourWire+"\n123\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	_, err := ImportWire(bad)
	if err == nil {
		t.Fatalf("ImportWire of a bad file succeeded")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Import error was %q", err)
	}
}
