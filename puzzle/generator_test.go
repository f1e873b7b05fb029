package puzzle

import (
	"math/rand"
	"reflect"
	"testing"
)

type difficultyStringTestcase struct {
	d      Difficulty
	expect string
}

func TestDifficultyString(t *testing.T) {
	tcs := []difficultyStringTestcase{
		difficultyStringTestcase{Easy, "easy"},
		difficultyStringTestcase{Medium, "medium"},
		difficultyStringTestcase{Hard, "hard"},
		difficultyStringTestcase{Difficulty(-1), "unknown"},
		difficultyStringTestcase{Difficulty(3), "unknown"},
	}
	for i, tc := range tcs {
		if s := tc.d.String(); s != tc.expect {
			t.Errorf("TestDifficultyString case %d: got %q (expected %q)", i+1, s, tc.expect)
		}
	}
}

type parseDifficultyTestcase struct {
	name   string
	ok     bool
	expect Difficulty
}

func TestParseDifficulty(t *testing.T) {
	tcs := []parseDifficultyTestcase{
		parseDifficultyTestcase{"easy", true, Easy},
		parseDifficultyTestcase{"EASY", true, Easy},
		parseDifficultyTestcase{"Medium", true, Medium},
		parseDifficultyTestcase{" hard ", true, Hard},
		parseDifficultyTestcase{"", false, 0},
		parseDifficultyTestcase{"extreme", false, 0},
	}
	for i, tc := range tcs {
		d, e := ParseDifficulty(tc.name)
		if tc.ok {
			if e != nil {
				t.Fatalf("TestParseDifficulty case %d: got error %v", i+1, e)
			}
			if d != tc.expect {
				t.Errorf("TestParseDifficulty case %d: got %v (expected %v)", i+1, d, tc.expect)
			}
		} else {
			if e == nil {
				t.Fatalf("TestParseDifficulty case %d: no error for %q", i+1, tc.name)
			}
			err, ok := e.(Error)
			if !ok || err.Condition != InvalidArgumentCondition || err.Attribute != DifficultyAttribute {
				t.Errorf("TestParseDifficulty case %d: wrong error: %+v", i+1, e)
			}
		}
	}
}

type removalCountTestcase struct {
	sidelen int
	d       Difficulty
	expect  int
}

func TestRemovalCount(t *testing.T) {
	tcs := []removalCountTestcase{
		// every tier on a 4x4 clamps to one row's worth left
		removalCountTestcase{4, Easy, 12},
		removalCountTestcase{4, Medium, 12},
		removalCountTestcase{4, Hard, 12},
		removalCountTestcase{9, Easy, 63},
		removalCountTestcase{9, Medium, 72},
		removalCountTestcase{9, Hard, 72}, // 81 clamps to 72
		removalCountTestcase{16, Easy, 112},
		removalCountTestcase{16, Medium, 128},
		removalCountTestcase{16, Hard, 144},
		removalCountTestcase{25, Easy, 175},
		removalCountTestcase{25, Hard, 225},
	}
	for i, tc := range tcs {
		if count := removalCount(tc.sidelen, tc.d); count != tc.expect {
			t.Errorf("TestRemovalCount case %d: got %d (expected %d)", i+1, count, tc.expect)
		}
	}
}

func TestCompleteGrid(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gen := NewGenerator(rand.New(rand.NewSource(seed)))
		g, e := gen.CompleteGrid(9)
		if e != nil {
			t.Fatalf("TestCompleteGrid seed %d: got error %v", seed, e)
		}
		if g.Empty() != 0 {
			t.Errorf("TestCompleteGrid seed %d: grid has %d empty cells", seed, g.Empty())
		}
		if !g.Solved() {
			t.Errorf("TestCompleteGrid seed %d: grid is not valid:\n%v", seed, g.values)
		}
	}
	// bad sizes fail the same way New does
	gen := NewGenerator(rand.New(rand.NewSource(0)))
	if _, e := gen.CompleteGrid(7); e == nil {
		t.Errorf("TestCompleteGrid: no error for size 7")
	}
	if _, e := gen.CompleteGrid(36); e == nil {
		t.Errorf("TestCompleteGrid: no error for size 36")
	}
}

func TestCompleteGridDeterministic(t *testing.T) {
	first, e := NewGenerator(rand.New(rand.NewSource(17))).CompleteGrid(9)
	if e != nil {
		t.Fatalf("TestCompleteGridDeterministic: got error %v", e)
	}
	second, e := NewGenerator(rand.New(rand.NewSource(17))).CompleteGrid(9)
	if e != nil {
		t.Fatalf("TestCompleteGridDeterministic: got error %v", e)
	}
	if !reflect.DeepEqual(first.values, second.values) {
		t.Errorf("TestCompleteGridDeterministic: seed 17 gave two different grids:\n%v\n%v",
			first.values, second.values)
	}
	other, e := NewGenerator(rand.New(rand.NewSource(18))).CompleteGrid(9)
	if e != nil {
		t.Fatalf("TestCompleteGridDeterministic: got error %v", e)
	}
	if reflect.DeepEqual(first.values, other.values) {
		t.Errorf("TestCompleteGridDeterministic: seeds 17 and 18 gave the same grid")
	}
}

type createPuzzleTestcase struct {
	sidelen int
	d       Difficulty
}

func TestCreatePuzzle(t *testing.T) {
	tcs := []createPuzzleTestcase{
		createPuzzleTestcase{4, Easy},
		createPuzzleTestcase{4, Medium},
		createPuzzleTestcase{4, Hard},
		createPuzzleTestcase{9, Easy},
		createPuzzleTestcase{9, Medium},
		createPuzzleTestcase{9, Hard},
	}
	for i, tc := range tcs {
		gen := NewGenerator(rand.New(rand.NewSource(int64(i))))
		g, e := gen.CreatePuzzle(tc.sidelen, tc.d)
		if e != nil {
			t.Fatalf("TestCreatePuzzle case %d: got error %v", i+1, e)
		}
		if want := removalCount(tc.sidelen, tc.d); g.Empty() != want {
			t.Errorf("TestCreatePuzzle case %d: %d empty cells (expected %d)",
				i+1, g.Empty(), want)
		}
		// carved from a complete grid, so at least one solution
		work := g.Copy()
		if !Solve(work) {
			t.Errorf("TestCreatePuzzle case %d: puzzle has no solution:\n%v", i+1, g.values)
		}
	}
	gen := NewGenerator(rand.New(rand.NewSource(0)))
	if _, e := gen.CreatePuzzle(5, Easy); e == nil {
		t.Errorf("TestCreatePuzzle: no error for size 5")
	}
}

func TestCreatePuzzleDeterministic(t *testing.T) {
	first, e := NewGenerator(rand.New(rand.NewSource(23))).CreatePuzzle(9, Medium)
	if e != nil {
		t.Fatalf("TestCreatePuzzleDeterministic: got error %v", e)
	}
	second, e := NewGenerator(rand.New(rand.NewSource(23))).CreatePuzzle(9, Medium)
	if e != nil {
		t.Fatalf("TestCreatePuzzleDeterministic: got error %v", e)
	}
	if !reflect.DeepEqual(first.values, second.values) {
		t.Errorf("TestCreatePuzzleDeterministic: seed 23 gave two different puzzles:\n%v\n%v",
			first.values, second.values)
	}
}

type createUniqueTestcase struct {
	sidelen int
	d       Difficulty
}

func TestCreatePuzzleUnique(t *testing.T) {
	tcs := []createUniqueTestcase{
		createUniqueTestcase{4, Easy},
		createUniqueTestcase{4, Hard},
		createUniqueTestcase{9, Easy},
	}
	for i, tc := range tcs {
		gen := NewGenerator(rand.New(rand.NewSource(int64(i))))
		g, e := gen.CreatePuzzleUnique(tc.sidelen, tc.d)
		if e != nil {
			t.Fatalf("TestCreatePuzzleUnique case %d: got error %v", i+1, e)
		}
		if count := CountSolutions(g, 2); count != 1 {
			t.Errorf("TestCreatePuzzleUnique case %d: puzzle has %d solutions", i+1, count)
		}
		// may stop short of the tier target, never beyond it
		if want := removalCount(tc.sidelen, tc.d); g.Empty() > want {
			t.Errorf("TestCreatePuzzleUnique case %d: %d empty cells (tier wants at most %d)",
				i+1, g.Empty(), want)
		}
	}
}

func TestNewGeneratorNilSource(t *testing.T) {
	g, e := NewGenerator(nil).CompleteGrid(4)
	if e != nil {
		t.Fatalf("TestNewGeneratorNilSource: got error %v", e)
	}
	if !g.Solved() {
		t.Errorf("TestNewGeneratorNilSource: grid is not valid:\n%v", g.values)
	}
}
