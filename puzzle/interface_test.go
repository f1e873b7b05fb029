package puzzle

import (
	"encoding/json"
	"testing"
)

func TestSummary(t *testing.T) {
	g := testGrid(t, 4, solveSimpleStartValues)
	s := g.Summary()
	if s.Size != 4 || s.BoxSize != 2 || s.Empty != 8 || s.Solved {
		t.Errorf("TestSummary: got %+v", s)
	}
	// the summary owns its values
	s.Values[0] = 4
	if g.At(0, 0) != 1 {
		t.Errorf("TestSummary: mutating the summary changed the grid")
	}
	g = testGrid(t, 4, solveSimpleSolvedValues)
	s = g.Summary()
	if s.Empty != 0 || !s.Solved {
		t.Errorf("TestSummary: solved grid summarized as %+v", s)
	}
	g = testGrid(t, 4, latinFourValues)
	s = g.Summary()
	if s.Empty != 0 || s.Solved {
		t.Errorf("TestSummary: bad latin square summarized as %+v", s)
	}
}

type wireJSONTestcase struct {
	obj    interface{}
	expect string
}

// The JSON forms are a client contract; pin them exactly,
// including which empty fields vanish.
func TestWireJSON(t *testing.T) {
	start := testGrid(t, 4, solveSimpleStartValues)
	solved := testGrid(t, 4, solveSimpleSolvedValues)
	tcs := []wireJSONTestcase{
		wireJSONTestcase{
			start.Summary(),
			`{"size":4,"boxSize":2,"values":[1,0,3,0,0,3,0,1,3,0,1,0,0,1,0,3],"empty":8}`,
		},
		wireJSONTestcase{
			solved.Summary(),
			`{"size":4,"boxSize":2,"values":[1,2,3,4,4,3,2,1,3,4,1,2,2,1,4,3],"solved":true}`,
		},
		wireJSONTestcase{
			Cell{Row: 1, Col: 2, Value: 3},
			`{"row":1,"col":2,"value":3}`,
		},
		wireJSONTestcase{
			Step{Row: 1, Col: 2, Prior: 0, Value: 3},
			`{"row":1,"col":2,"prior":0,"value":3}`,
		},
		wireJSONTestcase{
			Creation{Size: 9, Difficulty: "hard"},
			`{"size":9,"difficulty":"hard"}`,
		},
		wireJSONTestcase{
			Creation{},
			`{}`,
		},
	}
	for i, tc := range tcs {
		bytes, e := json.Marshal(tc.obj)
		if e != nil {
			t.Fatalf("TestWireJSON case %d: Failed to encode: %v", i+1, e)
		}
		if string(bytes) != tc.expect {
			t.Errorf("TestWireJSON case %d: got %s (expected %s)", i+1, bytes, tc.expect)
		}
	}
}

func TestStepRoundTrip(t *testing.T) {
	in := Step{Row: 3, Col: 0, Prior: 0, Value: 2}
	bytes, e := json.Marshal(in)
	if e != nil {
		t.Fatalf("TestStepRoundTrip: Failed to encode: %v", e)
	}
	var out Step
	if e := json.Unmarshal(bytes, &out); e != nil {
		t.Fatalf("TestStepRoundTrip: Failed to decode: %v", e)
	}
	if out != in {
		t.Errorf("TestStepRoundTrip: got %+v (expected %+v)", out, in)
	}
}
