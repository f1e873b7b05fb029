package puzzle

import (
	"testing"
)

// Make sure error messages never panic and are never empty.  The
// testing of individual cases (and removal of unused errors) we
// leave to the functional testing done of other files.
func TestErrorNoPanicNoEmpty(t *testing.T) {
	defer (func() {
		if e := recover(); e != nil {
			t.Fatalf("Panic during testing: %v", e)
		}
	})()
	for sc := int(UnknownScope); sc <= int(MaxScope); sc++ {
		for st := int(UnknownStructure); st < int(MaxStructure); st++ {
			for at := int(UnknownAttribute); at < int(MaxAttribute); at++ {
				for co := int(UnknownCondition); co < int(MaxCondition); co++ {
					e := Error{
						Scope:     ErrorScope(sc),
						Structure: ErrorStructure(st),
						Attribute: ErrorAttribute(at),
						Condition: ErrorCondition(co),
					}
					m := e.Error()
					t.Log(m)
					if len(m) == 0 {
						t.Errorf("Empty error message for %+v", e)
					}
				}
			}
		}
	}
}

type errorMessageTestcase struct {
	err    Error
	expect string
}

// Pin the exact wording of the messages user-facing code leans
// on, so rewordings are deliberate.
func TestErrorMessages(t *testing.T) {
	tcs := []errorMessageTestcase{
		errorMessageTestcase{
			sizeError(3, TooSmallCondition, 4),
			"Invalid grid: Size (3): Must be at least 4",
		},
		errorMessageTestcase{
			sizeError(26, TooLargeCondition, 25),
			"Invalid grid: Size (26): Must be at most 25",
		},
		errorMessageTestcase{
			sizeError(12, NonSquareCondition, 0),
			"Invalid grid: Size (12): Not a perfect square",
		},
		errorMessageTestcase{
			symbolError("line 2", '5', 4),
			"Cannot decode line 2: Symbol (5): Not a legal symbol in a size 4 grid",
		},
		errorMessageTestcase{
			dimensionError("line 3", 5, 4),
			"Cannot decode line 3: Line (5): Doesn't match the grid size (4)",
		},
		errorMessageTestcase{
			rangeError(RowAttribute, -1, 0, 8),
			"Invalid argument: Row (-1): Must be at least 0",
		},
		errorMessageTestcase{
			rangeError(ValueAttribute, 10, 1, 9),
			"Invalid argument: Value (10): Must be at most 9",
		},
		errorMessageTestcase{
			Error{
				Scope:     RequestScope,
				Structure: ScopeStructure,
				Condition: OccupiedCondition,
				Values:    ErrorData{"(1, 2)", 3},
			},
			"Invalid request: Cell (1, 2) is already assigned value 3",
		},
		errorMessageTestcase{
			Error{
				Scope:     CellScope,
				Structure: ScopeStructure,
				Condition: ConflictCondition,
				Values:    ErrorData{"(1, 2)", 3},
			},
			"Problem in cell (1, 2): Value 3 already appears in the same row, column, or box",
		},
		errorMessageTestcase{
			Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: DifficultyAttribute,
				Condition: InvalidArgumentCondition,
				Values:    ErrorData{"extreme"},
			},
			"Invalid argument: Difficulty (extreme): Required value was missing or invalid",
		},
		errorMessageTestcase{
			Error{
				Scope:     RequestScope,
				Structure: AttributeValueStructure,
				Attribute: URLAttribute,
				Condition: UnknownPuzzleCondition,
				Values:    ErrorData{"/api/x"},
			},
			"Invalid request: Resource path (/api/x): No puzzle with that name",
		},
		errorMessageTestcase{
			Error{Message: "canned message wins"},
			"canned message wins",
		},
	}
	for i, tc := range tcs {
		if m := tc.err.Error(); m != tc.expect {
			t.Errorf("TestErrorMessages case %d: got %q (expected %q)", i+1, m, tc.expect)
		}
	}
}
