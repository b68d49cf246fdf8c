// Package nav implements the two-mode navigation state of the launcher: the
// query field either has input focus, or a ranked candidate is focused.
package nav

import (
	"fmt"
	"math"
)

// maxIndex keeps Position() representable as an int.
const maxIndex = math.MaxInt - 1

// Focus is either EditingQuery or a candidate index into the ranked view.
// The zero value is EditingQuery.
type Focus struct {
	candidate bool
	index     int
}

// EditingQuery means the query field has input focus.
var EditingQuery = Focus{}

// Candidate focuses the ranked candidate at the 0-based index.
func Candidate(index int) Focus {
	if index < 0 {
		index = 0
	}
	if index > maxIndex {
		index = maxIndex
	}
	return Focus{candidate: true, index: index}
}

// FromPosition converts the 1-indexed position encoding (0 is the query
// field) into a Focus. Negative positions are treated as 0.
func FromPosition(pos int) Focus {
	if pos <= 0 {
		return EditingQuery
	}
	return Candidate(pos - 1)
}

// Position returns 0 for EditingQuery and index+1 for a candidate.
func (f Focus) Position() int {
	if !f.candidate {
		return 0
	}
	return f.index + 1
}

func (f Focus) IsEditing() bool { return !f.candidate }

// Index returns the 0-based candidate index, if a candidate is focused.
func (f Focus) Index() (int, bool) {
	if !f.candidate {
		return -1, false
	}
	return f.index, true
}

// Next steps one row down, saturating at the largest position.
func (f Focus) Next() Focus {
	if !f.candidate {
		return Candidate(0)
	}
	if f.index >= maxIndex {
		return f
	}
	return Candidate(f.index + 1)
}

// Prev steps one row up. The first candidate steps back to the query field,
// which is the floor.
func (f Focus) Prev() Focus {
	if !f.candidate {
		return f
	}
	if f.index == 0 {
		return EditingQuery
	}
	return Candidate(f.index - 1)
}

func (f Focus) String() string {
	if !f.candidate {
		return "query"
	}
	return fmt.Sprintf("candidate[%d]", f.index)
}
