// Package interval classifies the relationship between two closed integer
// year windows.
package interval

import (
	"github.com/ppiankov/bibfact/internal/model"
)

// Classify categorizes observed against requested:
//
//   - Undefined when either window is missing an endpoint
//   - In when observed lies fully inside requested
//   - Out when the windows share no year
//   - Over for any remaining overlap
//
// Containment is checked before disjointness, so windows that merely touch
// at a boundary are never Out. An observed window that fully contains the
// requested one is Over, not In; scoring depends on that asymmetry, so do
// not "fix" it.
func Classify(observed, requested model.Window) model.Relation {
	if !observed.Defined() || !requested.Defined() {
		return model.RelationUndefined
	}

	o1, o2 := *observed.Start, *observed.End
	r1, r2 := *requested.Start, *requested.End

	switch {
	case o1 >= r1 && o2 <= r2:
		return model.RelationIn
	case o2 < r1 || o1 > r2:
		return model.RelationOut
	default:
		return model.RelationOver
	}
}
