// Package score derives per-row outcome flags for the four question types
// and reduces them to fractional pass rates.
package score

// Validatable is implemented by every task record shape
type Validatable interface {
	Valid() bool
}

// FilterValid returns the subsequence of records marked usable for scoring.
// Order and row identity are preserved so derived flags stay attached to
// the right record. Everything downstream of the store operates on
// filtered rows only.
func FilterValid[T Validatable](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.Valid() {
			out = append(out, r)
		}
	}
	return out
}
