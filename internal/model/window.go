package model

// Window is a closed integer year interval. A nil endpoint makes the whole
// window undefined for classification purposes.
type Window struct {
	Start *int `json:"start,omitempty"`
	End   *int `json:"end,omitempty"`
}

// Defined reports whether both endpoints are present
func (w Window) Defined() bool {
	return w.Start != nil && w.End != nil
}

// NewWindow builds a defined window from two concrete years
func NewWindow(start, end int) Window {
	return Window{Start: &start, End: &end}
}

// Relation categorizes how an observed window relates to a requested one
type Relation string

const (
	// RelationIn means the observed window lies fully inside the requested one
	RelationIn Relation = "In"

	// RelationOver means the windows overlap without the observed one being
	// contained in the requested one. A superset of the requested window is
	// Over, not In; the asymmetry is part of the scoring contract.
	RelationOver Relation = "Over"

	// RelationOut means the windows share no year at all
	RelationOut Relation = "Out"

	// RelationUndefined means at least one window had no usable endpoints
	RelationUndefined Relation = "Undefined"
)
