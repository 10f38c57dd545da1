package screen

// NoSelection marks a group with nothing chosen.
const NoSelection = -1

// Selections holds the chosen row per option group.
type Selections []int

// NewSelections returns n groups with nothing selected.
func NewSelections(n int) Selections {
	s := make(Selections, n)
	for i := range s {
		s[i] = NoSelection
	}
	return s
}

// Get returns the selection for group, or NoSelection when out of range.
func (s Selections) Get(group int) int {
	if group < 0 || group >= len(s) {
		return NoSelection
	}
	return s[group]
}

// Set stores value for group. Out-of-range groups are ignored.
func (s Selections) Set(group, value int) bool {
	if group < 0 || group >= len(s) {
		return false
	}
	s[group] = value
	return true
}

// Clone returns an independent copy.
func (s Selections) Clone() Selections {
	if s == nil {
		return nil
	}
	return append(Selections(nil), s...)
}

// CopyFrom overwrites the overlapping prefix of s with src.
func (s Selections) CopyFrom(src Selections) {
	copy(s, src)
}
