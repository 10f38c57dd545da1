package show

import "github.com/user-none/infoscreens/screen"

// SumRule limits the sum of the selected option indexes of some groups.
// Groups with no selection count as zero.
type SumRule struct {
	// Tab is the collection tab the groups belong to. Ignored for plain
	// option screens.
	Tab     int
	Groups  []int
	Min     int
	Max     int
	TooFew  string
	TooMany string
}

type tabSelector interface {
	SelectionFor(tab, group int) int
}

type selector interface {
	Selection(group int) int
}

// Sum adds up the selections of the rule's groups on s.
func (r SumRule) Sum(s screen.Screen) int {
	sum := 0
	for _, g := range r.Groups {
		v := screen.NoSelection
		switch sel := s.(type) {
		case tabSelector:
			v = sel.SelectionFor(r.Tab, g)
		case selector:
			v = sel.Selection(g)
		}
		if v > 0 {
			sum += v
		}
	}
	return sum
}

// Check returns the message to show when the selections on s break the
// rule, or "" and true when they are within range.
func (r SumRule) Check(s screen.Screen) (string, bool) {
	sum := r.Sum(s)
	switch {
	case sum < r.Min:
		return r.TooFew, false
	case sum > r.Max:
		return r.TooMany, false
	}
	return "", true
}
