package screen

// FooterTarget is one of the three footer hotspots.
type FooterTarget int

const (
	Previous FooterTarget = iota
	Done
	Next
)

// footerOrder is the left-to-right cycle used by Left/Right in the footer.
var footerOrder = []FooterTarget{Previous, Done, Next}

func (t FooterTarget) String() string {
	switch t {
	case Previous:
		return "previous"
	case Done:
		return "done"
	case Next:
		return "next"
	}
	return "unknown"
}

// Location says whether the cursor is on the option grid or in the footer.
type Location int

const (
	InGrid Location = iota
	InFooter
)

func (l Location) String() string {
	if l == InFooter {
		return "footer"
	}
	return "grid"
}

// Cursor is the navigation position. Group and Option are meaningful in the
// grid; Target is meaningful in the footer.
type Cursor struct {
	Group    int
	Option   int
	Location Location
	Target   FooterTarget
}

// Grid describes the option groups the cursor moves over.
type Grid struct {
	// Rows is the line count of each group, header included.
	Rows         []int
	HasHeaders   bool
	ShowPrevious bool
	ShowNext     bool
}

// Groups is the number of option groups.
func (g Grid) Groups() int {
	return len(g.Rows)
}

// Selectable is the number of rows of group that can hold the cursor.
func (g Grid) Selectable(group int) int {
	if group < 0 || group >= len(g.Rows) {
		return 0
	}
	n := g.Rows[group]
	if g.HasHeaders {
		n--
	}
	return max(n, 0)
}

func (g Grid) enabled(t FooterTarget) bool {
	switch t {
	case Previous:
		return g.ShowPrevious
	case Next:
		return g.ShowNext
	}
	return true
}

// Navigator applies directional input to a Cursor over a Grid. It has no
// terminal state; the owning screen decides when input stops.
type Navigator struct {
	Grid   Grid
	Cursor Cursor
}

// Reset puts the cursor on the first row of the first group.
func (n *Navigator) Reset() {
	n.Cursor = Cursor{}
}

// SetGrid replaces the grid and pulls the cursor back inside it.
func (n *Navigator) SetGrid(g Grid) {
	n.Grid = g
	if n.Cursor.Location == InGrid {
		n.clampGroup()
		n.clampOption()
	} else if !g.enabled(n.Cursor.Target) {
		n.Cursor.Target = Done
	}
}

// Down moves to the next row, into the footer past the last row, and out
// of the footer onto the first row.
func (n *Navigator) Down() {
	if n.Grid.Groups() == 0 {
		return
	}
	c := &n.Cursor
	if c.Location == InFooter {
		n.moveOutOfFooter()
		c.Option = 0
		return
	}
	if c.Option+1 >= n.Grid.Selectable(c.Group) {
		n.moveToFooter()
		return
	}
	c.Option++
}

// Up moves to the previous row, into the footer above the first row, and
// out of the footer onto the last row.
func (n *Navigator) Up() {
	if n.Grid.Groups() == 0 {
		return
	}
	c := &n.Cursor
	if c.Location == InFooter {
		n.moveOutOfFooter()
		c.Option = max(n.Grid.Selectable(c.Group)-1, 0)
		return
	}
	if c.Option == 0 {
		n.moveToFooter()
		return
	}
	c.Option--
}

// Left moves to the previous group, or the previous enabled footer target.
func (n *Navigator) Left() {
	n.horizontal(-1)
}

// Right moves to the next group, or the next enabled footer target.
func (n *Navigator) Right() {
	n.horizontal(1)
}

func (n *Navigator) horizontal(step int) {
	groups := n.Grid.Groups()
	if groups == 0 {
		return
	}
	c := &n.Cursor
	if c.Location == InFooter {
		c.Target = n.cycleFooter(c.Target, step)
		return
	}
	c.Group = (c.Group + step + groups) % groups
	n.clampOption()
}

// cycleFooter walks the footer order from t, skipping disabled targets.
// Done is always enabled so the walk terminates.
func (n *Navigator) cycleFooter(t FooterTarget, step int) FooterTarget {
	i := int(t)
	for range footerOrder {
		i = (i + step + len(footerOrder)) % len(footerOrder)
		if n.Grid.enabled(footerOrder[i]) {
			return footerOrder[i]
		}
	}
	return Done
}

// moveToFooter picks the footer target beneath the group being left: the
// first group exits to Previous, the last to Next, anything else to Done.
// With two groups the second is the last, so it exits to Next as well.
func (n *Navigator) moveToFooter() {
	c := &n.Cursor
	c.Location = InFooter
	c.Target = Done
	last := n.Grid.Groups() - 1
	switch {
	case c.Group == 0:
		if n.Grid.ShowPrevious {
			c.Target = Previous
		}
	case c.Group == last:
		if n.Grid.ShowNext {
			c.Target = Next
		}
	}
}

// moveOutOfFooter picks the group above the footer target.
func (n *Navigator) moveOutOfFooter() {
	c := &n.Cursor
	c.Location = InGrid
	switch n.Grid.Groups() {
	case 1:
		c.Group = 0
	case 2:
		if c.Target == Previous {
			c.Group = 0
		} else {
			c.Group = 1
		}
	default:
		c.Group = footerSlots[c.Target]
	}
	n.clampGroup()
}

func (n *Navigator) clampGroup() {
	c := &n.Cursor
	if c.Group >= n.Grid.Groups() {
		c.Group = n.Grid.Groups() - 1
	}
	if c.Group < 0 {
		c.Group = 0
	}
}

func (n *Navigator) clampOption() {
	c := &n.Cursor
	last := n.Grid.Selectable(c.Group) - 1
	if c.Option > last {
		c.Option = last
	}
	if c.Option < 0 {
		c.Option = 0
	}
}
