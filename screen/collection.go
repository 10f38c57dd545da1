package screen

import (
	"log/slog"

	"github.com/user-none/infoscreens/engine"
)

// Tab is one named option screen inside a Collection.
type Tab struct {
	Name       string
	Groups     [][]string
	HasHeaders bool
	Selections Selections
}

// Collection shows several option screens as tabs. Previous and Next in
// the footer switch tabs; each tab keeps its own selections.
type Collection struct {
	*Options

	tabs     []Tab
	current  int
	tabColor engine.Color
	strip    TabStrip
}

// NewCollection creates an empty collection. cfg.MidText is ignored; the
// option groups come from AddScreen.
func NewCollection(host engine.Host, cfg Config) *Collection {
	cfg.MidText = nil
	c := &Collection{
		Options:  NewOptions(host, cfg, false),
		current:  -1,
		tabColor: DefaultColorTabs,
	}
	_, height := host.ScreenSize()
	c.strip = ComputeTabStrip(height, c.midText.Font, DefaultFontTabs, 0)
	c.layers = append(c.layers, c.drawTabs)
	c.onFooterLink = c.switchTab
	return c
}

// AddScreen appends a tab. Previous and Next are shown once there are two
// or more tabs.
func (c *Collection) AddScreen(name string, groups [][]string, hasHeaders bool) {
	c.tabs = append(c.tabs, Tab{
		Name:       name,
		Groups:     cloneGroups(groups),
		HasHeaders: hasHeaders,
		Selections: NewSelections(len(groups)),
	})
	if c.current == -1 {
		c.current = 0
		c.setBase()
	}
	multi := len(c.tabs) > 1
	c.SetShowPrevious(multi)
	c.SetShowNext(multi)

	maxRows := 0
	for _, t := range c.tabs {
		if len(t.Groups) > 0 {
			maxRows = max(maxRows, len(t.Groups[0]))
		}
	}
	_, height := c.host.ScreenSize()
	c.strip = ComputeTabStrip(height, c.midText.Font, c.strip.Font, maxRows)
}

// Build shows the current tab with its saved selections.
func (c *Collection) Build() {
	c.saveSelections()
	c.setBase()
	c.Options.Build()
}

// Current is the index of the tab showing, or -1 with no tabs.
func (c *Collection) Current() int {
	return c.current
}

// SetCurrent switches to tab i, keeping the selections of the tab left.
// Out-of-range values are ignored.
func (c *Collection) SetCurrent(i int) {
	if i < 0 || i >= len(c.tabs) {
		return
	}
	c.saveSelections()
	c.current = i
	if c.built {
		c.changeScreen()
	} else {
		c.setBase()
	}
}

// Tabs returns the tab names in order.
func (c *Collection) Tabs() []string {
	names := make([]string, len(c.tabs))
	for i, t := range c.tabs {
		names[i] = t.Name
	}
	return names
}

// TabStrip is the tab row geometry.
func (c *Collection) TabStrip() TabStrip {
	return c.strip
}

// SetTabColor sets the colour of tab borders and text.
func (c *Collection) SetTabColor(col engine.Color) {
	c.tabColor = col
}

// SelectionFor returns the selection of group on tab, or NoSelection.
func (c *Collection) SelectionFor(tab, group int) int {
	if tab == c.current {
		return c.Selection(group)
	}
	if tab < 0 || tab >= len(c.tabs) {
		return NoSelection
	}
	return c.tabs[tab].Selections.Get(group)
}

// SetSelectionFor selects value in group on tab. Out-of-range tabs and
// groups are ignored.
func (c *Collection) SetSelectionFor(tab, group, value int) {
	if tab < 0 || tab >= len(c.tabs) {
		return
	}
	c.tabs[tab].Selections.Set(group, value)
	if tab == c.current {
		c.SetSelection(group, value)
	}
}

// switchTab moves one tab back for Previous or forward for Next.
func (c *Collection) switchTab(t FooterTarget) {
	n := len(c.tabs)
	if n == 0 {
		return
	}
	c.saveSelections()
	step := 1
	if t == Previous {
		step = -1
	}
	c.current = (c.current + step + n) % n
	c.changeScreen()
}

func (c *Collection) changeScreen() {
	c.setBase()
	c.nav.SetGrid(c.grid())
	c.Rebuild()
	c.Refresh()
	slog.DebugContext(logCtx, "tab changed",
		slog.Int("tab", c.current),
		slog.String("name", c.tabs[c.current].Name))
}

// saveSelections copies the live selections into the current tab.
func (c *Collection) saveSelections() {
	if c.current < 0 || c.current >= len(c.tabs) {
		return
	}
	c.tabs[c.current].Selections.CopyFrom(c.selections)
}

// setBase loads the current tab into the option screen.
func (c *Collection) setBase() {
	if c.current < 0 || c.current >= len(c.tabs) {
		return
	}
	t := c.tabs[c.current]
	c.SetOptions(t.Groups)
	c.hasHeaders = t.HasHeaders
	c.selections.CopyFrom(t.Selections)
}

// drawTabs draws the tab row, the current tab reversed. A single tab is
// not drawn.
func (c *Collection) drawTabs(img engine.Image) {
	if len(c.tabs) < 2 {
		return
	}
	x := 0
	for i, t := range c.tabs {
		w := c.strip.TabWidth(t.Name)
		text, back := c.tabColor, c.backColor
		if i == c.current {
			text, back = c.backColor, c.tabColor
		}
		img.FillRect(x, c.strip.Y, w, c.strip.Height, back)
		img.DrawRect(x, c.strip.Y, w, c.strip.Height, c.tabColor)
		margin := (w - c.strip.Font.TextWidth(t.Name)) / 2
		img.Print(t.Name, x+margin, c.strip.Y+2, text, c.strip.Font)
		x += w
	}
}
