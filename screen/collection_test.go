package screen

import (
	"testing"

	"github.com/user-none/infoscreens/engine"
)

func newGameCollection(st *engine.Stage) *Collection {
	c := NewCollection(st, Config{Titles: []string{"Game Setup"}})
	c.AddScreen("Players", [][]string{{"1 player", "2 players"}}, false)
	c.AddScreen("Game Type", [][]string{{"Coop", "Versus", "Solo"}}, false)
	return c
}

// goToNext walks from the first option to the footer's Next target.
func goToNext(c *Collection) {
	for c.Cursor().Location != InFooter {
		c.MoveCursorUp()
	}
	for c.Cursor().Target != Next {
		c.MoveCursorRight()
	}
}

func TestCollection_SelectionsSurviveTabSwitch(t *testing.T) {
	st, _ := newTestStage()
	c := newGameCollection(st)
	c.Build()
	if !c.ShowPrevious() || !c.ShowNext() {
		t.Fatal("two tabs should show previous and next")
	}

	c.MoveCursorDown()
	c.Select()
	if got := c.Selection(0); got != 1 {
		t.Fatalf("tab 0 selection = %d, want 1", got)
	}

	goToNext(c)
	c.Select()
	if c.Current() != 1 {
		t.Fatalf("current = %d, want 1", c.Current())
	}
	if got := c.SelectionFor(0, 0); got != 1 {
		t.Errorf("saved tab 0 selection = %d, want 1", got)
	}
	if got := c.Selection(0); got != NoSelection {
		t.Errorf("tab 1 selection = %d, want none", got)
	}
	if !hasText(c.Canvas(), "Versus") || hasText(c.Canvas(), "2 players") {
		t.Error("canvas should show tab 1 options")
	}

	c.Select()
	if c.Current() != 0 {
		t.Fatalf("current = %d, want 0 after wrapping", c.Current())
	}
	if got := c.Selection(0); got != 1 {
		t.Errorf("tab 0 selection after round trip = %d, want 1", got)
	}
}

func TestCollection_PreviousWraps(t *testing.T) {
	st, _ := newTestStage()
	c := newGameCollection(st)
	c.Build()

	c.MoveCursorUp()
	if c.Cursor().Target != Previous {
		t.Fatalf("target = %v, want previous", c.Cursor().Target)
	}
	c.Select()
	if c.Current() != 1 {
		t.Errorf("current = %d, want 1", c.Current())
	}
	if c.Done() {
		t.Error("tab switch should not latch done")
	}
}

func TestCollection_DrawsTabs(t *testing.T) {
	st, _ := newTestStage()
	c := newGameCollection(st)
	c.Build()

	active, ok := textRun(c.Canvas(), "Players")
	if !ok {
		t.Fatal("tab not drawn")
	}
	if active.Color != DefaultColorBackground {
		t.Errorf("active tab text = %v, want background", active.Color)
	}
	inactive, _ := textRun(c.Canvas(), "Game Type")
	if inactive.Color != DefaultColorTabs {
		t.Errorf("inactive tab text = %v, want %v", inactive.Color, DefaultColorTabs)
	}
	strip := c.TabStrip()
	if inactive.X != strip.TabWidth("Players")+TabTextMargin || inactive.Y != strip.Y+2 {
		t.Errorf("second tab text at (%d, %d)", inactive.X, inactive.Y)
	}

	single := NewCollection(st, Config{})
	single.AddScreen("Only", [][]string{{"a", "b"}}, false)
	single.Build()
	if hasText(single.Canvas(), "Only") {
		t.Error("a single tab should not be drawn")
	}
	if single.ShowNext() || single.ShowPrevious() {
		t.Error("a single tab should hide previous and next")
	}
}

func TestCollection_SelectionFor(t *testing.T) {
	st, _ := newTestStage()
	c := newGameCollection(st)
	c.Build()

	c.SetSelectionFor(1, 0, 2)
	if got := c.SelectionFor(1, 0); got != 2 {
		t.Errorf("SelectionFor(1, 0) = %d, want 2", got)
	}
	c.SetSelectionFor(0, 0, 1)
	if got := c.Selection(0); got != 1 {
		t.Errorf("current tab selection = %d, want 1", got)
	}
	for _, tab := range []int{-1, 2} {
		if got := c.SelectionFor(tab, 0); got != NoSelection {
			t.Errorf("SelectionFor(%d, 0) = %d, want none", tab, got)
		}
	}

	c.SetCurrent(1)
	if c.Current() != 1 || c.Selection(0) != 2 {
		t.Errorf("after SetCurrent(1): current %d selection %d", c.Current(), c.Selection(0))
	}
	if got := c.SelectionFor(0, 0); got != 1 {
		t.Errorf("tab 0 selection after SetCurrent = %d, want 1", got)
	}
	c.SetCurrent(7)
	if c.Current() != 1 {
		t.Error("out-of-range SetCurrent should be ignored")
	}
}

func TestCollection_HeadersPerTab(t *testing.T) {
	st, _ := newTestStage()
	c := NewCollection(st, Config{})
	c.AddScreen("Plain", [][]string{{"a", "b"}}, false)
	c.AddScreen("Labelled", [][]string{{"Speed", "Slow", "Fast"}}, true)
	c.Build()

	goToNext(c)
	c.Select()
	if !c.HasHeaders() {
		t.Fatal("second tab has headers")
	}
	c.MoveCursorDown()
	c.Select()
	run, _ := textRun(c.Canvas(), "Slow")
	if c.Selection(0) != 0 || run.Color != DefaultColorBackground {
		t.Errorf("selection %d, run %+v", c.Selection(0), run)
	}
}

func TestCollection_SelectionsBeforeBuild(t *testing.T) {
	st, _ := newTestStage()
	c := newGameCollection(st)
	c.SetSelectionFor(0, 0, 1)
	c.SetSelectionFor(1, 0, 2)

	if got := c.SelectionFor(0, 0); got != 1 {
		t.Errorf("SelectionFor(0, 0) = %d, want 1", got)
	}
	c.Build()
	if got := c.Selection(0); got != 1 {
		t.Errorf("selection after build = %d, want 1", got)
	}

	c.Release()
	c.SetCurrent(1)
	if got := c.Selection(0); got != 2 {
		t.Errorf("selection after SetCurrent while released = %d, want 2", got)
	}
	c.Build()
	if got := c.SelectionFor(0, 0); got != 1 {
		t.Errorf("tab 0 selection after rebuild = %d, want 1", got)
	}
}
