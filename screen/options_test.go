package screen

import (
	"testing"

	"github.com/user-none/infoscreens/engine"
)

func newPlayerOptions(st *engine.Stage) *Options {
	return NewOptions(st, Config{
		Titles:  []string{"Setup"},
		MidText: [][]string{{"1 player", "2 players", "3 players"}},
	}, false)
}

func TestOptions_DoneLatch(t *testing.T) {
	st, _ := newTestStage()
	o := newPlayerOptions(st)
	o.Build()
	if countKind(st, engine.KindCursor) != 1 {
		t.Fatalf("cursor sprites = %d, want 1", countKind(st, engine.KindCursor))
	}

	o.MoveCursorUp()
	if c := o.Cursor(); c.Location != InFooter || c.Target != Done {
		t.Fatalf("cursor = %+v, want footer done", c)
	}
	o.Select()
	if !o.Done() || !o.Finished() {
		t.Fatal("select on done should latch")
	}
	if countKind(st, engine.KindCursor) != 0 || o.CursorSprite() != nil {
		t.Error("latching should remove the cursor")
	}

	before := o.Cursor()
	o.MoveCursorDown()
	o.MoveCursorLeft()
	o.MoveCursorRight()
	o.MoveCursorUp()
	o.Select()
	if o.Cursor() != before || !o.Done() {
		t.Errorf("input after done changed state: %+v", o.Cursor())
	}

	o.Build()
	if o.Done() {
		t.Error("build should clear done")
	}
	if o.Cursor() != (Cursor{}) {
		t.Errorf("cursor after build = %+v, want grid(0, 0)", o.Cursor())
	}
	if countKind(st, engine.KindCursor) != 1 {
		t.Errorf("cursor sprites after build = %d, want 1", countKind(st, engine.KindCursor))
	}
}

func TestOptions_SetDoneFalseRestoresCursor(t *testing.T) {
	st, _ := newTestStage()
	o := newPlayerOptions(st)
	o.Build()
	o.SetDone(true)
	o.SetDone(false)
	if o.CursorSprite() == nil || countKind(st, engine.KindCursor) != 1 {
		t.Error("clearing done should recreate exactly one cursor")
	}
}

func TestOptions_SelectDrawsReversed(t *testing.T) {
	st, _ := newTestStage()
	o := newPlayerOptions(st)
	o.Build()

	o.MoveCursorDown()
	o.HandleInput(ButtonA)
	if got := o.Selection(0); got != 1 {
		t.Fatalf("selection = %d, want 1", got)
	}

	run, ok := textRun(o.Canvas(), "2 players")
	if !ok {
		t.Fatal("selected option not drawn")
	}
	if run.Color != DefaultColorBackground {
		t.Errorf("selected text colour = %v, want background", run.Color)
	}
	rect := o.Layout().RowRect(0, 1)
	if got := o.Canvas().Pixel(rect.Min.X+2, rect.Min.Y+1); got != DefaultColorMidText {
		t.Errorf("selection bar colour = %v, want %v", got, DefaultColorMidText)
	}
	other, _ := textRun(o.Canvas(), "1 player")
	if other.Color != DefaultColorMidText {
		t.Errorf("unselected colour = %v", other.Color)
	}
}

func TestOptions_HeaderRowIsNotSelectable(t *testing.T) {
	st, _ := newTestStage()
	o := NewOptions(st, Config{MidText: [][]string{{"Players", "One", "Two"}}}, true)
	o.Build()
	o.Select()
	if got := o.Selection(0); got != 0 {
		t.Fatalf("selection = %d, want 0", got)
	}
	run, _ := textRun(o.Canvas(), "One")
	if run.Color != DefaultColorBackground {
		t.Error("first option below the header should be reversed")
	}

	o.MoveCursorDown()
	o.MoveCursorDown()
	if o.Cursor().Location != InFooter {
		t.Error("two selectable rows: second Down should reach the footer")
	}

	empty := NewOptions(st, Config{MidText: [][]string{{"Only header"}}}, true)
	empty.Build()
	empty.Select()
	if got := empty.Selection(0); got != NoSelection {
		t.Errorf("header-only group selection = %d, want none", got)
	}
}

func TestOptions_SelectionBounds(t *testing.T) {
	st, _ := newTestStage()
	o := NewOptions(st, Config{MidText: [][]string{{"a"}, {"b"}}}, false)

	for _, g := range []int{-1, 2, 9} {
		if got := o.Selection(g); got != NoSelection {
			t.Errorf("Selection(%d) = %d, want %d", g, got, NoSelection)
		}
	}
	o.SetSelection(5, 1)
	o.SetSelection(1, 0)
	if got := o.Selections(); len(got) != 2 || got[0] != NoSelection || got[1] != 0 {
		t.Errorf("selections = %v", got)
	}

	o.AddOption([]string{"c"})
	if got := o.Selections(); len(got) != 3 || got[1] != NoSelection {
		t.Errorf("selections after AddOption = %v", got)
	}
}

func TestOptions_CursorPlacement(t *testing.T) {
	st, _ := newTestStage()
	o := newPlayerOptions(st)
	o.Build()

	s := o.CursorSprite()
	if s.Width() != testWidth || s.Height() != DefaultFontMidText.CharHeight+2 {
		t.Errorf("grid cursor = %dx%d", s.Width(), s.Height())
	}
	// One group of three rows: mid-text starts at 120 - (6*4 + 6) = 90.
	if s.X != 80 || s.Y != 91 {
		t.Errorf("grid cursor at (%v, %v), want (80, 91)", s.X, s.Y)
	}

	o.MoveCursorUp()
	if s.Width() != testWidth/3 {
		t.Errorf("footer cursor width = %d, want %d", s.Width(), testWidth/3)
	}
	if s.X != 79 || s.Y != 112 {
		t.Errorf("footer cursor at (%v, %v), want (79, 112)", s.X, s.Y)
	}
}

func TestOptions_FooterLinks(t *testing.T) {
	st, _ := newTestStage()
	o := newPlayerOptions(st)
	o.SetDoneText("Start!")
	o.SetShowNext(true)
	o.Build()

	if !hasText(o.Canvas(), "Start!") || !hasText(o.Canvas(), TextNext) {
		t.Error("footer text missing")
	}
	if hasText(o.Canvas(), TextPrevious) {
		t.Error("previous drawn while hidden")
	}

	// Previous, Next and Done with no collection attached: only Done acts.
	o.MoveCursorUp()
	o.MoveCursorLeft()
	if o.Cursor().Target != Next {
		t.Fatalf("target = %v, want next", o.Cursor().Target)
	}
	o.Select()
	if o.Done() {
		t.Error("next should not latch done")
	}
}
