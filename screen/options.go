package screen

import (
	"log/slog"

	"github.com/user-none/infoscreens/engine"
)

// Options is a rotating screen whose mid-text groups are option lists. A
// cursor sprite moves over the options and the footer; pressing A on an
// option selects it and on Done latches the screen as done.
type Options struct {
	*Rotating

	nav          Navigator
	hasHeaders   bool
	showPrevious bool
	showNext     bool
	done         bool
	selections   Selections

	cursorColor engine.Color
	cursor      *engine.Sprite
	gridImg     engine.Image
	footerImg   engine.Image

	// onFooterLink handles Select on the Previous and Next targets.
	onFooterLink func(FooterTarget)
}

// NewOptions creates an option screen from cfg.MidText. When hasHeaders is
// set the first line of each group is a label and cannot be selected. An
// empty footer defaults to DefaultTextDone.
func NewOptions(host engine.Host, cfg Config, hasHeaders bool) *Options {
	if cfg.Footer == "" {
		cfg.Footer = DefaultTextDone
	}
	o := &Options{
		Rotating:    NewRotating(host, cfg),
		hasHeaders:  hasHeaders,
		cursorColor: DefaultColorCursor,
	}
	o.selections = NewSelections(len(o.midText.Groups))
	o.layers = append(o.layers, o.drawSelections, o.drawFooterLinks)
	o.onRefresh = o.refreshCursor
	o.onDestroy = o.destroyCursor
	return o
}

// Build shows the screen with the cursor on the first option and clears
// the done flag.
func (o *Options) Build() {
	o.done = false
	o.nav.Reset()
	o.nav.SetGrid(o.grid())
	o.Rotating.Build()
	o.createCursor()
}

func (o *Options) grid() Grid {
	rows := make([]int, min(len(o.midText.Groups), 3))
	for i := range rows {
		rows[i] = len(o.midText.Groups[i])
	}
	return Grid{
		Rows:         rows,
		HasHeaders:   o.hasHeaders,
		ShowPrevious: o.showPrevious,
		ShowNext:     o.showNext,
	}
}

func (o *Options) headerRows() int {
	if o.hasHeaders {
		return 1
	}
	return 0
}

// MoveCursorUp moves to the previous option, or between the grid and the footer.
func (o *Options) MoveCursorUp() { o.move((*Navigator).Up) }

// MoveCursorDown moves to the next option, or between the grid and the footer.
func (o *Options) MoveCursorDown() { o.move((*Navigator).Down) }

// MoveCursorLeft moves to the previous group or footer target.
func (o *Options) MoveCursorLeft() { o.move((*Navigator).Left) }

// MoveCursorRight moves to the next group or footer target.
func (o *Options) MoveCursorRight() { o.move((*Navigator).Right) }

func (o *Options) move(step func(*Navigator)) {
	if o.done {
		return
	}
	o.nav.SetGrid(o.grid())
	step(&o.nav)
	o.placeCursor()
}

// Select acts on the cursor position: in the grid it selects the option,
// on Done it latches the screen as done.
func (o *Options) Select() {
	if o.done {
		return
	}
	c := o.nav.Cursor
	if c.Location == InFooter {
		switch c.Target {
		case Done:
			o.SetDone(true)
		default:
			if o.onFooterLink != nil {
				o.onFooterLink(c.Target)
			}
		}
		return
	}
	if o.nav.Grid.Selectable(c.Group) == 0 {
		return
	}
	o.selections.Set(c.Group, c.Option)
	o.Rebuild()
	o.Refresh()
}

// HandleInput routes directions to the cursor and A to Select.
func (o *Options) HandleInput(b Button) {
	switch b {
	case ButtonUp:
		o.MoveCursorUp()
	case ButtonDown:
		o.MoveCursorDown()
	case ButtonLeft:
		o.MoveCursorLeft()
	case ButtonRight:
		o.MoveCursorRight()
	case ButtonA:
		o.Select()
	}
}

// Finished reports whether Done has been selected.
func (o *Options) Finished() bool {
	return o.done
}

// Done reports whether Done has been selected since Build.
func (o *Options) Done() bool {
	return o.done
}

// SetDone latches or clears the done flag. Latching removes the cursor;
// clearing it on a built screen puts the cursor back.
func (o *Options) SetDone(v bool) {
	o.done = v
	if v {
		o.destroyCursor()
	} else if o.built {
		o.destroyCursor()
		o.createCursor()
	}
	slog.DebugContext(logCtx, "done changed", slog.Bool("done", v))
}

// Selection returns the selected option of group, or NoSelection.
func (o *Options) Selection(group int) int {
	return o.selections.Get(group)
}

// SetSelection selects value in group. Out-of-range groups are ignored.
func (o *Options) SetSelection(group, value int) {
	o.selections.Set(group, value)
}

// Selections returns a copy of every group's selection.
func (o *Options) Selections() Selections {
	return o.selections.Clone()
}

// Cursor is the current navigation position.
func (o *Options) Cursor() Cursor {
	return o.nav.Cursor
}

// CursorSprite is the cursor sprite, or nil when none is showing.
func (o *Options) CursorSprite() *engine.Sprite {
	return o.cursor
}

func (o *Options) DoneText() string        { return o.Footer() }
func (o *Options) SetDoneText(text string) { o.SetFooter(text) }

func (o *Options) ShowPrevious() bool            { return o.showPrevious }
func (o *Options) SetShowPrevious(v bool)        { o.showPrevious = v }
func (o *Options) ShowNext() bool                { return o.showNext }
func (o *Options) SetShowNext(v bool)            { o.showNext = v }
func (o *Options) HasHeaders() bool              { return o.hasHeaders }
func (o *Options) SetHasHeaders(v bool)          { o.hasHeaders = v }
func (o *Options) SetCursorColor(c engine.Color) { o.cursorColor = c }

// AddOption appends an option group and clears every selection.
func (o *Options) AddOption(lines []string) {
	o.Rotating.AddMidText(lines)
	o.selections = NewSelections(len(o.midText.Groups))
}

// AddMidText is AddOption.
func (o *Options) AddMidText(lines []string) {
	o.AddOption(lines)
}

// OptionGroups returns the option groups.
func (o *Options) OptionGroups() [][]string {
	return o.MidText()
}

// SetOptions replaces every option group and clears every selection.
func (o *Options) SetOptions(groups [][]string) {
	o.midText.Groups = cloneGroups(groups)
	o.selections = NewSelections(len(o.midText.Groups))
}

// drawSelections draws every selected option reversed.
func (o *Options) drawSelections(img engine.Image) {
	groups := min(len(o.midText.Groups), 3)
	for g := 0; g < groups; g++ {
		sel := o.selections.Get(g)
		row := sel + o.headerRows()
		if sel < 0 || row >= len(o.midText.Groups[g]) {
			continue
		}
		rect := o.layout.RowRect(g, row)
		img.FillRect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), o.midText.Color)
		text := o.midText.Groups[g][row]
		if groups == 1 {
			img.PrintCenter(text, rect.Min.Y, o.backColor, o.midText.Font)
		} else {
			img.Print(text, rect.Min.X+1, rect.Min.Y, o.backColor, o.midText.Font)
		}
	}
}

func (o *Options) drawFooterLinks(img engine.Image) {
	if o.showNext {
		img.Print(TextNext, o.layout.NextTextX(), o.footer.Y, o.footer.Color, o.footer.Font)
	}
	if o.showPrevious {
		img.Print(TextPrevious, 1, o.footer.Y, o.footer.Color, o.footer.Font)
	}
}

// refreshCursor redraws the cursor outlines for the current layout and
// moves the cursor sprite onto them.
func (o *Options) refreshCursor() {
	if o.canvas == nil || len(o.midText.Groups) == 0 {
		return
	}
	w, h := o.layout.GridCursorSize()
	o.gridImg = o.host.NewImage(w, h)
	o.gridImg.DrawRect(0, 0, w, h, o.cursorColor)

	w, h = o.layout.FooterCursorSize()
	o.footerImg = o.host.NewImage(w, h)
	o.footerImg.DrawRect(0, 0, w, h, o.cursorColor)

	o.placeCursor()
}

func (o *Options) createCursor() {
	if o.done || o.canvas == nil || len(o.midText.Groups) == 0 {
		return
	}
	if o.gridImg == nil || o.footerImg == nil {
		o.refreshCursor()
	}
	o.cursor = o.host.Sprites().Create(o.gridImg, engine.KindCursor)
	o.cursor.SetFlag(engine.FlagGhost, true)
	o.placeCursor()
}

func (o *Options) destroyCursor() {
	for _, s := range o.host.Sprites().AllOfKind(engine.KindCursor) {
		s.Destroy()
	}
	o.cursor = nil
}

// placeCursor moves the cursor sprite to the navigator position.
func (o *Options) placeCursor() {
	if o.cursor == nil {
		return
	}
	c := o.nav.Cursor
	var x, y int
	if c.Location == InFooter {
		o.cursor.SetImage(o.footerImg)
		x, y = o.layout.FooterCursorCenter(c.Target, o.cursor.Width())
	} else {
		o.cursor.SetImage(o.gridImg)
		x, y = o.layout.GridCursorCenter(c.Group, c.Option+o.headerRows(),
			o.cursor.Width(), o.cursor.Height())
	}
	o.cursor.X = float64(x)
	o.cursor.Y = float64(y)
}
