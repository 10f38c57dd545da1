package screen

import (
	"image"

	"github.com/user-none/infoscreens/engine"
)

// LayoutInput is everything placement depends on.
type LayoutInput struct {
	Width, Height int

	TitleFont    engine.Font
	HeadlineFont engine.Font
	MidTextFont  engine.Font
	FooterFont   engine.Font

	TitleLines int
	// MidTextGroups is the number of side-by-side groups (0-3).
	MidTextGroups int
	// MidTextRows is the line count of the first group, header included.
	MidTextRows int

	// BackImageHeight is only used when HasBackImage is set.
	HasBackImage    bool
	BackImageHeight int
}

// Column is where one mid-text group is printed.
type Column struct {
	X        int
	Centered bool
}

// Layout holds the computed vertical bands and mid-text columns.
type Layout struct {
	in LayoutInput

	TitlesY       int
	FooterY       int
	MidTextY      int
	HeadlinesY    int
	MovingSpriteY int
	Columns       []Column
}

// ComputeLayout places titles at the top, the footer at the bottom, the
// mid-text block up from the footer, headlines between the titles (or back
// image) and the mid-text, and the moving-sprite lane between headlines and
// mid-text.
func ComputeLayout(in LayoutInput) Layout {
	l := Layout{in: in, TitlesY: DefaultTitlesY}
	l.FooterY = in.Height - (in.FooterFont.CharHeight + 2)

	l.MidTextY = in.Height - 10
	if in.MidTextGroups > 0 {
		l.MidTextY = in.Height - ((in.MidTextFont.CharHeight+1)*(in.MidTextRows+1) + 6)
		switch in.MidTextGroups {
		case 1:
			l.Columns = []Column{{Centered: true}}
		case 2:
			l.Columns = []Column{{X: 1}, {X: in.Width/2 + 1}}
		default:
			l.Columns = []Column{{X: 1}, {Centered: true}, {X: in.Width*2/3 + 1}}
		}
	}

	if in.HasBackImage {
		minY := l.MidTextY - (in.HeadlineFont.CharHeight+1)*2
		if in.BackImageHeight > minY {
			l.HeadlinesY = minY
		} else {
			l.HeadlinesY = in.BackImageHeight
		}
	} else {
		l.HeadlinesY = in.TitleFont.CharHeight*in.TitleLines + in.TitleLines + DefaultTitlesY + 2
	}

	l.MovingSpriteY = (l.HeadlinesY + in.HeadlineFont.CharHeight*2 + 1 + l.MidTextY) / 2
	return l
}

// Groups is the number of mid-text groups the layout was computed for.
func (l Layout) Groups() int {
	return l.in.MidTextGroups
}

// ColumnWidth is the width of one selectable column.
func (l Layout) ColumnWidth() int {
	if l.in.MidTextGroups == 0 {
		return l.in.Width
	}
	return l.in.Width / l.in.MidTextGroups
}

// RowY is the top of mid-text row n (header rows count).
func (l Layout) RowY(row int) int {
	return l.MidTextY + row*(l.in.MidTextFont.CharHeight+1)
}

// RowRect is the highlight box for row n of a group.
func (l Layout) RowRect(group, row int) image.Rectangle {
	x := group * l.in.Width / max(l.in.MidTextGroups, 1)
	y := l.RowY(row)
	return image.Rect(x, y, x+l.ColumnWidth(), y+l.in.MidTextFont.CharHeight)
}

// GridCursorCenter is the centre of a cursor image of size w x h sitting on
// the given row.
func (l Layout) GridCursorCenter(group, row, w, h int) (int, int) {
	x := group*l.in.Width/max(l.in.MidTextGroups, 1) + w/2
	y := l.MidTextY - 2 + row*(l.in.MidTextFont.CharHeight+1) + h/2
	return x, y
}

// footerSlots maps each footer target to its third of the footer strip.
var footerSlots = map[FooterTarget]int{
	Previous: 0,
	Done:     1,
	Next:     2,
}

// FooterRegion is the third of the footer strip owned by the target.
func (l Layout) FooterRegion(t FooterTarget) image.Rectangle {
	w := l.in.Width / 3
	x := footerSlots[t] * l.in.Width / 3
	return image.Rect(x, l.FooterY, x+w, l.in.Height)
}

// FooterCursorCenter is the centre of a footer cursor of width w on target t.
func (l Layout) FooterCursorCenter(t FooterTarget, w int) (int, int) {
	return l.FooterRegion(t).Min.X + w/2, l.in.Height - l.in.FooterFont.CharHeight
}

// FooterCursorSize is the size of the footer cursor outline.
func (l Layout) FooterCursorSize() (int, int) {
	return l.in.Width / 3, l.in.MidTextFont.CharHeight + 2
}

// GridCursorSize is the size of the grid cursor outline.
func (l Layout) GridCursorSize() (int, int) {
	return l.ColumnWidth(), l.in.MidTextFont.CharHeight + 2
}

// NextTextX is where "Next >" is printed so it ends at the right edge.
func (l Layout) NextTextX() int {
	return l.in.Width - l.in.FooterFont.TextWidth(TextNext)
}

// TabStrip is the geometry of a collection's tab row.
type TabStrip struct {
	Y      int
	Height int
	Font   engine.Font
}

// ComputeTabStrip places the tab row above the tallest option screen.
func ComputeTabStrip(height int, midFont, tabFont engine.Font, maxRows int) TabStrip {
	return TabStrip{
		Y:      height - (midFont.CharHeight+1)*(maxRows+1) - tabFont.CharHeight - 12,
		Height: tabFont.CharHeight + 4,
		Font:   tabFont,
	}
}

// TabWidth is the width of a tab labelled name.
func (s TabStrip) TabWidth(name string) int {
	return s.Font.TextWidth(name) + TabTextMargin*2
}
