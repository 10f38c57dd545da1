package term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/style"
)

// Stage pixels covered by one terminal cell
const (
	CellWidth  = 2
	CellHeight = 4
)

type cell struct {
	ch     rune
	fg, bg engine.Color
}

type colorPair struct {
	fg, bg engine.Color
}

// Renderer draws a stage as rows of coloured cells.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer for the given colour profile.
// termenv.Ascii renders plain text.
func NewRenderer(profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(profile)
	return &Renderer{lg: lg, styles: make(map[colorPair]lipgloss.Style)}
}

// Render returns the stage as text, one line per cell row.
func (r *Renderer) Render(stage *engine.Stage) string {
	grid := cells(compose(stage), backgroundTexts(stage))
	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		r.renderRow(&b, row)
	}
	return b.String()
}

// renderRow writes runs of cells sharing colours with one style each.
func (r *Renderer) renderRow(b *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.ch)
		}
		b.WriteString(r.style(row[start].fg, row[start].bg).Render(run.String()))
		start = i
	}
}

func (r *Renderer) style(fg, bg engine.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := r.styles[key]; ok {
		return s
	}
	s := r.lg.NewStyle().
		Foreground(lipgloss.Color(hexColor(fg))).
		Background(lipgloss.Color(hexColor(bg)))
	r.styles[key] = s
	return s
}

func hexColor(c engine.Color) string {
	const digits = "0123456789abcdef"
	rgba := style.Color(c)
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{rgba.R, rgba.G, rgba.B} {
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0x0f]
	}
	return string(out)
}

// compose flattens the background and sprites into one opaque bitmap.
func compose(stage *engine.Stage) *engine.Bitmap {
	w, h := stage.ScreenSize()
	frame := engine.NewBitmap(w, h)
	frame.Fill(engine.Black)
	if bg := stage.Background(); bg != nil {
		frame.DrawImage(bg, 0, 0)
	}
	for _, s := range stage.World().Sprites() {
		img := s.Image()
		if img == nil {
			continue
		}
		frame.DrawImage(img, int(s.X)-img.Width()/2, int(s.Y)-img.Height()/2)
	}
	return frame
}

func backgroundTexts(stage *engine.Stage) []engine.TextRun {
	if bg := stage.Background(); bg != nil {
		return bg.Texts()
	}
	return nil
}

// cells downsamples frame to CellWidth x CellHeight blocks, each taking
// its most common colour, then lays the text runs over them one character
// per cell. Centred runs are centred again on the cell grid.
func cells(frame engine.Image, texts []engine.TextRun) [][]cell {
	cols := (frame.Width() + CellWidth - 1) / CellWidth
	rows := (frame.Height() + CellHeight - 1) / CellHeight
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			c := blockColor(frame, x*CellWidth, y*CellHeight)
			grid[y][x] = cell{ch: ' ', fg: c, bg: c}
		}
	}

	for _, t := range texts {
		row := (t.Y + t.Font.CharHeight/2) / CellHeight
		if row < 0 || row >= rows {
			continue
		}
		text := []rune(t.Text)
		col := t.X / CellWidth
		if t.Centered {
			col = (cols - len(text)) / 2
		}
		for i, ch := range text {
			x := col + i
			if x < 0 || x >= cols {
				continue
			}
			grid[row][x].ch = ch
			grid[row][x].fg = t.Color
		}
	}
	return grid
}

func blockColor(img engine.Image, x0, y0 int) engine.Color {
	var counts [engine.PaletteSize]int
	best := img.Pixel(x0, y0)
	for y := y0; y < min(y0+CellHeight, img.Height()); y++ {
		for x := x0; x < min(x0+CellWidth, img.Width()); x++ {
			c := img.Pixel(x, y)
			counts[c]++
			if counts[c] > counts[best] {
				best = c
			}
		}
	}
	return best
}
