package screen

import "github.com/user-none/infoscreens/engine"

// TextLine is a single string with its print settings.
type TextLine struct {
	Text  string
	Color engine.Color
	Font  engine.Font
	Y     int
}

// TextBlock is a list of lines printed one under another.
type TextBlock struct {
	Lines []string
	Color engine.Color
	Font  engine.Font
	Y     int
}

// TextGroups holds several line lists: headline groups shown one at a
// time, or mid-text groups shown side by side.
type TextGroups struct {
	Groups [][]string
	Color  engine.Color
	Font   engine.Font
	Y      int
}

// printLines prints text left-justified at x starting at y.
func printLines(img engine.Image, text []string, x, y int, c engine.Color, f engine.Font) {
	for _, t := range text {
		img.Print(t, x, y, c, f)
		y += f.CharHeight + 1
	}
}

// printLinesCenter prints text horizontally centred starting at y.
func printLinesCenter(img engine.Image, text []string, y int, c engine.Color, f engine.Font) {
	for _, t := range text {
		img.PrintCenter(t, y, c, f)
		y += f.CharHeight + 1
	}
}

func cloneGroups(groups [][]string) [][]string {
	if groups == nil {
		return nil
	}
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = append([]string(nil), g...)
	}
	return out
}
