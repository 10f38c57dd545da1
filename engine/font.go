package engine

// Font carries the fixed-cell metrics the layout arithmetic needs.
// Glyph rasterisation is left to whichever presenter draws the text.
type Font struct {
	Name       string
	CharWidth  int
	CharHeight int
}

// Built-in fonts matching the arcade runtime metrics
var (
	Font5 = Font{Name: "font5", CharWidth: 6, CharHeight: 5}
	Font8 = Font{Name: "font8", CharWidth: 6, CharHeight: 8}
)

// Doubled returns f scaled by two in both directions.
func Doubled(f Font) Font {
	return Font{Name: f.Name + "x2", CharWidth: f.CharWidth * 2, CharHeight: f.CharHeight * 2}
}

// TextWidth is the pixel width of s printed in f.
func (f Font) TextWidth(s string) int {
	return len([]rune(s)) * f.CharWidth
}

// FontByName resolves "font5", "font8" and their "x2" doubled variants.
func FontByName(name string) (Font, bool) {
	switch name {
	case "font5":
		return Font5, true
	case "font8":
		return Font8, true
	case "font5x2":
		return Doubled(Font5), true
	case "font8x2":
		return Doubled(Font8), true
	}
	return Font{}, false
}
