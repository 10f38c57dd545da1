package engine

import "strings"

// Color is an index into the 16-entry arcade palette. Index 0 is transparent
// when an image is drawn on top of another.
type Color uint8

// Standard palette
const (
	Transparent Color = iota
	White
	Red
	Pink
	Orange
	Yellow
	Aqua
	BrightGreen
	Blue
	LightBlue
	Purple
	RoseBouquet
	Wine
	Bone
	Brown
	Black
)

// PaletteSize is the number of palette entries
const PaletteSize = 16

var colorNames = [PaletteSize]string{
	"transparent", "white", "red", "pink", "orange", "yellow", "aqua", "brightgreen",
	"blue", "lightblue", "purple", "rosebouquet", "wine", "bone", "brown", "black",
}

// String returns the lowercase palette name
func (c Color) String() string {
	if int(c) < PaletteSize {
		return colorNames[c]
	}
	return "invalid"
}

// ParseColor maps a palette name (case-insensitive) to its index.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), true
		}
	}
	return 0, false
}
