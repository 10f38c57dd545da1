// Package style holds the colours, scales and timings shared by the window
// and terminal presenters. It must not import ebiten so the terminal host
// builds without a display toolchain.
package style

import (
	"image/color"

	"github.com/user-none/infoscreens/engine"
)

// Palette maps each engine colour to RGBA. Index 0 is fully transparent.
var Palette = [engine.PaletteSize]color.NRGBA{
	engine.Transparent: {0x00, 0x00, 0x00, 0x00},
	engine.White:       {0xff, 0xff, 0xff, 0xff},
	engine.Red:         {0xff, 0x21, 0x21, 0xff},
	engine.Pink:        {0xff, 0x93, 0xc4, 0xff},
	engine.Orange:      {0xff, 0x81, 0x35, 0xff},
	engine.Yellow:      {0xff, 0xf6, 0x09, 0xff},
	engine.Aqua:        {0x24, 0x9c, 0xa3, 0xff},
	engine.BrightGreen: {0x78, 0xdc, 0x52, 0xff},
	engine.Blue:        {0x00, 0x3f, 0xad, 0xff},
	engine.LightBlue:   {0x87, 0xf2, 0xff, 0xff},
	engine.Purple:      {0x8e, 0x2e, 0xc4, 0xff},
	engine.RoseBouquet: {0xa4, 0x83, 0x9f, 0xff},
	engine.Wine:        {0x5c, 0x40, 0x6c, 0xff},
	engine.Bone:        {0xe5, 0xcd, 0xc4, 0xff},
	engine.Brown:       {0x91, 0x46, 0x3d, 0xff},
	engine.Black:       {0x00, 0x00, 0x00, 0xff},
}

// Notification colours
var (
	NotificationBackground = color.NRGBA{0x00, 0x00, 0x00, 0x99} // 60% opacity
	NotificationText       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// Color returns the RGBA value of c. Out-of-range indexes are transparent.
func Color(c engine.Color) color.NRGBA {
	if int(c) >= engine.PaletteSize {
		return Palette[engine.Transparent]
	}
	return Palette[c]
}

// GlyphScale is the x and y scale that makes the font face fill the cell
// of f.
func GlyphScale(f engine.Font) (float64, float64) {
	return float64(f.CharWidth) / FaceAdvance, float64(f.CharHeight) / FaceHeight
}
