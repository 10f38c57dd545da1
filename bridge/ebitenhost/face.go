package ebitenhost

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// fontFace is the cached font face
var fontFace text.Face

// FontFace returns the font face text runs are drawn with. Its metrics match
// style.FaceAdvance and style.FaceHeight.
func FontFace() text.Face {
	if fontFace == nil {
		fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return fontFace
}

// panelImage creates a flat panel in the given colour.
func panelImage(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}
