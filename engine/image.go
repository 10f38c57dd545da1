package engine

// TextRun is a string printed onto an image. Text is kept as runs rather
// than rasterised so each presenter can draw it with its own font.
type TextRun struct {
	Text     string
	X, Y     int
	Color    Color
	Font     Font
	Centered bool // X was computed by PrintCenter
}

// Bounds returns the run's box as x, y, w, h.
func (r TextRun) Bounds() (int, int, int, int) {
	return r.X, r.Y, r.Font.TextWidth(r.Text), r.Font.CharHeight
}

// Image is a palette-indexed drawing surface supplied by the host.
type Image interface {
	Width() int
	Height() int
	Pixel(x, y int) Color
	SetPixel(x, y int, c Color)
	Fill(c Color)
	FillRect(x, y, w, h int, c Color)
	DrawRect(x, y, w, h int, c Color)
	Print(s string, x, y int, c Color, f Font)
	PrintCenter(s string, y int, c Color, f Font)
	DrawImage(src Image, x, y int)
	FlipX()
	Clone() Image
	Texts() []TextRun
	// Version changes whenever the image is mutated.
	Version() uint64
}
