package engine

// Bitmap is the in-memory Image implementation shared by every host.
type Bitmap struct {
	w, h    int
	pix     []Color
	texts   []TextRun
	version uint64
}

// NewBitmap creates a transparent w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{w: w, h: h, pix: make([]Color, w*h)}
}

func (b *Bitmap) Width() int      { return b.w }
func (b *Bitmap) Height() int     { return b.h }
func (b *Bitmap) Version() uint64 { return b.version }

// Texts returns a copy of the text runs in draw order.
func (b *Bitmap) Texts() []TextRun {
	out := make([]TextRun, len(b.texts))
	copy(out, b.texts)
	return out
}

func (b *Bitmap) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Transparent
	}
	return b.pix[y*b.w+x]
}

func (b *Bitmap) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.pix[y*b.w+x] = c
	b.version++
}

func (b *Bitmap) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
	b.texts = b.texts[:0]
	b.version++
}

// FillRect paints the rectangle and erases any text run it touches.
func (b *Bitmap) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.w), min(y+h, b.h)
	for py := y0; py < y1; py++ {
		row := b.pix[py*b.w : (py+1)*b.w]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
	kept := b.texts[:0]
	for _, r := range b.texts {
		rx, ry, rw, rh := r.Bounds()
		if rx < x+w && x < rx+rw && ry < y+h && y < ry+rh {
			continue
		}
		kept = append(kept, r)
	}
	b.texts = kept
	b.version++
}

// DrawRect draws a one pixel outline.
func (b *Bitmap) DrawRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		b.SetPixel(px, y, c)
		b.SetPixel(px, y+h-1, c)
	}
	for py := y; py < y+h; py++ {
		b.SetPixel(x, py, c)
		b.SetPixel(x+w-1, py, c)
	}
}

func (b *Bitmap) Print(s string, x, y int, c Color, f Font) {
	if s == "" {
		return
	}
	b.texts = append(b.texts, TextRun{Text: s, X: x, Y: y, Color: c, Font: f})
	b.version++
}

func (b *Bitmap) PrintCenter(s string, y int, c Color, f Font) {
	if s == "" {
		return
	}
	x := (b.w - f.TextWidth(s)) / 2
	b.texts = append(b.texts, TextRun{Text: s, X: x, Y: y, Color: c, Font: f, Centered: true})
	b.version++
}

// DrawImage copies src onto b with its top-left corner at x, y.
// Transparent source pixels leave the destination untouched.
func (b *Bitmap) DrawImage(src Image, x, y int) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.Height(); sy++ {
		for sx := 0; sx < src.Width(); sx++ {
			c := src.Pixel(sx, sy)
			if c == Transparent {
				continue
			}
			dx, dy := x+sx, y+sy
			if dx < 0 || dy < 0 || dx >= b.w || dy >= b.h {
				continue
			}
			b.pix[dy*b.w+dx] = c
		}
	}
	for _, r := range src.Texts() {
		r.X += x
		r.Y += y
		r.Centered = false
		b.texts = append(b.texts, r)
	}
	b.version++
}

// FlipX mirrors the bitmap horizontally.
func (b *Bitmap) FlipX() {
	for y := 0; y < b.h; y++ {
		row := b.pix[y*b.w : (y+1)*b.w]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	for i := range b.texts {
		r := &b.texts[i]
		r.X = b.w - r.X - r.Font.TextWidth(r.Text)
	}
	b.version++
}

func (b *Bitmap) Clone() Image {
	c := &Bitmap{w: b.w, h: b.h, pix: make([]Color, len(b.pix)), version: b.version}
	copy(c.pix, b.pix)
	c.texts = b.Texts()
	return c
}
