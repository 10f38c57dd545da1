package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/style"
)

// DefaultCacheSize is the number of converted images kept on the GPU.
const DefaultCacheSize = 128

// cacheKey identifies one revision of an engine image.
type cacheKey struct {
	img     engine.Image
	version uint64
}

// Presenter draws a stage onto an ebiten image. Engine images are
// converted to ebiten images once per revision and kept in an LRU cache.
type Presenter struct {
	scale    float64
	cache    *lru.Cache[cacheKey, *ebiten.Image]
	drawOpts ebiten.DrawImageOptions // Pre-allocated to avoid per-frame allocation
	textOpts text.DrawOptions
}

// NewPresenter creates a presenter drawing every stage pixel as a
// scale x scale block.
func NewPresenter(scale, cacheSize int) (*Presenter, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.NewWithEvict(cacheSize, func(_ cacheKey, img *ebiten.Image) {
		img.Deallocate()
	})
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	return &Presenter{
		scale: float64(style.ClampScale(scale)),
		cache: cache,
	}, nil
}

// Scale is the stage to screen pixel ratio.
func (p *Presenter) Scale() float64 {
	return p.scale
}

// Draw renders the stage background and then every sprite.
func (p *Presenter) Draw(dst *ebiten.Image, stage *engine.Stage) {
	dst.Fill(style.Color(screenFill))
	if bg := stage.Background(); bg != nil {
		p.drawImage(dst, bg, 0, 0)
	}
	for _, s := range stage.World().Sprites() {
		img := s.Image()
		if img == nil {
			continue
		}
		p.drawImage(dst, img, s.X-float64(img.Width())/2, s.Y-float64(img.Height())/2)
	}
}

// screenFill shows where no background has been set.
const screenFill = engine.Black

func (p *Presenter) drawImage(dst *ebiten.Image, img engine.Image, x, y float64) {
	if img.Width() == 0 || img.Height() == 0 {
		return
	}
	p.drawOpts.GeoM.Reset()
	p.drawOpts.GeoM.Scale(p.scale, p.scale)
	p.drawOpts.GeoM.Translate(x*p.scale, y*p.scale)
	dst.DrawImage(p.texture(img), &p.drawOpts)

	for _, r := range img.Texts() {
		p.drawText(dst, r, x, y)
	}
}

// drawText stretches the font face glyphs over the run's font cells.
func (p *Presenter) drawText(dst *ebiten.Image, r engine.TextRun, x, y float64) {
	sx, sy := style.GlyphScale(r.Font)
	p.textOpts.GeoM.Reset()
	p.textOpts.GeoM.Scale(sx*p.scale, sy*p.scale)
	p.textOpts.GeoM.Translate((x+float64(r.X))*p.scale, (y+float64(r.Y))*p.scale)
	p.textOpts.ColorScale.Reset()
	p.textOpts.ColorScale.ScaleWithColor(style.Color(r.Color))
	text.Draw(dst, r.Text, FontFace(), &p.textOpts)
}

func (p *Presenter) texture(img engine.Image) *ebiten.Image {
	key := cacheKey{img: img, version: img.Version()}
	if t, ok := p.cache.Get(key); ok {
		return t
	}
	t := ebiten.NewImage(img.Width(), img.Height())
	t.WritePixels(rgbaPixels(img))
	p.cache.Add(key, t)
	return t
}

// rgbaPixels converts img to premultiplied RGBA bytes. Palette colours are
// either opaque or fully transparent so no multiplication is needed.
func rgbaPixels(img engine.Image) []byte {
	w, h := img.Width(), img.Height()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := style.Color(img.Pixel(x, y))
			i := (y*w + x) * 4
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
	return pix
}
