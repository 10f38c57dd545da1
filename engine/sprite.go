package engine

import (
	"time"

	"github.com/google/uuid"
)

// SpriteKind groups sprites so owners can find and destroy their own.
type SpriteKind int

// Sprite kinds created by information screens
const (
	KindCursor SpriteKind = 77
	KindMoving SpriteKind = 19
	KindStatic SpriteKind = 42
)

// SpriteFlag toggles per-sprite behaviour in the world step.
type SpriteFlag uint8

const (
	// FlagGhost sprites never collide. Every screen sprite is a ghost; the
	// flag is carried for hosts that implement overlap events.
	FlagGhost SpriteFlag = 1 << iota
	// FlagAutoDestroy removes the sprite once it is entirely off screen.
	FlagAutoDestroy
	// FlagBounceOnWall reflects velocity at the screen edges.
	FlagBounceOnWall
)

// Sprite is an image positioned by its centre with a velocity in pixels per second.
type Sprite struct {
	X, Y   float64
	VX, VY float64

	id        uuid.UUID
	kind      SpriteKind
	img       Image
	flags     SpriteFlag
	destroyed bool
	world     *World
}

func (s *Sprite) ID() uuid.UUID          { return s.id }
func (s *Sprite) Kind() SpriteKind       { return s.kind }
func (s *Sprite) Image() Image           { return s.img }
func (s *Sprite) SetImage(img Image)     { s.img = img }
func (s *Sprite) Destroyed() bool        { return s.destroyed }
func (s *Sprite) Flag(f SpriteFlag) bool { return s.flags&f != 0 }

func (s *Sprite) SetFlag(f SpriteFlag, on bool) {
	if on {
		s.flags |= f
	} else {
		s.flags &^= f
	}
}

// Width and Height are the current image dimensions.
func (s *Sprite) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Width()
}

func (s *Sprite) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Height()
}

// Destroy removes the sprite from its world. Safe to call twice.
func (s *Sprite) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.world != nil {
		s.world.remove(s)
	}
}

// SpriteWorld is the sprite capability a host exposes to screens.
type SpriteWorld interface {
	Create(img Image, kind SpriteKind) *Sprite
	AllOfKind(kind SpriteKind) []*Sprite
}

// World is a minimal sprite container with position stepping, wall
// bouncing and off-screen destruction. Both bundled hosts use it.
type World struct {
	sprites []*Sprite
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Create adds a sprite centred at the origin.
func (w *World) Create(img Image, kind SpriteKind) *Sprite {
	s := &Sprite{id: uuid.New(), kind: kind, img: img, world: w}
	w.sprites = append(w.sprites, s)
	return s
}

// AllOfKind returns live sprites of the given kind in creation order.
func (w *World) AllOfKind(kind SpriteKind) []*Sprite {
	var out []*Sprite
	for _, s := range w.sprites {
		if s.kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Sprites returns every live sprite in draw order.
func (w *World) Sprites() []*Sprite {
	out := make([]*Sprite, len(w.sprites))
	copy(out, w.sprites)
	return out
}

// Len is the number of live sprites.
func (w *World) Len() int {
	return len(w.sprites)
}

// Clear destroys every sprite.
func (w *World) Clear() {
	for _, s := range w.Sprites() {
		s.Destroy()
	}
}

func (w *World) remove(s *Sprite) {
	for i, o := range w.sprites {
		if o == s {
			w.sprites = append(w.sprites[:i], w.sprites[i+1:]...)
			return
		}
	}
}

// Step advances every sprite by dt inside a width x height screen.
func (w *World) Step(dt time.Duration, width, height int) {
	secs := dt.Seconds()
	for _, s := range w.Sprites() {
		s.X += s.VX * secs
		s.Y += s.VY * secs

		halfW := float64(s.Width()) / 2
		halfH := float64(s.Height()) / 2
		if s.Flag(FlagBounceOnWall) {
			if s.X-halfW < 0 {
				s.X = halfW
				s.VX = abs(s.VX)
			} else if s.X+halfW > float64(width) {
				s.X = float64(width) - halfW
				s.VX = -abs(s.VX)
			}
			if s.Y-halfH < 0 {
				s.Y = halfH
				s.VY = abs(s.VY)
			} else if s.Y+halfH > float64(height) {
				s.Y = float64(height) - halfH
				s.VY = -abs(s.VY)
			}
		}
		if s.Flag(FlagAutoDestroy) {
			if s.X+halfW < 0 || s.X-halfW > float64(width) ||
				s.Y+halfH < 0 || s.Y-halfH > float64(height) {
				s.Destroy()
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
