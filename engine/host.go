// Package engine defines the capabilities an information screen needs from
// its host game runtime, plus the shared in-memory pieces (bitmaps, palette,
// fonts, sprite world) the bundled hosts are built from.
package engine

import "time"

// Clock is a monotonic runtime clock.
type Clock interface {
	// Now is the time elapsed since the host started.
	Now() time.Duration
}

// Random is the host's random source.
type Random interface {
	// IntRange returns a value in [lo, hi], inclusive.
	IntRange(lo, hi int) int
	// Chance reports true with the given percent probability.
	Chance(percent int) bool
}

// Host bundles everything a screen uses from the runtime.
type Host interface {
	Clock
	Random
	ScreenSize() (width, height int)
	NewImage(width, height int) Image
	Sprites() SpriteWorld
	// SetBackground makes img the scene background. nil clears it.
	SetBackground(img Image)
}
