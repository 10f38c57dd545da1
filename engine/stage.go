package engine

import (
	"math/rand/v2"
	"time"
)

// Stage is a complete Host backed by a World and Bitmap images. Presenters
// wrap a Stage and only supply drawing; tests drive it with a manual clock.
type Stage struct {
	width, height int
	world         *World
	background    Image
	now           func() time.Duration
	last          time.Duration
	rng           *rand.Rand
}

// StageOption customises a Stage.
type StageOption func(*Stage)

// WithClock replaces the wall clock.
func WithClock(now func() time.Duration) StageOption {
	return func(s *Stage) { s.now = now }
}

// WithSeed makes the random source deterministic.
func WithSeed(seed uint64) StageOption {
	return func(s *Stage) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// NewStage creates a width x height stage.
func NewStage(width, height int, opts ...StageOption) *Stage {
	start := time.Now()
	s := &Stage{
		width:  width,
		height: height,
		world:  NewWorld(),
		now:    func() time.Duration { return time.Since(start) },
		rng:    rand.New(rand.NewPCG(uint64(start.UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stage) Now() time.Duration               { return s.now() }
func (s *Stage) ScreenSize() (int, int)           { return s.width, s.height }
func (s *Stage) NewImage(width, height int) Image { return NewBitmap(width, height) }
func (s *Stage) Sprites() SpriteWorld             { return s.world }
func (s *Stage) World() *World                    { return s.world }
func (s *Stage) Background() Image                { return s.background }
func (s *Stage) SetBackground(img Image)          { s.background = img }

func (s *Stage) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Stage) Chance(percent int) bool {
	return s.rng.IntN(100) < percent
}

// Step advances the sprite world by dt.
func (s *Stage) Step(dt time.Duration) {
	s.world.Step(dt, s.width, s.height)
}

// Tick steps the world by the time since the previous Tick, at most maxDt.
func (s *Stage) Tick(maxDt time.Duration) {
	now := s.now()
	dt := min(now-s.last, maxDt)
	s.last = now
	s.Step(dt)
}
