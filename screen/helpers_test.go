package screen

import (
	"time"

	"github.com/user-none/infoscreens/engine"
)

const (
	testWidth  = 160
	testHeight = 120
)

// manualClock is advanced explicitly by tests.
type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }

func newTestStage() (*engine.Stage, *manualClock) {
	clk := &manualClock{}
	st := engine.NewStage(testWidth, testHeight, engine.WithClock(clk.Now), engine.WithSeed(7))
	return st, clk
}

func countKind(st *engine.Stage, kind engine.SpriteKind) int {
	return len(st.World().AllOfKind(kind))
}

func hasText(img engine.Image, text string) bool {
	for _, r := range img.Texts() {
		if r.Text == text {
			return true
		}
	}
	return false
}

func textRun(img engine.Image, text string) (engine.TextRun, bool) {
	for _, r := range img.Texts() {
		if r.Text == text {
			return r, true
		}
	}
	return engine.TextRun{}, false
}
