package screen

import (
	"time"

	"github.com/user-none/infoscreens/engine"
)

// Default colours
const (
	DefaultColorBackground = engine.Black
	DefaultColorCursor     = engine.Yellow
	DefaultColorFooter     = engine.White
	DefaultColorHeadline   = engine.Brown
	DefaultColorMidText    = engine.LightBlue
	DefaultColorTabs       = engine.Pink
	DefaultColorTitle      = engine.Yellow
)

// Default fonts
var (
	DefaultFontFooter   = engine.Font8
	DefaultFontHeadline = engine.Font8
	DefaultFontMidText  = engine.Font5
	DefaultFontTabs     = engine.Font5
	DefaultFontTitle    = engine.Doubled(engine.Font8)
)

const (
	// DefaultDelay is the headline rotation interval.
	DefaultDelay = 5 * time.Second
	// DefaultSpriteSpeed is in pixels per second.
	DefaultSpriteSpeed = 100

	DefaultTitlesY = 2

	// TabTextMargin is the padding left and right of tab text.
	TabTextMargin = 5

	DefaultTextDone         = "Done"
	DefaultTextFooterSplash = "Press any button to begin"
	TextNext                = "Next >"
	TextPrevious            = "< Prev"
)

// SpriteDirection says which way moving sprite art faces. Sprites are
// flipped so they appear to travel forwards.
type SpriteDirection int

const (
	Both SpriteDirection = iota
	PointsLeft
	PointsRight
)

var directionNames = []string{"both", "left", "right"}

func (d SpriteDirection) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// SpriteMode controls how moving sprites are placed and animated.
type SpriteMode int

const (
	// BlankSpace moves one sprite at a time horizontally through the lane
	// between the headlines and the mid-text.
	BlankSpace SpriteMode = iota
	// Random places every sprite at once; they bounce off the walls.
	Random
	// RandomWillUpdate places every sprite at once; the caller handles
	// sprites leaving the screen.
	RandomWillUpdate
)

var modeNames = []string{"blankspace", "random", "randomwillupdate"}

func (m SpriteMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseSpriteMode is the inverse of SpriteMode.String.
func ParseSpriteMode(s string) (SpriteMode, bool) {
	for i, n := range modeNames {
		if n == s {
			return SpriteMode(i), true
		}
	}
	return 0, false
}

// ParseSpriteDirection is the inverse of SpriteDirection.String.
func ParseSpriteDirection(s string) (SpriteDirection, bool) {
	for i, n := range directionNames {
		if n == s {
			return SpriteDirection(i), true
		}
	}
	return 0, false
}

// Button is a discrete input event delivered by the host.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
)

var buttonNames = []string{"up", "down", "left", "right", "a", "b"}

func (b Button) String() string {
	if b >= 0 && int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}
