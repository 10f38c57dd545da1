package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/infoscreens/screen"
	"github.com/user-none/infoscreens/style"
)

// repeater turns a held direction into repeated presses. The first press
// fires at once, repeats start after NavInitialDelay and speed up by
// NavAcceleration down to NavMinInterval.
type repeater struct {
	dir         screen.Button
	held        bool
	startTime   time.Time     // When direction was first pressed
	lastMove    time.Time     // When last move occurred
	repeatDelay time.Duration // Current repeat interval
}

// update reports whether dir fires this frame. held is false when no
// direction is pressed.
func (r *repeater) update(dir screen.Button, held bool, now time.Time) bool {
	if !held {
		r.held = false
		r.repeatDelay = style.NavStartInterval
		return false
	}
	if !r.held || dir != r.dir {
		r.dir = dir
		r.held = true
		r.startTime = now
		r.lastMove = now
		r.repeatDelay = style.NavStartInterval
		return true
	}
	if now.Sub(r.startTime) < style.NavInitialDelay || now.Sub(r.lastMove) < r.repeatDelay {
		return false
	}
	r.lastMove = now
	r.repeatDelay -= style.NavAcceleration
	if r.repeatDelay < style.NavMinInterval {
		r.repeatDelay = style.NavMinInterval
	}
	return true
}

// Input polls keyboard and gamepad and reports screen buttons.
//
// Keyboard: WASD or arrows move, J/Z/Enter/Space is A, K/X/Escape is B.
// Gamepad: D-pad or left stick move, bottom face button is A, right face
// button is B.
type Input struct {
	rep repeater
	now func() time.Time
}

// NewInput creates an input poller.
func NewInput() *Input {
	return &Input{
		rep: repeater{repeatDelay: style.NavStartInterval},
		now: time.Now,
	}
}

// Poll returns the buttons pressed this frame. Should be called once per frame.
func (in *Input) Poll() []screen.Button {
	var out []screen.Button
	dir, held := heldDirection()
	if in.rep.update(dir, held, in.now()) {
		out = append(out, dir)
	}
	if justPressed(buttonAKeys, ebiten.StandardGamepadButtonRightBottom) {
		out = append(out, screen.ButtonA)
	}
	if justPressed(buttonBKeys, ebiten.StandardGamepadButtonRightRight) {
		out = append(out, screen.ButtonB)
	}
	return out
}

var (
	buttonAKeys = []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ, ebiten.KeyEnter, ebiten.KeySpace}
	buttonBKeys = []ebiten.Key{ebiten.KeyK, ebiten.KeyX, ebiten.KeyEscape}
)

// heldDirection returns the pressed direction. Up wins over Down, Down
// over Left and Left over Right.
func heldDirection() (screen.Button, bool) {
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		// D-pad
		up = up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		down = down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)

		// Left analog stick (with deadzone)
		const deadzone = 0.5
		axisX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		axisY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		up = up || axisY < -deadzone
		down = down || axisY > deadzone
		left = left || axisX < -deadzone
		right = right || axisX > deadzone
	}

	switch {
	case up:
		return screen.ButtonUp, true
	case down:
		return screen.ButtonDown, true
	case left:
		return screen.ButtonLeft, true
	case right:
		return screen.ButtonRight, true
	}
	return 0, false
}

func justPressed(keys []ebiten.Key, pad ebiten.StandardGamepadButton) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, pad) {
			return true
		}
	}
	return false
}
