// Package term previews information screens in a terminal. The stage is
// downsampled to coloured character cells and drawn by a bubbletea program.
package term

import (
	"time"

	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/style"
)

// maxStep caps how far sprites move in one frame after a stall.
const maxStep = 200 * time.Millisecond

// Host is an engine.Host shown in the terminal.
type Host struct {
	*engine.Stage

	notice      string
	noticeUntil time.Duration
}

var _ engine.Host = (*Host)(nil)

// NewHost creates a width x height host.
func NewHost(width, height int, opts ...engine.StageOption) *Host {
	return &Host{Stage: engine.NewStage(width, height, opts...)}
}

// Step moves sprites by the time elapsed since the previous Step.
func (h *Host) Step() {
	h.Tick(maxStep)
}

// Notify shows message under the screen for NotificationDuration.
func (h *Host) Notify(message string) {
	h.notice = message
	h.noticeUntil = h.Now() + style.NotificationDuration
}

// Notice returns the message being shown, if any.
func (h *Host) Notice() (string, bool) {
	if h.notice == "" || h.Now() >= h.noticeUntil {
		return "", false
	}
	return h.notice, true
}
