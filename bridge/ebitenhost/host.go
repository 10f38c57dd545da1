// Package ebitenhost runs information screens in an Ebitengine window. The
// Host keeps the shared engine stage and adds drawing, input and toast
// notifications on top.
package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/screen"
)

// maxStep caps how far sprites move in one frame after a stall.
const maxStep = 100 * time.Millisecond

// Host is an engine.Host presented through ebiten.
type Host struct {
	*engine.Stage

	presenter *Presenter
	notice    *Notification
	input     *Input
}

var _ engine.Host = (*Host)(nil)

// New creates a width x height host drawn at the given window scale.
func New(width, height, scale int, opts ...engine.StageOption) (*Host, error) {
	p, err := NewPresenter(scale, DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Host{
		Stage:     engine.NewStage(width, height, opts...),
		presenter: p,
		notice:    NewNotification(p.Scale() / 2),
		input:     NewInput(),
	}, nil
}

// Step moves sprites by the time elapsed since the previous Step.
func (h *Host) Step() {
	h.Tick(maxStep)
}

// Poll returns the buttons pressed this frame.
func (h *Host) Poll() []screen.Button {
	return h.input.Poll()
}

// Notify shows message as a toast.
func (h *Host) Notify(message string) {
	h.notice.Notify(message)
}

// Notification is the toast shown by Notify.
func (h *Host) Notification() *Notification {
	return h.notice
}

// Draw renders the stage and any visible toast.
func (h *Host) Draw(dst *ebiten.Image) {
	h.presenter.Draw(dst, h.Stage)
	h.notice.Draw(dst)
}

// Layout is the stage size in window pixels.
func (h *Host) Layout(_, _ int) (int, int) {
	w, ht := h.ScreenSize()
	s := h.presenter.Scale()
	return int(float64(w) * s), int(float64(ht) * s)
}
