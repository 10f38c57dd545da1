package cli

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/infoscreens/bridge/ebitenhost"
	"github.com/user-none/infoscreens/show"
)

// Runner wraps a host and director as an ebiten game.
// The host polls input; the runner hands each button to the director.
type Runner struct {
	host     *ebitenhost.Host
	director *show.Director
}

// NewRunner creates a Runner for a started director.
func NewRunner(host *ebitenhost.Host, director *show.Director) *Runner {
	return &Runner{host: host, director: director}
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if r.director.Finished() {
		return ebiten.Termination
	}
	if !ebiten.IsFocused() {
		return nil
	}

	r.host.Step()
	for _, b := range r.host.Poll() {
		r.director.HandleInput(b)
	}
	r.director.Update()
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.host.Draw(screen)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.host.Layout(outsideWidth, outsideHeight)
}
