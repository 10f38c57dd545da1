package screen

import "github.com/user-none/infoscreens/engine"

// Splash is a rotating screen of titles, headlines and instructions that
// finishes on any button press.
type Splash struct {
	*Rotating
	finished bool
}

// NewSplash creates a splash screen. An empty footer defaults to
// DefaultTextFooterSplash.
func NewSplash(host engine.Host, cfg Config) *Splash {
	if cfg.Footer == "" {
		cfg.Footer = DefaultTextFooterSplash
	}
	return &Splash{Rotating: NewRotating(host, cfg)}
}

// Build shows the screen and clears the finished flag.
func (s *Splash) Build() {
	s.finished = false
	s.Rotating.Build()
}

// HandleInput finishes the splash screen on any button.
func (s *Splash) HandleInput(b Button) {
	s.finished = true
}

// Finished reports whether a button has been pressed since Build.
func (s *Splash) Finished() bool {
	return s.finished
}

// AddInstructions appends a group of instruction lines (up to three
// groups are shown side by side).
func (s *Splash) AddInstructions(lines []string) {
	s.AddMidText(lines)
}

// Instructions returns the instruction groups.
func (s *Splash) Instructions() [][]string {
	return s.MidText()
}

// SetInstructions replaces every instruction group.
func (s *Splash) SetInstructions(groups [][]string) {
	s.midText.Groups = cloneGroups(groups)
}
