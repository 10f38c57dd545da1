// Package show runs a deck of information screens one after another,
// routing input to the screen showing and moving on when it finishes.
package show

import (
	"log/slog"

	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/logging"
	"github.com/user-none/infoscreens/screen"
)

var logCtx = logging.PackageCtx("show")

// Notifier shows a short message to the player.
type Notifier interface {
	Notify(message string)
}

// Entry is one screen of the deck.
type Entry struct {
	Name   string
	Screen screen.Screen
	// Rule, when set, must hold before an option screen may finish.
	Rule *SumRule
}

type doneSetter interface {
	SetDone(v bool)
}

type moder interface {
	MovingMode() screen.SpriteMode
}

// Director shows the deck in order.
type Director struct {
	host     engine.Host
	notifier Notifier
	deck     []Entry
	idx      int
	loop     bool
	finished bool
}

// Option configures a Director.
type Option func(*Director)

// WithLoop starts the deck again after the last screen.
func WithLoop(loop bool) Option {
	return func(d *Director) { d.loop = loop }
}

// WithNotifier sets where rule violations are shown.
func WithNotifier(n Notifier) Option {
	return func(d *Director) { d.notifier = n }
}

// New creates a director for host. It loops by default.
func New(host engine.Host, opts ...Option) *Director {
	d := &Director{host: host, idx: -1, loop: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add appends e to the deck.
func (d *Director) Add(e Entry) {
	d.deck = append(d.deck, e)
}

// Len is the number of screens in the deck.
func (d *Director) Len() int {
	return len(d.deck)
}

// Start builds the first screen.
func (d *Director) Start() {
	if len(d.deck) == 0 {
		d.finished = true
		return
	}
	d.idx = 0
	d.finished = false
	d.show()
}

// Index is the position of the screen showing, or -1 before Start.
func (d *Director) Index() int {
	return d.idx
}

// Current returns the entry showing.
func (d *Director) Current() (Entry, bool) {
	if d.finished || d.idx < 0 || d.idx >= len(d.deck) {
		return Entry{}, false
	}
	return d.deck[d.idx], true
}

// Finished reports that a non-looping deck has shown every screen.
func (d *Director) Finished() bool {
	return d.finished
}

// HandleInput passes b to the screen showing.
func (d *Director) HandleInput(b screen.Button) {
	e, ok := d.Current()
	if !ok {
		return
	}
	e.Screen.HandleInput(b)
	d.checkFinished(e)
}

// Update runs one frame of the screen showing.
func (d *Director) Update() {
	e, ok := d.Current()
	if !ok {
		return
	}
	if m, ok := e.Screen.(moder); ok && m.MovingMode() == screen.RandomWillUpdate {
		WrapSprites(d.host)
	}
	e.Screen.Update()
	d.checkFinished(e)
}

// checkFinished moves on once the screen is finished and its rule holds.
// A broken rule is shown to the player and the screen is reopened.
func (d *Director) checkFinished(e Entry) {
	if !e.Screen.Finished() {
		return
	}
	if e.Rule != nil {
		if msg, ok := e.Rule.Check(e.Screen); !ok {
			slog.WarnContext(logCtx, "selection rejected",
				slog.String("screen", e.Name),
				slog.Int("sum", e.Rule.Sum(e.Screen)),
				slog.String("reason", msg))
			if d.notifier != nil && msg != "" {
				d.notifier.Notify(msg)
			}
			if s, ok := e.Screen.(doneSetter); ok {
				s.SetDone(false)
			}
			return
		}
	}
	d.next()
}

func (d *Director) next() {
	d.deck[d.idx].Screen.Release()
	d.idx++
	if d.idx >= len(d.deck) {
		if !d.loop {
			d.finished = true
			slog.InfoContext(logCtx, "deck finished")
			return
		}
		d.idx = 0
	}
	d.show()
}

func (d *Director) show() {
	e := d.deck[d.idx]
	e.Screen.Build()
	slog.InfoContext(logCtx, "showing screen",
		slog.Int("index", d.idx),
		slog.String("name", e.Name))
}

// WrapSprites moves moving sprites that have left the screen to the
// opposite edge.
func WrapSprites(host engine.Host) {
	width, height := host.ScreenSize()
	w, h := float64(width), float64(height)
	for _, s := range host.Sprites().AllOfKind(engine.KindMoving) {
		threshold := float64(s.Width()) / 2
		switch {
		case s.X > w+threshold:
			s.X = -threshold
		case s.X < -threshold:
			s.X = w + threshold
		}
		switch {
		case s.Y > h+threshold:
			s.Y = -threshold
		case s.Y < -threshold:
			s.Y = h + threshold
		}
	}
}
