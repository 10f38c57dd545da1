package show

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/screen"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func newTestStage() *engine.Stage {
	var now time.Duration
	return engine.NewStage(160, 120, engine.WithClock(func() time.Duration { return now }), engine.WithSeed(3))
}

var playerGroups = [][]string{
	{"Human", "0 players", "1 player", "2 players", "3 players", "4 players"},
	{"Computer", "0 players", "1 player", "2 players", "3 players", "4 players"},
}

func playerRule(tab int) *SumRule {
	return &SumRule{
		Tab:     tab,
		Groups:  []int{0, 1},
		Min:     2,
		Max:     4,
		TooFew:  "Must have at least two players.",
		TooMany: "Cannot have more than four players.",
	}
}

func splash(st *engine.Stage, title string) *screen.Splash {
	return screen.NewSplash(st, screen.Config{Titles: []string{title}})
}

func TestDirectorAdvancesOnSplashInput(t *testing.T) {
	st := newTestStage()
	d := New(st)
	first, second := splash(st, "One"), splash(st, "Two")
	d.Add(Entry{Name: "one", Screen: first})
	d.Add(Entry{Name: "two", Screen: second})

	assert.Equal(t, -1, d.Index())
	d.Start()
	require.Equal(t, 0, d.Index())
	assert.True(t, first.Built())

	d.HandleInput(screen.ButtonLeft)
	assert.Equal(t, 1, d.Index())
	assert.False(t, first.Built(), "previous screen should be released")
	assert.True(t, second.Built())

	d.HandleInput(screen.ButtonB)
	assert.Equal(t, 0, d.Index(), "deck should loop")
	assert.True(t, first.Built())
	assert.False(t, first.Finished(), "rebuilding should clear finished")
}

func TestDirectorWithoutLoop(t *testing.T) {
	st := newTestStage()
	d := New(st, WithLoop(false))
	d.Add(Entry{Name: "only", Screen: splash(st, "Only")})
	d.Start()

	d.HandleInput(screen.ButtonA)
	assert.True(t, d.Finished())
	_, ok := d.Current()
	assert.False(t, ok)

	d.HandleInput(screen.ButtonA)
	d.Update()
}

func TestDirectorEmptyDeck(t *testing.T) {
	d := New(newTestStage())
	d.Start()
	assert.True(t, d.Finished())
	assert.Equal(t, 0, d.Len())
}

func TestDirectorRuleOnOptions(t *testing.T) {
	st := newTestStage()
	n := &recordingNotifier{}
	d := New(st, WithNotifier(n))

	o := screen.NewOptions(st, screen.Config{MidText: playerGroups}, true)
	d.Add(Entry{Name: "options", Screen: o, Rule: playerRule(0)})
	d.Add(Entry{Name: "after", Screen: splash(st, "After")})
	d.Start()

	// No selections: too few.
	d.HandleInput(screen.ButtonUp)
	d.HandleInput(screen.ButtonA)
	require.Equal(t, []string{"Must have at least two players."}, n.messages)
	assert.Equal(t, 0, d.Index())
	assert.False(t, o.Done(), "broken rule should reopen the screen")
	assert.NotNil(t, o.CursorSprite())

	o.SetSelection(0, 3)
	o.SetSelection(1, 2)
	d.HandleInput(screen.ButtonA)
	require.Len(t, n.messages, 2)
	assert.Equal(t, "Cannot have more than four players.", n.messages[1])
	assert.Equal(t, 0, d.Index())

	o.SetSelection(1, 1)
	d.HandleInput(screen.ButtonA)
	assert.Len(t, n.messages, 2)
	assert.Equal(t, 1, d.Index())
}

func TestDirectorRuleOnCollection(t *testing.T) {
	st := newTestStage()
	n := &recordingNotifier{}
	d := New(st, WithNotifier(n))

	c := screen.NewCollection(st, screen.Config{})
	c.AddScreen("Players", playerGroups, true)
	c.AddScreen("Game Type", [][]string{{"Standard", "Classic", "Modern"}}, false)
	c.SetSelectionFor(0, 0, 2)
	c.SetSelectionFor(0, 1, 0)
	d.Add(Entry{Name: "collection", Screen: c, Rule: playerRule(0)})
	d.Add(Entry{Name: "after", Screen: splash(st, "After")})
	d.Start()

	// Move to the second tab, then pick Done there.
	d.HandleInput(screen.ButtonUp)
	d.HandleInput(screen.ButtonRight)
	d.HandleInput(screen.ButtonRight)
	d.HandleInput(screen.ButtonA)
	require.Equal(t, 1, c.Current())

	// The cursor stays on Next after the switch.
	d.HandleInput(screen.ButtonLeft)
	d.HandleInput(screen.ButtonA)
	assert.Empty(t, n.messages)
	assert.Equal(t, 1, d.Index(), "tab 0 selections sum to 2")
}

func TestSumRule(t *testing.T) {
	st := newTestStage()
	o := screen.NewOptions(st, screen.Config{MidText: playerGroups}, true)
	r := playerRule(0)

	assert.Equal(t, 0, r.Sum(o), "no selection counts as zero")
	o.SetSelection(0, 4)
	assert.Equal(t, 4, r.Sum(o))
	_, ok := r.Check(o)
	assert.True(t, ok)

	o.SetSelection(1, 1)
	msg, ok := r.Check(o)
	assert.False(t, ok)
	assert.Equal(t, r.TooMany, msg)

	assert.Equal(t, 0, r.Sum(splash(st, "x")), "screens without selections sum to zero")
}

func TestWrapSprites(t *testing.T) {
	st := newTestStage()
	img := engine.NewBitmap(10, 10)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"off right", 166, 50, -5, 50},
		{"off left", -6, 50, 165, 50},
		{"off bottom", 50, 126, 50, -5},
		{"off top", 50, -6, 50, 125},
		{"on edge", 165, 50, 165, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := st.Sprites().Create(img, engine.KindMoving)
			defer s.Destroy()
			s.X, s.Y = tc.x, tc.y
			WrapSprites(st)
			assert.Equal(t, tc.wantX, s.X)
			assert.Equal(t, tc.wantY, s.Y)
		})
	}

	other := st.Sprites().Create(img, engine.KindStatic)
	other.X = 500
	WrapSprites(st)
	assert.Equal(t, 500.0, other.X, "only moving sprites wrap")
}

func TestDirectorWrapsRandomWillUpdate(t *testing.T) {
	st := newTestStage()
	s := screen.NewSplash(st, screen.Config{
		Moving: screen.MovingSprites{
			Images: []engine.Image{engine.NewBitmap(10, 10)},
			Mode:   screen.RandomWillUpdate,
		},
	})
	d := New(st)
	d.Add(Entry{Name: "asteroids", Screen: s})
	d.Start()

	moving := st.World().AllOfKind(engine.KindMoving)
	require.Len(t, moving, 1)
	moving[0].X = 200

	d.Update()
	assert.Equal(t, -5.0, moving[0].X)
}
