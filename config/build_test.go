package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/screen"
)

func newTestStage() *engine.Stage {
	var now time.Duration
	return engine.NewStage(160, 120, engine.WithClock(func() time.Duration { return now }), engine.WithSeed(1))
}

func TestBuildScreenKinds(t *testing.T) {
	st := newTestStage()

	s, err := BuildScreen(st, ScreenSpec{Titles: []string{"Hi"}})
	require.NoError(t, err)
	assert.IsType(t, &screen.Splash{}, s)

	s, err = BuildScreen(st, ScreenSpec{
		Kind:        KindOptions,
		MidText:     [][]string{{"Easy", "Hard"}},
		DoneText:    "Go",
		CursorColor: "red",
		Selections:  []int{1},
	})
	require.NoError(t, err)
	o, ok := s.(*screen.Options)
	require.True(t, ok)
	assert.Equal(t, "Go", o.DoneText())
	assert.Equal(t, 1, o.Selection(0))

	s, err = BuildScreen(st, ScreenSpec{
		Kind:     KindCollection,
		TabColor: "blue",
		Tabs: []TabSpec{
			{Name: "One", Groups: [][]string{{"a", "b"}}, Selections: []int{1}},
			{Name: "Two", Groups: [][]string{{"c", "d"}}},
		},
	})
	require.NoError(t, err)
	c, ok := s.(*screen.Collection)
	require.True(t, ok)
	assert.Equal(t, []string{"One", "Two"}, c.Tabs())
	assert.Equal(t, 1, c.SelectionFor(0, 0))
	assert.Equal(t, -1, c.SelectionFor(1, 0))
}

func TestBuildScreenConfig(t *testing.T) {
	st := newTestStage()
	s, err := BuildScreen(st, ScreenSpec{
		Titles:  []string{"T"},
		Delay:   "1500ms",
		BackArt: "1 .\n. 1",
		Sprites: SpritesSpec{
			Mode:      "blankspace",
			Direction: "left",
			Speed:     20,
			Art:       []string{"1 1\n1 1"},
		},
	})
	require.NoError(t, err)
	sp := s.(*screen.Splash)
	assert.Equal(t, 1500*time.Millisecond, sp.Delay())
	assert.Equal(t, screen.BlankSpace, sp.MovingMode())
	require.NotNil(t, sp.BackImage())
	assert.Equal(t, 2, sp.BackImage().Width())
}

func TestBuildScreenErrors(t *testing.T) {
	tests := []struct {
		name string
		spec ScreenSpec
		want error
	}{
		{"kind", ScreenSpec{Kind: "menu"}, ErrUnknownKind},
		{"colour", ScreenSpec{TitleColor: "mauve"}, ErrUnknownColor},
		{"cursor colour", ScreenSpec{Kind: KindOptions, CursorColor: "mauve"}, ErrUnknownColor},
		{"tab colour", ScreenSpec{Kind: KindCollection, TabColor: "mauve"}, ErrUnknownColor},
		{"font", ScreenSpec{TitleFont: "font9"}, ErrUnknownFont},
		{"mode", ScreenSpec{Sprites: SpritesSpec{Mode: "bouncy"}}, ErrUnknownMode},
		{"direction", ScreenSpec{Sprites: SpritesSpec{Direction: "up"}}, ErrBadValue},
		{"delay", ScreenSpec{Delay: "soon"}, ErrBadValue},
		{"sprite art", ScreenSpec{Sprites: SpritesSpec{Art: []string{"1 x"}}}, engine.ErrBadArt},
		{"back art", ScreenSpec{BackArt: "1 1\n1"}, engine.ErrBadArt},
		{"static art", ScreenSpec{Statics: []StaticSpec{{Art: ""}}}, engine.ErrBadArt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildScreen(newTestStage(), tt.spec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildDirectorDefaultDeck(t *testing.T) {
	st := newTestStage()
	d, err := BuildDirector(st, Default())
	require.NoError(t, err)
	assert.Equal(t, len(Default().Deck), d.Len())

	d.Start()
	e, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, "template", e.Name)
	assert.Nil(t, e.Rule)
}

func TestBuildDirectorRuleAndOnce(t *testing.T) {
	st := newTestStage()
	cfg := &Config{
		Once: true,
		Deck: []ScreenSpec{{
			Kind:    KindOptions,
			Name:    "players",
			MidText: [][]string{{"1", "2", "3"}},
			Rule:    &RuleSpec{Groups: []int{0}, Min: 1, Max: 2, TooFew: "few", TooMany: "many"},
		}},
	}
	d, err := BuildDirector(st, cfg)
	require.NoError(t, err)

	d.Start()
	e, ok := d.Current()
	require.True(t, ok)
	require.NotNil(t, e.Rule)
	assert.Equal(t, []int{0}, e.Rule.Groups)
	assert.Equal(t, "few", e.Rule.TooFew)

	// The only screen finishing ends a deck that does not loop.
	e.Screen.(*screen.Options).SetSelection(0, 1)
	e.Screen.(*screen.Options).SetDone(true)
	d.Update()
	assert.True(t, d.Finished())
}

func TestBuildDirectorWrapsErrors(t *testing.T) {
	cfg := &Config{Deck: []ScreenSpec{{Kind: "nope", Name: "bad"}}}
	_, err := BuildDirector(newTestStage(), cfg)
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `deck[0] "bad"`)
}
