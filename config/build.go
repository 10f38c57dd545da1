package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/user-none/infoscreens/engine"
	"github.com/user-none/infoscreens/screen"
	"github.com/user-none/infoscreens/show"
)

// Screen kinds
const (
	KindSplash     = "splash"
	KindOptions    = "options"
	KindCollection = "collection"
)

// Errors returned while building screens
var (
	ErrUnknownKind  = errors.New("unknown screen kind")
	ErrUnknownColor = errors.New("unknown colour")
	ErrUnknownFont  = errors.New("unknown font")
	ErrUnknownMode  = errors.New("unknown sprite mode")
	ErrBadValue     = errors.New("invalid value")
)

// BuildDirector creates every screen of the deck on host and queues them
// on a director. The director loops unless Once is set.
func BuildDirector(host engine.Host, cfg *Config, opts ...show.Option) (*show.Director, error) {
	opts = append([]show.Option{show.WithLoop(!cfg.Once)}, opts...)
	d := show.New(host, opts...)
	for i, spec := range cfg.Deck {
		s, err := BuildScreen(host, spec)
		if err != nil {
			return nil, fmt.Errorf("deck[%d] %q: %w", i, spec.Name, err)
		}
		e := show.Entry{Name: spec.Name, Screen: s}
		if r := spec.Rule; r != nil {
			e.Rule = &show.SumRule{
				Tab:     r.Tab,
				Groups:  append([]int(nil), r.Groups...),
				Min:     r.Min,
				Max:     r.Max,
				TooFew:  r.TooFew,
				TooMany: r.TooMany,
			}
		}
		d.Add(e)
	}
	return d, nil
}

// BuildScreen creates the screen spec describes.
func BuildScreen(host engine.Host, spec ScreenSpec) (screen.Screen, error) {
	cfg, err := screenConfig(spec)
	if err != nil {
		return nil, err
	}
	cursor, err := parseColor(spec.CursorColor)
	if err != nil {
		return nil, fmt.Errorf("cursorColor: %w", err)
	}

	switch spec.Kind {
	case KindSplash, "":
		return screen.NewSplash(host, cfg), nil

	case KindOptions:
		o := screen.NewOptions(host, cfg, spec.HasHeaders)
		if spec.DoneText != "" {
			o.SetDoneText(spec.DoneText)
		}
		if cursor != engine.Transparent {
			o.SetCursorColor(cursor)
		}
		for g, v := range spec.Selections {
			o.SetSelection(g, v)
		}
		return o, nil

	case KindCollection:
		c := screen.NewCollection(host, cfg)
		if spec.DoneText != "" {
			c.SetDoneText(spec.DoneText)
		}
		if cursor != engine.Transparent {
			c.SetCursorColor(cursor)
		}
		tab, err := parseColor(spec.TabColor)
		if err != nil {
			return nil, fmt.Errorf("tabColor: %w", err)
		}
		if tab != engine.Transparent {
			c.SetTabColor(tab)
		}
		for i, t := range spec.Tabs {
			c.AddScreen(t.Name, t.Groups, t.HasHeaders)
			for g, v := range t.Selections {
				c.SetSelectionFor(i, g, v)
			}
		}
		return c, nil
	}
	return nil, fmt.Errorf("%q: %w", spec.Kind, ErrUnknownKind)
}

// screenConfig converts the parts shared by every kind.
func screenConfig(spec ScreenSpec) (screen.Config, error) {
	cfg := screen.Config{
		Titles:    spec.Titles,
		Headlines: spec.Headlines,
		MidText:   spec.MidText,
		Footer:    spec.Footer,
	}

	colors := []struct {
		name string
		in   string
		out  *engine.Color
	}{
		{"titleColor", spec.TitleColor, &cfg.TitleColor},
		{"headlineColor", spec.HeadlineColor, &cfg.HeadlineColor},
		{"midTextColor", spec.MidTextColor, &cfg.MidTextColor},
		{"footerColor", spec.FooterColor, &cfg.FooterColor},
		{"backColor", spec.BackColor, &cfg.BackColor},
	}
	for _, c := range colors {
		v, err := parseColor(c.in)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.out = v
	}

	fonts := []struct {
		name string
		in   string
		out  *engine.Font
	}{
		{"titleFont", spec.TitleFont, &cfg.TitleFont},
		{"headlineFont", spec.HeadlineFont, &cfg.HeadlineFont},
		{"midTextFont", spec.MidTextFont, &cfg.MidTextFont},
		{"footerFont", spec.FooterFont, &cfg.FooterFont},
	}
	for _, f := range fonts {
		v, err := parseFont(f.in)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.out = v
	}

	if spec.Delay != "" {
		d, err := time.ParseDuration(spec.Delay)
		if err != nil {
			return cfg, fmt.Errorf("delay %q: %w", spec.Delay, ErrBadValue)
		}
		cfg.Delay = d
	}

	if spec.BackArt != "" {
		img, err := engine.ParseArt(spec.BackArt)
		if err != nil {
			return cfg, fmt.Errorf("backArt: %w", err)
		}
		cfg.BackImage = img
	}

	moving, err := movingSprites(spec.Sprites)
	if err != nil {
		return cfg, err
	}
	cfg.Moving = moving

	for i, st := range spec.Statics {
		img, err := engine.ParseArt(st.Art)
		if err != nil {
			return cfg, fmt.Errorf("statics[%d]: %w", i, err)
		}
		cfg.Statics = append(cfg.Statics, screen.StaticSprite{Image: img, X: st.X, Y: st.Y})
	}
	return cfg, nil
}

func movingSprites(spec SpritesSpec) (screen.MovingSprites, error) {
	m := screen.MovingSprites{Speed: spec.Speed, Shuffle: spec.Shuffle}
	if spec.Mode != "" {
		mode, ok := screen.ParseSpriteMode(spec.Mode)
		if !ok {
			return m, fmt.Errorf("sprites.mode %q: %w", spec.Mode, ErrUnknownMode)
		}
		m.Mode = mode
	}
	if spec.Direction != "" {
		dir, ok := screen.ParseSpriteDirection(spec.Direction)
		if !ok {
			return m, fmt.Errorf("sprites.direction %q: %w", spec.Direction, ErrBadValue)
		}
		m.Direction = dir
	}
	for i, art := range spec.Art {
		img, err := engine.ParseArt(art)
		if err != nil {
			return m, fmt.Errorf("sprites.art[%d]: %w", i, err)
		}
		m.Images = append(m.Images, img)
	}
	return m, nil
}

func parseColor(name string) (engine.Color, error) {
	if name == "" {
		return engine.Transparent, nil
	}
	c, ok := engine.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownColor)
	}
	return c, nil
}

func parseFont(name string) (engine.Font, error) {
	if name == "" {
		return engine.Font{}, nil
	}
	f, ok := engine.FontByName(name)
	if !ok {
		return engine.Font{}, fmt.Errorf("%q: %w", name, ErrUnknownFont)
	}
	return f, nil
}
