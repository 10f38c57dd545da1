// Package config loads the window, logging and screen deck settings from
// YAML through viper and turns the deck into screens.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/user-none/infoscreens/style"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config layout written by this build.
const CurrentVersion = 1

// Defaults for missing settings
const (
	DefaultWidth    = 160
	DefaultHeight   = 120
	DefaultTitle    = "infoscreens"
	DefaultLogLevel = "info"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the root of infoscreens.yaml.
type Config struct {
	Version int          `mapstructure:"version" yaml:"version"`
	Window  Window       `mapstructure:"window" yaml:"window"`
	Log     Log          `mapstructure:"log" yaml:"log"`
	Once    bool         `mapstructure:"once" yaml:"once,omitempty"`
	Deck    []ScreenSpec `mapstructure:"deck" yaml:"deck"`
}

// Window sets the stage size in pixels and the window scale.
type Window struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Scale  int    `mapstructure:"scale" yaml:"scale"`
	Title  string `mapstructure:"title" yaml:"title"`
}

// Log sets the slog level: debug, info, warn or error.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// ScreenSpec describes one screen. Kind is splash, options or collection.
// Colours are palette names and fonts are font5, font8, font5x2 or font8x2;
// empty values use the screen defaults.
type ScreenSpec struct {
	Kind string `mapstructure:"kind" yaml:"kind"`
	Name string `mapstructure:"name" yaml:"name,omitempty"`

	Titles        []string   `mapstructure:"titles" yaml:"titles,omitempty"`
	TitleColor    string     `mapstructure:"titleColor" yaml:"titleColor,omitempty"`
	TitleFont     string     `mapstructure:"titleFont" yaml:"titleFont,omitempty"`
	Headlines     [][]string `mapstructure:"headlines" yaml:"headlines,omitempty"`
	HeadlineColor string     `mapstructure:"headlineColor" yaml:"headlineColor,omitempty"`
	HeadlineFont  string     `mapstructure:"headlineFont" yaml:"headlineFont,omitempty"`
	MidText       [][]string `mapstructure:"midText" yaml:"midText,omitempty"`
	MidTextColor  string     `mapstructure:"midTextColor" yaml:"midTextColor,omitempty"`
	MidTextFont   string     `mapstructure:"midTextFont" yaml:"midTextFont,omitempty"`
	Footer        string     `mapstructure:"footer" yaml:"footer,omitempty"`
	FooterColor   string     `mapstructure:"footerColor" yaml:"footerColor,omitempty"`
	FooterFont    string     `mapstructure:"footerFont" yaml:"footerFont,omitempty"`
	BackColor     string     `mapstructure:"backColor" yaml:"backColor,omitempty"`
	BackArt       string     `mapstructure:"backArt" yaml:"backArt,omitempty"`
	Delay         string     `mapstructure:"delay" yaml:"delay,omitempty"`

	Sprites SpritesSpec  `mapstructure:"sprites" yaml:"sprites,omitempty"`
	Statics []StaticSpec `mapstructure:"statics" yaml:"statics,omitempty"`

	// Option screens
	HasHeaders  bool   `mapstructure:"hasHeaders" yaml:"hasHeaders,omitempty"`
	DoneText    string `mapstructure:"doneText" yaml:"doneText,omitempty"`
	CursorColor string `mapstructure:"cursorColor" yaml:"cursorColor,omitempty"`
	Selections  []int  `mapstructure:"selections" yaml:"selections,omitempty"`

	// Collections
	Tabs     []TabSpec `mapstructure:"tabs" yaml:"tabs,omitempty"`
	TabColor string    `mapstructure:"tabColor" yaml:"tabColor,omitempty"`

	Rule *RuleSpec `mapstructure:"rule" yaml:"rule,omitempty"`
}

// SpritesSpec lists the moving sprites as image art.
type SpritesSpec struct {
	Mode      string   `mapstructure:"mode" yaml:"mode,omitempty"`
	Direction string   `mapstructure:"direction" yaml:"direction,omitempty"`
	Speed     float64  `mapstructure:"speed" yaml:"speed,omitempty"`
	Shuffle   bool     `mapstructure:"shuffle" yaml:"shuffle,omitempty"`
	Art       []string `mapstructure:"art" yaml:"art,omitempty"`
}

// StaticSpec pins image art with its centre at X, Y.
type StaticSpec struct {
	Art string `mapstructure:"art" yaml:"art"`
	X   int    `mapstructure:"x" yaml:"x"`
	Y   int    `mapstructure:"y" yaml:"y"`
}

// TabSpec is one tab of a collection.
type TabSpec struct {
	Name       string     `mapstructure:"name" yaml:"name"`
	Groups     [][]string `mapstructure:"groups" yaml:"groups"`
	HasHeaders bool       `mapstructure:"hasHeaders" yaml:"hasHeaders,omitempty"`
	Selections []int      `mapstructure:"selections" yaml:"selections,omitempty"`
}

// RuleSpec bounds the sum of the selections of some groups.
type RuleSpec struct {
	Tab     int    `mapstructure:"tab" yaml:"tab,omitempty"`
	Groups  []int  `mapstructure:"groups" yaml:"groups"`
	Min     int    `mapstructure:"min" yaml:"min"`
	Max     int    `mapstructure:"max" yaml:"max"`
	TooFew  string `mapstructure:"tooFew" yaml:"tooFew"`
	TooMany string `mapstructure:"tooMany" yaml:"tooMany"`
}

// Default returns the built-in configuration and demo deck.
func Default() *Config {
	cfg, err := Parse(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return cfg
}

// Parse decodes YAML from r and fills in defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return applyDefaults(cfg), nil
}

// Load decodes the settings viper has read. An empty deck is replaced by
// the built-in demo deck.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Deck) == 0 {
		cfg.Deck = Default().Deck
	}
	return applyDefaults(cfg), nil
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// applyDefaults fills zero values and upgrades older layouts.
func applyDefaults(cfg *Config) *Config {
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = DefaultWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = DefaultHeight
	}
	cfg.Window.Scale = style.ClampScale(cfg.Window.Scale)
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultTitle
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	return cfg
}
