// Package config loads transition scenarios and palette overrides from
// YAML files for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plotfx/blend"
	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/theme"
	"github.com/san-kum/plotfx/transition"
)

const (
	DefaultDuration = 1.0
	DefaultFPS      = 30
)

// Scenario describes a full transition: endpoints, timing, easing, and
// element styling.
type Scenario struct {
	PlotType string      `yaml:"plot_type"`
	Duration float64     `yaml:"duration"`
	FPS      int         `yaml:"fps"`
	Easing   string      `yaml:"easing"`
	Title    string      `yaml:"title"`
	From     State       `yaml:"from"`
	To       State       `yaml:"to"`
	Style    StyleConfig `yaml:"style"`
}

// State is one snapshot endpoint. Colors are written as hex strings or
// names and resolved at build time.
type State struct {
	X         []float64 `yaml:"x"`
	Y         []float64 `yaml:"y"`
	Heights   []float64 `yaml:"heights"`
	Sizes     []float64 `yaml:"sizes"`
	Color     string    `yaml:"color"`
	Colors    []string  `yaml:"colors"`
	LineWidth *float64  `yaml:"line_width"`
}

// StyleConfig is extra styling for the created plot element.
type StyleConfig struct {
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
	DotSize   float64 `yaml:"dot_size"`
}

// PaletteConfig overrides the dark-mode palette.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Grid       string `yaml:"grid"`
	Spine      string `yaml:"spine"`
	Tick       string `yaml:"tick"`
	Label      string `yaml:"label"`
}

// DefaultScenario is a small line transition used when no config or
// flags are given.
func DefaultScenario() *Scenario {
	return &Scenario{
		PlotType: "line",
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
		Easing:   easing.DefaultEasing,
		Title:    "transition",
		From:     State{Y: []float64{0, 2, 1, 3, 2}},
		To:       State{Y: []float64{5, 3, 6, 2, 7}},
	}
}

// LoadScenario reads a scenario file over defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveScenario writes a scenario file.
func SaveScenario(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Snapshots resolves both endpoints into transition snapshots.
func (s *Scenario) Snapshots() (from, to transition.Snapshot, err error) {
	from, err = s.From.snapshot()
	if err != nil {
		return from, to, fmt.Errorf("from: %w", err)
	}
	to, err = s.To.snapshot()
	if err != nil {
		return from, to, fmt.Errorf("to: %w", err)
	}
	return from, to, nil
}

// Options resolves timing, easing, kind, and style.
func (s *Scenario) Options() (transition.Options, error) {
	kind, err := transition.ParseKind(s.PlotType)
	if err != nil {
		return transition.Options{}, err
	}
	opts := transition.Options{
		Duration: s.Duration,
		FPS:      s.FPS,
		Easing:   easing.ByName(s.Easing),
		Kind:     kind,
	}
	if s.Style.Color != "" {
		c, err := blend.Parse(s.Style.Color)
		if err != nil {
			return transition.Options{}, err
		}
		opts.Style.Color = &c
	}
	opts.Style.LineWidth = s.Style.LineWidth
	opts.Style.DotSize = s.Style.DotSize
	return opts, nil
}

func (st State) snapshot() (transition.Snapshot, error) {
	snap := transition.Snapshot{
		X:         st.X,
		Y:         st.Y,
		Heights:   st.Heights,
		Sizes:     st.Sizes,
		LineWidth: st.LineWidth,
	}
	if st.Color != "" {
		c, err := blend.Parse(st.Color)
		if err != nil {
			return snap, err
		}
		snap.Color = &c
	}
	for _, raw := range st.Colors {
		c, err := blend.Parse(raw)
		if err != nil {
			return snap, err
		}
		snap.Colors = append(snap.Colors, c)
	}
	return snap, nil
}

// LoadPalette reads a dark-palette override file. Missing fields keep
// the built-in dark values.
func LoadPalette(path string) (theme.Palette, error) {
	pal := theme.DarkPalette()
	data, err := os.ReadFile(path)
	if err != nil {
		return pal, err
	}
	var pc PaletteConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return pal, err
	}
	fields := []struct {
		raw string
		dst *blend.RGBA
	}{
		{pc.Background, &pal.Background},
		{pc.Text, &pal.Text},
		{pc.Grid, &pal.Grid},
		{pc.Spine, &pal.Spine},
		{pc.Tick, &pal.Tick},
		{pc.Label, &pal.Label},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := blend.Parse(f.raw)
		if err != nil {
			return pal, err
		}
		*f.dst = c
	}
	return pal, nil
}
