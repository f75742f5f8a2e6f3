// Package theme toggles figures between light and dark palettes. The
// current mode is detected from the target's background luminance, and
// pre-toggle colors are cached (weakly, by object identity) so a second
// toggle restores them exactly.
package theme

import (
	"errors"
	"sync"

	"github.com/san-kum/plotfx/blend"
	"github.com/san-kum/plotfx/figure"
)

// ErrNoFigure reports a toggle with no explicit target and no current
// figure.
var ErrNoFigure = errors.New("no figure to toggle")

// Mode classifies a background as light or dark.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Background luminance below this threshold reads as dark.
const darkThreshold = 0.5

// Data colors below this luminance get brightened for dark backgrounds.
const dimDataThreshold = 0.3

// Detect classifies a background color by its luminance.
func Detect(bg blend.RGBA) Mode {
	if bg.Luminance() < darkThreshold {
		return Dark
	}
	return Light
}

// Palette holds the structural colors applied to one mode.
type Palette struct {
	Background blend.RGBA
	Text       blend.RGBA
	Grid       blend.RGBA
	Spine      blend.RGBA
	Tick       blend.RGBA
	Label      blend.RGBA
}

// DarkPalette returns the built-in dark scheme.
func DarkPalette() Palette {
	return Palette{
		Background: blend.MustParse("#121212"),
		Text:       blend.MustParse("#ffffff"),
		Grid:       blend.MustParse("#404040"),
		Spine:      blend.MustParse("#666666"),
		Tick:       blend.MustParse("#ffffff"),
		Label:      blend.MustParse("#ffffff"),
	}
}

// LightPalette returns the built-in light scheme, used when a dark
// figure with no cached colors toggles to light.
func LightPalette() Palette {
	return Palette{
		Background: blend.MustParse("#ffffff"),
		Text:       blend.MustParse("#000000"),
		Grid:       blend.MustParse("#b0b0b0"),
		Spine:      blend.MustParse("#000000"),
		Tick:       blend.MustParse("#000000"),
		Label:      blend.MustParse("#000000"),
	}
}

// Grid lines are drawn fainter in dark mode.
const (
	darkGridAlpha  = 0.3
	lightGridAlpha = 0.5
)

// Options selects the toggle target and behavior. A non-nil Axes
// restricts the toggle to that one sub-region.
type Options struct {
	Axes             *figure.Axes
	AdjustDataColors bool
}

// Toggler applies and reverts themes using its own palettes and cache,
// so tests and embedders can run independent instances.
type Toggler struct {
	mu    sync.Mutex
	dark  Palette
	light Palette
	cache *Cache
}

// NewToggler builds a toggler with built-in palettes. A nil cache gets
// a fresh one.
func NewToggler(cache *Cache) *Toggler {
	if cache == nil {
		cache = NewCache()
	}
	return &Toggler{dark: DarkPalette(), light: LightPalette(), cache: cache}
}

// SetPalette overrides the dark-mode palette for subsequent toggles.
func (t *Toggler) SetPalette(p Palette) {
	t.mu.Lock()
	t.dark = p
	t.mu.Unlock()
}

// ResetPalette restores the built-in palettes.
func (t *Toggler) ResetPalette() {
	t.mu.Lock()
	t.dark = DarkPalette()
	t.light = LightPalette()
	t.mu.Unlock()
}

// Cache returns the toggler's color cache.
func (t *Toggler) Cache() *Cache { return t.cache }

// Toggle flips the target between light and dark. A nil figure targets
// the current one. The first toggle of an object snapshots its
// structural colors and applies the opposite palette; the next toggle
// restores the snapshot and drops it, so a third starts a new cycle.
func (t *Toggler) Toggle(f *figure.Figure, opts Options) (Mode, error) {
	if opts.Axes != nil {
		return t.toggleAxes(opts.Axes, opts.AdjustDataColors), nil
	}
	if f == nil {
		f = figure.Current()
	}
	if f == nil {
		return Light, ErrNoFigure
	}
	return t.toggleFigure(f, opts.AdjustDataColors), nil
}

func (t *Toggler) toggleFigure(f *figure.Figure, adjustData bool) Mode {
	if fc, ok := t.cache.takeFigure(f); ok {
		f.Background = fc.background
		for i, a := range f.Axes() {
			if i < len(fc.axes) {
				restoreAxes(a, fc.axes[i])
			}
		}
		return Detect(f.Background)
	}

	fc := &figureColors{background: f.Background}
	for _, a := range f.Axes() {
		fc.axes = append(fc.axes, snapshotAxes(a))
	}
	t.cache.putFigure(f, fc)

	mode := Detect(f.Background)
	pal, gridAlpha := t.opposite(mode)
	f.Background = pal.Background
	for _, a := range f.Axes() {
		applyPalette(a, pal, gridAlpha)
		if adjustData && mode == Light {
			brightenData(a)
		}
	}
	return mode.flip()
}

func (t *Toggler) toggleAxes(a *figure.Axes, adjustData bool) Mode {
	if ac, ok := t.cache.takeAxes(a); ok {
		restoreAxes(a, *ac)
		return Detect(a.Background)
	}

	ac := snapshotAxes(a)
	t.cache.putAxes(a, &ac)

	mode := Detect(a.Background)
	pal, gridAlpha := t.opposite(mode)
	applyPalette(a, pal, gridAlpha)
	if adjustData && mode == Light {
		brightenData(a)
	}
	return mode.flip()
}

// opposite returns the palette for the mode we are switching into.
func (t *Toggler) opposite(current Mode) (Palette, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if current == Light {
		return t.dark, darkGridAlpha
	}
	return t.light, lightGridAlpha
}

func (m Mode) flip() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func applyPalette(a *figure.Axes, pal Palette, gridAlpha float64) {
	a.Background = pal.Background
	a.TitleColor = pal.Text
	a.LabelColor = pal.Label
	a.TickColor = pal.Tick
	a.SpineColor = pal.Spine
	a.GridColor = pal.Grid
	a.GridAlpha = gridAlpha
}

// brightenData lifts dim data colors so they stay visible against a
// dark background. Alpha is preserved; these changes are not undone by
// a toggle-back.
func brightenData(a *figure.Axes) {
	for _, l := range a.Lines() {
		l.Color = brighten(l.Color)
	}
	for _, s := range a.Scatters() {
		for i, c := range s.Colors {
			s.Colors[i] = brighten(c)
		}
	}
	for _, b := range a.BarSeries() {
		for i, c := range b.Colors {
			b.Colors[i] = brighten(c)
		}
	}
}

func brighten(c blend.RGBA) blend.RGBA {
	lum := c.Luminance()
	if lum >= dimDataThreshold {
		return c
	}
	// Scaling cannot lift near-black; invert it to white instead.
	if lum < 0.02 {
		return blend.RGBA{R: 1, G: 1, B: 1, A: c.A}
	}
	if lum < 0.1 {
		lum = 0.1
	}
	return c.Scale(0.7 / lum)
}

// Package-level default toggler, for the common single-process case.
var std = NewToggler(nil)

// Toggle flips the theme of f (or the current figure when nil) using
// the default toggler.
func Toggle(f *figure.Figure, opts Options) (Mode, error) {
	return std.Toggle(f, opts)
}

// SetPalette overrides the default toggler's dark palette.
func SetPalette(p Palette) { std.SetPalette(p) }

// ResetPalette restores the default toggler's built-in palettes.
func ResetPalette() { std.ResetPalette() }

// ClearColorCache empties the default toggler's cache without touching
// any figure's colors.
func ClearColorCache() { std.Cache().Clear() }
