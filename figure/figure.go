// Package figure provides a small figure/axes object model for building
// plots that can be restyled and animated. Rendering is delegated to
// gonum.org/v1/plot: each figure is realized into plot.Plot values and
// rasterized on demand, so element data and colors can be mutated
// between frames.
package figure

import (
	"sync"

	"github.com/san-kum/plotfx/blend"
)

// Default element color, the usual first-series blue.
var DefaultSeriesColor = blend.MustParse("#1f77b4")

// Figure is a drawing surface holding zero or more axes.
type Figure struct {
	Background blend.RGBA
	// Size in inches.
	Width, Height float64

	axes []*Axes
}

// Range is a closed numeric axis extent. The zero value means
// auto-range from the data.
type Range struct {
	Min, Max float64
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// Axes is one plotted sub-region: titles, ranges, structural colors,
// and the plotted elements.
type Axes struct {
	Title  string
	XLabel string
	YLabel string

	XRange Range
	YRange Range

	Background blend.RGBA
	TitleColor blend.RGBA
	LabelColor blend.RGBA
	TickColor  blend.RGBA
	SpineColor blend.RGBA

	Grid      bool
	GridColor blend.RGBA
	GridAlpha float64

	lines    []*Line
	scatters []*Scatter
	bars     []*Bars
}

// Line is a polyline element.
type Line struct {
	X, Y  []float64
	Color blend.RGBA
	// Width in points.
	Width float64
}

// Scatter is a point-cloud element. Sizes are glyph radii in points;
// Colors may hold one uniform color or one color per point.
type Scatter struct {
	X, Y   []float64
	Sizes  []float64
	Colors []blend.RGBA
}

// Bars is a bar-series element with one bar per height. Colors may hold
// one uniform color or one color per bar.
type Bars struct {
	Heights []float64
	Colors  []blend.RGBA
}

// New creates an empty white 8x6 inch figure and makes it current.
func New() *Figure {
	f := &Figure{
		Background: blend.MustParse("#ffffff"),
		Width:      8,
		Height:     6,
	}
	SetCurrent(f)
	return f
}

// AddAxes appends a sub-region with light-mode defaults.
func (f *Figure) AddAxes() *Axes {
	a := &Axes{
		Background: blend.MustParse("#ffffff"),
		TitleColor: blend.MustParse("#000000"),
		LabelColor: blend.MustParse("#000000"),
		TickColor:  blend.MustParse("#000000"),
		SpineColor: blend.MustParse("#000000"),
		GridColor:  blend.MustParse("#b0b0b0"),
		GridAlpha:  0.5,
	}
	f.axes = append(f.axes, a)
	return a
}

// Axes returns the figure's sub-regions in creation order.
func (f *Figure) Axes() []*Axes { return f.axes }

// Adopt attaches an axes that was built against another figure.
func (f *Figure) Adopt(a *Axes) {
	f.axes = append(f.axes, a)
}

// AddLine appends a line element with default style.
func (a *Axes) AddLine(x, y []float64) *Line {
	l := &Line{X: x, Y: y, Color: DefaultSeriesColor, Width: 1.5}
	a.lines = append(a.lines, l)
	return l
}

// AddScatter appends a scatter element with a uniform default color and
// glyph radius.
func (a *Axes) AddScatter(x, y []float64) *Scatter {
	s := &Scatter{
		X:      x,
		Y:      y,
		Sizes:  []float64{3},
		Colors: []blend.RGBA{DefaultSeriesColor},
	}
	a.scatters = append(a.scatters, s)
	return s
}

// AddBars appends a bar series with a uniform default color.
func (a *Axes) AddBars(heights []float64) *Bars {
	b := &Bars{Heights: heights, Colors: []blend.RGBA{DefaultSeriesColor}}
	a.bars = append(a.bars, b)
	return b
}

// Clear removes every plotted element, keeping titles, ranges, and
// structural colors.
func (a *Axes) Clear() {
	a.lines = nil
	a.scatters = nil
	a.bars = nil
}

// Lines returns the line elements of this axes.
func (a *Axes) Lines() []*Line { return a.lines }

// Scatters returns the scatter elements of this axes.
func (a *Axes) Scatters() []*Scatter { return a.scatters }

// BarSeries returns the bar elements of this axes.
func (a *Axes) BarSeries() []*Bars { return a.bars }

var (
	currentMu sync.Mutex
	current   *Figure
)

// Current returns the most recently created or explicitly selected
// figure, or nil if none exists.
func Current() *Figure {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current
}

// SetCurrent selects the ambient figure used when callers pass no
// explicit target.
func SetCurrent(f *Figure) {
	currentMu.Lock()
	current = f
	currentMu.Unlock()
}
