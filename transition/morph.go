package transition

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/plotfx/blend"
	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/figure"
)

// MorphOptions configures a figure-state cross-fade. Zero Duration and
// FPS default to 1 second at 30 frames per second.
type MorphOptions struct {
	Duration float64
	FPS      int
	Easing   easing.Easing
}

// lineState is a creation-time copy of a line, so playback is immune to
// later mutation of the source figures.
type lineState struct {
	x, y  []float64
	color blend.RGBA
	width float64
}

// Morph cross-fades between two figure states on a fresh target figure:
// source lines fade out while destination lines fade in, axis ranges
// interpolate, and title/labels swap discretely at the halfway point.
// Only the first axes of each input is used; both inputs must have at
// least one.
func Morph(from, to *figure.Figure, opts MorphOptions) (*Animation, error) {
	fn, err := opts.Easing.Resolve()
	if err != nil {
		return nil, err
	}
	if len(from.Axes()) == 0 {
		return nil, fmt.Errorf("morph source: %w", ErrMissingAxes)
	}
	if len(to.Axes()) == 0 {
		return nil, fmt.Errorf("morph destination: %w", ErrMissingAxes)
	}
	if opts.Duration == 0 {
		opts.Duration = 1
	}
	if opts.FPS == 0 {
		opts.FPS = 30
	}
	frames := int(math.Round(opts.Duration * float64(opts.FPS)))
	if frames < 1 {
		frames = 1
	}

	src, dst := from.Axes()[0], to.Axes()[0]
	srcLines, dstLines := copyLines(src), copyLines(dst)
	sx, sy := rangeOf(src)
	dx, dy := rangeOf(dst)
	srcFigBg, dstFigBg := from.Background, to.Background
	srcBg, dstBg := src.Background, dst.Background

	target := figure.New()
	target.Width, target.Height = from.Width, from.Height
	ta := target.AddAxes()

	update := func(t float64) {
		ta.Clear()
		target.Background = blend.Color(srcFigBg, dstFigBg, t)
		ta.Background = blend.Color(srcBg, dstBg, t)
		ta.XRange = figure.Range{
			Min: blend.Lerp(sx.Min, dx.Min, t),
			Max: blend.Lerp(sx.Max, dx.Max, t),
		}
		ta.YRange = figure.Range{
			Min: blend.Lerp(sy.Min, dy.Min, t),
			Max: blend.Lerp(sy.Max, dy.Max, t),
		}
		fadeIn := clamp01(t)
		for _, ls := range srcLines {
			l := ta.AddLine(ls.x, ls.y)
			l.Color = ls.color.WithAlpha(ls.color.A * (1 - fadeIn))
			l.Width = ls.width
		}
		for _, ls := range dstLines {
			l := ta.AddLine(ls.x, ls.y)
			l.Color = ls.color.WithAlpha(ls.color.A * fadeIn)
			l.Width = ls.width
		}
		if t < 0.5 {
			ta.Title, ta.XLabel, ta.YLabel = src.Title, src.XLabel, src.YLabel
		} else {
			ta.Title, ta.XLabel, ta.YLabel = dst.Title, dst.XLabel, dst.YLabel
		}
	}

	return &Animation{
		fig:    target,
		frames: frames,
		fps:    opts.FPS,
		ease:   fn,
		update: update,
	}, nil
}

func copyLines(a *figure.Axes) []lineState {
	states := make([]lineState, 0, len(a.Lines()))
	for _, l := range a.Lines() {
		states = append(states, lineState{
			x:     append([]float64(nil), l.X...),
			y:     append([]float64(nil), l.Y...),
			color: l.Color,
			width: l.Width,
		})
	}
	return states
}

// rangeOf reports the concrete axis ranges of an axes, falling back to
// the data extent of its lines with a 5% margin when unset.
func rangeOf(a *figure.Axes) (x, y figure.Range) {
	x, y = a.XRange, a.YRange
	if !x.IsZero() && !y.IsZero() {
		return x, y
	}
	var xs, ys []float64
	for _, l := range a.Lines() {
		xs = append(xs, orIndices(l.X, len(l.Y))...)
		ys = append(ys, l.Y...)
	}
	if len(xs) == 0 {
		xs = []float64{0, 1}
	}
	if len(ys) == 0 {
		ys = []float64{0, 1}
	}
	if x.IsZero() {
		x = pad(floats.Min(xs), floats.Max(xs))
	}
	if y.IsZero() {
		y = pad(floats.Min(ys), floats.Max(ys))
	}
	return x, y
}

func pad(lo, hi float64) figure.Range {
	margin := (hi - lo) * 0.05
	if margin == 0 {
		margin = 0.5
	}
	return figure.Range{Min: lo - margin, Max: hi + margin}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
