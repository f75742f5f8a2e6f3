package figure

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/plotfx/blend"
)

var barWidth = vg.Points(18)

// Render rasterizes the figure at its current state. Multiple axes are
// stacked vertically.
func (f *Figure) Render() (image.Image, error) {
	w := vg.Length(f.Width) * vg.Inch
	h := vg.Length(f.Height) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseBackgroundColor(f.Background))
	dc := draw.New(c)

	plots, err := f.Plots()
	if err != nil {
		return nil, err
	}
	switch len(plots) {
	case 0:
	case 1:
		plots[0].Draw(dc)
	default:
		grid := make([][]*plot.Plot, len(plots))
		for i, p := range plots {
			grid[i] = []*plot.Plot{p}
		}
		tiles := draw.Tiles{Rows: len(plots), Cols: 1}
		for i, row := range plot.Align(grid, tiles, dc) {
			grid[i][0].Draw(row[0])
		}
	}
	return c.Image(), nil
}

// Plots realizes each axes into a backend plot value. The result is a
// snapshot: later element mutations require re-realizing.
func (f *Figure) Plots() ([]*plot.Plot, error) {
	plots := make([]*plot.Plot, 0, len(f.axes))
	for _, a := range f.axes {
		p, err := realize(a)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, nil
}

func realize(a *Axes) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = a.Title
	p.X.Label.Text = a.XLabel
	p.Y.Label.Text = a.YLabel

	p.BackgroundColor = a.Background
	p.Title.TextStyle.Color = a.TitleColor
	p.X.Label.TextStyle.Color = a.LabelColor
	p.Y.Label.TextStyle.Color = a.LabelColor
	p.X.Color = a.SpineColor
	p.Y.Color = a.SpineColor
	p.X.Tick.Color = a.TickColor
	p.Y.Tick.Color = a.TickColor
	p.X.Tick.Label.Color = a.TickColor
	p.Y.Tick.Label.Color = a.TickColor

	if a.Grid {
		g := plotter.NewGrid()
		gc := a.GridColor.WithAlpha(a.GridAlpha)
		g.Vertical.Color = gc
		g.Horizontal.Color = gc
		p.Add(g)
	}

	for _, l := range a.lines {
		pl, err := plotter.NewLine(xyPoints(l.X, l.Y))
		if err != nil {
			return nil, fmt.Errorf("realize line: %w", err)
		}
		pl.LineStyle.Color = l.Color
		pl.LineStyle.Width = vg.Points(l.Width)
		p.Add(pl)
	}

	for _, s := range a.scatters {
		ps, err := plotter.NewScatter(xyPoints(s.X, s.Y))
		if err != nil {
			return nil, fmt.Errorf("realize scatter: %w", err)
		}
		sizes, colors := s.Sizes, s.Colors
		ps.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  pick(colors, i, DefaultSeriesColor),
				Radius: vg.Points(pickSize(sizes, i, 3)),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(ps)
	}

	for _, b := range a.bars {
		if err := addBars(p, b); err != nil {
			return nil, err
		}
	}

	if !a.XRange.IsZero() {
		p.X.Min, p.X.Max = a.XRange.Min, a.XRange.Max
	}
	if !a.YRange.IsZero() {
		p.Y.Min, p.Y.Max = a.YRange.Min, a.YRange.Max
	}
	return p, nil
}

// addBars renders a uniform-color series as one bar chart, and a
// per-bar-color series as one offset single-bar chart each.
func addBars(p *plot.Plot, b *Bars) error {
	if len(b.Colors) <= 1 {
		bc, err := plotter.NewBarChart(plotter.Values(b.Heights), barWidth)
		if err != nil {
			return fmt.Errorf("realize bars: %w", err)
		}
		bc.Color = pick(b.Colors, 0, DefaultSeriesColor)
		p.Add(bc)
		return nil
	}
	for i, h := range b.Heights {
		bc, err := plotter.NewBarChart(plotter.Values{h}, barWidth)
		if err != nil {
			return fmt.Errorf("realize bars: %w", err)
		}
		bc.XMin = float64(i)
		bc.Color = pick(b.Colors, i, DefaultSeriesColor)
		p.Add(bc)
	}
	return nil
}

// xyPoints pairs x and y data; a missing x series falls back to point
// indices.
func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(y))
	for i := range y {
		if i < len(x) {
			pts[i].X = x[i]
		} else {
			pts[i].X = float64(i)
		}
		pts[i].Y = y[i]
	}
	return pts
}

func pick(cs []blend.RGBA, i int, fallback blend.RGBA) blend.RGBA {
	switch {
	case len(cs) == 0:
		return fallback
	case i < len(cs):
		return cs[i]
	default:
		return cs[len(cs)-1]
	}
}

func pickSize(ss []float64, i int, fallback float64) float64 {
	switch {
	case len(ss) == 0:
		return fallback
	case i < len(ss):
		return ss[i]
	default:
		return ss[len(ss)-1]
	}
}
