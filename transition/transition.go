// Package transition creates frame-by-frame animations that morph a
// plot between two data snapshots, with configurable easing. Shape
// problems are rejected at creation time so playback never fails
// mid-sequence.
package transition

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/plotfx/blend"
	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/figure"
)

var (
	// ErrUnsupportedKind reports a plot kind outside {line, scatter, bar}.
	ErrUnsupportedKind = errors.New("unsupported plot kind")
	// ErrMissingAxes reports a morph source or destination figure with no
	// plotted sub-region.
	ErrMissingAxes = errors.New("figure has no axes")
)

// Kind is the closed set of animatable plot types.
type Kind int

const (
	KindLine Kind = iota
	KindScatter
	KindBar
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindScatter:
		return "scatter"
	case KindBar:
		return "bar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a plot-kind name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "line":
		return KindLine, nil
	case "scatter":
		return KindScatter, nil
	case "bar":
		return KindBar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// Snapshot is one endpoint of a transition. Nil fields are absent: a
// property present in only one snapshot is held constant at that value,
// and a property absent from both is left untouched. Fields outside the
// property set of the chosen kind are ignored.
type Snapshot struct {
	X       []float64
	Y       []float64
	Heights []float64
	Sizes   []float64
	// Color is a uniform element color; Colors sets per-point (or
	// per-bar) colors and takes precedence when both are set.
	Color  *blend.RGBA
	Colors []blend.RGBA
	// LineWidth in points, line kind only.
	LineWidth *float64
}

// colorSeq folds Color/Colors into one sequence view.
func (s Snapshot) colorSeq() []blend.RGBA {
	if len(s.Colors) > 0 {
		return s.Colors
	}
	if s.Color != nil {
		return []blend.RGBA{*s.Color}
	}
	return nil
}

// Style is the extra styling applied when the initial plot element is
// created. Snapshot properties override it frame by frame.
type Style struct {
	Color     *blend.RGBA
	LineWidth float64
	DotSize   float64
}

// Options configures a transition. Zero Duration and FPS default to
// 1 second at 30 frames per second. A nil Axes targets the first axes
// of the current figure, creating figure and axes as needed.
type Options struct {
	Duration float64
	FPS      int
	Easing   easing.Easing
	Kind     Kind
	Axes     *figure.Axes
	Style    Style
}

// New creates an animated transition between two snapshots. The easing
// name, the plot kind, and every from/to array pairing are validated
// here; the returned handle's frame callbacks cannot fail.
func New(from, to Snapshot, opts Options) (*Animation, error) {
	fn, err := opts.Easing.Resolve()
	if err != nil {
		return nil, err
	}
	if opts.Kind < KindLine || opts.Kind > KindBar {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, opts.Kind)
	}
	if opts.Duration < 0 || opts.FPS < 0 {
		return nil, fmt.Errorf("duration and fps must be positive, got %v/%v", opts.Duration, opts.FPS)
	}
	if opts.Duration == 0 {
		opts.Duration = 1
	}
	if opts.FPS == 0 {
		opts.FPS = 30
	}
	if err := checkShapes(from, to, opts.Kind); err != nil {
		return nil, err
	}

	ax := opts.Axes
	if ax == nil {
		fig := figure.Current()
		if fig == nil {
			fig = figure.New()
		}
		if len(fig.Axes()) == 0 {
			ax = fig.AddAxes()
		} else {
			ax = fig.Axes()[0]
		}
	}
	fig := owningFigure(ax)

	frames := int(math.Round(opts.Duration * float64(opts.FPS)))
	if frames < 1 {
		frames = 1
	}

	var update func(eased float64)
	switch opts.Kind {
	case KindLine:
		update = buildLine(ax, from, to, opts.Style)
	case KindScatter:
		update = buildScatter(ax, from, to, opts.Style)
	case KindBar:
		update = buildBars(ax, from, to, opts.Style)
	}

	setExtent(ax, from, to, opts.Kind)

	return &Animation{
		fig:    fig,
		frames: frames,
		fps:    opts.FPS,
		ease:   fn,
		update: update,
	}, nil
}

// LineData transitions a line plot's y-values.
func LineData(fromY, toY []float64, opts Options) (*Animation, error) {
	opts.Kind = KindLine
	return New(Snapshot{Y: fromY}, Snapshot{Y: toY}, opts)
}

// ScatterData transitions scatter point positions.
func ScatterData(fromX, fromY, toX, toY []float64, opts Options) (*Animation, error) {
	opts.Kind = KindScatter
	return New(Snapshot{X: fromX, Y: fromY}, Snapshot{X: toX, Y: toY}, opts)
}

// BarHeights transitions bar heights element-wise.
func BarHeights(from, to []float64, opts Options) (*Animation, error) {
	opts.Kind = KindBar
	return New(Snapshot{Heights: from}, Snapshot{Heights: to}, opts)
}

type propPair struct {
	name     string
	from, to []float64
}

// checkShapes validates every from/to array pairing relevant to the
// kind, so ShapeMismatch surfaces before the first frame.
func checkShapes(from, to Snapshot, kind Kind) error {
	var pairs []propPair
	switch kind {
	case KindLine:
		pairs = []propPair{{"x", from.X, to.X}, {"y", from.Y, to.Y}}
	case KindScatter:
		pairs = []propPair{
			{"x", from.X, to.X},
			{"y", from.Y, to.Y},
			{"sizes", from.Sizes, to.Sizes},
		}
	case KindBar:
		pairs = []propPair{{"heights", from.Heights, to.Heights}}
	}
	for _, p := range pairs {
		if p.from == nil || p.to == nil {
			continue
		}
		if err := blend.CheckLen(p.from, p.to); err != nil {
			return fmt.Errorf("property %s: %w", p.name, err)
		}
	}
	fc, tc := from.colorSeq(), to.colorSeq()
	if fc != nil && tc != nil {
		if _, err := blend.Colors(fc, tc, 0); err != nil {
			return fmt.Errorf("property colors: %w", err)
		}
	}
	return nil
}

func buildLine(ax *figure.Axes, from, to Snapshot, style Style) func(float64) {
	l := ax.AddLine(hold(from.X, to.X), hold(from.Y, to.Y))
	if style.Color != nil {
		l.Color = *style.Color
	}
	if style.LineWidth > 0 {
		l.Width = style.LineWidth
	}
	if c := holdColor(colorPtr(from), colorPtr(to)); c != nil {
		l.Color = *c
	}
	if w := holdFloat(from.LineWidth, to.LineWidth); w != nil {
		l.Width = *w
	}

	baseColor, baseWidth := l.Color, l.Width
	return func(t float64) {
		if from.X != nil && to.X != nil {
			l.X, _ = blend.Slice(from.X, to.X, t)
		}
		if from.Y != nil && to.Y != nil {
			l.Y, _ = blend.Slice(from.Y, to.Y, t)
		}
		if from.Color != nil && to.Color != nil {
			l.Color = blend.Color(*from.Color, *to.Color, t)
		} else {
			l.Color = baseColor
		}
		if from.LineWidth != nil && to.LineWidth != nil {
			l.Width = blend.Lerp(*from.LineWidth, *to.LineWidth, t)
		} else {
			l.Width = baseWidth
		}
	}
}

func buildScatter(ax *figure.Axes, from, to Snapshot, style Style) func(float64) {
	s := ax.AddScatter(hold(from.X, to.X), hold(from.Y, to.Y))
	if style.Color != nil {
		s.Colors = []blend.RGBA{*style.Color}
	}
	if style.DotSize > 0 {
		s.Sizes = []float64{style.DotSize}
	}
	if sz := hold(from.Sizes, to.Sizes); sz != nil {
		s.Sizes = sz
	}
	if cs := holdColors(from.colorSeq(), to.colorSeq()); cs != nil {
		s.Colors = cs
	}

	baseSizes, baseColors := s.Sizes, s.Colors
	fc, tc := from.colorSeq(), to.colorSeq()
	return func(t float64) {
		if from.X != nil && to.X != nil {
			s.X, _ = blend.Slice(from.X, to.X, t)
		}
		if from.Y != nil && to.Y != nil {
			s.Y, _ = blend.Slice(from.Y, to.Y, t)
		}
		if from.Sizes != nil && to.Sizes != nil {
			s.Sizes, _ = blend.Slice(from.Sizes, to.Sizes, t)
		} else {
			s.Sizes = baseSizes
		}
		if fc != nil && tc != nil {
			s.Colors, _ = blend.Colors(fc, tc, t)
		} else {
			s.Colors = baseColors
		}
	}
}

func buildBars(ax *figure.Axes, from, to Snapshot, style Style) func(float64) {
	b := ax.AddBars(hold(from.Heights, to.Heights))
	if style.Color != nil {
		b.Colors = []blend.RGBA{*style.Color}
	}
	if cs := holdColors(from.colorSeq(), to.colorSeq()); cs != nil {
		b.Colors = cs
	}

	baseColors := b.Colors
	fc, tc := from.colorSeq(), to.colorSeq()
	return func(t float64) {
		if from.Heights != nil && to.Heights != nil {
			b.Heights, _ = blend.Slice(from.Heights, to.Heights, t)
		}
		if fc != nil && tc != nil {
			b.Colors, _ = blend.Colors(fc, tc, t)
		} else {
			b.Colors = baseColors
		}
	}
}

// setExtent fixes the axes range to the union of both endpoints with a
// 10% margin, so the animated element is never clipped. Ranges are only
// set when both endpoints carry non-empty geometry.
func setExtent(ax *figure.Axes, from, to Snapshot, kind Kind) {
	switch kind {
	case KindLine, KindScatter:
		fy, ty := from.Y, to.Y
		if len(fy) == 0 || len(ty) == 0 {
			return
		}
		fx := orIndices(from.X, len(fy))
		tx := orIndices(to.X, len(ty))
		ax.XRange = expand(unionExtent(fx, tx))
		ax.YRange = expand(unionExtent(fy, ty))
	case KindBar:
		fh, th := from.Heights, to.Heights
		if len(fh) == 0 || len(th) == 0 {
			return
		}
		n := len(fh)
		if len(th) > n {
			n = len(th)
		}
		ax.XRange = expand(-0.5, float64(n)-0.5)
		lo, hi := unionExtent(append([]float64{0}, fh...), th)
		ax.YRange = expand(lo, hi)
	}
}

func unionExtent(a, b []float64) (lo, hi float64) {
	lo = math.Min(floats.Min(a), floats.Min(b))
	hi = math.Max(floats.Max(a), floats.Max(b))
	return lo, hi
}

func expand(lo, hi float64) figure.Range {
	margin := (hi - lo) * 0.1
	if margin == 0 {
		margin = 0.5
	}
	return figure.Range{Min: lo - margin, Max: hi + margin}
}

func orIndices(x []float64, n int) []float64 {
	if len(x) > 0 {
		return x
	}
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}

// The hold helpers pick whichever endpoint carries a value, preferring
// from; a property present in only one snapshot stays constant at it.
func hold(from, to []float64) []float64 {
	if from != nil {
		return from
	}
	return to
}

func holdColors(from, to []blend.RGBA) []blend.RGBA {
	if from != nil {
		return from
	}
	return to
}

func holdFloat(from, to *float64) *float64 {
	if from != nil {
		return from
	}
	return to
}

func holdColor(from, to *blend.RGBA) *blend.RGBA {
	if from != nil {
		return from
	}
	return to
}

func colorPtr(s Snapshot) *blend.RGBA {
	if len(s.Colors) == 1 {
		c := s.Colors[0]
		return &c
	}
	return s.Color
}

// owningFigure finds the figure containing an axes; falls back to a new
// figure when the axes was built standalone.
func owningFigure(ax *figure.Axes) *figure.Figure {
	if f := figure.Current(); f != nil {
		for _, a := range f.Axes() {
			if a == ax {
				return f
			}
		}
	}
	f := figure.New()
	f.Adopt(ax)
	return f
}
