package transition

import (
	"errors"
	"testing"

	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/figure"
)

func morphPair() (*figure.Figure, *figure.Figure) {
	src := figure.New()
	sa := src.AddAxes()
	sa.Title = "before"
	sa.XLabel = "t"
	sa.AddLine([]float64{0, 1, 2}, []float64{0, 1, 0})

	dst := figure.New()
	da := dst.AddAxes()
	da.Title = "after"
	da.XLabel = "s"
	da.AddLine([]float64{0, 1, 2}, []float64{1, 0, 1})
	return src, dst
}

func TestMorphMissingAxes(t *testing.T) {
	_, withAxes := morphPair()
	if _, err := Morph(figure.New(), withAxes, MorphOptions{}); !errors.Is(err, ErrMissingAxes) {
		t.Errorf("empty source: expected ErrMissingAxes, got %v", err)
	}
	if _, err := Morph(withAxes, figure.New(), MorphOptions{}); !errors.Is(err, ErrMissingAxes) {
		t.Errorf("empty destination: expected ErrMissingAxes, got %v", err)
	}
}

func TestMorphDefaults(t *testing.T) {
	src, dst := morphPair()
	anim, err := Morph(src, dst, MorphOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anim.Frames() != 30 {
		t.Errorf("expected 30 frames, got %d", anim.Frames())
	}
	if anim.FPS() != 30 {
		t.Errorf("expected 30 fps, got %d", anim.FPS())
	}
	if anim.Figure() == src || anim.Figure() == dst {
		t.Error("morph must render onto a fresh target figure")
	}
}

func TestMorphCrossFade(t *testing.T) {
	src, dst := morphPair()
	anim, err := Morph(src, dst, MorphOptions{Duration: 1, FPS: 3, Easing: easing.ByName(easing.Linear)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ta := anim.Figure().Axes()[0]

	anim.Seek(0)
	lines := ta.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 overlaid lines, got %d", len(lines))
	}
	if lines[0].Color.A != 1 {
		t.Errorf("source alpha at start = %f, expected 1", lines[0].Color.A)
	}
	if lines[1].Color.A != 0 {
		t.Errorf("destination alpha at start = %f, expected 0", lines[1].Color.A)
	}

	anim.Seek(anim.Frames() - 1)
	lines = ta.Lines()
	if lines[0].Color.A != 0 {
		t.Errorf("source alpha at end = %f, expected 0", lines[0].Color.A)
	}
	if lines[1].Color.A != 1 {
		t.Errorf("destination alpha at end = %f, expected 1", lines[1].Color.A)
	}
}

func TestMorphTitleSwapsHalfway(t *testing.T) {
	src, dst := morphPair()
	anim, err := Morph(src, dst, MorphOptions{Duration: 1, FPS: 3, Easing: easing.ByName(easing.Linear)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ta := anim.Figure().Axes()[0]

	anim.Seek(0)
	if ta.Title != "before" || ta.XLabel != "t" {
		t.Errorf("expected source labels at start, got %q/%q", ta.Title, ta.XLabel)
	}
	anim.Seek(1) // t = 0.5, at the swap threshold
	if ta.Title != "after" {
		t.Errorf("expected destination title at halfway, got %q", ta.Title)
	}
	anim.Seek(2)
	if ta.Title != "after" || ta.XLabel != "s" {
		t.Errorf("expected destination labels at end, got %q/%q", ta.Title, ta.XLabel)
	}
}

func TestMorphRangeInterpolation(t *testing.T) {
	src, dst := morphPair()
	src.Axes()[0].XRange = figure.Range{Min: 0, Max: 10}
	src.Axes()[0].YRange = figure.Range{Min: 0, Max: 2}
	dst.Axes()[0].XRange = figure.Range{Min: 10, Max: 30}
	dst.Axes()[0].YRange = figure.Range{Min: 0, Max: 4}

	anim, err := Morph(src, dst, MorphOptions{Duration: 1, FPS: 3, Easing: easing.ByName(easing.Linear)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ta := anim.Figure().Axes()[0]
	anim.Seek(1)
	if !approx(ta.XRange.Min, 5) || !approx(ta.XRange.Max, 20) {
		t.Errorf("x range at halfway = %+v, expected [5, 20]", ta.XRange)
	}
	if !approx(ta.YRange.Max, 3) {
		t.Errorf("y max at halfway = %f, expected 3", ta.YRange.Max)
	}
}

func TestMorphLineWithoutYData(t *testing.T) {
	src := figure.New()
	src.AddAxes().AddLine([]float64{0, 1, 2}, nil)
	_, dst := morphPair()

	anim, err := Morph(src, dst, MorphOptions{Duration: 1, FPS: 2, Easing: easing.ByName(easing.Linear)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < anim.Frames(); i++ {
		anim.Seek(i)
	}
}

func TestMorphImmuneToSourceMutation(t *testing.T) {
	src, dst := morphPair()
	anim, err := Morph(src, dst, MorphOptions{Duration: 1, FPS: 2, Easing: easing.ByName(easing.Linear)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src.Axes()[0].Lines()[0].Y[0] = 99

	ta := anim.Figure().Axes()[0]
	anim.Seek(0)
	if got := ta.Lines()[0].Y[0]; got != 0 {
		t.Errorf("playback picked up source mutation: y[0] = %f", got)
	}
}
