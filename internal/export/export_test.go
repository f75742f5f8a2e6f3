package export

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/figure"
	"github.com/san-kum/plotfx/transition"
)

func smallFigure() *figure.Figure {
	f := figure.New()
	f.Width, f.Height = 2, 1.5
	a := f.AddAxes()
	a.Title = "still"
	a.AddLine([]float64{0, 1, 2}, []float64{0, 1, 0})
	return f
}

func TestSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := SVG(smallFigure(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output does not look like SVG markup")
	}
}

func TestSVGNoAxes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := SVG(figure.New(), path); err == nil {
		t.Error("expected error for a figure with no axes")
	}
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := PNG(smallFigure(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Errorf("empty image bounds: %v", img.Bounds())
	}
}

func TestGIFFrameCount(t *testing.T) {
	fig := smallFigure()
	anim, err := transition.New(
		transition.Snapshot{Y: []float64{0, 1, 0}},
		transition.Snapshot{Y: []float64{1, 0, 1}},
		transition.Options{
			Duration: 1,
			FPS:      3,
			Easing:   easing.ByName(easing.Linear),
			Kind:     transition.KindLine,
			Axes:     fig.Axes()[0],
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := GIF(anim, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(g.Image))
	}
	if g.Delay[0] != 33 {
		t.Errorf("delay = %d, expected 33", g.Delay[0])
	}
}
