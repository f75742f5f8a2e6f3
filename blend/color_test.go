package blend

import (
	"math"
	"testing"
)

func approxColor(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}

func TestParseHex(t *testing.T) {
	c, err := Parse("#ff8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}
	if !approxColor(c, expected, 1e-9) {
		t.Errorf("expected %v, got %v", expected, c)
	}
}

func TestParseName(t *testing.T) {
	c, err := Parse("white")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxColor(c, RGBA{1, 1, 1, 1}, 1e-3) {
		t.Errorf("expected white, got %v", c)
	}
}

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"k", RGBA{0, 0, 0, 1}},
		{"w", RGBA{1, 1, 1, 1}},
		{"r", RGBA{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if !approxColor(c, tt.want, 1e-3) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, c)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("notacolor"); err == nil {
		t.Error("expected error for unknown color name")
	}
}

func TestColorIdentity(t *testing.T) {
	c := MustParse("#3366cc")
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Color(c, c, p); !approxColor(got, c, 1e-12) {
			t.Errorf("blend(c,c,%f) = %v, expected %v", p, got, c)
		}
	}
}

func TestColorBoundaries(t *testing.T) {
	a := MustParse("black")
	b := MustParse("white")
	if got := Color(a, b, 0); !approxColor(got, a, 1e-9) {
		t.Errorf("expected from color at 0, got %v", got)
	}
	if got := Color(a, b, 1); !approxColor(got, b, 1e-3) {
		t.Errorf("expected to color at 1, got %v", got)
	}
	mid := Color(a, b, 0.5)
	if math.Abs(mid.R-0.5) > 1e-3 {
		t.Errorf("expected mid gray, got %v", mid)
	}
}

func TestColorsBroadcast(t *testing.T) {
	from := []RGBA{{0, 0, 0, 1}}
	to := []RGBA{{1, 0, 0, 1}, {0, 1, 0, 1}}
	out, err := Colors(from, to, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(out))
	}
	if !approxColor(out[1], to[1], 1e-12) {
		t.Errorf("expected %v, got %v", to[1], out[1])
	}
}

func TestLuminance(t *testing.T) {
	if l := MustParse("white").Luminance(); math.Abs(l-1) > 1e-3 {
		t.Errorf("white luminance = %f, expected 1", l)
	}
	if l := MustParse("black").Luminance(); l > 1e-3 {
		t.Errorf("black luminance = %f, expected 0", l)
	}
	if l := (RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1}).Luminance(); math.Abs(l-0.6) > 1e-9 {
		t.Errorf("luminance = %f, expected 0.6", l)
	}
}

func TestScaleClamps(t *testing.T) {
	c := RGBA{R: 0.8, G: 0.2, B: 0.5, A: 0.5}
	got := c.Scale(2)
	if got.R != 1 {
		t.Errorf("expected clamped R=1, got %f", got.R)
	}
	if math.Abs(got.G-0.4) > 1e-12 {
		t.Errorf("expected G=0.4, got %f", got.G)
	}
	if got.A != 0.5 {
		t.Errorf("alpha should be preserved, got %f", got.A)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := FromColor(orig)
	if !approxColor(got, orig, 1e-4) {
		t.Errorf("round trip changed color: %v vs %v", orig, got)
	}
}

func TestHex(t *testing.T) {
	if h := MustParse("#1f77b4").Hex(); h != "#1f77b4" {
		t.Errorf("expected #1f77b4, got %s", h)
	}
}
