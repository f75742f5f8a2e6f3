package blend

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGBA is a color with float channels in [0,1]. It implements
// color.Color so it can be handed straight to the rendering backend.
type RGBA struct {
	R, G, B, A float64
}

// Single-letter shorthands accepted by Parse alongside SVG names.
var shorthand = map[string]string{
	"k": "black",
	"w": "white",
	"r": "red",
	"g": "green",
	"b": "blue",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
}

// Parse resolves a hex string ("#rrggbb") or a color name into an RGBA
// with full opacity.
func Parse(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if full, ok := shorthand[s]; ok {
		s = full
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor(c), nil
	}
	return RGBA{}, fmt.Errorf("parse color %q: unknown name", s)
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any color.Color into float channels,
// un-premultiplying alpha.
func FromColor(c color.Color) RGBA {
	if c == nil {
		return RGBA{}
	}
	if rc, ok := c.(RGBA); ok {
		return rc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	fa := float64(a) / 0xffff
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: fa,
	}
}

// RGBA implements color.Color with alpha-premultiplied channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	a = uint32(clamp01(c.A) * 0xffff)
	return
}

// Hex renders the color as "#rrggbb", dropping alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// Luminance is the plain RGB mean, the measure used to classify a
// background as light or dark.
func (c RGBA) Luminance() float64 {
	return (c.R + c.G + c.B) / 3
}

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Scale multiplies the RGB channels by f, clamping to [0,1]. Alpha is
// preserved.
func (c RGBA) Scale(f float64) RGBA {
	return RGBA{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

// Color blends two colors channel-wise, alpha included.
func Color(from, to RGBA, t float64) RGBA {
	return RGBA{
		R: Lerp(from.R, to.R, t),
		G: Lerp(from.G, to.G, t),
		B: Lerp(from.B, to.B, t),
		A: Lerp(from.A, to.A, t),
	}
}

// Colors blends two per-element color sequences, with length-1
// broadcast matching Slice.
func Colors(from, to []RGBA, t float64) ([]RGBA, error) {
	switch {
	case len(from) == len(to):
		out := make([]RGBA, len(from))
		for i := range from {
			out[i] = Color(from[i], to[i], t)
		}
		return out, nil
	case len(from) == 1:
		out := make([]RGBA, len(to))
		for i := range to {
			out[i] = Color(from[0], to[i], t)
		}
		return out, nil
	case len(to) == 1:
		out := make([]RGBA, len(from))
		for i := range from {
			out[i] = Color(from[i], to[0], t)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: len %d vs %d", ErrShapeMismatch, len(from), len(to))
	}
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
