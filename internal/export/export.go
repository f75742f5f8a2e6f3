// Package export writes animations and figure stills to files. GIF
// assembly quantizes rendered frames; PNG and SVG stills go through the
// plot backend's writers.
package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/san-kum/plotfx/figure"
	"github.com/san-kum/plotfx/transition"
)

// GIF renders every frame of the animation and writes a looping GIF.
// Frame delay is derived from the animation's fps.
func GIF(anim *transition.Animation, path string) error {
	delay := 100 / anim.FPS()
	if delay < 1 {
		delay = 1
	}
	out := gif.GIF{LoopCount: 0}
	for i := 0; i < anim.Frames(); i++ {
		img, err := anim.RenderFrame(i)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		out.Image = append(out.Image, quantize(img))
		out.Delay = append(out.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &out)
}

// PNG writes the figure's current state as a PNG still.
func PNG(fig *figure.Figure, path string) error {
	img, err := fig.Render()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SVG writes the first axes of the figure as an SVG still.
func SVG(fig *figure.Figure, path string) error {
	plots, err := fig.Plots()
	if err != nil {
		return err
	}
	if len(plots) == 0 {
		return fmt.Errorf("svg export: figure has no axes")
	}
	w := vg.Length(fig.Width) * vg.Inch
	h := vg.Length(fig.Height) * vg.Inch
	wt, err := plots[0].WriterTo(w, h, "svg")
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = wt.WriteTo(f)
	return err
}

func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}
