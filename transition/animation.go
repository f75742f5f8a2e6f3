package transition

import (
	"image"

	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/figure"
)

// Animation is a handle over a frame-driven transition. It does not
// start, stop, or export itself; callers (or a player) drive it by
// seeking frames and rendering the underlying figure.
type Animation struct {
	fig    *figure.Figure
	frames int
	fps    int
	ease   easing.Func
	update func(eased float64)
}

// Frames returns the total frame count, at least 1.
func (a *Animation) Frames() int { return a.frames }

// FPS returns the playback rate the animation was built for.
func (a *Animation) FPS() int { return a.fps }

// Figure returns the surface the animation draws on.
func (a *Animation) Figure() *figure.Figure { return a.fig }

// Progress returns the raw (pre-easing) progress for a frame, clamped
// to [0,1]. A single-frame animation reports progress 1, so a
// degenerate transition lands on its destination state.
func (a *Animation) Progress(frame int) float64 {
	if a.frames <= 1 {
		return 1
	}
	p := float64(frame) / float64(a.frames-1)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Seek applies the blended state for the given frame to the live plot
// elements.
func (a *Animation) Seek(frame int) {
	a.update(a.ease(a.Progress(frame)))
}

// RenderFrame seeks to a frame and rasterizes the figure.
func (a *Animation) RenderFrame(frame int) (image.Image, error) {
	a.Seek(frame)
	return a.fig.Render()
}
