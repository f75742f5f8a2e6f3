package theme

import (
	"runtime"
	"sync"
	"weak"

	"github.com/san-kum/plotfx/blend"
	"github.com/san-kum/plotfx/figure"
)

// figureColors is the pre-toggle structural state of a whole figure.
type figureColors struct {
	background blend.RGBA
	axes       []axesColors
}

// axesColors is the pre-toggle structural state of one axes.
type axesColors struct {
	background blend.RGBA
	title      blend.RGBA
	label      blend.RGBA
	tick       blend.RGBA
	spine      blend.RGBA
	grid       blend.RGBA
	gridAlpha  float64
}

// Cache remembers pre-toggle colors keyed by object identity, enabling
// exact restoration on toggle-back. Keys are weak pointers: an entry
// never keeps its figure alive, and entries for collected figures are
// removed by runtime cleanups. All access is guarded by one mutex so
// the cache tolerates being driven from a render-loop goroutine.
type Cache struct {
	mu      sync.Mutex
	figures map[weak.Pointer[figure.Figure]]*figureColors
	axes    map[weak.Pointer[figure.Axes]]*axesColors
}

// NewCache returns an empty, independent cache.
func NewCache() *Cache {
	return &Cache{
		figures: make(map[weak.Pointer[figure.Figure]]*figureColors),
		axes:    make(map[weak.Pointer[figure.Axes]]*axesColors),
	}
}

// Clear drops every entry without touching any figure's colors.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.figures)
	clear(c.axes)
}

// takeFigure removes and returns the entry for f, if any.
func (c *Cache) takeFigure(f *figure.Figure) (*figureColors, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := weak.Make(f)
	fc, ok := c.figures[k]
	if ok {
		delete(c.figures, k)
	}
	return fc, ok
}

func (c *Cache) putFigure(f *figure.Figure, fc *figureColors) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := weak.Make(f)
	if _, exists := c.figures[k]; !exists {
		runtime.AddCleanup(f, c.dropFigureKey, k)
	}
	c.figures[k] = fc
}

func (c *Cache) dropFigureKey(k weak.Pointer[figure.Figure]) {
	c.mu.Lock()
	delete(c.figures, k)
	c.mu.Unlock()
}

// takeAxes removes and returns the entry for a, if any.
func (c *Cache) takeAxes(a *figure.Axes) (*axesColors, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := weak.Make(a)
	ac, ok := c.axes[k]
	if ok {
		delete(c.axes, k)
	}
	return ac, ok
}

func (c *Cache) putAxes(a *figure.Axes, ac *axesColors) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := weak.Make(a)
	if _, exists := c.axes[k]; !exists {
		runtime.AddCleanup(a, c.dropAxesKey, k)
	}
	c.axes[k] = ac
}

func (c *Cache) dropAxesKey(k weak.Pointer[figure.Axes]) {
	c.mu.Lock()
	delete(c.axes, k)
	c.mu.Unlock()
}

func snapshotAxes(a *figure.Axes) axesColors {
	return axesColors{
		background: a.Background,
		title:      a.TitleColor,
		label:      a.LabelColor,
		tick:       a.TickColor,
		spine:      a.SpineColor,
		grid:       a.GridColor,
		gridAlpha:  a.GridAlpha,
	}
}

func restoreAxes(a *figure.Axes, ac axesColors) {
	a.Background = ac.background
	a.TitleColor = ac.title
	a.LabelColor = ac.label
	a.TickColor = ac.tick
	a.SpineColor = ac.spine
	a.GridColor = ac.grid
	a.GridAlpha = ac.gridAlpha
}
