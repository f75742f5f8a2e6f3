package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plotfx/figure"
	"github.com/san-kum/plotfx/transition"
)

const (
	chartWidth   = 70
	chartHeight  = 16
	canvasWidth  = 60
	canvasHeight = 18
)

type TickMsg time.Time

// Model drives an animation frame by frame and draws the current state
// of its figure as a terminal chart.
type Model struct {
	anim    *transition.Animation
	title   string
	frame   int
	playing bool
	loop    bool
	canvas  *Canvas
}

// NewModel builds a player for the animation, starting at frame 0.
func NewModel(anim *transition.Animation, title string) Model {
	anim.Seek(0)
	return Model{
		anim:    anim,
		title:   title,
		playing: true,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.anim.FPS()), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
			m.playing = true
			m.anim.Seek(0)
		case "l":
			m.loop = !m.loop
		}
	case TickMsg:
		if m.playing {
			m.frame++
			if m.frame >= m.anim.Frames() {
				if m.loop {
					m.frame = 0
				} else {
					m.frame = m.anim.Frames() - 1
					m.playing = false
				}
			}
			m.anim.Seek(m.frame)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title) + "\n")

	axes := m.anim.Figure().Axes()
	if len(axes) == 0 {
		b.WriteString(labelStyle.Render("nothing to draw") + "\n")
	} else {
		b.WriteString(chartStyle.Render(m.chart(axes[0])) + "\n")
	}

	b.WriteString(ProgressBar(m.anim.Progress(m.frame), chartWidth) + "\n")

	status := fmt.Sprintf("frame %s", valueStyle.Render(fmt.Sprintf("%d/%d", m.frame+1, m.anim.Frames())))
	if !m.playing {
		status += "  " + pausedStyle.Render("PAUSED")
	}
	if m.loop {
		status += "  " + labelStyle.Render("loop")
	}
	b.WriteString(status + "\n")
	b.WriteString(helpStyle.Render("space pause · r restart · l loop · q quit"))
	return b.String()
}

// chart picks a renderer for whatever element kind the axes holds.
func (m Model) chart(a *figure.Axes) string {
	switch {
	case len(a.Lines()) > 0:
		return m.lineChart(a)
	case len(a.Scatters()) > 0:
		return m.scatterChart(a)
	case len(a.BarSeries()) > 0:
		return m.barChart(a)
	default:
		return labelStyle.Render("(empty axes)")
	}
}

func (m Model) lineChart(a *figure.Axes) string {
	series := make([][]float64, 0, len(a.Lines()))
	for _, l := range a.Lines() {
		if len(l.Y) > 0 {
			series = append(series, l.Y)
		}
	}
	if len(series) == 0 {
		return labelStyle.Render("(no data)")
	}
	opts := []asciigraph.Option{
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
	}
	// A fixed y-range keeps the chart scale steady across frames.
	if !a.YRange.IsZero() {
		opts = append(opts,
			asciigraph.LowerBound(a.YRange.Min),
			asciigraph.UpperBound(a.YRange.Max),
		)
	}
	return asciigraph.PlotMany(series, opts...)
}

func (m Model) scatterChart(a *figure.Axes) string {
	m.canvas.Clear()
	xr, yr := a.XRange, a.YRange
	if xr.IsZero() || yr.IsZero() {
		xr, yr = dataRange(a)
	}
	spanX := xr.Max - xr.Min
	spanY := yr.Max - yr.Min
	if spanX == 0 || spanY == 0 {
		return labelStyle.Render("(no data)")
	}
	pw := float64(m.canvas.Width*2 - 2)
	ph := float64(m.canvas.Height*4 - 2)
	for _, s := range a.Scatters() {
		for i, y := range s.Y {
			x := float64(i)
			if i < len(s.X) {
				x = s.X[i]
			}
			px := int(math.Round((x - xr.Min) / spanX * pw))
			py := int(math.Round((1 - (y-yr.Min)/spanY) * ph))
			m.canvas.Dot(px, py)
		}
	}
	return m.canvas.String()
}

func (m Model) barChart(a *figure.Axes) string {
	b := a.BarSeries()[0]
	if len(b.Heights) == 0 {
		return labelStyle.Render("(no data)")
	}
	top := a.YRange.Max
	if a.YRange.IsZero() {
		for _, h := range b.Heights {
			if h > top {
				top = h
			}
		}
	}
	if top <= 0 {
		top = 1
	}
	var sb strings.Builder
	for i, h := range b.Heights {
		frac := h / top
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		blocks := int(frac * float64(chartWidth-12))
		sb.WriteString(fmt.Sprintf("%3d %s %s\n",
			i,
			barMid.Render(strings.Repeat("█", blocks)),
			labelStyle.Render(fmt.Sprintf("%.2f", h))))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func dataRange(a *figure.Axes) (x, y figure.Range) {
	x = figure.Range{Min: math.Inf(1), Max: math.Inf(-1)}
	y = figure.Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, s := range a.Scatters() {
		for i, yv := range s.Y {
			xv := float64(i)
			if i < len(s.X) {
				xv = s.X[i]
			}
			x.Min = math.Min(x.Min, xv)
			x.Max = math.Max(x.Max, xv)
			y.Min = math.Min(y.Min, yv)
			y.Max = math.Max(y.Max, yv)
		}
	}
	if math.IsInf(x.Min, 1) {
		return figure.Range{}, figure.Range{}
	}
	return x, y
}

// Play runs the interactive player until the user quits.
func Play(anim *transition.Animation, title string) error {
	p := tea.NewProgram(NewModel(anim, title))
	_, err := p.Run()
	return err
}
