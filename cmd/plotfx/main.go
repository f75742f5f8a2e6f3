package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/plotfx/blend"
	"github.com/san-kum/plotfx/easing"
	"github.com/san-kum/plotfx/figure"
	"github.com/san-kum/plotfx/internal/config"
	"github.com/san-kum/plotfx/internal/export"
	"github.com/san-kum/plotfx/internal/viz"
	"github.com/san-kum/plotfx/theme"
	"github.com/san-kum/plotfx/transition"
)

var (
	configFile string
	fromVals   string
	toVals     string
	plotType   string
	duration   float64
	fps        int
	easingName string
	outFile    string
	play       bool
	// theme command
	paletteFile string
	adjustData  bool
	startDark   bool
	outPrefix   string
	stillFormat string
)

// main registers the plotfx commands: animated data transitions, figure
// cross-fades, theme toggling, and an easing-catalog preview.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	rootCmd := &cobra.Command{
		Use:   "plotfx",
		Short: "smooth plot transitions and theme toggling",
	}

	transitionCmd := &cobra.Command{
		Use:   "transition",
		Short: "animate between two data states",
		RunE:  runTransition,
	}
	transitionCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	transitionCmd.Flags().StringVar(&fromVals, "from", "", "initial values, comma separated")
	transitionCmd.Flags().StringVar(&toVals, "to", "", "final values, comma separated")
	transitionCmd.Flags().StringVar(&plotType, "type", "line", "plot type: line, scatter, bar")
	transitionCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "duration in seconds")
	transitionCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	transitionCmd.Flags().StringVar(&easingName, "easing", easing.DefaultEasing, "easing curve")
	transitionCmd.Flags().StringVar(&outFile, "out", "", "write animation GIF")
	transitionCmd.Flags().BoolVar(&play, "play", false, "play in the terminal")

	morphCmd := &cobra.Command{
		Use:   "morph",
		Short: "cross-fade between two figure states",
		RunE:  runMorph,
	}
	morphCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "duration in seconds")
	morphCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	morphCmd.Flags().StringVar(&easingName, "easing", easing.DefaultEasing, "easing curve")
	morphCmd.Flags().StringVar(&outFile, "out", "morph.gif", "write animation GIF")

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "toggle a demo figure between light and dark",
		RunE:  runTheme,
	}
	themeCmd.Flags().StringVar(&paletteFile, "palette", "", "dark palette override (yaml)")
	themeCmd.Flags().BoolVar(&adjustData, "adjust-data-colors", false, "brighten dim data colors in dark mode")
	themeCmd.Flags().BoolVar(&startDark, "dark", false, "start from a dark figure")
	themeCmd.Flags().StringVar(&outPrefix, "out-prefix", "theme", "prefix for before/after/restored stills")
	themeCmd.Flags().StringVar(&stillFormat, "format", "png", "still format: png or svg")

	easingsCmd := &cobra.Command{
		Use:   "easings",
		Short: "list easing curves",
		RunE:  runEasings,
	}

	rootCmd.AddCommand(transitionCmd, morphCmd, themeCmd, easingsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTransition(cmd *cobra.Command, args []string) error {
	scn, err := buildScenario(cmd)
	if err != nil {
		return err
	}
	from, to, err := scn.Snapshots()
	if err != nil {
		return err
	}
	opts, err := scn.Options()
	if err != nil {
		return err
	}

	fig := figure.New()
	ax := fig.AddAxes()
	ax.Title = scn.Title
	ax.Grid = true
	opts.Axes = ax

	anim, err := transition.New(from, to, opts)
	if err != nil {
		return err
	}
	log.Info().
		Str("type", scn.PlotType).
		Str("easing", scn.Easing).
		Int("frames", anim.Frames()).
		Msg("transition created")

	if outFile != "" {
		if err := export.GIF(anim, outFile); err != nil {
			return err
		}
		log.Info().Str("path", outFile).Msg("wrote animation")
	}
	if play {
		return viz.Play(anim, scn.Title)
	}
	if outFile == "" {
		// Nothing asked for: show first and last frames as a preview.
		previewFrames(anim)
	}
	return nil
}

// buildScenario merges the config file with command-line overrides.
// Only flags the user actually set override file values.
func buildScenario(cmd *cobra.Command) (*config.Scenario, error) {
	var scn *config.Scenario
	if configFile != "" {
		loaded, err := config.LoadScenario(configFile)
		if err != nil {
			return nil, err
		}
		scn = loaded
	} else {
		scn = config.DefaultScenario()
	}
	if cmd.Flags().Changed("type") {
		scn.PlotType = plotType
	}
	if cmd.Flags().Changed("duration") {
		scn.Duration = duration
	}
	if cmd.Flags().Changed("fps") {
		scn.FPS = fps
	}
	if cmd.Flags().Changed("easing") {
		scn.Easing = easingName
	}
	if fromVals != "" {
		vals, err := parseFloats(fromVals)
		if err != nil {
			return nil, err
		}
		scn.From = stateFor(scn.PlotType, vals)
	}
	if toVals != "" {
		vals, err := parseFloats(toVals)
		if err != nil {
			return nil, err
		}
		scn.To = stateFor(scn.PlotType, vals)
	}
	return scn, nil
}

func stateFor(plotType string, vals []float64) config.State {
	if plotType == "bar" {
		return config.State{Heights: vals}
	}
	return config.State{Y: vals}
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func previewFrames(anim *transition.Animation) {
	for _, frame := range []int{0, anim.Frames() - 1} {
		anim.Seek(frame)
		axes := anim.Figure().Axes()
		if len(axes) == 0 || len(axes[0].Lines()) == 0 {
			continue
		}
		fmt.Printf("frame %d:\n%s\n", frame, asciigraph.Plot(axes[0].Lines()[0].Y, asciigraph.Height(8)))
	}
}

func runMorph(cmd *cobra.Command, args []string) error {
	from := demoFigure("sine", sineWave(60, 1, 0))
	to := demoFigure("damped", dampedWave(60))

	anim, err := transition.Morph(from, to, transition.MorphOptions{
		Duration: duration,
		FPS:      fps,
		Easing:   easing.ByName(easingName),
	})
	if err != nil {
		return err
	}
	log.Info().Int("frames", anim.Frames()).Msg("morph created")
	if err := export.GIF(anim, outFile); err != nil {
		return err
	}
	log.Info().Str("path", outFile).Msg("wrote animation")
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	if stillFormat != "png" && stillFormat != "svg" {
		return fmt.Errorf("unsupported still format %q", stillFormat)
	}
	if paletteFile != "" {
		pal, err := config.LoadPalette(paletteFile)
		if err != nil {
			return err
		}
		theme.SetPalette(pal)
		defer theme.ResetPalette()
	}

	fig := demoFigure("theme demo", sineWave(60, 1, 0))
	if startDark {
		fig.Background = blend.MustParse("#121212")
		fig.Axes()[0].Background = blend.MustParse("#121212")
	}
	if err := saveStill(fig, "before"); err != nil {
		return err
	}

	mode, err := theme.Toggle(fig, theme.Options{AdjustDataColors: adjustData})
	if err != nil {
		return err
	}
	log.Info().Str("mode", mode.String()).Msg("toggled")
	if err := saveStill(fig, "after"); err != nil {
		return err
	}

	if _, err := theme.Toggle(fig, theme.Options{}); err != nil {
		return err
	}
	log.Info().Msg("restored original colors")
	return saveStill(fig, "restored")
}

func saveStill(fig *figure.Figure, name string) error {
	path := fmt.Sprintf("%s-%s.%s", outPrefix, name, stillFormat)
	if stillFormat == "svg" {
		return export.SVG(fig, path)
	}
	return export.PNG(fig, path)
}

func runEasings(cmd *cobra.Command, args []string) error {
	const samples = 60
	for _, name := range easing.Names() {
		fn, err := easing.ByName(name).Resolve()
		if err != nil {
			return err
		}
		curve := make([]float64, samples+1)
		for i := 0; i <= samples; i++ {
			curve[i] = fn(float64(i) / samples)
		}
		fmt.Printf("\n%s\n%s\n", name, asciigraph.Plot(curve, asciigraph.Height(8), asciigraph.Width(60)))
	}
	return nil
}

func demoFigure(title string, y []float64) *figure.Figure {
	fig := figure.New()
	ax := fig.AddAxes()
	ax.Title = title
	ax.XLabel = "x"
	ax.YLabel = "y"
	ax.Grid = true
	ax.AddLine(nil, y)
	return fig
}

func sineWave(n int, amp, phase float64) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = amp * math.Sin(2*math.Pi*float64(i)/float64(n)+phase)
	}
	return y
}

func dampedWave(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		t := float64(i) / float64(n)
		y[i] = math.Exp(-2*t) * math.Cos(6*math.Pi*t)
	}
	return y
}
