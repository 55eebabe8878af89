package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/san-kum/flipsort/internal/config"
	"github.com/san-kum/flipsort/internal/registry"
	"github.com/san-kum/flipsort/internal/sorting"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	values     string
	preset     string
	size       int
	seed       int64
	fps        int
	width      int
	theme      string
	logLevel   string
	// run
	live  bool
	bars  bool
	save  bool
	quiet bool
	// export
	outFile string
	svgFile string
	svgCell float64
	// sweep
	sweepMin int
	sweepMax int
	// plot
	plotHeight int
)

// main registers the flipsort commands and opens the interactive player when
// no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "flipsort",
		Short:        "step-by-step sorting visualizer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playTrace(cmd, nil)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "run store directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&values, "values", "", "comma separated input values (overrides preset)")
	pf.StringVar(&preset, "preset", "random", "input preset")
	pf.IntVar(&size, "size", config.DefaultSize, "input size for presets")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "preset seed")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "steps per second for playback")
	pf.IntVar(&width, "width", config.DefaultWidth, "bar width in cells")
	pf.StringVar(&theme, "theme", "cyberpunk", "color theme")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "step through a trace interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playTrace,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "print every step of a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	runCmd.Flags().BoolVar(&live, "live", false, "redraw the terminal once per step")
	runCmd.Flags().BoolVar(&bars, "bars", false, "draw bars for every step")
	runCmd.Flags().BoolVar(&save, "save", false, "store the run")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "print metrics only")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the steps of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot inversions remaining per step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export a trace as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTrace,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&svgFile, "svg", "", "also write an SVG trace diagram")
	exportCmd.Flags().Float64Var(&svgCell, "cell", 16, "SVG cell size in pixels")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "compare algorithms on the same input",
		RunE:  compareAlgorithms,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted batch of traces from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure an algorithm over growing input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 1, "smallest input size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", config.DefaultSize, "largest input size")

	rootCmd.AddCommand(playCmd, runCmd, algorithmsCmd, presetsCmd, listCmd, showCmd, plotCmd, exportCmd, compareCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) with flags; flags win only when
// set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if configFile == "" || flags.Changed("preset") {
		cfg.Preset = preset
	}
	if configFile == "" || flags.Changed("size") {
		cfg.Size = size
	}
	if configFile == "" || flags.Changed("seed") {
		cfg.Seed = seed
	}
	if configFile == "" || flags.Changed("fps") {
		cfg.FPS = fps
	}
	if configFile == "" || flags.Changed("width") {
		cfg.Width = width
	}
	if configFile == "" || flags.Changed("theme") {
		cfg.Theme = theme
	}
	if configFile == "" || flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("values") {
		vs, err := config.ParseValues(values)
		if err != nil {
			return nil, err
		}
		cfg.Values = vs
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return cfg, nil
}

// prepare resolves the algorithm (argument, then config) and the input.
func prepare(cmd *cobra.Command, args []string) (*config.Config, registry.Algorithm, []sorting.Item, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, registry.Algorithm{}, nil, err
	}

	id := cfg.Algorithm
	if len(args) > 0 {
		id = args[0]
	}
	alg, err := lookup(id)
	if err != nil {
		return nil, registry.Algorithm{}, nil, err
	}

	input, err := cfg.Input()
	if err != nil {
		return nil, registry.Algorithm{}, nil, err
	}

	slog.Debug("prepared run", "algorithm", alg.ID, "items", len(input), "preset", cfg.Preset, "seed", cfg.Seed)
	return cfg, alg, input, nil
}

func lookup(id string) (registry.Algorithm, error) {
	alg, err := registry.Lookup(id)
	if err != nil {
		return registry.Algorithm{}, fmt.Errorf("%w (available: %s)", err, strings.Join(registry.IDs(), ", "))
	}
	return alg, nil
}
