package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"

	"github.com/san-kum/flipsort/internal/automation"
	"github.com/san-kum/flipsort/internal/export"
	"github.com/san-kum/flipsort/internal/metrics"
	"github.com/san-kum/flipsort/internal/registry"
	"github.com/san-kum/flipsort/internal/sorting"
	"github.com/san-kum/flipsort/internal/storage"
	"github.com/san-kum/flipsort/internal/tui"
	"github.com/san-kum/flipsort/internal/viz"
	"github.com/spf13/cobra"
)

func playTrace(cmd *cobra.Command, args []string) error {
	cfg, alg, input, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	return viz.RunPlayer(alg.ID, input, cfg.FPS, viz.GetTheme(cfg.Theme))
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, alg, input, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var steps []sorting.Step
	interrupted := false
	switch {
	case live:
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt)
		defer stop()

		r := tui.NewLiveRenderer(out, alg.Label, cfg.FPS, cfg.Width, viz.GetTheme(cfg.Theme))
		r.OnFrame = func(s sorting.Step) { steps = append(steps, s) }
		r.Play(alg.Sort(input), func() bool { return ctx.Err() != nil })
		if ctx.Err() != nil {
			interrupted = true
			fmt.Fprintf(out, "\ninterrupted after %d steps\n", len(steps))
		}
	default:
		steps = sorting.Run(alg.Sort, input)
		if !quiet {
			styles := viz.NewStyles(viz.GetTheme(cfg.Theme))
			for i, s := range steps {
				if bars {
					fmt.Fprintln(out, viz.Frame(alg.Label, s, i, len(steps), cfg.Width, styles))
					fmt.Fprintln(out)
					continue
				}
				fmt.Fprintln(out, viz.Line(i, s))
			}
		}
	}

	results := metrics.Collect(steps)
	printMetrics(out, results)

	if save && !interrupted {
		st := storage.New(cfg.DataDir, nil)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(alg.ID, alg.Label, input, steps, results)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	return nil
}

func printMetrics(w io.Writer, results map[string]float64) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintln(w, "\nmetrics:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %.0f\n", name, results[name])
	}
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tID")
	for _, o := range registry.Options() {
		fmt.Fprintf(w, "%s\t%s\n", o.Label, o.ID)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runs, err := storage.New(cfg.DataDir, nil).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tITEMS\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Input),
			run.Steps,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir, nil)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n\n", meta.Label)
	for i, s := range steps {
		fmt.Println(viz.Line(i, s))
	}
	printMetrics(os.Stdout, meta.Metrics)
	return nil
}

func plotTrace(cmd *cobra.Command, args []string) error {
	cfg, alg, input, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	steps := sorting.Run(alg.Sort, input)
	fmt.Println(viz.Plot(steps, cfg.Width, plotHeight, alg.Label+": inversions per step"))
	return nil
}

func exportTrace(cmd *cobra.Command, args []string) error {
	_, alg, input, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	steps := sorting.Run(alg.Sort, input)
	data := storage.ExportData{
		Algorithm: alg.ID,
		Label:     alg.Label,
		Input:     input,
		Steps:     steps,
		Metrics:   metrics.Collect(steps),
	}
	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.TraceToSVG(steps, svgCell)), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	if outFile == "" {
		return storage.ExportJSON(os.Stdout, data)
	}
	return storage.ExportJSONFile(outFile, data)
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, err := cfg.Input()
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		for _, o := range registry.Options() {
			ids = append(ids, o.ID)
		}
	}

	for _, id := range ids {
		if _, err := lookup(id); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.Compare(ctx, ids, input)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tMOVES")
	for _, r := range results {
		m := r.Metrics
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\n", r.Label, r.Steps, m["comparisons"], m["swaps"], m["moves"])
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir, nil)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunScenario(ctx, sc, cfg, st)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tITEMS\tSTEPS\tCOMPARISONS\tMOVES\tRUN")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%.0f\t%s\n", r.Label, r.Items, r.Steps, r.Metrics["comparisons"], r.Metrics["moves"], r.RunID)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := lookup(args[0]); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.Sweep{
		Algorithm: args[0],
		Preset:    cfg.Preset,
		MinSize:   sweepMin,
		MaxSize:   sweepMax,
		Seed:      cfg.Seed,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tMOVES")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", r.Size, r.Steps, r.Comparisons, r.Moves)
	}
	return w.Flush()
}
