package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/flipsort/internal/config"
	"github.com/san-kum/flipsort/internal/metrics"
	"github.com/san-kum/flipsort/internal/registry"
	"github.com/san-kum/flipsort/internal/sorting"
	"github.com/san-kum/flipsort/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted batch of sorting runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

type ScenarioRun struct {
	Algorithm string `yaml:"algorithm"`
	Values    []int  `yaml:"values,omitempty"`
	Preset    string `yaml:"preset,omitempty"`
	Size      int    `yaml:"size,omitempty"`
	Seed      int64  `yaml:"seed,omitempty"`
	Save      bool   `yaml:"save,omitempty"`
}

type Result struct {
	Algorithm string
	Label     string
	Items     int
	Steps     int
	Metrics   map[string]float64
	RunID     string
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// RunScenario executes every run in order. Fields a run leaves unset come
// from base (nil means the defaults); explicit values are inherited only by
// runs that set neither values nor a preset. Runs marked save are written to
// st, which may be nil when none are. Results collected before a failure are
// returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, st *storage.Store) ([]Result, error) {
	if base == nil {
		base = config.DefaultConfig()
	}

	results := make([]Result, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		slog.Info("running scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Runs), "algorithm", run.Algorithm)

		alg, err := registry.Lookup(run.Algorithm)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		input, err := run.input(base)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		steps := sorting.Run(alg.Sort, input)
		res := Result{
			Algorithm: alg.ID,
			Label:     alg.Label,
			Items:     len(input),
			Steps:     len(steps),
			Metrics:   metrics.Collect(steps),
		}

		if run.Save {
			if st == nil {
				return results, fmt.Errorf("run %d: save requested without a store", i+1)
			}
			res.RunID, err = st.Save(alg.ID, alg.Label, input, steps, res.Metrics)
			if err != nil {
				return results, fmt.Errorf("run %d save: %w", i+1, err)
			}
		}

		results = append(results, res)
	}

	return results, nil
}

func (r ScenarioRun) input(base *config.Config) ([]sorting.Item, error) {
	cfg := *base
	if len(r.Values) > 0 || r.Preset != "" {
		cfg.Values = r.Values
	}
	if r.Preset != "" {
		cfg.Preset = r.Preset
	}
	if r.Size != 0 {
		cfg.Size = r.Size
	}
	if r.Seed != 0 {
		cfg.Seed = r.Seed
	}
	return cfg.Input()
}

// Sweep runs one algorithm over growing inputs from the same preset.
type Sweep struct {
	Algorithm string
	Preset    string
	MinSize   int
	MaxSize   int
	Seed      int64
}

type SweepResult struct {
	Size        int
	Steps       int
	Comparisons int
	Moves       int
}

func RunSweep(ctx context.Context, sweep *Sweep) ([]SweepResult, error) {
	alg, err := registry.Lookup(sweep.Algorithm)
	if err != nil {
		return nil, err
	}
	if sweep.MinSize < 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("%w: %d..%d", config.ErrInvalidSize, sweep.MinSize, sweep.MaxSize)
	}

	results := make([]SweepResult, 0, sweep.MaxSize-sweep.MinSize+1)
	for n := sweep.MinSize; n <= sweep.MaxSize; n++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		values, err := config.Generate(sweep.Preset, n, sweep.Seed)
		if err != nil {
			return results, err
		}

		m := metrics.Collect(sorting.Run(alg.Sort, sorting.NewItems(values...)))
		results = append(results, SweepResult{
			Size:        n,
			Steps:       int(m["steps"]),
			Comparisons: int(m["comparisons"]),
			Moves:       int(m["moves"]),
		})
	}

	return results, nil
}
