package automation

import (
	"context"
	"sync"

	"github.com/san-kum/flipsort/internal/metrics"
	"github.com/san-kum/flipsort/internal/registry"
	"github.com/san-kum/flipsort/internal/sorting"
)

// Compare runs every algorithm over the same input, one goroutine per
// algorithm. Each run sorts its own copy, so input is shared read-only.
// Results keep the order of ids.
func Compare(ctx context.Context, ids []string, input []sorting.Item) ([]Result, error) {
	algs := make([]registry.Algorithm, len(ids))
	for i, id := range ids {
		alg, err := registry.Lookup(id)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}

	results := make([]Result, len(algs))
	errs := make([]error, len(algs))

	var wg sync.WaitGroup
	for i, alg := range algs {
		wg.Add(1)
		go func(idx int, alg registry.Algorithm) {
			defer wg.Done()

			n := 0
			ms := metrics.Defaults()
			for _, m := range ms {
				m.Reset()
			}
			for step := range alg.Sort(input) {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}
				for _, m := range ms {
					m.Observe(step)
				}
				n++
			}

			values := make(map[string]float64, len(ms))
			for _, m := range ms {
				values[m.Name()] = m.Value()
			}
			results[idx] = Result{
				Algorithm: alg.ID,
				Label:     alg.Label,
				Items:     len(input),
				Steps:     n,
				Metrics:   values,
			}
		}(i, alg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
