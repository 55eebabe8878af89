package config

import (
	"fmt"
	"math/rand"
	"slices"
)

const maxValue = 99

// Presets generate deterministic inputs of a given size from a seed.
var Presets = map[string]func(r *rand.Rand, n int) []int{
	"random": func(r *rand.Rand, n int) []int {
		values := make([]int, n)
		for i := range values {
			values[i] = r.Intn(maxValue) + 1
		}
		return values
	},
	"sorted": func(r *rand.Rand, n int) []int {
		values := make([]int, n)
		for i := range values {
			values[i] = (i + 1) * 5
		}
		return values
	},
	"reversed": func(r *rand.Rand, n int) []int {
		values := make([]int, n)
		for i := range values {
			values[i] = (n - i) * 5
		}
		return values
	},
	"few-unique": func(r *rand.Rand, n int) []int {
		values := make([]int, n)
		for i := range values {
			values[i] = (r.Intn(3) + 1) * 20
		}
		return values
	},
	"nearly-sorted": func(r *rand.Rand, n int) []int {
		values := make([]int, n)
		for i := range values {
			values[i] = (i + 1) * 5
		}
		if n > 1 {
			i := r.Intn(n - 1)
			values[i], values[i+1] = values[i+1], values[i]
		}
		return values
	},
	"single": func(r *rand.Rand, n int) []int {
		return []int{r.Intn(maxValue) + 1}
	},
	"empty": func(r *rand.Rand, n int) []int {
		return []int{}
	},
}

func Generate(preset string, n int, seed int64) ([]int, error) {
	gen, ok := Presets[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
	}
	if n < 0 || n > MaxSize {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrInvalidSize, n, MaxSize)
	}
	return gen(rand.New(rand.NewSource(seed)), n), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
