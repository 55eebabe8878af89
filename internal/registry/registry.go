// Package registry maps stable algorithm identifiers to their display label
// and step emitter.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/flipsort/internal/sorting"
)

const (
	Bubble    = "bubbleSort"
	Insertion = "insertionSort"
	Selection = "selectionSort"
	Quick     = "quickSort"
)

var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

type Algorithm struct {
	ID    string
	Label string
	Sort  sorting.Sorter
}

// Option is one entry of an algorithm picker.
type Option struct {
	Label string `json:"label" yaml:"label"`
	ID    string `json:"value" yaml:"value"`
}

type Registry struct {
	algorithms map[string]Algorithm
	order      []string
}

var std = New()

func New() *Registry {
	r := &Registry{
		algorithms: make(map[string]Algorithm),
		order:      []string{Insertion, Bubble, Selection, Quick},
	}

	r.algorithms[Bubble] = Algorithm{ID: Bubble, Label: "Bubble Sort", Sort: sorting.Bubble}
	r.algorithms[Insertion] = Algorithm{ID: Insertion, Label: "Insertion Sort", Sort: sorting.Insertion}
	r.algorithms[Selection] = Algorithm{ID: Selection, Label: "Selection Sort", Sort: sorting.Selection}
	r.algorithms[Quick] = Algorithm{ID: Quick, Label: "Quick Sort", Sort: sorting.Quick}

	return r
}

func (r *Registry) Lookup(id string) (Algorithm, error) {
	alg, ok := r.algorithms[id]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}
	return alg, nil
}

// Options lists the algorithms in picker order.
func (r *Registry) Options() []Option {
	opts := make([]Option, 0, len(r.order))
	for _, id := range r.order {
		opts = append(opts, Option{Label: r.algorithms[id].Label, ID: id})
	}
	return opts
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.algorithms))
	for id := range r.algorithms {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func Lookup(id string) (Algorithm, error) { return std.Lookup(id) }
func Options() []Option                   { return std.Options() }
func IDs() []string                       { return std.IDs() }
