package sorting_test

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flipsort/internal/sorting"
)

var algorithms = map[string]sorting.Sorter{
	"bubble":    sorting.Bubble,
	"selection": sorting.Selection,
	"insertion": sorting.Insertion,
	"quick":     sorting.Quick,
}

var inputs = map[string][]int{
	"empty":      {},
	"single":     {7},
	"pair":       {2, 1},
	"sorted":     {1, 2, 3, 4, 5},
	"reversed":   {9, 7, 5, 3, 1},
	"duplicates": {5, 3, 5, 1, 3, 5},
	"all equal":  {4, 4, 4, 4},
	"negative":   {0, -3, 8, -3, 2},
}

func sortedIDs(items []sorting.Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	slices.Sort(ids)
	return ids
}

func randomValues(seed int64, n int) []int {
	r := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(20)
	}
	return values
}

var _ = Describe("step traces", func() {
	for algName, sorter := range algorithms {
		Context(algName, func() {
			for inputName, values := range inputs {
				It("keeps the trace contract on "+inputName+" input", func() {
					input := sorting.NewItems(values...)
					original := slices.Clone(input)

					steps := sorting.Run(sorter, input)
					Expect(len(steps)).To(BeNumerically(">=", 2))

					By("leaving the caller's input untouched")
					Expect(input).To(Equal(original))

					By("bracketing the trace with boundary steps")
					first, last := steps[0], steps[len(steps)-1]
					Expect(first.Highlights).To(BeEmpty())
					Expect(first.Items).To(Equal(original))
					Expect(last.Highlights).To(BeEmpty())
					Expect(last.Description).To(Equal("Sorting complete! All elements are now in their correct positions."))
					Expect(sorting.IsSorted(last.Items)).To(BeTrue())

					By("preserving identity across every step")
					want := sortedIDs(input)
					byID := make(map[int]int, len(input))
					for _, it := range input {
						byID[it.ID] = it.Value
					}
					for _, s := range steps {
						Expect(sortedIDs(s.Items)).To(Equal(want))
						for _, it := range s.Items {
							Expect(it.Value).To(Equal(byID[it.ID]))
						}
						for _, h := range s.Highlights {
							Expect(byID).To(HaveKey(h))
						}
					}
				})
			}

			It("emits only boundary steps for inputs shorter than two", func() {
				Expect(sorting.Run(sorter, nil)).To(HaveLen(2))
				Expect(sorting.Run(sorter, sorting.NewItems(3))).To(HaveLen(2))
			})

			It("replays identically", func() {
				input := sorting.NewItems(randomValues(42, 12)...)
				Expect(sorting.Run(sorter, input)).To(Equal(sorting.Run(sorter, input)))
			})

			It("sorts random inputs", func() {
				for seed := int64(1); seed <= 25; seed++ {
					values := randomValues(seed, int(seed%10)+1)
					steps := sorting.Run(sorter, sorting.NewItems(values...))
					got := steps[len(steps)-1].Values()
					want := slices.Clone(values)
					slices.Sort(want)
					Expect(got).To(Equal(want), "seed %d", seed)
				}
			})

			It("hands out independent snapshots", func() {
				steps := sorting.Run(sorter, sorting.NewItems(3, 1, 2))
				before := steps[1].Clone()
				steps[0].Items[0].Value = 100
				steps[0].Highlights = append(steps[0].Highlights, 99)
				Expect(steps[1]).To(Equal(before))
			})

			It("stops executing when the consumer stops", func() {
				c := sorting.NewCursor(sorter(sorting.NewItems(5, 4, 3, 2, 1)))
				_, ok := c.Next()
				Expect(ok).To(BeTrue())
				c.Stop()
				_, ok = c.Next()
				Expect(ok).To(BeFalse())
				Expect(c.Pulled()).To(Equal(1))
			})
		})
	}
})
