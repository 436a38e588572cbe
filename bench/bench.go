// Package bench generates workloads and times the sorting routines,
// reporting the median run time per (algorithm, distribution, size) cell.
package bench

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/viant/schedq/internal/clock"
	"github.com/viant/schedq/internal/idgen"
	"github.com/viant/schedq/sorting"
)

// Distribution names a workload shape.
type Distribution string

const (
	DistributionRandom    Distribution = "random"
	DistributionSorted    Distribution = "sorted"
	DistributionReverse   Distribution = "reverse"
	DistributionFewUnique Distribution = "few_unique"
)

// Distributions returns all supported workload shapes.
func Distributions() []Distribution {
	return []Distribution{DistributionRandom, DistributionSorted, DistributionReverse, DistributionFewUnique}
}

// Algorithm pairs a display name with a sorting routine under test.
type Algorithm struct {
	Name string
	Sort func([]int) []int
}

// Algorithms returns the routines the harness measures.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "heapsort", Sort: sorting.HeapSort[int]},
		{Name: "quicksort", Sort: sorting.QuickSort[int]},
		{Name: "mergesort", Sort: sorting.MergeSort[int]},
	}
}

// Result is one measured cell of the benchmark grid.
type Result struct {
	Algorithm    string       `json:"algorithm" yaml:"algorithm"`
	Distribution Distribution `json:"distribution" yaml:"distribution"`
	Size         int          `json:"size" yaml:"size"`
	Trials       int          `json:"trials" yaml:"trials"`
	MedianMs     float64      `json:"medianMs" yaml:"medianMs"`
}

// Report aggregates all measured cells of one harness run.
type Report struct {
	ID      string   `json:"id" yaml:"id"`
	Results []Result `json:"results" yaml:"results"`
}

// Options controls the benchmark grid. Zero fields inherit defaults.
type Options struct {
	Trials        int
	Sizes         []int
	Distributions []Distribution
	Rand          *rand.Rand
}

func (o *Options) init() {
	if o.Trials == 0 {
		o.Trials = 7
	}
	if len(o.Sizes) == 0 {
		o.Sizes = []int{1000, 5000, 10000, 20000}
	}
	if len(o.Distributions) == 0 {
		o.Distributions = Distributions()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
}

// Generate produces n values with the requested distribution.
func Generate(rnd *rand.Rand, kind Distribution, n int) ([]int, error) {
	switch kind {
	case DistributionRandom:
		out := make([]int, n)
		for i := range out {
			out[i] = rnd.Intn(n + 1)
		}
		return out, nil
	case DistributionSorted:
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	case DistributionReverse:
		out := make([]int, n)
		for i := range out {
			out[i] = n - i
		}
		return out, nil
	case DistributionFewUnique:
		out := make([]int, n)
		for i := range out {
			out[i] = rnd.Intn(11)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown distribution %v", kind)
}

// Time measures sortFn over the supplied data and returns the median run
// time in milliseconds across trials. Every trial's output is checked
// against a reference sort; a mismatch aborts the measurement.
func Time(sortFn func([]int) []int, data []int, trials int) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("trials must be > 0, got %d", trials)
	}
	reference := append([]int(nil), data...)
	sort.Ints(reference)

	times := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		input := append([]int(nil), data...)
		started := clock.Now()
		out := sortFn(input)
		elapsed := clock.Since(started)
		if !equal(out, reference) {
			return 0, fmt.Errorf("sort produced incorrect output on trial %d", i+1)
		}
		times = append(times, float64(elapsed.Microseconds())/1000.0)
	}
	return median(times), nil
}

// Run measures every algorithm against every (distribution, size) cell.
func Run(options Options) (*Report, error) {
	options.init()
	report := &Report{ID: idgen.New()}
	for _, kind := range options.Distributions {
		for _, size := range options.Sizes {
			data, err := Generate(options.Rand, kind, size)
			if err != nil {
				return nil, err
			}
			for _, algorithm := range Algorithms() {
				medianMs, err := Time(algorithm.Sort, data, options.Trials)
				if err != nil {
					return nil, fmt.Errorf("%v on %v/%d: %w", algorithm.Name, kind, size, err)
				}
				report.Results = append(report.Results, Result{
					Algorithm:    algorithm.Name,
					Distribution: kind,
					Size:         size,
					Trials:       options.Trials,
					MedianMs:     medianMs,
				})
			}
		}
	}
	return report, nil
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
