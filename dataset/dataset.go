package dataset

import (
	"math/rand"

	"github.com/hupe1980/estigo"
)

// Dataset is an ordered, fixed-dimensionality collection of numeric
// feature vectors. All samples share the same dimensionality, enforced at
// construction.
type Dataset struct {
	samples [][]float64
	dim     int
}

// FromSlice builds a Dataset from the given samples. The input is deep
// copied so later mutation of the caller's slices cannot alter the
// dataset. All samples must have the same length.
func FromSlice(samples [][]float64) (*Dataset, error) {
	ds := &Dataset{
		samples: make([][]float64, len(samples)),
	}

	for i, s := range samples {
		if i == 0 {
			ds.dim = len(s)
		} else if len(s) != ds.dim {
			return nil, &estigo.ErrDimensionMismatch{Expected: ds.dim, Actual: len(s)}
		}

		ds.samples[i] = make([]float64, len(s))
		copy(ds.samples[i], s)
	}

	return ds, nil
}

// Len returns the number of samples.
func (ds *Dataset) Len() int {
	return len(ds.samples)
}

// Dim returns the dimensionality of the samples, 0 for an empty dataset.
func (ds *Dataset) Dim() int {
	return ds.dim
}

// Sample returns the i-th sample without copying. Callers must not mutate
// the returned slice.
func (ds *Dataset) Sample(i int) []float64 {
	return ds.samples[i]
}

// Samples returns the underlying sample sequence without copying. Callers
// must not mutate it.
func (ds *Dataset) Samples() [][]float64 {
	return ds.samples
}

// Subset returns a new Dataset containing the samples at the given
// indices, in order. Sample data is shared, not copied.
func (ds *Dataset) Subset(indices []int) *Dataset {
	sub := &Dataset{
		samples: make([][]float64, len(indices)),
		dim:     ds.dim,
	}
	for i, idx := range indices {
		sub.samples[i] = ds.samples[idx]
	}
	return sub
}

// SampleWeighted draws n sample indices with replacement, with per-sample
// probability proportional to weights. It uses a cumulative-distribution
// scan over the weight slice. A zero (or negative) weight total falls back
// to a uniform draw.
//
// len(weights) must equal ds.Len().
func (ds *Dataset) SampleWeighted(rng *rand.Rand, weights []float64, n int) []int {
	var total float64
	for _, w := range weights {
		total += w
	}

	indices := make([]int, n)
	for i := range indices {
		if total <= 0 {
			indices[i] = rng.Intn(len(ds.samples))
			continue
		}

		target := rng.Float64() * total
		var cum float64
		idx := len(weights) - 1 // last index absorbs rounding error
		for j, w := range weights {
			cum += w
			if cum >= target {
				idx = j
				break
			}
		}
		indices[i] = idx
	}

	return indices
}
