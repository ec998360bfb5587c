package dataset

import (
	"fmt"
	"math/rand"
)

// TrainTestSplit shuffles the dataset and partitions it into a training
// and a test dataset. testRatio is the fraction of samples assigned to
// the test set, in (0, 1). Sample data is shared with the parent dataset.
func TrainTestSplit(ds *Dataset, testRatio float64, rng *rand.Rand) (train, test *Dataset, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("invalid test ratio: %v (must be in (0, 1))", testRatio)
	}

	perm := rng.Perm(ds.Len())
	nTest := int(float64(ds.Len()) * testRatio)

	return ds.Subset(perm[nTest:]), ds.Subset(perm[:nTest]), nil
}

// KFold shuffles the dataset and partitions its indices into k folds of
// near-equal size. The first Len() % k folds receive one extra sample.
func KFold(ds *Dataset, k int, rng *rand.Rand) ([][]int, error) {
	if k < 2 {
		return nil, fmt.Errorf("invalid fold count: %d (must be >= 2)", k)
	}
	if ds.Len() < k {
		return nil, fmt.Errorf("cannot split %d samples into %d folds", ds.Len(), k)
	}

	perm := rng.Perm(ds.Len())

	folds := make([][]int, k)
	base := ds.Len() / k
	extra := ds.Len() % k

	offset := 0
	for i := range folds {
		size := base
		if i < extra {
			size++
		}
		folds[i] = perm[offset : offset+size]
		offset += size
	}

	return folds, nil
}
