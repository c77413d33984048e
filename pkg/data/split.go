package data

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Fold is one train/validation partition produced by Folds.
type Fold struct {
	Train      *Dataset
	Validation *Dataset
}

// Shuffle returns a copy of d with its rows permuted by rng.
// Features and targets stay paired.
func (d *Dataset) Shuffle(rng *rand.Rand) *Dataset {
	return d.subset(rng.Perm(d.NSamples()))
}

// SplitWithRatio keeps the first ratio share of rows for train and the
// rest for test. Both parts must end up non-empty.
func (d *Dataset) SplitWithRatio(ratio float64) (train, test *Dataset, err error) {
	n := d.NSamples()
	nTrain := int(float64(n) * ratio)
	if ratio <= 0 || ratio >= 1 || nTrain == 0 || nTrain == n {
		return nil, nil, errors.Errorf("ratio %v leaves an empty split of %d rows", ratio, n)
	}
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = i
	}
	return d.subset(idx[:nTrain]), d.subset(idx[nTrain:]), nil
}

// Folds splits d into k folds in row order. Fold i validates on every
// row r with r%k == i and trains on the rest.
func (d *Dataset) Folds(k int) ([]Fold, error) {
	n := d.NSamples()
	if k < 2 || k > n {
		return nil, errors.Errorf("cannot make %d folds from %d rows", k, n)
	}
	buckets := make([][]int, k)
	for i := 0; i < n; i++ {
		buckets[i%k] = append(buckets[i%k], i)
	}

	folds := make([]Fold, k)
	for f := 0; f < k; f++ {
		train := make([]int, 0, n-len(buckets[f]))
		for g, b := range buckets {
			if g != f {
				train = append(train, b...)
			}
		}
		folds[f] = Fold{Train: d.subset(train), Validation: d.subset(buckets[f])}
	}
	return folds, nil
}
