package data

import (
	"fmt"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset holds a feature matrix, one integer target per row and the
// feature names. A Dataset is never modified after construction; accessors
// hand out copies and derived datasets are new values.
type Dataset struct {
	records *mat.Dense
	targets []int
	names   []string
}

// NewDataset pairs records with targets. The rows of records must match
// len(targets). Feature names default to feature_0, feature_1, ...
func NewDataset(records *mat.Dense, targets []int) (*Dataset, error) {
	if records == nil {
		return nil, errors.Wrap(ErrShape, "nil records")
	}
	r, c := records.Dims()
	if r != len(targets) {
		return nil, errors.Wrapf(ErrShape, "%d record rows but %d targets", r, len(targets))
	}
	names := make([]string, c)
	for j := 0; j < c; j++ {
		names[j] = fmt.Sprintf("feature_%d", j)
	}
	return &Dataset{
		records: mat.DenseCopyOf(records),
		targets: slices.Clone(targets),
		names:   names,
	}, nil
}

// WithFeatureNames returns a copy of d carrying the given names.
func (d *Dataset) WithFeatureNames(names []string) (*Dataset, error) {
	if len(names) != d.NFeatures() {
		return nil, errors.Wrapf(ErrShape, "%d feature names for %d features", len(names), d.NFeatures())
	}
	return &Dataset{
		records: d.records,
		targets: d.targets,
		names:   slices.Clone(names),
	}, nil
}

// NSamples is the number of rows.
func (d *Dataset) NSamples() int { return len(d.targets) }

// NFeatures is the number of feature columns.
func (d *Dataset) NFeatures() int {
	_, c := d.records.Dims()
	return c
}

// Shape returns (rows, features).
func (d *Dataset) Shape() (int, int) { return d.records.Dims() }

// Records returns a copy of the feature matrix.
func (d *Dataset) Records() *mat.Dense { return mat.DenseCopyOf(d.records) }

// Targets returns a copy of the label vector.
func (d *Dataset) Targets() []int { return slices.Clone(d.targets) }

// FeatureNames returns a copy of the feature names.
func (d *Dataset) FeatureNames() []string { return slices.Clone(d.names) }

// Row returns the features and the target of row i.
func (d *Dataset) Row(i int) ([]float64, int) {
	return mat.Row(nil, i, d.records), d.targets[i]
}

// Labels returns the distinct targets in ascending order.
func (d *Dataset) Labels() []int {
	counts := d.LabelCounts()
	out := make([]int, 0, len(counts))
	for l := range counts {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// LabelCounts returns how many rows carry each target.
func (d *Dataset) LabelCounts() map[int]int {
	counts := make(map[int]int)
	for _, t := range d.targets {
		counts[t]++
	}
	return counts
}

// Equal reports whether both datasets hold the same values and names.
func (d *Dataset) Equal(o *Dataset) bool {
	if d == nil || o == nil {
		return d == o
	}
	return mat.Equal(d.records, o.records) &&
		slices.Equal(d.targets, o.targets) &&
		slices.Equal(d.names, o.names)
}

// subset builds a dataset from the given row indices, in order.
func (d *Dataset) subset(idx []int) *Dataset {
	c := d.NFeatures()
	records := mat.NewDense(len(idx), c, nil)
	targets := make([]int, len(idx))
	for i, src := range idx {
		records.SetRow(i, d.records.RawRowView(src))
		targets[i] = d.targets[src]
	}
	return &Dataset{records: records, targets: targets, names: d.names}
}
