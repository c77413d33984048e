package data_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"tabset/pkg/data"
)

// sequential builds n rows of two features (i, -i) with target i.
func sequential(t *testing.T, n int) *data.Dataset {
	t.Helper()
	records := mat.NewDense(n, 2, nil)
	targets := make([]int, n)
	for i := 0; i < n; i++ {
		records.SetRow(i, []float64{float64(i), -float64(i)})
		targets[i] = i
	}
	ds, err := data.NewDataset(records, targets)
	require.NoError(t, err)
	return ds
}

// requirePaired checks that every row still carries its own target.
func requirePaired(t *testing.T, ds *data.Dataset) {
	t.Helper()
	for i, n := 0, ds.NSamples(); i < n; i++ {
		row, target := ds.Row(i)
		require.Equal(t, float64(target), row[0])
		require.Equal(t, -float64(target), row[1])
	}
}

func TestNewDataset(t *testing.T) {
	records := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	ds, err := data.NewDataset(records, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, []string{"feature_0", "feature_1", "feature_2"}, ds.FeatureNames())
	require.Equal(t, 2, ds.NSamples())
	require.Equal(t, 3, ds.NFeatures())

	// the dataset holds its own copy
	records.Set(0, 0, 100)
	require.Equal(t, 1.0, ds.Records().At(0, 0))

	_, err = data.NewDataset(records, []int{0})
	require.ErrorIs(t, err, data.ErrShape)
	_, err = data.NewDataset(nil, nil)
	require.ErrorIs(t, err, data.ErrShape)
}

func TestDataset_WithFeatureNames(t *testing.T) {
	ds := sequential(t, 3)

	named, err := ds.WithFeatureNames([]string{"up", "down"})
	require.NoError(t, err)
	require.Equal(t, []string{"up", "down"}, named.FeatureNames())
	require.Equal(t, []string{"feature_0", "feature_1"}, ds.FeatureNames())
	require.True(t, mat.Equal(ds.Records(), named.Records()))

	_, err = ds.WithFeatureNames([]string{"only"})
	require.ErrorIs(t, err, data.ErrShape)
}

func TestDataset_AccessorsReturnCopies(t *testing.T) {
	ds, err := data.Load("testdata/heart_head.csv")
	require.NoError(t, err)

	targets := ds.Targets()
	targets[0] = 42
	names := ds.FeatureNames()
	names[0] = "changed"
	records := ds.Records()
	records.Set(0, 0, -1)
	row, _ := ds.Row(0)
	row[1] = -1

	assert.Equal(t, 1, ds.Targets()[0])
	assert.Equal(t, "age", ds.FeatureNames()[0])
	assert.Equal(t, 63.0, ds.Records().At(0, 0))
	assert.Equal(t, 1.0, ds.Records().At(0, 1))
}

func TestDataset_Labels(t *testing.T) {
	records := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	ds, err := data.NewDataset(records, []int{2, 0, 2, 1, 2})
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, ds.Labels())
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 3}, ds.LabelCounts())
}

func TestDataset_Equal(t *testing.T) {
	a := sequential(t, 4)
	b := sequential(t, 4)
	require.True(t, a.Equal(b))

	renamed, err := b.WithFeatureNames([]string{"x", "y"})
	require.NoError(t, err)
	require.False(t, a.Equal(renamed))
	require.False(t, a.Equal(sequential(t, 5)))

	big := sequential(t, 50)
	require.False(t, big.Equal(big.Shuffle(rand.New(rand.NewSource(3)))))
}

func TestDataset_Summary(t *testing.T) {
	records := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 10,
		3, 10,
		4, 10,
	})
	ds, err := data.NewDataset(records, []int{0, 0, 1, 1})
	require.NoError(t, err)

	summary := ds.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, "feature_0", summary[0].Name)
	assert.InDelta(t, 2.5, summary[0].Mean, 1e-12)
	assert.InDelta(t, 1.118033988749895, summary[0].Std, 1e-12)
	assert.Equal(t, 1.0, summary[0].Min)
	assert.Equal(t, 4.0, summary[0].Max)
	assert.Equal(t, 0.0, summary[1].Std)
}

func TestDataset_Dump(t *testing.T) {
	ds, err := data.Load("testdata/bom.csv")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ds.Dump(&buf))
	out := buf.String()

	for _, want := range []string{"Shape", "FeatureNames", "Records", "Targets", `"x"`, `"y"`, "(float64) 4"} {
		assert.Contains(t, out, want)
	}
}

func TestDataset_String(t *testing.T) {
	ds, err := data.Load("testdata/heart_head.csv")
	require.NoError(t, err)

	s := ds.String()
	assert.Contains(t, s, "shape: (5, 13)")
	assert.Contains(t, s, "thalach")
	assert.Contains(t, s, "labels: [1]")
}
