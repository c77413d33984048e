package data

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FeatureSummary describes the values of one feature column.
type FeatureSummary struct {
	Name string
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Summary computes per-feature statistics. Std is the population
// standard deviation.
func (d *Dataset) Summary() []FeatureSummary {
	out := make([]FeatureSummary, d.NFeatures())
	for j := range out {
		col := mat.Col(nil, j, d.records)
		out[j] = FeatureSummary{
			Name: d.names[j],
			Mean: stat.Mean(col, nil),
			Std:  stat.PopStdDev(col, nil),
			Min:  floats.Min(col),
			Max:  floats.Max(col),
		}
	}
	return out
}
