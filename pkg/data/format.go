package data

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gonum.org/v1/gonum/mat"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type datasetDump struct {
	Shape        [2]int
	FeatureNames []string
	Records      [][]float64
	Targets      []int
}

// Dump writes every value of d in a debug layout.
func (d *Dataset) Dump(w io.Writer) error {
	r, c := d.Shape()
	v := datasetDump{
		Shape:        [2]int{r, c},
		FeatureNames: d.names,
		Records:      make([][]float64, r),
		Targets:      d.targets,
	}
	for i := 0; i < r; i++ {
		v.Records[i] = d.records.RawRowView(i)
	}
	_, err := io.WriteString(w, dumpConfig.Sdump(v))
	return err
}

// String returns the shape, names and a short excerpt of the records.
func (d *Dataset) String() string {
	r, c := d.Shape()
	return fmt.Sprintf("Dataset{shape: (%d, %d), features: %v, labels: %v}\n%v",
		r, c, d.names, d.Labels(), mat.Formatted(d.records, mat.Prefix(""), mat.Excerpt(3)))
}
