package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"slices"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tabset/pkg/data"
)

//
// --input   : CSV file to load (header row, numeric rows, target last)
// --x, --y  : feature names for the scatter plot
// --out     : prefix for the generated PNG files
//
// Example:
//   go run ./cmd/examples/label_plot --input data/heart.csv --x age --y thalach
//

var colors = []color.RGBA{
	{R: 220, G: 50, B: 50, A: 255},
	{R: 50, G: 90, B: 220, A: 255},
	{R: 40, G: 170, B: 70, A: 255},
	{R: 230, G: 160, B: 20, A: 255},
}

// plotLabelCounts draws one bar per distinct label.
func plotLabelCounts(ds *data.Dataset, filename string) {
	labels := ds.Labels()
	counts := ds.LabelCounts()

	values := make(plotter.Values, len(labels))
	names := make([]string, len(labels))
	for i, l := range labels {
		values[i] = float64(counts[l])
		names[i] = strconv.Itoa(l)
	}

	p := plot.New()
	p.Title.Text = "Samples per Label"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		log.Fatal(err)
	}
	bars.Color = colors[1]
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved label counts plot to %s\n", filename)
}

// plotFeatures scatters feature x against feature y, one color per label.
func plotFeatures(ds *data.Dataset, x, y, filename string) {
	names := ds.FeatureNames()
	xi, yi := slices.Index(names, x), slices.Index(names, y)
	if xi < 0 || yi < 0 {
		log.Fatalf("features %q and %q must be among %v", x, y, names)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", y, x)
	p.X.Label.Text = x
	p.Y.Label.Text = y

	pts := make(map[int]plotter.XYs)
	for i, n := 0, ds.NSamples(); i < n; i++ {
		row, label := ds.Row(i)
		pts[label] = append(pts[label], plotter.XY{X: row[xi], Y: row[yi]})
	}

	for k, label := range ds.Labels() {
		s, err := plotter.NewScatter(pts[label])
		if err != nil {
			log.Fatal(err)
		}
		s.Color = colors[k%len(colors)]
		s.Shape = draw.CircleGlyph{}
		s.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add("label "+strconv.Itoa(label), s)
	}

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved feature scatter plot to %s\n", filename)
}

func main() {
	input := flag.String("input", "data/heart.csv", "Path to input CSV file")
	x := flag.String("x", "age", "Feature on the x axis")
	y := flag.String("y", "thalach", "Feature on the y axis")
	out := flag.String("out", "heart", "Prefix for output PNG files")
	flag.Parse()

	ds, err := data.Load(*input)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	fmt.Println(ds)

	for _, s := range ds.Summary() {
		fmt.Printf("%-12s mean=%-10.3f std=%-10.3f min=%-10.3f max=%.3f\n", s.Name, s.Mean, s.Std, s.Min, s.Max)
	}

	plotLabelCounts(ds, *out+"_labels.png")
	plotFeatures(ds, *x, *y, *out+"_features.png")
}
