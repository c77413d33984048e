package data

import (
	"bufio"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

var errNotInteger = errors.New("target is not a finite integer-range value")

type options struct {
	rows, features int
	logger         *zap.Logger
}

// Option configures Load and Build.
type Option func(*options)

// WithExpectedShape makes the load fail with ErrShape unless the table has
// exactly rows data rows and features feature columns. Zero leaves that
// dimension to be derived from the input.
func WithExpectedShape(rows, features int) Option {
	return func(o *options) {
		o.rows = rows
		o.features = features
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads the CSV file at path and converts it into a Dataset.
// The last column is the target; it is truncated toward zero to an int.
func Load(path string, opts ...Option) (*Dataset, error) {
	o := newOptions(opts)

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer file.Close()

	table, err := ReadTable(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	o.logger.Debug("table parsed",
		zap.String("path", path),
		zap.Int("columns", len(table.Header.Names)),
		zap.Int("rows", len(table.Rows)))

	ds, err := build(table, o)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", path)
	}
	return ds, nil
}

// Build converts a parsed table into a Dataset.
func Build(table *RawTable, opts ...Option) (*Dataset, error) {
	return build(table, newOptions(opts))
}

func build(table *RawTable, o *options) (*Dataset, error) {
	if err := table.Header.validate(); err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, ErrNoRows
	}

	width := len(table.Header.Names)
	target := table.Header.TargetIndex()

	flat := make([]float64, 0, len(table.Rows)*target)
	labels := make([]int, 0, len(table.Rows))
	values := make([]float64, width)

	for i, row := range table.Rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrFieldCount, "line %d: got %d fields, header has %d", table.line(i), len(row), width)
		}
		for j, s := range row {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &ParseError{Line: table.line(i), Column: j, Name: table.Header.Names[j], Value: s, Err: err}
			}
			values[j] = v
		}

		label, ok := truncate(values[target])
		if !ok {
			return nil, &ParseError{Line: table.line(i), Column: target, Name: table.Header.TargetName(), Value: row[target], Err: errNotInteger}
		}
		flat = append(flat, values[:target]...)
		labels = append(labels, label)
	}

	rows := len(labels)
	if len(flat) != rows*target {
		return nil, errors.Wrapf(ErrShape, "%d values cannot be reshaped to (%d, %d)", len(flat), rows, target)
	}
	if (o.rows > 0 && o.rows != rows) || (o.features > 0 && o.features != target) {
		return nil, errors.Wrapf(ErrShape, "got (%d, %d), expected (%d, %d)", rows, target, o.rows, o.features)
	}

	ds := &Dataset{
		records: mat.NewDense(rows, target, flat),
		targets: labels,
		names:   table.Header.FeatureNames(),
	}
	o.logger.Debug("dataset built",
		zap.Int("samples", rows),
		zap.Int("features", target),
		zap.String("target", table.Header.TargetName()))
	return ds, nil
}

// truncate converts v to an int by dropping the fraction.
func truncate(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	t := math.Trunc(v)
	if t < math.MinInt || t >= math.MaxInt {
		return 0, false
	}
	return int(t), true
}
