package data

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header describes the columns of a table. The last column is the target,
// every column before it is a feature.
type Header struct {
	Names []string
}

// TargetIndex is the position of the target column.
func (h Header) TargetIndex() int { return len(h.Names) - 1 }

// TargetName returns the name of the target column.
func (h Header) TargetName() string { return h.Names[h.TargetIndex()] }

// FeatureNames returns a copy of the feature column names.
func (h Header) FeatureNames() []string {
	out := make([]string, h.TargetIndex())
	copy(out, h.Names[:h.TargetIndex()])
	return out
}

func (h Header) validate() error {
	if len(h.Names) < 2 {
		return errors.Wrapf(ErrHeader, "got %d column(s)", len(h.Names))
	}
	return nil
}

// RawTable is a parsed CSV file: the header row plus the data rows as text.
// Every row has len(Header.Names) fields.
type RawTable struct {
	Header Header
	Rows   [][]string

	// input line of each row, when the table came from ReadTable
	lines []int
}

// line returns the 1-based input line of data row i.
func (t *RawTable) line(i int) int {
	if i < len(t.lines) {
		return t.lines[i]
	}
	return i + 2
}

// ReadTable parses comma separated text from r. A leading byte order mark
// is dropped. Rows whose field count differs from the header are rejected.
func ReadTable(r io.Reader) (*RawTable, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(dec)
	reader.TrimLeadingSpace = true

	head, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrHeader, "empty input")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	header := Header{Names: head}
	if err := header.validate(); err != nil {
		return nil, err
	}

	var (
		rows  [][]string
		lines []int
	)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, errors.Wrapf(ErrFieldCount, "line %d: got %d fields, header has %d", pe.Line, len(rec), len(head))
			}
			return nil, errors.Wrap(err, "read row")
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}

	return &RawTable{Header: header, Rows: rows, lines: lines}, nil
}
