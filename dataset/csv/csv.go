/*
Package csv reads and writes dataset tables in the lab's delimited
text format: a header row naming the columns, optionally preceded by
an index column, followed by one row of numeric values per instance.
The generated data files are space-separated; the delimiter can be
overridden through the schema.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/schema"
)

/*
Read takes an io.Reader for a delimited text stream and a schema and
returns a dataset table with the rows parsed from the reader, or an
error.

The first row is expected to be a header containing the names of all
schema columns; column order is taken from the header, so the file may
order columns differently from the schema. Columns not declared in the
schema are ignored, as is the leading index column when the schema
declares one.
*/
func Read(reader io.Reader, s *schema.Schema) (*dataset.Table, error) {
	r := csv.NewReader(reader)
	r.Comma = delimiter(s)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featurePos, labelPos, err := columnPositions(header, s)
	if err != nil {
		return nil, err
	}
	t := &dataset.Table{FeatureNames: s.Features, LabelName: s.Label}
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		x := make([]float64, len(featurePos))
		for i, pos := range featurePos {
			x[i], err = parseValue(row, pos, line)
			if err != nil {
				return nil, err
			}
		}
		y, err := parseValue(row, labelPos, line)
		if err != nil {
			return nil, err
		}
		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
	}
	return t, nil
}

/*
ReadFromFilePath takes a filepath string and a schema, opens the file
the filepath points to and uses Read to return the dataset table
parsed from it or an error. An empty filepath reads os.Stdin instead.
*/
func ReadFromFilePath(filepath string, s *schema.Schema) (*dataset.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	t, err := Read(f, s)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset file %s: %v", filepath, err)
	}
	return t, nil
}

/*
Write takes an io.Writer, a dataset table and a schema and dumps the
table to the writer in the lab's delimited format: the header row
(with a leading Index column when the schema declares one) followed by
one row per instance. It returns an error if something goes wrong
writing to the writer.
*/
func Write(writer io.Writer, t *dataset.Table, s *schema.Schema) error {
	w := csv.NewWriter(writer)
	w.Comma = delimiter(s)
	header := []string{}
	if s.IndexColumn {
		header = append(header, "Index")
	}
	header = append(append(header, t.FeatureNames...), t.LabelName)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	for i, row := range t.X {
		record := []string{}
		if s.IndexColumn {
			record = append(record, strconv.Itoa(i))
		}
		for _, v := range row {
			record = append(record, formatValue(v))
		}
		record = append(record, formatValue(t.Y[i]))
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func delimiter(s *schema.Schema) rune {
	if s.Delimiter == "" {
		return ' '
	}
	return []rune(s.Delimiter)[0]
}

func columnPositions(header []string, s *schema.Schema) ([]int, int, error) {
	positions := make(map[string]int)
	for i, name := range header {
		positions[name] = i
	}
	featurePos := make([]int, len(s.Features))
	for i, name := range s.Features {
		pos, ok := positions[name]
		if !ok {
			return nil, 0, fmt.Errorf("parsing header: feature column %q not found", name)
		}
		featurePos[i] = pos
	}
	labelPos, ok := positions[s.Label]
	if !ok {
		return nil, 0, fmt.Errorf("parsing header: label column %q not found", s.Label)
	}
	return featurePos, labelPos, nil
}

func parseValue(row []string, pos, line int) (float64, error) {
	if pos >= len(row) {
		return 0, fmt.Errorf("parsing line %d: no column %d", line, pos)
	}
	v, err := strconv.ParseFloat(row[pos], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing line %d: converting %q to float64: %v", line, row[pos], err)
	}
	return v, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
