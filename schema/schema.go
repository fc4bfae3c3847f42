/*
Package schema provides methods to parse dataset metadata: which
columns of a data source are features, which one is the label, and
whether the dataset describes a classification or a regression
problem.
*/
package schema

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Problem is the kind of supervised problem a dataset describes.
type Problem string

const (
	// Classification labels are class identifiers, 0 or 1.
	Classification Problem = "classification"
	// Regression labels are arbitrary numeric values.
	Regression Problem = "regression"
)

/*
Schema describes the layout of a dataset: the kind of problem, the
names of the feature columns, the name of the label column, and
whether the data source carries a leading index column that should be
skipped when reading.
*/
type Schema struct {
	Problem     Problem  `yaml:"problem"`
	Features    []string `yaml:"features"`
	Label       string   `yaml:"label"`
	IndexColumn bool     `yaml:"index_column"`
	// Delimiter is the column separator of textual data sources.
	// The lab's generated files are space-separated, which is also
	// the default when no delimiter is declared.
	Delimiter string `yaml:"delimiter"`
}

/*
Read takes a slice of bytes with a schema specification in YAML and
returns the parsed schema or an error. The YAML is expected to be an
object with a problem property of value 'classification' or
'regression', a features property listing the feature column names, a
label property with the label column name, and an optional
index_column boolean property.
*/
func Read(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing yml schema: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

/*
ReadFromFile takes a filepath string, reads its contents and uses Read
to parse it and return the schema or an error. If the file cannot be
opened for reading an error is returned.
*/
func ReadFromFile(filepath string) (*Schema, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading schema yml file %s: %v", filepath, err)
	}
	s, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("parsing schema yml file %s: %v", filepath, err)
	}
	return s, nil
}

// Validate returns an error if the schema misses required properties
// or declares an unknown problem kind.
func (s *Schema) Validate() error {
	switch s.Problem {
	case Classification, Regression:
	default:
		return fmt.Errorf("invalid schema: unknown problem kind %q", s.Problem)
	}
	if len(s.Features) == 0 {
		return fmt.Errorf("invalid schema: no feature columns declared")
	}
	if s.Label == "" {
		return fmt.Errorf("invalid schema: no label column declared")
	}
	for _, f := range s.Features {
		if f == s.Label {
			return fmt.Errorf("invalid schema: column %q declared both as feature and label", f)
		}
	}
	return nil
}

// Columns returns the column names of the data source in reading
// order: the features followed by the label.
func (s *Schema) Columns() []string {
	return append(append([]string{}, s.Features...), s.Label)
}
