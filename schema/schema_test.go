package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	data := []byte(`problem: classification
features:
  - X
  - Y
label: Type
index_column: true
`)
	s, err := Read(data)
	require.NoError(t, err)
	assert.Equal(t, Classification, s.Problem)
	assert.Equal(t, []string{"X", "Y"}, s.Features)
	assert.Equal(t, "Type", s.Label)
	assert.True(t, s.IndexColumn)
	assert.Equal(t, []string{"X", "Y", "Type"}, s.Columns())
}

func TestReadInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"unknown problem": "problem: clustering\nfeatures: [X]\nlabel: Y\n",
		"no features":     "problem: regression\nlabel: Y\n",
		"no label":        "problem: regression\nfeatures: [X]\n",
		"label in features": "problem: regression\nfeatures: [X, Y]\nlabel: Y\n",
	} {
		_, err := Read([]byte(data))
		assert.Error(t, err, name)
	}
}
