package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ds := range All {
		assert.False(t, seen[ds.Name], "duplicate dataset %s", ds.Name)
		seen[ds.Name] = true

		assert.NotEmpty(t, ds.Separator, ds.Name)
		assert.GreaterOrEqual(t, ds.Skip, 0, ds.Name)
	}
	assert.Len(t, All, 42)
}

func TestSelect(t *testing.T) {
	all, err := Select()
	require.NoError(t, err)
	assert.Equal(t, All, all)

	picked, err := Select("HU_edges", "com-amazon.ungraph")
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, ",", picked[0].Separator)
	assert.Equal(t, 1, picked[0].Skip)
	assert.Equal(t, "\t", picked[1].Separator)
	assert.Equal(t, 4, picked[1].Skip)

	_, err = Select("nope")
	assert.Error(t, err)
}
