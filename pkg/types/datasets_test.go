package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinalComparator(t *testing.T) {
	cmp := OrdinalComparator(ESGRatings...)

	assert.Negative(t, cmp("CCC", "AAA"))
	assert.Positive(t, cmp("AA", "A"))
	assert.Zero(t, cmp("BBB", "BBB"))
	assert.Negative(t, cmp("unrated", "CCC"), "unknown values sort before listed ones")
	assert.Negative(t, cmp(nil, "unrated"), "nil sorts first")
	assert.Negative(t, cmp(3.0, "B"), "non-string values rank as unknown")
}

func TestStandardColumns(t *testing.T) {
	for _, name := range StandardDatasetNames {
		t.Run(name, func(t *testing.T) {
			cols := StandardColumns(name)
			require.NotEmpty(t, cols)

			seen := map[string]bool{}
			for _, c := range cols {
				assert.NotEmpty(t, c.Key)
				assert.False(t, seen[c.Key], "duplicate key %s", c.Key)
				seen[c.Key] = true
			}
		})
	}

	assert.Nil(t, StandardColumns("unknown"))

	cols := StandardColumns(DatasetHoldings)
	cols[0].Key = "mutated"
	assert.Equal(t, "name", StandardColumns(DatasetHoldings)[0].Key, "returned slice is a copy")
}

func TestColumnHeading(t *testing.T) {
	assert.Equal(t, "weight", ColumnSpec{Key: "weight"}.Heading())
	assert.Equal(t, "Weight %", ColumnSpec{Key: "weight", Label: "Weight %"}.Heading())
}
