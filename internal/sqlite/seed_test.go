// Unit tests for seeding the standard datasets.
package sqlite

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

func TestSeed(t *testing.T) {
	b := setupBackend(t)

	created, err := b.Seed()
	require.NoError(t, err)
	assert.Equal(t, types.StandardDatasetNames, created)

	for _, name := range types.StandardDatasetNames {
		ds, err := b.GetDataset(name)
		require.NoError(t, err, name)
		records, err := ds.Fetch(nil)
		require.NoError(t, err)
		assert.Len(t, records, len(seedData[name]), name)
		assert.Equal(t, seedData[name][0].ID(), records[0].ID(), "seed order kept for %s", name)

		_, err = os.Stat(datasetPath(b.Config().DataDir, name))
		assert.NoError(t, err, "seed file for %s", name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Seed()
	require.NoError(t, err)

	ds, err := b.GetDataset(types.DatasetHoldings)
	require.NoError(t, err)
	require.NoError(t, ds.Delete("h01"))

	created, err := b.Seed()
	require.NoError(t, err)
	assert.Empty(t, created)

	_, err = ds.Get("h01")
	assert.ErrorIs(t, err, types.ErrNotFound, "existing dataset must not be reseeded")
}

func TestSeedRecordsMatchColumns(t *testing.T) {
	for _, name := range types.StandardDatasetNames {
		cols := types.StandardColumns(name)
		require.NotEmpty(t, cols, name)
		for _, rec := range seedData[name] {
			for _, c := range cols {
				_, ok := rec[c.Key]
				assert.True(t, ok, "%s record %s lacks column %s", name, rec.ID(), c.Key)
			}
		}
	}
}

func TestSeedSurvivesReattach(t *testing.T) {
	dataDir := t.TempDir()
	b := attachAt(t, dataDir)
	_, err := b.Seed()
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	b2 := attachAt(t, dataDir)
	names, err := b2.Datasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"companies", "holdings", "reports"}, names)

	ds, err := b2.GetDataset(types.DatasetCompanies)
	require.NoError(t, err)
	rec, err := ds.Get("c03")
	require.NoError(t, err)
	assert.Equal(t, "Shell", rec["name"])
	assert.Equal(t, float64(41), rec["esg_score"])
}
