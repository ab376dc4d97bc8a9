package view

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

var holdingColumns = []types.ColumnSpec{
	{Key: "name", Sortable: true, Searchable: true},
	{Key: "sector", Sortable: true, Searchable: true},
	{Key: "weight", Sortable: true, Aggregate: true},
	{Key: "note"},
}

func fiveHoldings() []types.Record {
	return []types.Record{
		{"id": 1, "name": "Alpha", "sector": "Energy", "weight": 10},
		{"id": 2, "name": "Beta", "sector": "Tech", "weight": 20},
		{"id": 3, "name": "Gamma", "sector": "Energy", "weight": 5},
		{"id": 4, "name": "Delta", "sector": "Tech", "weight": 15},
		{"id": 5, "name": "Epsilon", "sector": "Energy", "weight": 30},
	}
}

func ids(rows []types.Record) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r["id"]
	}
	return out
}

func newView(t *testing.T, records []types.Record, pageSize int) *View {
	t.Helper()
	v, err := New(records, holdingColumns, WithPageSize(pageSize))
	require.NoError(t, err)
	return v
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(nil, holdingColumns, WithPageSize(0))
	assert.ErrorIs(t, err, types.ErrInvalidPageSize)

	_, err = New(nil, []types.ColumnSpec{{Key: "a"}, {Key: "a"}})
	assert.ErrorIs(t, err, types.ErrDuplicateColumn)

	v, err := New(nil, holdingColumns, WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPageSize, v.State().Page.Size)
}

func TestEndToEndScenario(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)

	v.SetFacetFilter("sector", types.Only("Energy"))
	res := v.GetView()
	assert.Equal(t, 3, res.Summary.TotalCount)
	assert.Equal(t, 45.0, res.Summary.Sums["weight"])
	assert.Equal(t, 15.0, res.Summary.Averages["weight"])

	v.ToggleSort("weight")
	v.SetPage(0)
	assert.Equal(t, []any{3, 1}, ids(v.GetView().Rows))

	v.SetPage(1)
	assert.Equal(t, []any{5}, ids(v.GetView().Rows))

	v.SetPage(2)
	res = v.GetView()
	assert.Equal(t, []any{5}, ids(res.Rows), "out-of-range page clamps to the last page")
	assert.Equal(t, 1, res.PageInfo.Index)
	assert.Equal(t, 2, res.PageInfo.TotalPages)

	v.SetSearchTerm("delta")
	res = v.GetView()
	assert.Equal(t, 0, res.Summary.TotalCount)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 0, res.PageInfo.TotalPages)
	assert.Equal(t, 0, res.PageInfo.Index)
}

func TestGetViewIsDeterministic(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	v.SetFacetFilter("sector", types.Only("Tech"))
	v.ToggleSort("name")
	v.SetSearchTerm("e")

	first := v.GetView()
	second := v.GetView()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("GetView not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, []any{2, 4}, ids(first.Rows))
}

func TestFilterMonotonicity(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	baseline := v.GetView().Summary.TotalCount
	assert.Equal(t, 5, baseline)

	terms := []string{"a", "ALPHA", "tech", "zzz", "Energy"}
	for _, term := range terms {
		v.Reset()
		v.SetSearchTerm(term)
		assert.LessOrEqual(t, v.GetView().Summary.TotalCount, baseline, "search %q", term)

		v.SetFacetFilter("sector", types.Only("Energy"))
		withFacet := v.GetView().Summary.TotalCount
		v.SetFacetFilter("sector", types.AllValues())
		assert.LessOrEqual(t, withFacet, v.GetView().Summary.TotalCount, "facet added to search %q", term)
	}
}

func TestSortStability(t *testing.T) {
	sectors := []string{"Tech", "Energy", "Tech", "Utilities", "Energy", "Tech", "Energy", "Utilities"}
	records := make([]types.Record, len(sectors))
	for i, s := range sectors {
		records[i] = types.Record{"id": i, "name": fmt.Sprintf("h%d", i), "sector": s, "seq": i}
	}

	for _, toggles := range []int{1, 2} {
		t.Run(fmt.Sprintf("toggles=%d", toggles), func(t *testing.T) {
			v := newView(t, records, len(records))
			for range toggles {
				v.ToggleSort("sector")
			}
			rows := v.GetView().Rows
			require.Len(t, rows, len(records))

			for i := 1; i < len(rows); i++ {
				if rows[i]["sector"] != rows[i-1]["sector"] {
					continue
				}
				assert.Greater(t, rows[i]["seq"], rows[i-1]["seq"],
					"equal keys must keep source order")
			}
		})
	}
}

func TestSortToggleCycle(t *testing.T) {
	v := newView(t, fiveHoldings(), 5)

	v.ToggleSort("weight")
	asc := ids(v.GetView().Rows)
	assert.Equal(t, []any{3, 1, 4, 2, 5}, asc)

	v.ToggleSort("weight")
	desc := ids(v.GetView().Rows)
	assert.Equal(t, []any{5, 2, 4, 1, 3}, desc)

	v.ToggleSort("weight")
	assert.Equal(t, asc, ids(v.GetView().Rows))
	assert.Equal(t, types.Ascending, v.State().Sort.Direction)

	v.ToggleSort("weight")
	assert.Equal(t, desc, ids(v.GetView().Rows))

	v.ToggleSort("name")
	assert.Equal(t, types.SortSpec{Key: "name", Direction: types.Ascending}, v.State().Sort)
	assert.Equal(t, []any{1, 2, 4, 5, 3}, ids(v.GetView().Rows))
}

func TestToggleSortIgnoresUnsortableKeys(t *testing.T) {
	v := newView(t, fiveHoldings(), 5)
	v.ToggleSort("weight")

	v.ToggleSort("note")
	v.ToggleSort("unknown")
	assert.Equal(t, types.SortSpec{Key: "weight"}, v.State().Sort)
}

func TestNullsSortToAscendingStart(t *testing.T) {
	records := fiveHoldings()
	delete(records[1], "weight")
	records[3]["weight"] = nil

	v := newView(t, records, 5)
	v.ToggleSort("weight")
	assert.Equal(t, []any{2, 4, 3, 1, 5}, ids(v.GetView().Rows))

	v.ToggleSort("weight")
	assert.Equal(t, []any{5, 1, 3, 2, 4}, ids(v.GetView().Rows))
}

func TestMissingColumnDegradesGracefully(t *testing.T) {
	cols := []types.ColumnSpec{
		{Key: "name", Sortable: true},
		{Key: "ghost", Sortable: true, Searchable: true, Aggregate: true},
	}
	v, err := New(fiveHoldings(), cols, WithPageSize(5))
	require.NoError(t, err)

	v.ToggleSort("ghost")
	res := v.GetView()
	assert.Equal(t, []any{1, 2, 3, 4, 5}, ids(res.Rows), "all-null key keeps source order")
	assert.Equal(t, 0.0, res.Summary.Sums["ghost"])

	v.SetSearchTerm("alpha")
	assert.Empty(t, v.GetView().Rows)
}

func TestPaginationCoverage(t *testing.T) {
	records := make([]types.Record, 0, 11)
	for i := range 11 {
		records = append(records, types.Record{
			"id":     i,
			"name":   fmt.Sprintf("n%02d", (i*7)%11),
			"sector": []string{"Tech", "Energy"}[i%2],
			"weight": (i * 3) % 5,
		})
	}

	v := newView(t, records, 3)
	v.SetFacetFilter("sector", types.Only("Tech"))
	v.ToggleSort("weight")

	full, err := NewEngine(holdingColumns, language.English)
	require.NoError(t, err)
	all := v.State()
	all.Page = types.Page{Size: len(records)}
	want := full.Compute(records, all).Rows

	first := v.GetView()
	var got []types.Record
	for p := range first.PageInfo.TotalPages {
		v.SetPage(p)
		got = append(got, v.GetView().Rows...)
	}
	assert.Equal(t, ids(want), ids(got))
	assert.Len(t, got, first.PageInfo.TotalCount)
}

func TestPageClamp(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	require.Equal(t, 3, v.GetView().PageInfo.TotalPages)

	v.SetPage(0)
	zero := v.GetView()
	v.SetPage(-1)
	assert.Equal(t, zero, v.GetView())

	v.SetPage(2)
	last := v.GetView()
	v.SetPage(10_000)
	assert.Equal(t, last, v.GetView())
	assert.Equal(t, []any{5}, ids(last.Rows))
}

func TestStalePageClampsAfterFilterChange(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	v.SetPage(2)

	v.SetFacetFilter("sector", types.Only("Tech"))
	res := v.GetView()
	assert.Equal(t, 0, res.PageInfo.Index)
	assert.Equal(t, []any{2, 4}, ids(res.Rows))
}

func TestResetClearsFilters(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	v.SetSearchTerm("alpha")
	v.SetFacetFilter("sector", types.Only("Energy"))
	v.ToggleSort("weight")

	v.Reset()
	s := v.State()
	assert.True(t, s.Filter.Empty())
	assert.Equal(t, "weight", s.Sort.Key)
	assert.Equal(t, 5, v.GetView().Summary.TotalCount)
}

func TestStateReturnsCopy(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	v.SetFacetFilter("sector", types.Only("Energy"))

	s := v.State()
	s.Filter.Facets["sector"] = "Tech"
	assert.Equal(t, 3, v.GetView().Summary.TotalCount)
}

func TestViewFacets(t *testing.T) {
	v := newView(t, fiveHoldings(), 2)
	v.SetFacetFilter("sector", types.Only("Tech"))

	assert.Equal(t, []types.FacetCount{
		{Value: "Energy", Count: 3},
		{Value: "Tech", Count: 2},
	}, v.Facets("sector"), "facet options come from the whole source collection")
	assert.Len(t, v.Columns(), len(holdingColumns))
}

func TestLiteralAllFacetValue(t *testing.T) {
	records := fiveHoldings()
	records[0]["sector"] = "all"

	v := newView(t, records, 5)
	v.SetFacetFilter("sector", types.Only("all"))
	assert.Equal(t, []any{1}, ids(v.GetView().Rows))

	v.SetFacetFilter("sector", types.AllValues())
	assert.Len(t, v.GetView().Rows, 5)
}
