package sqlite

import (
	"slices"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// inferColumns derives column specs for a dataset without declared columns.
// Every field seen becomes a sortable, searchable column, ordered by name
// with the id first. Fields with at least one numeric value and no other
// non-nil values also aggregate.
func inferColumns(records []types.Record) []types.ColumnSpec {
	seen := map[string]bool{}
	hasNumber := map[string]bool{}
	hasOther := map[string]bool{}
	for _, r := range records {
		for k, v := range r {
			seen[k] = true
			if v == nil {
				continue
			}
			if _, ok := types.ToFloat(v); ok {
				hasNumber[k] = true
			} else {
				hasOther[k] = true
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == types.FieldID:
			return -1
		case b == types.FieldID:
			return 1
		case a < b:
			return -1
		default:
			return 1
		}
	})

	cols := make([]types.ColumnSpec, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, types.ColumnSpec{
			Key:        k,
			Sortable:   true,
			Searchable: true,
			Aggregate:  hasNumber[k] && !hasOther[k] && k != types.FieldID,
		})
	}
	return cols
}
