package view

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// Engine computes views of a record collection for a fixed set of columns.
// It holds no view state. An Engine is not safe for concurrent use because
// the collator keeps scratch buffers.
type Engine struct {
	columns    []types.ColumnSpec
	byKey      map[string]types.ColumnSpec
	searchable []string
	aggregate  []string
	coll       *collate.Collator
}

// NewEngine validates the columns and builds an Engine that collates strings
// for the given locale.
func NewEngine(columns []types.ColumnSpec, locale language.Tag) (*Engine, error) {
	e := &Engine{
		columns: slices.Clone(columns),
		byKey:   make(map[string]types.ColumnSpec, len(columns)),
		coll:    collate.New(locale),
	}
	for _, c := range columns {
		if c.Key == "" {
			return nil, types.ErrEmptyColumnKey
		}
		if _, ok := e.byKey[c.Key]; ok {
			return nil, fmt.Errorf("%w: %s", types.ErrDuplicateColumn, c.Key)
		}
		e.byKey[c.Key] = c
		if c.Searchable {
			e.searchable = append(e.searchable, c.Key)
		}
		if c.Aggregate {
			e.aggregate = append(e.aggregate, c.Key)
		}
	}
	return e, nil
}

// Columns returns a copy of the engine's columns.
func (e *Engine) Columns() []types.ColumnSpec {
	return slices.Clone(e.columns)
}

// Column returns the column spec for key.
func (e *Engine) Column(key string) (types.ColumnSpec, bool) {
	c, ok := e.byKey[key]
	return c, ok
}

// Filter returns the records matching every facet predicate and, when a
// search term is set, matching it in at least one searchable column. Source
// order is preserved.
func (e *Engine) Filter(records []types.Record, f types.FilterState) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if matchFacets(r, f.Facets) {
			out = append(out, r)
		}
	}
	if f.SearchTerm == "" {
		return out
	}

	fold := cases.Fold()
	term := fold.String(f.SearchTerm)
	matched := out[:0]
	for _, r := range out {
		if e.matchSearch(r, fold, term) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Sort stable-sorts records in place by spec. Records with equal keys keep
// their relative order.
func (e *Engine) Sort(records []types.Record, spec types.SortSpec) {
	if !spec.Active() {
		return
	}
	custom := e.byKey[spec.Key].Compare
	slices.SortStableFunc(records, func(a, b types.Record) int {
		c := compareValues(e.coll, custom, a[spec.Key], b[spec.Key])
		if spec.Direction == types.Descending {
			return -c
		}
		return c
	})
}

// Summarize computes the count, sums and averages of records.
func (e *Engine) Summarize(records []types.Record) types.Summary {
	s := types.Summary{
		TotalCount: len(records),
		Sums:       make(map[string]float64, len(e.aggregate)),
		Averages:   make(map[string]float64, len(e.aggregate)),
	}
	for _, key := range e.aggregate {
		var sum float64
		var n int
		for _, r := range records {
			if f, ok := types.ToFloat(r[key]); ok {
				sum += f
				n++
			}
		}
		s.Sums[key] = sum
		if n > 0 {
			s.Averages[key] = sum / float64(n)
		} else {
			s.Averages[key] = 0
		}
	}
	return s
}

// Compute runs the full pipeline: facet filter, search, stable sort,
// summary over the filtered set, then the page window. records is never
// modified.
func (e *Engine) Compute(records []types.Record, s types.State) types.ViewResult {
	filtered := e.Filter(records, s.Filter)
	e.Sort(filtered, s.Sort)
	summary := e.Summarize(filtered)

	size := s.Page.Size
	if size < 1 {
		size = types.DefaultPageSize
	}
	index := ClampPage(s.Page.Index, len(filtered), size)
	start := min(index*size, len(filtered))
	end := min(start+size, len(filtered))

	rows := make([]types.Record, end-start)
	copy(rows, filtered[start:end])

	return types.ViewResult{
		Rows:    rows,
		Summary: summary,
		PageInfo: types.PageInfo{
			Index:      index,
			Size:       size,
			TotalPages: TotalPages(len(filtered), size),
			TotalCount: len(filtered),
		},
	}
}

// Facets counts the distinct values of facet across records in first-seen
// order.
func (e *Engine) Facets(records []types.Record, facet string) []types.FacetCount {
	var out []types.FacetCount
	index := map[string]int{}
	for _, r := range records {
		v := r[facet]
		k := facetKey(v)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, types.FacetCount{Value: v, Count: 1})
	}
	return out
}

func (e *Engine) matchSearch(r types.Record, fold cases.Caser, term string) bool {
	for _, key := range e.searchable {
		v := r[key]
		if v == nil {
			continue
		}
		if strings.Contains(fold.String(types.FormatValue(v)), term) {
			return true
		}
	}
	return false
}

func matchFacets(r types.Record, facets map[string]any) bool {
	for k, want := range facets {
		if !valuesEqual(r[k], want) {
			return false
		}
	}
	return true
}

// facetKey groups values the way valuesEqual compares them.
func facetKey(v any) string {
	if v == nil {
		return "\x00nil"
	}
	return "v:" + types.FormatValue(v)
}
