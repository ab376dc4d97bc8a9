package view

import "github.com/mesh-intelligence/tabview/pkg/types"

// State transitions. Each takes a State by value and returns the next one;
// none of them modifies the input, including its Facets map.

// WithSearchTerm replaces the search term. Sorting is not affected.
func WithSearchTerm(s types.State, term string) types.State {
	s.Filter.SearchTerm = term
	return s
}

// WithFacet sets the predicate for facet, or removes it when sel is
// AllValues.
func WithFacet(s types.State, facet string, sel types.FacetSelection) types.State {
	facets := make(map[string]any, len(s.Filter.Facets)+1)
	for k, v := range s.Filter.Facets {
		facets[k] = v
	}
	if v, ok := sel.Value(); ok {
		facets[facet] = v
	} else {
		delete(facets, facet)
	}
	if len(facets) == 0 {
		facets = nil
	}
	s.Filter.Facets = facets
	return s
}

// WithSortToggle flips the direction when key is already the sort key and
// otherwise sorts ascending by key. An empty key leaves s unchanged.
func WithSortToggle(s types.State, key string) types.State {
	if key == "" {
		return s
	}
	if s.Sort.Key == key {
		s.Sort.Direction = s.Sort.Direction.Flip()
		return s
	}
	s.Sort = types.SortSpec{Key: key, Direction: types.Ascending}
	return s
}

// WithPage moves to index, clamped against a filtered collection of
// filteredCount records.
func WithPage(s types.State, index, filteredCount int) types.State {
	s.Page.Index = ClampPage(index, filteredCount, s.Page.Size)
	return s
}

// Reset clears the filter and returns to the first page. The sort key and
// page size survive.
func Reset(s types.State) types.State {
	s.Filter = types.FilterState{}
	s.Page.Index = 0
	return s
}

// TotalPages returns the number of pages needed for count records.
func TotalPages(count, size int) int {
	if size < 1 {
		size = types.DefaultPageSize
	}
	if count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage clamps index into [0, TotalPages-1], or 0 when count is zero.
func ClampPage(index, count, size int) int {
	last := TotalPages(count, size) - 1
	if index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	return index
}
