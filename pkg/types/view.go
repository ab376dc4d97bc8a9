package types

import "errors"

// Summary holds aggregates over the filtered, pre-pagination collection.
// Sums and Averages are keyed by the columns marked Aggregate.
type Summary struct {
	TotalCount int                `json:"total_count"`
	Sums       map[string]float64 `json:"sums"`
	Averages   map[string]float64 `json:"averages"`
}

// PageInfo describes the page window returned by GetView.
type PageInfo struct {
	Index      int `json:"index"`
	Size       int `json:"size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

// ViewResult is everything a renderer needs for one table.
type ViewResult struct {
	Rows     []Record `json:"rows"`
	Summary  Summary  `json:"summary"`
	PageInfo PageInfo `json:"page"`
}

// FacetCount is one distinct facet value and the number of source records
// carrying it.
type FacetCount struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

// TableView computes the filtered, sorted and paginated view of a record
// collection. State transitions never fail; out-of-range input is clamped
// and unknown keys degrade to no-ops.
type TableView interface {
	// SetSearchTerm replaces the search term. The empty term matches all
	// records.
	SetSearchTerm(term string)

	// SetFacetFilter sets or, for AllValues, removes the predicate for a
	// facet.
	SetFacetFilter(facet string, sel FacetSelection)

	// ToggleSort flips the direction when key is the active sort key and
	// otherwise sorts ascending by key.
	ToggleSort(key string)

	// SetPage moves to the page at index, clamped to the valid range.
	SetPage(index int)

	// Reset clears the search term and all facet selections.
	Reset()

	// State returns a copy of the current state.
	State() State

	// Facets lists the distinct values of a facet in the source collection.
	Facets(facet string) []FacetCount

	// GetView computes the current view. It has no side effects; two calls
	// without an intervening transition return equal results.
	GetView() ViewResult
}

// View construction errors.
var (
	ErrEmptyColumnKey  = errors.New("column key must not be empty")
	ErrDuplicateColumn = errors.New("column key duplicated")
	ErrInvalidPageSize = errors.New("page size must be positive")
)
