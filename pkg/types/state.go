package types

// DefaultPageSize is used when a view is created without a page size.
const DefaultPageSize = 10

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortSpec is the single active sort key. An empty Key leaves records in
// source order.
type SortSpec struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort key is set.
func (s SortSpec) Active() bool {
	return s.Key != ""
}

// FacetSelection is the selected value of one facet dropdown. The zero value
// is AllValues, which matches every record. It is a distinct marker, so a
// real facet value spelled "all" remains an ordinary selection.
type FacetSelection struct {
	value any
	only  bool
}

// AllValues selects every record, removing the facet predicate.
func AllValues() FacetSelection {
	return FacetSelection{}
}

// Only selects records whose facet field equals v.
func Only(v any) FacetSelection {
	return FacetSelection{value: v, only: true}
}

// IsAll reports whether the selection matches every record.
func (s FacetSelection) IsAll() bool {
	return !s.only
}

// Value returns the selected value and true, or nil and false for AllValues.
func (s FacetSelection) Value() (any, bool) {
	return s.value, s.only
}

// FilterState is the current search term and facet selections. Facets maps
// a facet (record field) name to the value records must carry.
type FilterState struct {
	SearchTerm string
	Facets     map[string]any
}

// Empty reports whether the filter matches every record.
func (f FilterState) Empty() bool {
	return f.SearchTerm == "" && len(f.Facets) == 0
}

// Page is a zero-based window over the filtered and sorted collection.
type Page struct {
	Index int
	Size  int
}

// State is the complete, externally owned view state. Transitions never
// modify a State in place; they return a new one.
type State struct {
	Filter FilterState
	Sort   SortSpec
	Page   Page
}

// NewState returns an empty state with the given page size. Sizes below one
// fall back to DefaultPageSize.
func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{Page: Page{Size: pageSize}}
}
