package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionFlip(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Flip())
	assert.Equal(t, Ascending, Descending.Flip())
	assert.Equal(t, "asc", Ascending.String())
	assert.Equal(t, "desc", Descending.String())
}

func TestFacetSelection(t *testing.T) {
	tests := []struct {
		name    string
		sel     FacetSelection
		wantAll bool
		wantVal any
	}{
		{name: "zero value is all", sel: FacetSelection{}, wantAll: true},
		{name: "AllValues", sel: AllValues(), wantAll: true},
		{name: "Only string", sel: Only("Energy"), wantVal: "Energy"},
		{name: "literal all is a value", sel: Only("all"), wantVal: "all"},
		{name: "Only nil selects missing values", sel: Only(nil), wantVal: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAll, tt.sel.IsAll())
			v, ok := tt.sel.Value()
			assert.Equal(t, !tt.wantAll, ok)
			assert.Equal(t, tt.wantVal, v)
		})
	}
}

func TestNewState(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, DefaultPageSize, s.Page.Size)
	assert.Equal(t, 0, s.Page.Index)
	assert.False(t, s.Sort.Active())
	assert.True(t, s.Filter.Empty())

	s = NewState(4)
	assert.Equal(t, 4, s.Page.Size)
}

func TestFilterStateEmpty(t *testing.T) {
	assert.True(t, FilterState{}.Empty())
	assert.True(t, FilterState{Facets: map[string]any{}}.Empty())
	assert.False(t, FilterState{SearchTerm: "x"}.Empty())
	assert.False(t, FilterState{Facets: map[string]any{"sector": "Tech"}}.Empty())
}
