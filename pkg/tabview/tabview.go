// Package tabview provides the public API for building tabular views over
// record collections. It exposes the factory while keeping the engine
// internal.
//
// Example:
//
//	v, err := tabview.NewView(records, types.StandardColumns(types.DatasetHoldings),
//	    tabview.WithPageSize(25))
//	v.SetFacetFilter("sector", types.Only("Energy"))
//	v.ToggleSort("weight")
//	page := v.GetView()
package tabview

import (
	"github.com/mesh-intelligence/tabview/internal/view"
	"github.com/mesh-intelligence/tabview/pkg/types"
)

// Version is the module release version.
const Version = "0.3.0"

// Option configures a view created by NewView.
type Option = view.Option

// Re-exported view options.
var (
	WithPageSize = view.WithPageSize
	WithLocale   = view.WithLocale
	WithLogger   = view.WithLogger
)

// NewView creates a TableView over records using columns. It fails only on
// invalid configuration: empty or duplicate column keys, or a page size
// below one.
func NewView(records []types.Record, columns []types.ColumnSpec, opts ...Option) (types.TableView, error) {
	return view.New(records, columns, opts...)
}
