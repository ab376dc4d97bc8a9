// Package view implements the tabular data view: facet filtering, search,
// stable sorting, summaries and pagination over an in-memory collection.
package view

import (
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// options collects the settings applied by Option functions.
type options struct {
	pageSize int
	locale   language.Tag
	logger   *zap.Logger
}

// Option configures a View.
type Option func(*options)

// WithPageSize sets the number of rows per page. It must be positive.
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

// WithLocale sets the collation locale for string ordering.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// View is the stateful TableView over one record collection. All methods
// are safe for concurrent use.
type View struct {
	mu      sync.Mutex
	records []types.Record
	engine  *Engine
	state   types.State
	logger  *zap.Logger
}

var _ types.TableView = (*View)(nil)

// New creates a View over records. The slice is copied; the records
// themselves are shared and never modified.
func New(records []types.Record, columns []types.ColumnSpec, opts ...Option) (*View, error) {
	o := options{
		pageSize: types.DefaultPageSize,
		locale:   language.Make(types.DefaultLocale),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pageSize < 1 {
		return nil, types.ErrInvalidPageSize
	}

	engine, err := NewEngine(columns, o.locale)
	if err != nil {
		return nil, err
	}

	return &View{
		records: slices.Clone(records),
		engine:  engine,
		state:   types.NewState(o.pageSize),
		logger:  o.logger,
	}, nil
}

// SetSearchTerm implements types.TableView.
func (v *View) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = WithSearchTerm(v.state, term)
}

// SetFacetFilter implements types.TableView.
func (v *View) SetFacetFilter(facet string, sel types.FacetSelection) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = WithFacet(v.state, facet, sel)
}

// ToggleSort implements types.TableView. Keys that are not sortable columns
// are ignored.
func (v *View) ToggleSort(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if c, ok := v.engine.Column(key); !ok || !c.Sortable {
		v.logger.Debug("ignoring sort toggle", zap.String("key", key))
		return
	}
	v.state = WithSortToggle(v.state, key)
}

// SetPage implements types.TableView.
func (v *View) SetPage(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	count := len(v.engine.Filter(v.records, v.state.Filter))
	v.state = WithPage(v.state, index, count)
	if v.state.Page.Index != index {
		v.logger.Debug("page clamped",
			zap.Int("requested", index),
			zap.Int("page", v.state.Page.Index))
	}
}

// Reset implements types.TableView.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = Reset(v.state)
}

// State implements types.TableView.
func (v *View) State() types.State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	if s.Filter.Facets != nil {
		facets := make(map[string]any, len(s.Filter.Facets))
		for k, val := range s.Filter.Facets {
			facets[k] = val
		}
		s.Filter.Facets = facets
	}
	return s
}

// Columns returns the view's column specs.
func (v *View) Columns() []types.ColumnSpec {
	return v.engine.Columns()
}

// Facets implements types.TableView.
func (v *View) Facets(facet string) []types.FacetCount {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.engine.Facets(v.records, facet)
}

// GetView implements types.TableView.
func (v *View) GetView() types.ViewResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.engine.Compute(v.records, v.state)
}
