// Package sqlite provides the public API for the SQLite dataset store.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/tabview/internal/sqlite"
	"github.com/mesh-intelligence/tabview/pkg/types"
)

// Store is a dataset store that can also seed the standard datasets.
type Store interface {
	types.Store
	types.Seeder
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".tabview-db",
//	})
//	defer store.Detach()
//	holdings, err := store.GetDataset(types.DatasetHoldings)
func NewBackend() Store {
	return sqlite.NewBackend()
}
