package types

import "errors"

// Dataset provides uniform CRUD operations over one named record collection.
// Records come back in source (insertion) order.
type Dataset interface {
	// Name returns the dataset name (the JSONL file stem).
	Name() string

	// Columns returns the column specs used to view this dataset.
	Columns() []ColumnSpec

	// Get retrieves the record with the given id.
	// Returns ErrNotFound if no record exists with that id.
	Get(id string) (Record, error)

	// Set creates or replaces a record. When id is empty the record's own id
	// field is used, and when that is empty too a new UUID v7 is generated.
	// Returns the id used.
	Set(id string, rec Record) (string, error)

	// Delete removes the record with the given id.
	// Returns ErrNotFound if no record exists with that id.
	Delete(id string) error

	// Fetch returns all records whose fields equal the filter values. An
	// empty filter returns every record. The reserved keys "limit" and
	// "offset" window the result.
	Fetch(filter map[string]any) ([]Record, error)
}

// Store gives access to the datasets kept in a data directory.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Datasets returns the names of all known datasets, sorted.
	Datasets() ([]string, error)

	// GetDataset returns the named dataset or ErrDatasetNotFound.
	GetDataset(name string) (Dataset, error)

	// CreateDataset registers an empty dataset. Creating an existing
	// dataset returns it unchanged.
	CreateDataset(name string) (Dataset, error)
}

// Seeder is implemented by stores that can create the standard datasets
// with sample records.
type Seeder interface {
	// Seed creates each missing standard dataset and returns the names
	// it created.
	Seed() ([]string, error)
}

// Filter keys with special meaning to Dataset.Fetch.
const (
	FilterLimit  = "limit"
	FilterOffset = "offset"
)

// Dataset operation errors.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record ID")
	ErrInvalidData     = errors.New("invalid record data")
	ErrInvalidFilter   = errors.New("invalid filter value type")
	ErrInvalidName     = errors.New("invalid dataset name")
	ErrDatasetNotFound = errors.New("dataset not found")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
