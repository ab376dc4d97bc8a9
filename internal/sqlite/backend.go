// Package sqlite implements the dataset store using SQLite as the query
// engine and JSONL files as the source of truth. Each <name>.jsonl file in
// the data directory is one dataset, one JSON object per line.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// dbFileName is the SQLite database created inside DataDir. It is rebuilt
// from the JSONL files on every Attach.
const dbFileName = "tabview.db"

// validName restricts dataset names to safe file stems.
var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Backend implements types.Store.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
	datasets map[string]*dataset
	logger   *zap.Logger
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance that logs through the
// global zap logger. The backend is not attached; call Attach with a Config
// to initialize.
func NewBackend() *Backend {
	return &Backend{
		datasets: make(map[string]*dataset),
		logger:   zap.L().Named("sqlite"),
	}
}

// Attach initializes the backend with the given configuration. It creates
// DataDir if needed, recreates the SQLite database, and loads every JSONL
// dataset file.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The database is a cache of the JSONL files; start from scratch.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	names, err := loadAllJSONL(db, dataDir, b.logger)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.attached = true
	for _, name := range names {
		b.datasets[name] = newDataset(b, name)
	}

	b.logger.Debug("attached",
		zap.String("data_dir", dataDir),
		zap.Int("datasets", len(names)))
	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.datasets = make(map[string]*dataset)

	b.logger.Debug("detached", zap.String("data_dir", b.dataDir))
	return nil
}

// Config returns the configuration the backend was attached with.
func (b *Backend) Config() types.Config {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config
}

// Datasets returns the names of all datasets, sorted.
func (b *Backend) Datasets() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	names := make([]string, 0, len(b.datasets))
	for name := range b.datasets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// GetDataset returns the named dataset.
// Returns ErrDatasetNotFound if it does not exist and ErrStoreDetached if the
// backend is not attached.
func (b *Backend) GetDataset(name string) (types.Dataset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	ds, ok := b.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrDatasetNotFound, name)
	}
	return ds, nil
}

// CreateDataset registers an empty dataset and writes its empty JSONL file.
// Creating an existing dataset returns it unchanged.
func (b *Backend) CreateDataset(name string) (types.Dataset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	ds, err := b.createDatasetLocked(name)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// createDatasetLocked registers a dataset. The caller must hold b.mu.
func (b *Backend) createDatasetLocked(name string) (*dataset, error) {
	if ds, ok := b.datasets[name]; ok {
		return ds, nil
	}
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidName, name)
	}
	if _, err := b.db.Exec(
		"INSERT INTO datasets (name, created_at) VALUES (?, ?)",
		name, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return nil, fmt.Errorf("creating dataset %s: %w", name, err)
	}

	ds := newDataset(b, name)
	if err := ds.persistLocked(); err != nil {
		return nil, err
	}
	b.datasets[name] = ds
	return ds, nil
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
