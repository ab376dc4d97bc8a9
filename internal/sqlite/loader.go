// This file implements JSONL loading for startup.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// loadAllJSONL reads every dataset file in dataDir and inserts its records
// into SQLite. Loading is transactional: all files load or the database
// stays empty. Lines that are not JSON objects are skipped, as are records
// whose id repeats an earlier line. Records without an id get a generated
// one. Returns the names of the loaded datasets.
func loadAllJSONL(db *sql.DB, dataDir string, logger *zap.Logger) ([]string, error) {
	names, err := datasetFiles(dataDir)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	var loaded []string
	for _, name := range names {
		if !validName.MatchString(name) {
			logger.Warn("skipping dataset file with invalid name", zap.String("file", name+jsonlExt))
			continue
		}

		raw, skipped, err := readJSONL(datasetPath(dataDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO datasets (name, created_at) VALUES (?, ?)", name, now); err != nil {
			return nil, fmt.Errorf("registering dataset %s: %w", name, err)
		}

		n, rejected, err := insertRecords(tx, name, raw)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		skipped += rejected
		if skipped > 0 {
			logger.Warn("skipped malformed records",
				zap.String("dataset", name),
				zap.Int("skipped", skipped))
		}
		logger.Debug("loaded dataset", zap.String("dataset", name), zap.Int("records", n))
		loaded = append(loaded, name)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}

// insertRecords inserts parsed JSONL records in file order. Returns the
// number inserted and the number rejected.
func insertRecords(tx *sql.Tx, name string, raw []json.RawMessage) (int, int, error) {
	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO records (dataset, record_id, seq, body) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, 0, fmt.Errorf("preparing insert for %s: %w", name, err)
	}
	defer stmt.Close()

	inserted, rejected := 0, 0
	for _, line := range raw {
		var rec types.Record
		if err := json.Unmarshal(line, &rec); err != nil || rec == nil {
			rejected++
			continue
		}

		id := rec.ID()
		body := []byte(line)
		if id == "" {
			id = generateUUID()
			rec[types.FieldID] = id
			if body, err = json.Marshal(rec); err != nil {
				rejected++
				continue
			}
		}

		res, err := stmt.Exec(name, id, inserted, string(body))
		if err != nil {
			return inserted, rejected, fmt.Errorf("inserting %s/%s: %w", name, id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			rejected++
			continue
		}
		inserted++
	}
	return inserted, rejected, nil
}
