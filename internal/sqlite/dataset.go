package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// dataset implements types.Dataset for one named record collection.
type dataset struct {
	name    string
	backend *Backend
}

func newDataset(b *Backend, name string) *dataset {
	return &dataset{name: name, backend: b}
}

// Name implements types.Dataset.
func (d *dataset) Name() string {
	return d.name
}

// Columns returns the declared columns of a standard dataset, or columns
// inferred from the stored records otherwise.
func (d *dataset) Columns() []types.ColumnSpec {
	if cols := types.StandardColumns(d.name); cols != nil {
		return cols
	}
	records, err := d.Fetch(nil)
	if err != nil {
		d.backend.logger.Warn("inferring columns", zap.String("dataset", d.name), zap.Error(err))
		return nil
	}
	return inferColumns(records)
}

// Get retrieves a record by id.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (d *dataset) Get(id string) (types.Record, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	d.backend.mu.RLock()
	defer d.backend.mu.RUnlock()

	if !d.backend.attached {
		return nil, types.ErrStoreDetached
	}

	var body string
	err := d.backend.db.QueryRow(
		"SELECT body FROM records WHERE dataset = ? AND record_id = ?", d.name, id,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s/%s: %w", d.name, id, err)
	}
	return decodeRecord(body)
}

// Set creates or replaces a record and persists the dataset file. An
// existing record keeps its position in source order.
func (d *dataset) Set(id string, rec types.Record) (string, error) {
	if rec == nil {
		return "", types.ErrInvalidData
	}
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()

	if !d.backend.attached {
		return "", types.ErrStoreDetached
	}

	if id == "" {
		id = rec.ID()
	}
	if id == "" {
		id = generateUUID()
	}
	rec = rec.Clone()
	if rec.ID() != id {
		rec[types.FieldID] = id
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}

	res, err := d.backend.db.Exec(
		"UPDATE records SET body = ? WHERE dataset = ? AND record_id = ?",
		string(body), d.name, id)
	if err != nil {
		return "", fmt.Errorf("updating %s/%s: %w", d.name, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = d.backend.db.Exec(
			`INSERT INTO records (dataset, record_id, seq, body)
			 VALUES (?, ?, (SELECT COALESCE(MAX(seq), -1) + 1 FROM records WHERE dataset = ?), ?)`,
			d.name, id, d.name, string(body))
		if err != nil {
			return "", fmt.Errorf("inserting %s/%s: %w", d.name, id, err)
		}
	}

	if err := d.persistLocked(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a record and persists the dataset file.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (d *dataset) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()

	if !d.backend.attached {
		return types.ErrStoreDetached
	}

	res, err := d.backend.db.Exec(
		"DELETE FROM records WHERE dataset = ? AND record_id = ?", d.name, id)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", d.name, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	return d.persistLocked()
}

// Fetch returns records whose fields equal every filter value, in source
// order. Matching is type-strict: the string "10" does not match the
// number 10, and true does not match 1. A nil filter value matches missing
// and null fields.
func (d *dataset) Fetch(filter map[string]any) ([]types.Record, error) {
	d.backend.mu.RLock()
	defer d.backend.mu.RUnlock()

	if !d.backend.attached {
		return nil, types.ErrStoreDetached
	}

	query := "SELECT body FROM records WHERE dataset = ?"
	args := []any{d.name}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		if k != types.FilterLimit && k != types.FilterOffset {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		path := jsonPath(k)
		switch v := filter[k].(type) {
		case nil:
			query += " AND json_extract(body, ?) IS NULL"
			args = append(args, path)
		case string:
			query += " AND json_type(body, ?) = 'text' AND json_extract(body, ?) = ?"
			args = append(args, path, path, v)
		case bool:
			// JSON booleans extract as 0 and 1, so match on the JSON type.
			query += " AND json_type(body, ?) = ?"
			args = append(args, path, strconv.FormatBool(v))
		default:
			f, ok := types.ToFloat(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, k)
			}
			query += " AND json_type(body, ?) IN ('integer', 'real') AND json_extract(body, ?) = ?"
			args = append(args, path, path, f)
		}
	}
	query += " ORDER BY seq"

	limit, offset := -1, 0
	if v, ok := filter[types.FilterLimit]; ok {
		l, ok := toInt(v)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		if l > 0 {
			limit = l
		}
	}
	if v, ok := filter[types.FilterOffset]; ok {
		o, ok := toInt(v)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		if o > 0 {
			offset = o
		}
	}
	if limit > 0 || offset > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	}

	rows, err := d.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", d.name, err)
	}
	defer rows.Close()

	results := []types.Record{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", d.name, err)
		}
		rec, err := decodeRecord(body)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// persistLocked writes all records of the dataset to its JSONL file in
// source order. The caller must hold the backend write lock.
func (d *dataset) persistLocked() error {
	rows, err := d.backend.db.Query(
		"SELECT body FROM records WHERE dataset = ? ORDER BY seq", d.name)
	if err != nil {
		return fmt.Errorf("reading %s for persist: %w", d.name, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return fmt.Errorf("scanning %s for persist: %w", d.name, err)
		}
		records = append(records, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := writeJSONL(datasetPath(d.backend.dataDir, d.name), records); err != nil {
		return fmt.Errorf("persisting %s: %w", d.name, err)
	}
	d.backend.logger.Debug("persisted dataset",
		zap.String("dataset", d.name),
		zap.Int("records", len(records)))
	return nil
}

// decodeRecord parses a stored record body.
func decodeRecord(body string) (types.Record, error) {
	var rec types.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}

// jsonPath builds a SQLite JSON path selecting a top-level key.
func jsonPath(key string) string {
	return `$."` + strings.ReplaceAll(key, `"`, `\"`) + `"`
}

// toInt converts various numeric types to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
