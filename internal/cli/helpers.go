// Shared helpers for tabview CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/tabview/internal/paths"
	"github.com/mesh-intelligence/tabview/internal/sqlite"
	"github.com/mesh-intelligence/tabview/pkg/types"
)

// dataDir resolves the data directory: --data-dir flag > config.yaml
// data_dir > TABVIEW_DATA_DIR env > platform data dir.
func (s *session) dataDir() (string, error) {
	return paths.ResolveDataDir(s.flags.dataDir, s.settings.DataDir)
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func (s *session) attachBackend() (*sqlite.Backend, error) {
	dataDir, err := s.dataDir()
	if err != nil {
		return nil, sysError("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(s.settings.storeConfig(dataDir)); err != nil {
		return nil, sysError("attach backend: %w", err)
	}
	return backend, nil
}

// openDataset returns the named dataset, or a user error listing the
// datasets that exist.
func openDataset(store types.Store, name string) (types.Dataset, error) {
	ds, err := store.GetDataset(name)
	if errors.Is(err, types.ErrDatasetNotFound) {
		names, _ := store.Datasets()
		return nil, userError("unknown dataset %q (available: %s)", name, strings.Join(names, ", "))
	}
	if err != nil {
		return nil, sysError("get dataset: %w", err)
	}
	return ds, nil
}

// parseValue interprets a command-line value as JSON when it parses,
// otherwise as a plain string. So "10" is a number and "Energy" a string.
func parseValue(raw string) any {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	return parsed
}

// parseFacet splits a key=value facet argument.
func parseFacet(arg string) (string, any, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid facet %q (expected key=value)", arg)
	}
	if value == "" {
		return "", nil, fmt.Errorf("invalid facet %q (missing value; omit the flag to select all values)", arg)
	}
	return key, parseValue(value), nil
}

// parseRecord decodes a JSON object argument into a record.
func parseRecord(payload string) (types.Record, error) {
	var rec types.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if rec == nil {
		return nil, errors.New("parse JSON: expected an object")
	}
	return rec, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
