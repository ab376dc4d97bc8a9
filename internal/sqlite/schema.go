// This file holds the schema DDL executed on Attach.
package sqlite

// Schema DDL. Record bodies are kept as JSON text; seq preserves the source
// (insertion) order that views rely on for stable sorting.
const (
	createDatasets = `CREATE TABLE datasets (
    name TEXT PRIMARY KEY,
    created_at TEXT NOT NULL
);`

	createRecords = `CREATE TABLE records (
    dataset TEXT NOT NULL,
    record_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    body TEXT NOT NULL,
    PRIMARY KEY (dataset, record_id),
    FOREIGN KEY (dataset) REFERENCES datasets(name)
);`

	createRecordsSeqIndex = `CREATE INDEX idx_records_seq ON records (dataset, seq);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createDatasets,
	createRecords,
	createRecordsSeqIndex,
}
