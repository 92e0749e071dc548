package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the catalog database schema.
const Schema = `
-- Parse records table
CREATE TABLE IF NOT EXISTS parse_records (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    path TEXT NOT NULL,
    size INTEGER NOT NULL,
    status TEXT NOT NULL,
    error TEXT,
    node_count INTEGER,
    tree_depth INTEGER,
    duration_us INTEGER NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_parse_records_run_id ON parse_records(run_id);
CREATE INDEX IF NOT EXISTS idx_parse_records_status ON parse_records(status);
CREATE INDEX IF NOT EXISTS idx_parse_records_recorded_at ON parse_records(recorded_at);

-- Schema version table
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// InsertSchemaVersion records the schema version, ignoring duplicates.
const InsertSchemaVersion = `INSERT OR IGNORE INTO schema_version (version) VALUES (?);`

// GetSchemaVersion returns the highest recorded schema version.
const GetSchemaVersion = `SELECT MAX(version) FROM schema_version;`
