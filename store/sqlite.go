// ABOUTME: SQLite-backed persister storing the document blob under one row of a kv table.
// ABOUTME: WAL mode; the blob stays the full JSON document so both backends round-trip identically.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// documentKey is the single well-known key the blob lives under.
const documentKey = "website_document"

// SqlitePersister stores the serialized document in a kv table of a SQLite
// database. The JSON shape is identical to the file backend's.
type SqlitePersister struct {
	db *sql.DB
}

// OpenSqlite opens or creates the database at the given path and ensures the
// schema exists.
func OpenSqlite(path string) (*SqlitePersister, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ'))
		);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SqlitePersister{db: db}, nil
}

// Load reads the blob row. ok=false when the row does not exist.
func (p *SqlitePersister) Load() ([]byte, bool, error) {
	var data []byte
	err := p.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, documentKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load document row: %w", err)
	}
	return data, true, nil
}

// Save upserts the blob row.
func (p *SqlitePersister) Save(data []byte) error {
	_, err := p.db.Exec(
		`INSERT INTO documents (key, value, updated_at)
		 VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ'))
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		documentKey, data,
	)
	if err != nil {
		return fmt.Errorf("upsert document row: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (p *SqlitePersister) Close() error {
	return p.db.Close()
}
