package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/captainfanatic/trolly/internal/core/ports/driven"
	"github.com/captainfanatic/trolly/internal/logger"
)

const (
	dbFileName = "trolly.db"

	// schemaVersion is stored in PRAGMA user_version. A mismatch on
	// open drops and recreates the table; the list is a local cache
	// with no durability promise.
	schemaVersion = 2

	tableName = "shopping_list"
)

// createTableSQL lays out the five allow-listed columns.
const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY,
		item TEXT,
		status INTEGER,
		created_at INTEGER,
		modified_at INTEGER
	)
`

// Store owns the SQLite database holding the shopping list.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database in dataDir.
// If dataDir is empty, defaults to ~/.trolly/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".trolly", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Items returns the ItemStore interface backed by this store.
func (s *Store) Items() driven.ItemStore {
	return &itemStore{store: s}
}

// initSchema ensures the table exists at the current schema version.
// Any other recorded version triggers the destructive upgrade: drop
// the table and rebuild it empty.
func (s *Store) initSchema() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading user_version: %w", err)
	}

	if version != 0 && version != schemaVersion {
		logger.Warn("upgrading database from version %d to %d, which will destroy all old data", version, schemaVersion)
		if _, err := s.db.Exec("DROP TABLE IF EXISTS " + tableName); err != nil {
			return fmt.Errorf("dropping table: %w", err)
		}
	}

	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	if version != schemaVersion {
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("setting user_version: %w", err)
		}
	}

	return nil
}
