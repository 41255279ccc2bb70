package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var ErrProfileNotFound = errors.New("athlete profile not found")

type Storage struct {
	DB *sql.DB
}

// Open connects to the profile database. Remote URLs (libsql://, https://)
// go to Turso, file: URLs and bare paths use the embedded sqlite driver.
func Open(url string) (*Storage, error) {
	if url == "" {
		return nil, errors.New("no database connection string configured")
	}

	driver, dsn := driverFor(url)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", url, err)
	}

	st, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return st, nil
}

// New wraps an open database and makes sure the schema exists.
func New(db *sql.DB) (*Storage, error) {
	if err := InitializeDB(db); err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(url string) (driver, dsn string) {
	switch {
	case strings.HasPrefix(url, "libsql://"),
		strings.HasPrefix(url, "http://"),
		strings.HasPrefix(url, "https://"),
		strings.HasPrefix(url, "ws://"),
		strings.HasPrefix(url, "wss://"):
		return "libsql", url
	case strings.HasPrefix(url, "file:") && !strings.Contains(url, "?"):
		return "sqlite", strings.TrimPrefix(url, "file:")
	default:
		return "sqlite", url
	}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS athlete_profiles (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            fatigue_factor REAL NOT NULL,
            power_sensitivity REAL NOT NULL,
            created_at TEXT NOT NULL
        );
    `)
	return err
}
