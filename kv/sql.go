// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

//go:embed schema_mysql.sql
var schemaMySQL string

// Dialect selects the SQL flavor used for upserts and the schema.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// SQLStore keeps documents in a single kv table.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// StoreConfig holds configuration for creating a SQLStore.
type StoreConfig struct {
	// Dialect defaults to DialectSQLite.
	Dialect Dialect

	// Path is the file path for file-based SQLite.
	// If empty (and Dialect is sqlite), an in-memory database is used.
	Path string

	// DSN is the MySQL data source name, e.g. "user:pass@tcp(host:3306)/db".
	DSN string

	// InitSchema controls whether to run schema initialization.
	// File-based SQLite expects the schema to have been applied by init-db.
	InitSchema bool
}

// NewSQLiteStore creates a new in-memory SQLite store with schema loaded.
func NewSQLiteStore() (*SQLStore, error) {
	return NewSQLStoreWithConfig(StoreConfig{Dialect: DialectSQLite, InitSchema: true})
}

// NewSQLStore wraps an already opened database.
// The caller is responsible for the schema.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	if dialect == "" {
		dialect = DialectSQLite
	}
	return &SQLStore{db: db, dialect: dialect}
}

// NewSQLStoreWithConfig opens a store based on the provided configuration.
// For file-based SQLite the database file MUST already exist; use InitDatabase
// to create it.
func NewSQLStoreWithConfig(cfg StoreConfig) (*SQLStore, error) {
	if cfg.Dialect == "" {
		cfg.Dialect = DialectSQLite
	}

	var driver, dsn, schema string
	var inMemory bool
	switch cfg.Dialect {
	case DialectSQLite:
		driver, schema = "sqlite", schemaSQL
		if cfg.Path == "" {
			// each in-memory store gets its own named database
			inMemory = true
			dsn = fmt.Sprintf("file:mem-%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
		} else {
			if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
				return nil, fmt.Errorf("database file does not exist: %s (run init-db command to create it)", cfg.Path)
			}
			dsn = sqliteFileDSN(cfg.Path)
		}
	case DialectMySQL:
		driver, schema = "mysql", schemaMySQL
		mc, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		if mc.Params == nil {
			mc.Params = map[string]string{}
		}
		if _, ok := mc.Params["charset"]; !ok {
			mc.Params["charset"] = "utf8mb4"
		}
		dsn = mc.FormatDSN()
	default:
		return nil, fmt.Errorf("unknown sql dialect %q", cfg.Dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, &DatabaseError{Op: "open", Err: err}
	}
	if inMemory {
		// the database disappears when its last connection closes
		db.SetMaxOpenConns(1)
	}

	if cfg.InitSchema || inMemory {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, &DatabaseError{Op: "schema", Err: err}
		}
	}

	return &SQLStore{db: db, dialect: cfg.Dialect}, nil
}

// InitDatabase creates a new SQLite database file and initializes the schema.
// Returns an error if the file already exists.
func InitDatabase(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database file already exists: %s", path)
	}

	db, err := sql.Open("sqlite", sqliteFileDSN(path))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("exec schema: %w", err)
	}

	return nil
}

// CompactDatabase checkpoints the WAL and runs VACUUM, leaving a single
// compact file suitable for backup.
func CompactDatabase(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("database file does not exist: %s", path)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpoint WAL: %w", err)
	}
	if _, err := db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}

	return nil
}

// Apply PRAGMA's per-connection via DSN so the pool always has them.
func sqliteFileDSN(path string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
		path,
	)
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	const query = `SELECT value FROM kv WHERE name = ?`
	var value string
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, &DatabaseError{Op: "get", Key: key, Err: err}
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return true, &DecodeError{Key: key, Err: err}
	}
	return true, nil
}

// Put implements Store.
func (s *SQLStore) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, s.upsertSQL(),
		key,
		string(data),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return &DatabaseError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *SQLStore) upsertSQL() string {
	if s.dialect == DialectMySQL {
		return `
		INSERT INTO kv (name, value, updated_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)
	`
	}
	return `
		INSERT INTO kv (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
}
