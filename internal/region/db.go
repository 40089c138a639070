package region

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// DB provides SQLite-based storage for the full county-level region table.
// It implements Registry and is read-only after import.
//
// Design decision: the complete division table is too large to embed and is
// revised a few times a year, so we store it in a single database file under
// the user's data directory and let `idcard region import` refresh it.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{CreateIfNotExists: true}
}

// OpenDB opens or creates the region database in the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned instead of silently creating an empty registry.
func OpenDB(dbDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dbDir, "regions.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("region database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check region database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create region database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to forbid creation, mode=rwc to allow it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open region database: %w", err)
	}

	// SQLite supports a single writer; imports are the only writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &DB{db: db, dbPath: dbPath}
	if err := rdb.createSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return rdb, nil
}

// createSchema creates the regions table if it does not exist.
func (d *DB) createSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS regions (
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL
)`
	if _, err := d.db.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to create regions schema: %w", err)
	}
	return nil
}

// Import replaces or inserts the given code-to-name pairs in one transaction.
// Existing codes are overwritten so that re-importing a newer bulletin
// refreshes stale names.
func (d *DB) Import(ctx context.Context, names map[string]string) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO regions (code, name) VALUES (?, ?) ON CONFLICT(code) DO UPDATE SET name = excluded.name")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare import statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for code, name := range names {
		if _, err := stmt.ExecContext(ctx, code, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to import region %s: %w", code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import transaction: %w", err)
	}
	return nil
}

// Lookup returns the place name for a six-digit division code.
func (d *DB) Lookup(code string) (string, bool) {
	var name string
	err := d.db.QueryRowContext(context.Background(),
		"SELECT name FROM regions WHERE code = ?", code).Scan(&name)
	if err != nil {
		return "", false
	}
	return name, true
}

// Contains reports whether the six-digit division code is registered.
func (d *DB) Contains(code string) bool {
	_, ok := d.Lookup(code)
	return ok
}

// RandCode draws a uniformly random registered code.
func (d *DB) RandCode() (string, error) {
	var code string
	err := d.db.QueryRowContext(context.Background(),
		"SELECT code FROM regions ORDER BY RANDOM() LIMIT 1").Scan(&code)
	if err == sql.ErrNoRows {
		return "", ErrEmptyRegistry
	}
	if err != nil {
		return "", fmt.Errorf("failed to draw random region code: %w", err)
	}
	return code, nil
}

// likeEscaper escapes the LIKE metacharacters so a prefix matches literally,
// the same semantics as the in-memory registry's strings.HasPrefix.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// RandCodeWithPrefix draws a uniformly random registered code starting with
// prefix.
func (d *DB) RandCodeWithPrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNoCodeWithPrefix
	}
	var code string
	err := d.db.QueryRowContext(context.Background(),
		`SELECT code FROM regions WHERE code LIKE ? || '%' ESCAPE '\' ORDER BY RANDOM() LIMIT 1`,
		likeEscaper.Replace(prefix)).Scan(&code)
	if err == sql.ErrNoRows {
		return "", ErrNoCodeWithPrefix
	}
	if err != nil {
		return "", fmt.Errorf("failed to draw random region code: %w", err)
	}
	return code, nil
}

// Len returns the number of registered codes.
func (d *DB) Len() int {
	var n int
	if err := d.db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM regions").Scan(&n); err != nil {
		return 0
	}
	return n
}

// Path returns the path to the SQLite database file.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.db.Close()
}
