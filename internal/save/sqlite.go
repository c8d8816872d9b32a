package save

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteBackend stores documents in a single SQLite table. It is safe for
// concurrent use, so one backend can serve every SSH session.
type SQLiteBackend struct {
	db *sqlx.DB
}

// OpenSQLite opens or creates the database at path and applies pending
// migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := migrate(ctx, db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return err
	}
	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

// Close closes the database.
func (b *SQLiteBackend) Close() error { return b.db.Close() }

func (b *SQLiteBackend) Read(key string) ([]byte, error) {
	var data []byte
	err := b.db.Get(&data, `SELECT data FROM saves WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

func (b *SQLiteBackend) Write(key string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO saves (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Remove(key string) error {
	res, err := b.db.Exec(`DELETE FROM saves WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Row is one stored document's metadata.
type Row struct {
	Key       string    `db:"key"`
	UpdatedAt time.Time `db:"updated_at"`
}

// List returns every stored key, most recently written first.
func (b *SQLiteBackend) List() ([]Row, error) {
	var rows []Row
	if err := b.db.Select(&rows, `SELECT key, updated_at FROM saves ORDER BY updated_at DESC`); err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return rows, nil
}
