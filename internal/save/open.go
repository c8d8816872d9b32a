package save

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// SQLiteFile is the database name used inside the save directory.
const SQLiteFile = "saves.db"

// Open builds the backend named by kind rooted at dir. An empty dir means
// DefaultDir. The returned close function is never nil.
func Open(ctx context.Context, kind, dir string) (Backend, func() error, error) {
	noop := func() error { return nil }
	if kind == KindMemory {
		return NewMemoryBackend(), noop, nil
	}
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, nil, fmt.Errorf("save dir: %w", err)
		}
		dir = d
	}
	switch kind {
	case KindFile, "":
		return FileBackend{Dir: dir}, noop, nil
	case KindSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create save dir: %w", err)
		}
		b, err := OpenSQLite(ctx, filepath.Join(dir, SQLiteFile))
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown save backend %q", kind)
}
