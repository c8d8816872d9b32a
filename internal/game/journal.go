package game

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"valley-farm/internal/save"
	"valley-farm/internal/store"
)

// JournalFile is the name of the day log inside the data directory.
const JournalFile = "days.jsonl"

// Journal appends one JSON line per finished day.
type Journal struct {
	path string
}

// NewJournal returns a journal stored in dir.
func NewJournal(dir string) *Journal {
	return &Journal{path: filepath.Join(dir, JournalFile)}
}

// DefaultJournal returns a journal in the save directory,
// $XDG_DATA_HOME/valley-farm.
func DefaultJournal() (*Journal, error) {
	dir, err := save.DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewJournal(dir), nil
}

// Path is the journal file location.
func (j *Journal) Path() string { return j.path }

// Append writes d as a single line.
func (j *Journal) Append(d store.DaySummary) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("journal dir: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Read returns every recorded day, oldest first. A missing journal is empty.
func (j *Journal) Read() ([]store.DaySummary, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var days []store.DaySummary
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var d store.DaySummary
		if err := json.Unmarshal(sc.Bytes(), &d); err != nil {
			return days, fmt.Errorf("journal line %d: %w", len(days)+1, err)
		}
		days = append(days, d)
	}
	return days, sc.Err()
}
