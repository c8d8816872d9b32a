package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"valley-farm/assets"
	"valley-farm/internal/store"
)

func TestDefaultJournalXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	j, err := DefaultJournal()
	if err != nil {
		t.Fatalf("DefaultJournal returned error: %v", err)
	}
	want := filepath.Join(tmp, "valley-farm", JournalFile)
	if j.Path() != want {
		t.Errorf("path = %q; want %q", j.Path(), want)
	}
}

func TestJournalAppend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	j := NewJournal(dir)

	err := j.Append(store.DaySummary{Day: 4, Season: assets.Spring, Year: 1, Earnings: 129, Forced: true})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, JournalFile))
	if err != nil {
		t.Fatalf("days.jsonl not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"earnings":129`) {
		t.Errorf("journal does not contain the earnings; got: %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("journal entry should end with newline; got: %q", content)
	}
}

func TestJournalAppendsMultiple(t *testing.T) {
	j := NewJournal(t.TempDir())
	for i := range 3 {
		if err := j.Append(store.DaySummary{Day: i + 1, Season: assets.Summer, Year: 2}); err != nil {
			t.Fatal(err)
		}
	}
	days, err := j.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, d := range days {
		if d.Day != i+1 || d.Season != assets.Summer {
			t.Errorf("day %d = %+v", i, d)
		}
	}
}

func TestJournalReadMissingIsEmpty(t *testing.T) {
	days, err := NewJournal(t.TempDir()).Read()
	if err != nil || len(days) != 0 {
		t.Errorf("got %v, %v", days, err)
	}
}
