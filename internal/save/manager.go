package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	// DefaultKey is the unslotted storage key.
	DefaultKey = "valley_save"
	// MaxSlots bounds the numbered save slots.
	MaxSlots = 10
)

// ErrInvalid marks a stored document that could not be decoded or failed
// validation.
var ErrInvalid = errors.New("save: invalid data")

// SlotKey returns the storage key for numbered slot n.
func SlotKey(base string, n int) string {
	return fmt.Sprintf("%s_slot_%d", base, n)
}

// Meta summarizes a stored snapshot for a slot picker.
type Meta struct {
	Slot       int       `json:"slot"`
	PlayerName string    `json:"playerName"`
	Day        int       `json:"day"`
	Season     string    `json:"season"`
	Year       int       `json:"year"`
	Gold       int       `json:"gold"`
	SavedAt    time.Time `json:"savedAt"`
}

// Manager reads and writes snapshots through a Backend. Errors are logged
// and reported as false or nil.
type Manager struct {
	backend Backend
	log     *slog.Logger
	key     string
	now     func() time.Time
}

// NewManager returns a Manager using DefaultKey.
func NewManager(b Backend, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{backend: b, log: log, key: DefaultKey, now: time.Now}
}

// WithKey returns a copy of m that stores under key instead of DefaultKey.
func (m *Manager) WithKey(key string) *Manager {
	c := *m
	c.key = key
	return &c
}

// Key returns the unslotted storage key.
func (m *Manager) Key() string { return m.key }

func (m *Manager) Save(d *Data) bool { return m.write(m.key, d) }

func (m *Manager) Load() *Data { return m.read(m.key) }

func (m *Manager) Delete() bool { return m.remove(m.key) }

// Exists reports whether an unslotted snapshot is stored.
func (m *Manager) Exists() bool {
	_, err := m.backend.Read(m.key)
	return err == nil
}

func (m *Manager) SaveSlot(n int, d *Data) bool {
	if !validSlot(n) {
		return false
	}
	return m.write(SlotKey(m.key, n), d)
}

func (m *Manager) LoadSlot(n int) *Data {
	if !validSlot(n) {
		return nil
	}
	return m.read(SlotKey(m.key, n))
}

func (m *Manager) DeleteSlot(n int) bool {
	if !validSlot(n) {
		return false
	}
	return m.remove(SlotKey(m.key, n))
}

// SlotMeta returns the summary of slot n, or nil when it is empty or
// unreadable.
func (m *Manager) SlotMeta(n int) *Meta {
	d := m.LoadSlot(n)
	if d == nil {
		return nil
	}
	return &Meta{
		Slot:       n,
		PlayerName: d.PlayerName,
		Day:        d.Time.Day,
		Season:     string(d.Time.Season),
		Year:       d.Time.Year,
		Gold:       d.Player.Gold,
		SavedAt:    d.SavedAt,
	}
}

// AllSlotMeta returns one entry per slot below limit; empty slots are nil.
func (m *Manager) AllSlotMeta(limit int) []*Meta {
	if limit > MaxSlots {
		limit = MaxSlots
	}
	out := make([]*Meta, 0, limit)
	for n := range limit {
		out = append(out, m.SlotMeta(n))
	}
	return out
}

func validSlot(n int) bool { return n >= 0 && n < MaxSlots }

func (m *Manager) write(key string, d *Data) bool {
	if d == nil {
		return false
	}
	c := *d
	if c.ID == "" {
		c.ID = NewID()
	}
	c.Version = Version
	c.SavedAt = m.now().UTC()
	raw, err := Encode(&c)
	if err != nil {
		m.log.Error("save failed", "key", key, "error", err)
		return false
	}
	if err := m.backend.Write(key, raw); err != nil {
		m.log.Error("save failed", "key", key, "error", err)
		return false
	}
	m.log.Info("game saved", "key", key, "day", c.Time.Day, "season", c.Time.Season, "year", c.Time.Year)
	return true
}

func (m *Manager) read(key string) *Data {
	raw, err := m.backend.Read(key)
	if errors.Is(err, ErrNotFound) {
		m.log.Debug("no save found", "key", key)
		return nil
	}
	if err != nil {
		m.log.Error("load failed", "key", key, "error", err)
		return nil
	}
	d, err := Decode(raw)
	if err != nil {
		m.log.Error("load failed", "key", key, "error", err)
		return nil
	}
	m.log.Info("game loaded", "key", key, "day", d.Time.Day, "season", d.Time.Season, "year", d.Time.Year)
	return d
}

func (m *Manager) remove(key string) bool {
	err := m.backend.Remove(key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.log.Error("delete failed", "key", key, "error", err)
		return false
	}
	return err == nil
}

// Encode serializes d as JSON.
func Encode(d *Data) ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return raw, nil
}

// Decode parses a stored document, migrating older versions before
// validation.
func Decode(raw []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if d.Version != Version {
		Migrate(&d)
	}
	if err := Validate(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &d, nil
}
