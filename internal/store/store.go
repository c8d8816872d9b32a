package store

import (
	"log/slog"
	"maps"
	"math/rand"
	"slices"
	"time"

	"valley-farm/internal/energy"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/inventory"
	"valley-farm/internal/save"
)

const maxMessages = 50

// Deps are the collaborators a Store needs. Rand and Map default to a
// time-seeded source and the standard farm; Logger defaults to
// slog.Default. Saves and OnDayEnd are optional.
type Deps struct {
	Rand     *rand.Rand
	Logger   *slog.Logger
	Map      *gamemap.GameMap
	Saves    *save.Manager
	OnDayEnd func(DaySummary)
}

// Store is the single owner of the game state.
type Store struct {
	st       State
	rng      *rand.Rand
	log      *slog.Logger
	base     *gamemap.GameMap
	saves    *save.Manager
	onDayEnd func(DaySummary)

	harvestedToday int
}

// New returns a Store holding a fresh game that has not started.
func New(d Deps) *Store {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Map == nil {
		d.Map = gamemap.NewFarm()
	}
	s := &Store{
		rng:      d.Rand,
		log:      d.Logger,
		base:     d.Map,
		saves:    d.Saves,
		onDayEnd: d.OnDayEnd,
	}
	s.st = newState("")
	s.st.Running = false
	s.st.Loaded = false
	return s
}

// State returns the live state for reading. Callers must not modify it.
func (s *Store) State() *State { return &s.st }

// Map returns the base tile map.
func (s *Store) Map() *gamemap.GameMap { return s.base }

// StartGame replaces the state with a new game for name.
func (s *Store) StartGame(name string) {
	if name == "" {
		name = "Farmer"
	}
	s.st = newState(name)
	s.harvestedToday = 0
	s.log.Info("new game", "player", name, "save_id", s.st.SaveID)
}

func (s *Store) Pause()  { s.st.Paused = true }
func (s *Store) Resume() { s.st.Paused = false }

// SetActiveUI opens ui. Any screen other than UINone pauses the world.
func (s *Store) SetActiveUI(ui UI) {
	s.st.ActiveUI = ui
	s.st.Paused = ui != UINone
}

// CloseUI returns to the world and drops any open dialogue.
func (s *Store) CloseUI() {
	s.st.ActiveUI = UINone
	s.st.Paused = false
	s.st.Dialogue = nil
}

// RequestQuit marks the session as finished.
func (s *Store) RequestQuit() { s.st.Quit = true }

func (s *Store) addMessage(msg string) {
	s.st.Messages = append(s.st.Messages, msg)
	if len(s.st.Messages) > maxMessages {
		s.st.Messages = s.st.Messages[len(s.st.Messages)-maxMessages:]
	}
}

func (s *Store) setFlag(name string) bool {
	if s.st.Flags[name] {
		return false
	}
	s.st.Flags[name] = true
	return true
}

// Snapshot captures the persistent part of the state. Farm rows are
// shared with the live grid, which is never mutated in place.
func (s *Store) Snapshot() *save.Data {
	st := &s.st
	return &save.Data{
		ID:         st.SaveID,
		Version:    save.Version,
		PlayerName: st.PlayerName,
		Player: save.Player{
			Position:       st.Player.Position,
			Velocity:       st.Player.Velocity,
			Direction:      st.Player.Direction,
			IsMoving:       st.Player.IsMoving,
			AnimationFrame: st.Player.AnimationFrame,
			Energy:         st.Energy.Current,
			MaxEnergy:      st.Energy.Max,
			Gold:           st.Player.Gold,
			Name:           st.Player.Name,
		},
		Time:            st.Time,
		Inventory:       slices.Clone(st.Inventory),
		HotbarSelection: st.HotbarSelection,
		FarmTiles:       st.FarmTiles,
		ShippingBin:     slices.Clone(st.ShippingBin),
		NPCs:            slices.Clone(st.NPCs),
		Flags:           maps.Clone(st.Flags),
		Statistics:      st.Statistics,
		ToolLevels:      maps.Clone(st.ToolLevels),
	}
}

// Restore replaces the state with a loaded snapshot. The world resumes
// with no screen open.
func (s *Store) Restore(d *save.Data) {
	st := newState(d.PlayerName)
	st.SaveID = d.ID
	st.Player = Player{
		Position:       d.Player.Position,
		Velocity:       d.Player.Velocity,
		Direction:      d.Player.Direction,
		IsMoving:       d.Player.IsMoving,
		AnimationFrame: d.Player.AnimationFrame,
		Gold:           d.Player.Gold,
		Name:           d.Player.Name,
	}
	st.Energy = energy.State{Current: d.Player.Energy, Max: d.Player.MaxEnergy}
	st.Energy = energy.ConsumeTool(st.Energy, 0) // recompute flags
	st.Time = d.Time
	st.Inventory = slices.Clone(d.Inventory)
	st.HotbarSelection = d.HotbarSelection
	st.FarmTiles = d.FarmTiles
	st.ShippingBin = slices.Clone(d.ShippingBin)
	if st.ShippingBin == nil {
		st.ShippingBin = []inventory.Slot{}
	}
	st.NPCs = slices.Clone(d.NPCs)
	st.Statistics = d.Statistics
	if d.Flags != nil {
		st.Flags = maps.Clone(d.Flags)
	}
	for t, l := range d.ToolLevels {
		st.ToolLevels[t] = l
	}
	s.st = st
	s.harvestedToday = 0
}

// Save writes a snapshot through the configured save manager.
func (s *Store) Save() bool {
	if s.saves == nil {
		return false
	}
	ok := s.saves.Save(s.Snapshot())
	if ok {
		s.addMessage("Game saved.")
	} else {
		s.addMessage("Could not save the game.")
	}
	return ok
}

// Load restores the stored snapshot. It returns false when there is none
// or it could not be read.
func (s *Store) Load() bool {
	if s.saves == nil {
		return false
	}
	d := s.saves.Load()
	if d == nil {
		return false
	}
	s.Restore(d)
	s.addMessage("Welcome back, " + d.PlayerName + ".")
	return true
}
