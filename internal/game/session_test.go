package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"valley-farm/internal/save"
	"valley-farm/internal/store"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(100, 40)
	return ss
}

func newTestSession(t *testing.T, saves *save.Manager, opts Options) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	ss := newSimScreen(t)
	t.Cleanup(ss.Fini)
	opts.Screen = ss
	opts.Clock = clock
	opts.Logger = quietLogger()
	opts.Saves = saves
	opts.Rand = rand.New(rand.NewSource(1))
	if opts.PlayerName == "" {
		opts.PlayerName = "Tester"
	}
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, clock
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func memorySaves() *save.Manager { return save.NewManager(save.NewMemoryBackend(), quietLogger()) }

// play starts a new game from the title screen and starts the loop.
func play(t *testing.T, s *Session) {
	t.Helper()
	if started, _ := s.titleKey(key('n')); !started {
		t.Fatal("new game did not start")
	}
	s.loop.Start()
}

func TestTitleNewGame(t *testing.T) {
	s, _ := newTestSession(t, memorySaves(), Options{})
	play(t, s)
	st := s.Store().State()
	if !st.Running || st.PlayerName != "Tester" {
		t.Errorf("running=%v name=%q", st.Running, st.PlayerName)
	}
}

func TestTitleQuitAndContinueWithoutSave(t *testing.T) {
	s, _ := newTestSession(t, memorySaves(), Options{})
	if started, quit := s.titleKey(key('c')); started || quit {
		t.Error("continue without a save should be ignored")
	}
	if _, quit := s.titleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Error("escape should leave the title screen")
	}
}

func TestTitleContinueLoadsSave(t *testing.T) {
	saves := memorySaves()
	first, _ := newTestSession(t, saves, Options{PlayerName: "Ash"})
	play(t, first)
	if !first.Store().Save() {
		t.Fatal("save failed")
	}

	second, _ := newTestSession(t, saves, Options{PlayerName: "Other"})
	if started, _ := second.titleKey(key('c')); !started {
		t.Fatal("continue did not start")
	}
	if got := second.Store().State().PlayerName; got != "Ash" {
		t.Errorf("player = %q, want the saved farmer", got)
	}
}

func TestMenuQuitEndsSessionAndSaves(t *testing.T) {
	saves := memorySaves()
	s, clock := newTestSession(t, saves, Options{})
	play(t, s)

	s.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	clock.Advance(20 * time.Millisecond)
	if s.frame() {
		t.Fatal("quit too early")
	}
	if ui := s.Store().State().ActiveUI; ui != store.UIMenu {
		t.Fatalf("ui = %s, want menu", ui)
	}

	s.handleEvent(key('q'))
	clock.Advance(20 * time.Millisecond)
	if !s.frame() {
		t.Fatal("q in the menu should quit")
	}
	s.saveOnExit()
	if !saves.Exists() {
		t.Error("quitting should save the game")
	}
}

func TestAutosaveFiresAfterInterval(t *testing.T) {
	saves := memorySaves()
	s, clock := newTestSession(t, saves, Options{Autosave: time.Minute})
	play(t, s)

	clock.Advance(30 * time.Second)
	s.frame()
	if saves.Exists() {
		t.Fatal("autosaved before the interval")
	}
	clock.Advance(31 * time.Second)
	s.frame()
	if !saves.Exists() {
		t.Error("no autosave after the interval")
	}
}

// brokenBackend refuses every write, like a full or read-only disk.
type brokenBackend struct {
	*save.MemoryBackend
	writes int
}

func (b *brokenBackend) Write(string, []byte) error {
	b.writes++
	return errors.New("disk full")
}

func TestFailingAutosaveBacksOff(t *testing.T) {
	b := &brokenBackend{MemoryBackend: save.NewMemoryBackend()}
	s, clock := newTestSession(t, save.NewManager(b, quietLogger()), Options{Autosave: time.Minute})
	play(t, s)

	clock.Advance(time.Minute)
	for range 60 {
		clock.Advance(time.Second / 60)
		s.frame()
	}
	if b.writes != 1 {
		t.Errorf("writes in one second = %d, want 1", b.writes)
	}
	failures := 0
	for _, m := range s.Store().State().Messages {
		if m == "Could not save the game." {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("failure messages = %d, want 1", failures)
	}

	clock.Advance(save.MaxRetryDelay)
	s.frame()
	if b.writes != 2 {
		t.Errorf("writes after the backoff = %d, want 2", b.writes)
	}
}

func TestFocusLossPausesTheClock(t *testing.T) {
	s, clock := newTestSession(t, memorySaves(), Options{})
	play(t, s)

	clock.Advance(50 * time.Millisecond)
	s.frame()
	before := s.Store().State().Time

	s.handleEvent(tcell.NewEventFocus(false))
	if !s.loop.Paused() {
		t.Fatal("losing focus should pause the loop")
	}
	clock.Advance(50 * time.Millisecond)
	s.frame()
	if got := s.Store().State().Time; got != before {
		t.Errorf("time moved while unfocused: %+v -> %+v", before, got)
	}

	s.handleEvent(tcell.NewEventFocus(true))
	clock.Advance(50 * time.Millisecond)
	s.frame()
	if got := s.Store().State().Time; got.Minute <= before.Minute {
		t.Errorf("time did not resume: %+v", got)
	}
}

func TestDayEndWritesJournal(t *testing.T) {
	j := NewJournal(t.TempDir())
	s, _ := newTestSession(t, memorySaves(), Options{Journal: j})
	play(t, s)

	s.Store().Sleep()

	days, err := j.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 1 || days[0].Day != 1 || days[0].Forced {
		t.Errorf("journal = %+v", days)
	}
}

func TestRunSavesWhenContextEnds(t *testing.T) {
	saves := memorySaves()
	ss := newSimScreen(t)
	s, err := NewSession(Options{Screen: ss, Logger: quietLogger(), Saves: saves, PlayerName: "Tester"})
	if err != nil {
		t.Fatal(err)
	}
	ss.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
	if !saves.Exists() {
		t.Error("session was not saved on the way out")
	}
}
