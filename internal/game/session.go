// Package game hosts one play session: it owns the screen, feeds terminal
// events to the input state and drives the store through the fixed-step
// loop until the player quits or the context ends.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"valley-farm/internal/gamemap"
	"valley-farm/internal/input"
	"valley-farm/internal/loop"
	"valley-farm/internal/metrics"
	"valley-farm/internal/render"
	"valley-farm/internal/save"
	"valley-farm/internal/store"
)

// Options configure a Session. Screen is required; everything else has a
// usable zero value.
type Options struct {
	Screen     tcell.Screen
	Logger     *slog.Logger
	Saves      *save.Manager
	Rand       *rand.Rand
	Map        *gamemap.GameMap
	Journal    *Journal
	Clock      loop.Clock
	PlayerName string
	FrameRate  int
	KeyHold    time.Duration
	Autosave   time.Duration
}

// Session is one player's game from title screen to quit.
type Session struct {
	screen   tcell.Screen
	log      *slog.Logger
	clock    loop.Clock
	store    *store.Store
	input    *input.State
	renderer *render.Renderer
	loop     *loop.Loop
	saves    *save.Manager
	journal  *Journal
	autosave *save.Autosaver
	name     string
	interval time.Duration

	// events receives all tcell events from the polling goroutine.
	events chan tcell.Event
}

// NewSession wires a store, input state and renderer around o.Screen.
func NewSession(o Options) (*Session, error) {
	if o.Screen == nil {
		return nil, fmt.Errorf("session: no screen")
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Clock == nil {
		o.Clock = loop.SystemClock{}
	}
	if o.FrameRate <= 0 {
		o.FrameRate = 60
	}
	r, err := render.NewRenderer(o.Screen)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	s := &Session{
		screen:   o.Screen,
		log:      o.Logger,
		clock:    o.Clock,
		input:    input.New(o.Clock.Now, o.KeyHold),
		renderer: r,
		saves:    o.Saves,
		journal:  o.Journal,
		autosave: save.NewAutosaver(o.Autosave, o.Clock.Now()),
		name:     o.PlayerName,
		interval: time.Second / time.Duration(o.FrameRate),
		events:   make(chan tcell.Event, 32),
	}
	s.store = store.New(store.Deps{
		Rand:     o.Rand,
		Logger:   o.Logger,
		Map:      o.Map,
		Saves:    o.Saves,
		OnDayEnd: s.dayEnded,
	})
	s.loop = loop.New(o.Clock, s.update, s.render)
	return s, nil
}

// Store exposes the session's game state.
func (s *Session) Store() *store.Store { return s.store }

// Run shows the title screen and then plays until the player quits or ctx
// is done. It finalizes the screen before returning. A game in progress is
// saved on the way out.
func (s *Session) Run(ctx context.Context) error {
	defer s.screen.Fini()
	metrics.SessionsTotal.Inc()
	metrics.SessionsActive.Inc()
	defer metrics.SessionsActive.Dec()

	done := make(chan struct{})
	defer close(done)
	go s.poll(done)

	s.screen.EnableMouse()
	s.screen.EnableFocus()
	started, err := s.title(ctx)
	if !started {
		return err
	}

	s.loop.Start()
	defer s.loop.Stop()
	s.autosave.Reset(s.clock.Now())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.saveOnExit()
			return ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				s.saveOnExit()
				return nil
			}
			s.handleEvent(ev)
		case <-ticker.C:
			if s.frame() {
				s.saveOnExit()
				return nil
			}
		}
	}
}

// poll forwards screen events until the screen is finalized.
func (s *Session) poll(done <-chan struct{}) {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-done:
			return
		}
	}
}

// title runs the start screen. It reports whether a game is now running.
func (s *Session) title(ctx context.Context) (bool, error) {
	for {
		s.renderer.DrawTitle(s.hasSave())
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return false, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
				s.renderer.Resize()
			case *tcell.EventKey:
				started, quit := s.titleKey(ev)
				if started || quit {
					return started, nil
				}
			}
		}
	}
}

func (s *Session) hasSave() bool { return s.saves != nil && s.saves.Exists() }

// titleKey handles one key on the title screen.
func (s *Session) titleKey(ev *tcell.EventKey) (started, quit bool) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false, true
	}
	switch ev.Rune() {
	case 'n', 'N':
		s.store.StartGame(s.name)
		return true, false
	case 'c', 'C':
		if !s.hasSave() {
			return false, false
		}
		s.store.StartGame(s.name)
		if !s.store.Load() {
			s.log.Warn("continue failed, starting a new game")
		}
		return true, false
	case 'q', 'Q':
		return false, true
	}
	return false, false
}

// handleEvent routes one event during play.
func (s *Session) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.renderer.Resize()
	case *tcell.EventFocus:
		// The clock stops while the terminal is in the background.
		if ev.Focused {
			s.loop.Resume()
		} else {
			s.loop.Pause()
		}
	default:
		s.input.HandleEvent(ev)
	}
}

// frame runs one loop frame and the autosave check. It reports whether
// the player asked to quit.
func (s *Session) frame() bool {
	s.loop.Frame()
	if s.store.State().Quit {
		return true
	}
	if s.saves != nil {
		if s.autosave.Tick(s.clock.Now(), s.store.Save) {
			metrics.RecordSave(metrics.TriggerAutosave, true)
		}
	}
	return false
}

func (s *Session) update(dt float64) {
	s.store.Update(s.input, dt)
}

func (s *Session) render() {
	s.renderer.Draw(s.store.State(), s.store.Map())
	s.input.UpdateCamera(s.renderer.Camera().Origin())
}

func (s *Session) saveOnExit() {
	if s.saves == nil || !s.store.State().Running {
		return
	}
	metrics.RecordSave(metrics.TriggerQuit, s.store.Save())
}

func (s *Session) dayEnded(d store.DaySummary) {
	metrics.RecordDay(d.Forced, d.Earnings, d.CropsHarvested)
	if s.journal == nil {
		return
	}
	if err := s.journal.Append(d); err != nil {
		s.log.Warn("journal write failed", "error", err)
	}
}
