// Package input turns tcell events into frame-scoped queries.
//
// Terminals report key presses and auto-repeat but never releases, so a
// movement key counts as held until Hold has passed since its last event.
// One-shot presses stay set until EndFrame.
package input

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"valley-farm/assets"
	"valley-farm/internal/gamemap"
)

// DefaultHold covers the gap before a terminal's key auto-repeat starts.
const DefaultHold = 180 * time.Millisecond

// Action is a one-shot command.
type Action uint8

const (
	ActionNone Action = iota
	ActionUse
	ActionEscape
	ActionInventory
	ActionInteract
	ActionGift
	ActionHotbarPrev
	ActionHotbarNext
)

// Mouse is the last known pointer state. X and Y are terminal cells;
// WorldX and WorldY are world pixels under the pointer.
type Mouse struct {
	X, Y           int
	WorldX, WorldY float64
	Pressed        bool
	JustClicked    bool
}

// State accumulates events between frames. It is owned by the host
// goroutine.
type State struct {
	now  func() time.Time
	hold time.Duration

	held        map[gamemap.Direction]time.Time
	pressed     map[gamemap.Direction]time.Time // start of the current hold
	sprintUntil time.Time

	actions map[Action]bool
	runes   map[rune]bool
	nav     gamemap.Direction
	hotbar  int

	mouse      Mouse
	camX, camY float64
}

// New returns an input state using now for key-hold timing. A zero hold
// uses DefaultHold.
func New(now func() time.Time, hold time.Duration) *State {
	if now == nil {
		now = time.Now
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return &State{
		now:     now,
		hold:    hold,
		held:    make(map[gamemap.Direction]time.Time),
		pressed: make(map[gamemap.Direction]time.Time),
		actions: make(map[Action]bool),
		runes:   make(map[rune]bool),
		hotbar:  -1,
	}
}

// HandleEvent records a tcell event. It returns false for events that do
// not affect input, such as resizes.
func (s *State) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
		return true
	case *tcell.EventMouse:
		s.handleMouse(ev)
		return true
	}
	return false
}

func (s *State) handleKey(ev *tcell.EventKey) {
	now := s.now()
	if d, sprint, ok := keyToDirection(ev); ok {
		if !s.isHeld(d, now) {
			s.pressed[d] = now
		}
		s.held[d] = now
		s.nav = d
		if sprint {
			s.sprintUntil = now.Add(s.hold)
		}
		if ev.Key() == tcell.KeyRune {
			s.runes[ev.Rune()] = true // menus read 's' as save
		}
		return
	}
	if a := keyToAction(ev); a != ActionNone {
		s.actions[a] = true
		return
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case r >= '1' && r <= '9':
			s.hotbar = int(r - '1')
		case r == '0':
			s.hotbar = 9
		default:
			s.runes[r] = true
		}
	}
}

// keyToDirection maps arrows and WASD. Shifted arrows and capital WASD
// also request a sprint.
func keyToDirection(ev *tcell.EventKey) (gamemap.Direction, bool, bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		return gamemap.Up, shift, true
	case tcell.KeyDown:
		return gamemap.Down, shift, true
	case tcell.KeyLeft:
		return gamemap.Left, shift, true
	case tcell.KeyRight:
		return gamemap.Right, shift, true
	case tcell.KeyRune:
	default:
		return "", false, false
	}
	switch ev.Rune() {
	case 'w':
		return gamemap.Up, false, true
	case 's':
		return gamemap.Down, false, true
	case 'a':
		return gamemap.Left, false, true
	case 'd':
		return gamemap.Right, false, true
	case 'W':
		return gamemap.Up, true, true
	case 'S':
		return gamemap.Down, true, true
	case 'A':
		return gamemap.Left, true, true
	case 'D':
		return gamemap.Right, true, true
	}
	return "", false, false
}

// keyToAction maps a tcell key event to a one-shot action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionUse
	case tcell.KeyEscape:
		return ActionEscape
	case tcell.KeyTab:
		return ActionInventory
	}

	switch ev.Rune() {
	case ' ':
		return ActionUse
	case 'e', 'E':
		return ActionInventory
	case 'f', 'F':
		return ActionInteract
	case 'g', 'G':
		return ActionGift
	case '-':
		return ActionHotbarPrev
	case '=', '+':
		return ActionHotbarNext
	}
	return ActionNone
}

func (s *State) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s.mouse.X, s.mouse.Y = x, y
	s.refreshWorld()
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !s.mouse.Pressed {
		s.mouse.JustClicked = true
	}
	s.mouse.Pressed = down
}

// UpdateCamera sets the world-pixel position of the viewport's top-left
// cell so mouse positions can be mapped into the world.
func (s *State) UpdateCamera(x, y float64) {
	s.camX, s.camY = x, y
	s.refreshWorld()
}

// Each map tile is two cells wide and one cell tall.
func (s *State) refreshWorld() {
	s.mouse.WorldX = s.camX + float64(s.mouse.X)*assets.TileSize/2
	s.mouse.WorldY = s.camY + float64(s.mouse.Y)*assets.TileSize
}

// Directions returns every movement direction currently held, oldest
// press first, so the last entry is the key pressed most recently.
func (s *State) Directions() []gamemap.Direction {
	now := s.now()
	var out []gamemap.Direction
	for _, d := range []gamemap.Direction{gamemap.Up, gamemap.Down, gamemap.Left, gamemap.Right} {
		if s.isHeld(d, now) {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b gamemap.Direction) int {
		return s.pressed[a].Compare(s.pressed[b])
	})
	return out
}

func (s *State) isHeld(d gamemap.Direction, now time.Time) bool {
	t, ok := s.held[d]
	return ok && now.Sub(t) < s.hold
}

// Sprinting reports whether a sprint key is held.
func (s *State) Sprinting() bool { return s.now().Before(s.sprintUntil) }

// NavPressed returns the direction pressed this frame, for menu
// navigation.
func (s *State) NavPressed() (gamemap.Direction, bool) { return s.nav, s.nav != "" }

func (s *State) ActionPressed() bool    { return s.actions[ActionUse] }
func (s *State) EscapePressed() bool    { return s.actions[ActionEscape] }
func (s *State) InventoryPressed() bool { return s.actions[ActionInventory] }
func (s *State) InteractPressed() bool  { return s.actions[ActionInteract] }
func (s *State) GiftPressed() bool      { return s.actions[ActionGift] }

// HotbarCycle returns -1, 0 or 1 for this frame's hotbar scroll.
func (s *State) HotbarCycle() int {
	switch {
	case s.actions[ActionHotbarPrev]:
		return -1
	case s.actions[ActionHotbarNext]:
		return 1
	}
	return 0
}

// HotbarSelection returns the slot chosen with a number key this frame.
func (s *State) HotbarSelection() (int, bool) { return s.hotbar, s.hotbar >= 0 }

// RunePressed reports whether r was typed this frame. Action and number
// keys are consumed before reaching here; WASD is reported both ways.
func (s *State) RunePressed(r rune) bool { return s.runes[r] }

func (s *State) MouseJustClicked() bool { return s.mouse.JustClicked }

// Mouse returns the pointer state.
func (s *State) Mouse() Mouse { return s.mouse }

// EndFrame clears one-shot presses. Held keys expire on their own.
func (s *State) EndFrame() {
	clear(s.actions)
	clear(s.runes)
	s.nav = ""
	s.hotbar = -1
	s.mouse.JustClicked = false
}
