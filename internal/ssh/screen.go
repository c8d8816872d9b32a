package ssh

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client sends no TERM or an unknown one.
const DefaultTerm = "xterm-256color"

// allowedTerms are the terminal types a client may select. TERM feeds a
// terminfo lookup, so arbitrary values are not passed through.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// TermFor picks the terminal type from a session environment.
func TermFor(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return DefaultTerm
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// NewScreen creates and initializes a tcell screen drawing over s. It
// fails when the client did not request a PTY.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		return nil, fmt.Errorf("no pty requested")
	}
	tty := NewSessionTty(s, pty, winCh)

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", TermFor(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
