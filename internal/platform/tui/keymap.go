package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HoldTicks is how long a direction key counts as held after its last
// press or auto-repeat (~133ms at 60Hz).
const HoldTicks = 8

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Launch     key.Binding
	Single     key.Binding
	Two        key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.RightUp, k.Launch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Single, k.Two, k.Launch, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w/s", "left paddle"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "right paddle"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "serve"),
		),
		Single: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "single player"),
		),
		Two: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "two players"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "new match"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for keys without a game meaning.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch
	case key.Matches(msg, k.Single):
		return core.ActionSelectSingle
	case key.Matches(msg, k.Two):
		return core.ActionSelectTwo
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldTracker turns key events into key states.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays down for a fixed number of ticks after its last event.
type HoldTracker struct {
	ticks     int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker holding keys for the given number of ticks.
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks <= 0 {
		ticks = HoldTicks
	}
	return &HoldTracker{
		ticks:     ticks,
		remaining: make(map[core.Action]int),
	}
}

// IsHeld reports whether a is one of the held direction actions.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeftUp, core.ActionLeftDown, core.ActionRightUp, core.ActionRightDown:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeftUp:
		return core.ActionLeftDown
	case core.ActionLeftDown:
		return core.ActionLeftUp
	case core.ActionRightUp:
		return core.ActionRightDown
	case core.ActionRightDown:
		return core.ActionRightUp
	}
	return core.ActionNone
}

// Press records a press or repeat of a direction key.
// The opposite direction on the same side is released.
func (h *HoldTracker) Press(a core.Action) {
	if !IsHeld(a) {
		return
	}
	delete(h.remaining, opposite(a))
	h.remaining[a] = h.ticks
}

// Apply marks every held action in frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// Tick ages every held key by one tick.
func (h *HoldTracker) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}
