package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the actions it triggers.
// Shift+arrow moves and dashes at once. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return []core.Action{core.ActionQuit}, true
	case "w", "up", "k":
		return []core.Action{core.ActionUp}, false
	case "s", "down", "j":
		return []core.Action{core.ActionDown}, false
	case "a", "left", "h":
		return []core.Action{core.ActionLeft}, false
	case "d", "right", "l":
		return []core.Action{core.ActionRight}, false
	case "shift+up", "W":
		return []core.Action{core.ActionUp, core.ActionDash}, false
	case "shift+down", "S":
		return []core.Action{core.ActionDown, core.ActionDash}, false
	case "shift+left", "A":
		return []core.Action{core.ActionLeft, core.ActionDash}, false
	case "shift+right", "D":
		return []core.Action{core.ActionRight, core.ActionDash}, false
	case " ", "z":
		return []core.Action{core.ActionShoot}, false
	case "x":
		return []core.Action{core.ActionDash}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	}
	return nil, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// Terminals report key presses and auto-repeats but never releases, so a
// press counts as held until no repeat arrives within the hold window.
const defaultHoldWindow = 180 * time.Millisecond

// KeyLatch turns key presses into held actions.
// Pause and quit are one-shot: they are reported by a single poll.
type KeyLatch struct {
	hold    time.Duration
	pressed map[core.Action]time.Time
	once    core.InputFrame
}

// NewKeyLatch creates a latch; hold <= 0 uses the default window.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = defaultHoldWindow
	}
	return &KeyLatch{
		hold:    hold,
		pressed: make(map[core.Action]time.Time),
		once:    core.NewInputFrame(),
	}
}

// Press records actions observed at now.
func (l *KeyLatch) Press(now time.Time, actions ...core.Action) {
	for _, a := range actions {
		switch a {
		case core.ActionPause, core.ActionQuit:
			l.once.Set(a)
		default:
			l.pressed[a] = now
		}
	}
}

// Poll returns the actions held at now and consumes one-shot actions.
func (l *KeyLatch) Poll(now time.Time) core.InputFrame {
	in := l.once.Clone()
	l.once.Clear()
	for a, at := range l.pressed {
		if now.Sub(at) <= l.hold {
			in.Set(a)
		} else {
			delete(l.pressed, a)
		}
	}
	// Latest direction wins on each axis.
	for _, d := range core.Directions {
		opp := d.Opposite()
		if in.Has(d) && in.Has(opp) && l.pressed[opp].After(l.pressed[d]) {
			delete(in.Actions, d)
		}
	}
	return in
}

// Reset forgets every press.
func (l *KeyLatch) Reset() {
	clear(l.pressed)
	l.once.Clear()
}
