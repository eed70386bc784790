package core

import (
	"maps"
	"time"
)

// Action is a logical player command. Front ends map keys to actions and
// merge repeats before the simulation sees them.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionShoot        // Space
	ActionDash         // X, Shift
	ActionPause        // P
	ActionQuit         // Q, Esc, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:  "None",
	ActionLeft:  "Left",
	ActionRight: "Right",
	ActionUp:    "Up",
	ActionDown:  "Down",
	ActionShoot: "Shoot",
	ActionDash:  "Dash",
	ActionPause: "Pause",
	ActionQuit:  "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Opposite returns the action on the same axis pointing the other way.
// Non-directional actions return ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// Directions lists the four movement actions.
var Directions = [...]Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// InputFrame is the set of actions held during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an input frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a is held.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear drops every action, keeping the map.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	c := InputFrame{Actions: make(map[Action]bool, len(f.Actions))}
	maps.Copy(c.Actions, f.Actions)
	return c
}

// TickInput is everything the simulation consumes from the outside world for one tick.
type TickInput struct {
	Input     InputFrame    // Logical actions polled this tick
	ElapsedMS float64       // Measured duration of the previous frame
	Now       time.Duration // Monotonic clock value, used for firing cadence
}
