package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Left paddle up (both paddles against the AI)
	ActionDown           // Left paddle down
	ActionUp2            // Right paddle up in versus mode
	ActionDown2          // Right paddle down in versus mode
	ActionConfirm        // Enter
	ActionBack           // Escape - abort to title
	ActionQuit           // Q, Ctrl+C
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionUp2:
		return "Up2"
	case ActionDown2:
		return "Down2"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// opposite returns the action that cancels a, or ActionNone.
func (a Action) opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionUp2:
		return ActionDown2
	case ActionDown2:
		return ActionUp2
	}
	return ActionNone
}

func (a Action) valid() bool {
	return a > ActionNone && a < actionCount
}

// InputState is the read side of the latch handed to the simulation.
type InputState interface {
	IsHeld(a Action) bool
}

// Latch holds the pressed state of every action.
//
// Terminals deliver key presses (and auto-repeat) but no releases, so a
// press keeps its action held for the hold window. A repeat refreshes the
// window; pressing the opposite direction releases the other one at once.
type Latch struct {
	hold  time.Duration
	held  [actionCount]bool
	until [actionCount]time.Duration
}

// NewLatch creates a latch with the given hold window.
func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold}
}

// Press marks a as held from now. Unknown actions are ignored.
func (l *Latch) Press(a Action, now time.Duration) {
	if !a.valid() {
		return
	}
	l.held[a] = true
	l.until[a] = now + l.hold
	if opp := a.opposite(); opp != ActionNone {
		l.held[opp] = false
	}
}

// Release clears a immediately.
func (l *Latch) Release(a Action) {
	if !a.valid() {
		return
	}
	l.held[a] = false
}

// Expire releases every action whose hold window ended before now.
// A press made at now stays visible to the tick that follows it even
// with a zero hold window.
func (l *Latch) Expire(now time.Duration) {
	for a := range l.held {
		if l.held[a] && now > l.until[a] {
			l.held[a] = false
		}
	}
}

// IsHeld reports whether a is currently held.
func (l *Latch) IsHeld(a Action) bool {
	if !a.valid() {
		return false
	}
	return l.held[a]
}

// Reset releases everything.
func (l *Latch) Reset() {
	l.held = [actionCount]bool{}
}
