package mouse

import "github.com/dshills/daygrid/internal/geometry"

// Phase is the state of a pointer session.
type Phase uint8

const (
	// PhaseIdle means no session is active.
	PhaseIdle Phase = iota
	// PhaseAwaitingClickDecision is the window between press and the first
	// qualifying move or the release.
	PhaseAwaitingClickDecision
	// PhaseDragging means the press turned into a drag.
	PhaseDragging
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingClickDecision:
		return "awaiting-click"
	case PhaseDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Session is the per-press state. It is a value: every transition builds a
// new Session instead of mutating fields of the current one.
type Session struct {
	// Phase is where the session is in its lifecycle.
	Phase Phase

	// Down is where the button went down.
	Down geometry.Point

	// Current is the last known pointer position.
	Current geometry.Point

	// Vetoed is set when the mousedown listener refused the press.
	Vetoed bool
}

// Active reports whether the session has started and not yet ended.
func (s Session) Active() bool {
	return s.Phase != PhaseIdle
}

// Box returns the drag rectangle from Down to Current.
func (s Session) Box() geometry.Box {
	return geometry.BoxFromPoints(s.Down, s.Current)
}

func pressed(p geometry.Point, vetoed bool) Session {
	return Session{Phase: PhaseAwaitingClickDecision, Down: p, Current: p, Vetoed: vetoed}
}

func (s Session) movedTo(p geometry.Point) Session {
	return Session{Phase: s.Phase, Down: s.Down, Current: p, Vetoed: s.Vetoed}
}

func (s Session) dragging(p geometry.Point) Session {
	return Session{Phase: PhaseDragging, Down: s.Down, Current: p, Vetoed: s.Vetoed}
}

// distance returns the Manhattan distance between two points.
func distance(a, b geometry.Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
