package app

import (
	"time"

	"github.com/dshills/daygrid/internal/event"
	"github.com/dshills/daygrid/internal/geometry"
	"github.com/dshills/daygrid/internal/renderer/backend"
)

// pointerTranslator turns terminal mouse reports, which carry the held
// button mask rather than transitions, into pointer events.
type pointerTranslator struct {
	down bool
	last geometry.Point
	now  func() time.Time
}

func newPointerTranslator(now func() time.Time) *pointerTranslator {
	return &pointerTranslator{now: now}
}

// cellCenter maps a terminal cell to the center of its unit square, so a
// column never sits on a slot boundary.
func cellCenter(x, y int) geometry.Point {
	return geometry.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// translate returns the pointer events for one mouse report. A release is
// followed by a click at the same point.
func (t *pointerTranslator) translate(ev backend.Event) []event.Pointer {
	p := cellCenter(ev.MouseX, ev.MouseY)
	ts := t.now()

	switch ev.MouseButton {
	case backend.MouseLeft:
		if !t.down {
			t.down = true
			t.last = p
			return []event.Pointer{{Kind: event.KindPointerDown, Point: p, Timestamp: ts}}
		}
		if p == t.last {
			return nil
		}
		t.last = p
		return []event.Pointer{{Kind: event.KindPointerMove, Point: p, Timestamp: ts}}

	case backend.MouseNone:
		if !t.down {
			return nil
		}
		t.down = false
		t.last = p
		return []event.Pointer{
			{Kind: event.KindPointerUp, Point: p, Timestamp: ts},
			{Kind: event.KindClick, Point: p, Timestamp: ts},
		}

	default:
		return nil
	}
}

// reset forgets a held button, e.g. after the engine is rebuilt.
func (t *pointerTranslator) reset() {
	t.down = false
}
