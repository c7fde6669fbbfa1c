package mouse

import (
	"fmt"

	"github.com/dshills/daygrid/internal/event"
	"github.com/dshills/daygrid/internal/geometry"
)

// Config configures session discrimination.
type Config struct {
	// ClickTolerance is the largest Manhattan distance from the press point
	// a move may reach without turning the press into a drag.
	ClickTolerance float64
}

// DefaultConfig returns the default configuration: any change of position
// starts a drag.
func DefaultConfig() Config {
	return Config{ClickTolerance: 0}
}

// Controller owns a single pointer session fed by an event.Source.
type Controller struct {
	config Config
	source event.Source

	subs     map[event.Kind]event.SubscriptionID
	attached bool

	session Session

	// trailingClick is set by a release so the platform click that follows
	// it is not reported a second time.
	trailingClick bool

	onSelectStart func(geometry.Box)
	onSelecting   func(geometry.Box)
	onClick       func(geometry.Point)
	onSelect      func(geometry.Box)
	onMouseDown   func(geometry.Box) bool
	onCancel      func()
}

// NewController creates a detached controller for source.
func NewController(source event.Source, config Config) *Controller {
	return &Controller{
		config: config,
		source: source,
		subs:   make(map[event.Kind]event.SubscriptionID),
	}
}

// OnSelectStart sets the listener for the start of a drag.
func (c *Controller) OnSelectStart(fn func(geometry.Box)) { c.onSelectStart = fn }

// OnSelecting sets the listener for drag moves.
func (c *Controller) OnSelecting(fn func(geometry.Box)) { c.onSelecting = fn }

// OnClick sets the click listener.
func (c *Controller) OnClick(fn func(geometry.Point)) { c.onClick = fn }

// OnSelect sets the listener for a finished drag.
func (c *Controller) OnSelect(fn func(geometry.Box)) { c.onSelect = fn }

// OnMouseDown sets the press-time veto query. Returning false vetoes the
// session.
func (c *Controller) OnMouseDown(fn func(geometry.Box) bool) { c.onMouseDown = fn }

// OnCancel sets the listener for a session replaced by a new press.
func (c *Controller) OnCancel(fn func()) { c.onCancel = fn }

// Attach subscribes to every pointer kind. Attaching twice is a no-op.
func (c *Controller) Attach() error {
	if c.attached {
		return nil
	}
	for _, kind := range event.Kinds {
		id, err := c.source.Subscribe(kind, c.handle, event.WithPriority(event.PriorityCritical))
		if err != nil {
			c.unsubscribeAll()
			return fmt.Errorf("subscribing to %s: %w", kind, err)
		}
		c.subs[kind] = id
	}
	c.attached = true
	return nil
}

// Teardown unsubscribes from the source and silently discards any session.
// Calling it more than once is a no-op.
func (c *Controller) Teardown() {
	if !c.attached {
		return
	}
	c.unsubscribeAll()
	c.attached = false
	c.session = Session{}
	c.trailingClick = false
}

// Attached reports whether the controller is subscribed.
func (c *Controller) Attached() bool {
	return c.attached
}

// Session returns the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// IsSelected reports whether a live drag rectangle overlaps region.
func (c *Controller) IsSelected(region geometry.Box) bool {
	s := c.session
	if s.Phase != PhaseDragging || s.Vetoed {
		return false
	}
	return geometry.Intersects(s.Box(), region)
}

func (c *Controller) unsubscribeAll() {
	for kind, id := range c.subs {
		// A source that already dropped the subscription is fine.
		_ = c.source.Unsubscribe(kind, id)
		delete(c.subs, kind)
	}
}

// handle routes a pointer event by kind.
func (c *Controller) handle(ev event.Pointer) {
	if !c.attached {
		return
	}

	switch ev.Kind {
	case event.KindPointerDown:
		c.handleDown(ev.Point)
	case event.KindPointerMove:
		c.handleMove(ev.Point)
	case event.KindPointerUp:
		c.handleUp(ev.Point)
	case event.KindClick:
		c.handleClick(ev.Point)
	}
}

// handleDown starts a session, cancelling an unfinished one first.
func (c *Controller) handleDown(p geometry.Point) {
	if c.session.Active() {
		c.session = Session{}
		if c.onCancel != nil {
			c.onCancel()
		}
		if !c.attached {
			return
		}
	}
	c.trailingClick = false

	vetoed := false
	if c.onMouseDown != nil && !c.onMouseDown(geometry.PointBox(p)) {
		vetoed = true
	}
	if !c.attached {
		return
	}
	c.session = pressed(p, vetoed)
}

// handleMove promotes a pending press to a drag or extends the drag.
func (c *Controller) handleMove(p geometry.Point) {
	s := c.session
	switch {
	case !s.Active():
		return
	case s.Vetoed:
		c.session = s.movedTo(p)
		return
	}

	switch s.Phase {
	case PhaseAwaitingClickDecision:
		if distance(s.Down, p) <= c.config.ClickTolerance {
			return
		}
		next := s.dragging(p)
		c.session = next
		if c.onSelectStart != nil {
			c.onSelectStart(geometry.PointBox(s.Down))
		}
		if c.session != next {
			// The listener tore down or restarted the session.
			return
		}
		c.emitSelecting(next.Box())

	case PhaseDragging:
		next := s.dragging(p)
		c.session = next
		c.emitSelecting(next.Box())
	}
}

// handleUp ends the session as a click or a select.
func (c *Controller) handleUp(p geometry.Point) {
	s := c.session
	if !s.Active() {
		return
	}
	c.session = Session{}
	c.trailingClick = true

	if s.Vetoed {
		return
	}

	switch s.Phase {
	case PhaseAwaitingClickDecision:
		if c.onClick != nil {
			c.onClick(p)
		}
	case PhaseDragging:
		if c.onSelect != nil {
			c.onSelect(geometry.BoxFromPoints(s.Down, p))
		}
	}
}

// handleClick reports an external click. The click trailing a release was
// already reported by handleUp.
func (c *Controller) handleClick(p geometry.Point) {
	if c.trailingClick {
		c.trailingClick = false
		return
	}
	if c.session.Active() {
		return
	}
	if c.onMouseDown != nil && !c.onMouseDown(geometry.PointBox(p)) {
		return
	}
	if c.attached && c.onClick != nil {
		c.onClick(p)
	}
}

func (c *Controller) emitSelecting(box geometry.Box) {
	if c.onSelecting != nil {
		c.onSelecting(box)
	}
}
