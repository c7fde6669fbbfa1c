package selection

import (
	"fmt"

	"github.com/dshills/daygrid/internal/event"
	"github.com/dshills/daygrid/internal/geometry"
	"github.com/dshills/daygrid/internal/input/mouse"
)

// State is the live view of an in-progress drag. Indices are NoCell until
// the drag resolves to cells, and meaningless when Selecting is false.
type State struct {
	Selecting bool
	StartIdx  int
	EndIdx    int
}

// IdleState returns the state of a row with no drag in progress.
func IdleState() State {
	return State{Selecting: false, StartIdx: geometry.NoCell, EndIdx: geometry.NoCell}
}

// Range returns the indices as a cell range.
func (s State) Range() geometry.CellRange {
	return geometry.CellRange{StartIdx: s.StartIdx, EndIdx: s.EndIdx}
}

// Slot is a finalized selection reported to the host.
type Slot struct {
	Start  int
	End    int
	Action Action
}

// String returns a compact representation of the slot.
func (s Slot) String() string {
	return fmt.Sprintf("%s[%d..%d]", s.Action, s.Start, s.End)
}

// Host is the rendering layer the controller queries on demand.
type Host interface {
	// MeasureRegion returns the current bounds of the row.
	MeasureRegion() geometry.Box

	// HitTest reports whether p lands on an excluded sub-element.
	HitTest(p geometry.Point) bool
}

// Callbacks receive selection results. Only OnSelectSlot is required.
type Callbacks struct {
	// OnSelectStart is called when a drag begins, with the press box.
	OnSelectStart func(geometry.Box)

	// OnSelecting is called on every drag move with the new state.
	OnSelecting func(State)

	// OnSelectEnd is called when a drag is released, with its final state.
	OnSelectEnd func(State)

	// OnSelectSlot receives every resolved click or drag selection.
	OnSelectSlot func(Slot)
}

// Config is fixed for the lifetime of a Controller, except Mode which
// SetMode may change.
type Config struct {
	// RowLength is the number of cells in the row. The host must keep it
	// positive; zero or less degrades to no selection.
	RowLength int

	// RTL mirrors cell order.
	RTL bool

	// Mode selects whether handlers are attached and whether presses on
	// excluded sub-elements are refused.
	Mode Mode

	// ClickTolerance is passed to the pointer session controller.
	ClickTolerance float64
}

// drag is the per-drag data captured at selectStart.
type drag struct {
	anchor  geometry.Point
	started bool
}

// Controller turns pointer sessions into cell selections.
type Controller struct {
	source event.Source
	host   Host
	config Config
	cb     Callbacks

	sessions *mouse.Controller

	state State
	drag  drag
}

// New creates a detached controller.
func New(source event.Source, host Host, config Config, cb Callbacks) (*Controller, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if host == nil {
		return nil, ErrNilHost
	}
	if cb.OnSelectSlot == nil {
		return nil, ErrNoSelectSlot
	}
	return &Controller{
		source: source,
		host:   host,
		config: config,
		cb:     cb,
		state:  IdleState(),
	}, nil
}

// Attach subscribes to the event source unless the mode is disabled.
// Attaching an attached controller is a no-op.
func (c *Controller) Attach() error {
	if c.config.Mode == ModeDisabled || c.sessions != nil {
		return nil
	}

	m := mouse.NewController(c.source, mouse.Config{ClickTolerance: c.config.ClickTolerance})
	m.OnSelectStart(c.handleSelectStart)
	m.OnSelecting(c.handleSelecting)
	m.OnClick(c.handleClick)
	m.OnSelect(c.handleSelect)
	m.OnMouseDown(c.handleMouseDown)
	m.OnCancel(c.reset)

	if err := m.Attach(); err != nil {
		return fmt.Errorf("attaching selection: %w", err)
	}
	c.sessions = m
	return nil
}

// Teardown detaches from the event source and discards any drag without
// notifying the host. It is safe to call repeatedly.
func (c *Controller) Teardown() {
	if c.sessions == nil {
		return
	}
	c.sessions.Teardown()
	c.sessions = nil
	c.reset()
}

// SetMode changes the mode, attaching or detaching on transitions to and
// from ModeDisabled.
func (c *Controller) SetMode(mode Mode) error {
	c.config.Mode = mode
	if mode == ModeDisabled {
		c.Teardown()
		return nil
	}
	return c.Attach()
}

// Attached reports whether handlers are registered.
func (c *Controller) Attached() bool {
	return c.sessions != nil
}

// Config returns the controller configuration.
func (c *Controller) Config() Config {
	return c.config
}

// State returns the current selection state.
func (c *Controller) State() State {
	return c.state
}

// IsCellSelected reports whether cell idx is inside the live drag range.
func (c *Controller) IsCellSelected(idx int) bool {
	s := c.state
	return s.Selecting && idx >= s.StartIdx && idx <= s.EndIdx
}

func (c *Controller) handleSelectStart(box geometry.Box) {
	c.drag = drag{anchor: box.Point(), started: true}
	if c.cb.OnSelectStart != nil {
		c.cb.OnSelectStart(box)
	}
}

func (c *Controller) handleSelecting(box geometry.Box) {
	cells := geometry.NoRange
	if c.sessions != nil && c.drag.started {
		region := c.host.MeasureRegion()
		if c.sessions.IsSelected(region) {
			cells = geometry.DateCellSelection(c.drag.anchor, region, box, c.config.RowLength, c.config.RTL)
		}
	}

	c.state = State{Selecting: true, StartIdx: cells.StartIdx, EndIdx: cells.EndIdx}
	if c.cb.OnSelecting != nil {
		c.cb.OnSelecting(c.state)
	}
}

func (c *Controller) handleClick(p geometry.Point) {
	if !c.host.HitTest(p) {
		region := c.host.MeasureRegion()
		if geometry.PointInBox(region, p) {
			width := geometry.SlotWidth(region, c.config.RowLength)
			cell := geometry.CellAtX(region, p.X, width, c.config.RTL, c.config.RowLength)
			c.selectSlot(cell, cell, ActionClick)
		}
	}
	c.reset()
}

func (c *Controller) handleSelect(geometry.Box) {
	final := c.state
	c.selectSlot(final.StartIdx, final.EndIdx, ActionSelect)
	c.reset()
	if c.cb.OnSelectEnd != nil {
		c.cb.OnSelectEnd(final)
	}
}

func (c *Controller) handleMouseDown(box geometry.Box) bool {
	if c.config.Mode != ModeIgnoreExcluded {
		return true
	}
	return !c.host.HitTest(box.Point())
}

// selectSlot reports a slot when both indices are resolved.
func (c *Controller) selectSlot(start, end int, action Action) {
	if start == geometry.NoCell || end == geometry.NoCell {
		return
	}
	c.cb.OnSelectSlot(Slot{Start: start, End: end, Action: action})
}

func (c *Controller) reset() {
	c.state = IdleState()
	c.drag = drag{}
}
