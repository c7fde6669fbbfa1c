// Package selection reduces pointer sessions over a row of day cells to a
// selected cell range and reports it to the host.
//
// A Controller sits on top of a mouse.Controller and the geometry
// functions. While the user drags it keeps a State{Selecting, StartIdx,
// EndIdx} the host can render from; when the session ends it reports a
// Slot{Start, End, Action} through Callbacks.OnSelectSlot.
//
// # Host Contract
//
// The host supplies a Host that measures the row on demand and tells
// whether a point lands on an excluded sub-element (an item already placed
// in a cell):
//
//	type calendarRow struct{ ... }
//	func (r *calendarRow) MeasureRegion() geometry.Box   { ... }
//	func (r *calendarRow) HitTest(p geometry.Point) bool { ... }
//
// OnSelectSlot is called at most once per session and only with both
// indices resolved. OnSelectStart and OnSelectEnd bracket every drag,
// whether or not it produced a range. A click on an excluded sub-element is
// swallowed. With ModeIgnoreExcluded a press on an excluded sub-element
// does not start a session at all.
//
// # Lifecycle
//
//	c, err := selection.New(bus, row, selection.Config{RowLength: 7, Mode: selection.ModeEnabled}, cb)
//	if err != nil { ... }
//	if err := c.Attach(); err != nil { ... }
//	defer c.Teardown()
//
// Teardown is idempotent and drops an in-progress drag without notifying
// the host.
package selection
