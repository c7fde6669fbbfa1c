// Package event provides the pointer event source the selection engine
// listens to.
//
// Consumers depend on the Source interface, never on a process-wide
// listener table: the host constructs a Bus (or its own Source), wires its
// platform input into Dispatch, and hands the Source to whatever needs
// pointer input.
//
// # Event Kinds
//
//	pointer.down   - a button went down at Point
//	pointer.move   - the pointer moved while a button is held
//	pointer.up     - the button was released at Point
//	pointer.click  - the platform reported a click at Point
//
// # Delivery
//
// Dispatch is synchronous: handlers run in the caller's goroutine, in
// priority order and, within a priority, in subscription order. The
// subscriber table is snapshotted before delivery, so a handler may
// unsubscribe itself (or others) while an event is being delivered; the
// change takes effect from the next Dispatch.
//
// A panicking handler is recovered and reported through the OnPanic hook;
// the remaining handlers still receive the event.
//
//	bus := event.NewBus()
//	id, err := bus.Subscribe(event.KindPointerDown, func(p event.Pointer) {
//	    fmt.Println("down at", p.Point)
//	})
//	...
//	bus.Dispatch(event.Pointer{Kind: event.KindPointerDown, Point: pt})
//	_ = bus.Unsubscribe(event.KindPointerDown, id)
package event
