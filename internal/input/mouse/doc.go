// Package mouse turns raw pointer events into selection session events.
//
// A Controller subscribes to an event.Source and owns at most one pointer
// session at a time. It decides whether a press becomes a click or a drag
// and reports the outcome to one listener per session event:
//
//	selectStart(box)   first qualifying move of a session, box at press time
//	selecting(box)     every move while dragging, box spans press..current
//	click(point)       release without a qualifying move, or an external click
//	select(box)        release after dragging
//	mousedown(box)     asked at press time; returning false vetoes the session
//	cancel()           a new press replaced an unfinished session
//
// # Session Phases
//
//	Idle ──down──▶ AwaitingClickDecision ──move──▶ Dragging
//	  ▲                    │                          │
//	  └───────up (click)───┘                          │
//	  └───────────────────────up (select)─────────────┘
//
// Moves within Config.ClickTolerance of the press point do not start a
// drag. Teardown discards the session from any phase without emitting
// anything. Events that arrive without an active session are ignored.
//
// A vetoed session is still tracked so a later release ends it cleanly,
// but it emits no selection events and IsSelected reports false for it.
//
// # Thread Safety
//
// Controller is not safe for concurrent use. Drive it from the goroutine
// that dispatches pointer events; listeners may call back into the
// controller, including Teardown.
package mouse
