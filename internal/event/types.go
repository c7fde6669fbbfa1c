package event

import (
	"time"

	"github.com/dshills/daygrid/internal/geometry"
)

// Kind identifies a pointer event.
type Kind uint8

const (
	// KindNone is the zero kind and is never delivered.
	KindNone Kind = iota
	// KindPointerDown is a button press.
	KindPointerDown
	// KindPointerMove is movement with a button held.
	KindPointerMove
	// KindPointerUp is a button release.
	KindPointerUp
	// KindClick is a platform-reported click.
	KindClick
)

// Kinds lists every deliverable kind.
var Kinds = []Kind{KindPointerDown, KindPointerMove, KindPointerUp, KindClick}

// String returns the dotted name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPointerDown:
		return "pointer.down"
	case KindPointerMove:
		return "pointer.move"
	case KindPointerUp:
		return "pointer.up"
	case KindClick:
		return "pointer.click"
	default:
		return "none"
	}
}

// Valid reports whether k can be subscribed to and dispatched.
func (k Kind) Valid() bool {
	return k >= KindPointerDown && k <= KindClick
}

// Pointer is a single pointer event in host coordinates.
type Pointer struct {
	Kind  Kind
	Point geometry.Point

	// Timestamp is when the host observed the event. Zero is allowed.
	Timestamp time.Time
}

// Handler receives pointer events.
type Handler func(Pointer)

// SubscriptionID identifies a subscription for Unsubscribe.
type SubscriptionID string

// Priority determines handler execution order.
// Lower values execute first.
type Priority int

const (
	// PriorityCritical is for the selection engine itself.
	PriorityCritical Priority = 0

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow is for tracing and logging handlers that run last.
	PriorityLow Priority = 300
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityCritical:
		return "critical"
	case p <= PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}
