package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event source.
var (
	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidKind is returned for KindNone or an unknown kind.
	ErrInvalidKind = errors.New("invalid event kind")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// PanicError wraps a recovered handler panic.
type PanicError struct {
	// SubscriptionID is the subscription whose handler panicked.
	SubscriptionID SubscriptionID

	// Kind is the event kind being delivered.
	Kind Kind

	// Value is the value passed to panic().
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for subscription %s on %s: %v", e.SubscriptionID, e.Kind, e.Value)
}
