package selection

import "errors"

// Sentinel errors for the selection controller.
var (
	// ErrNoSelectSlot is returned when Callbacks.OnSelectSlot is nil.
	ErrNoSelectSlot = errors.New("OnSelectSlot callback is required")

	// ErrNilSource is returned when no event source is provided.
	ErrNilSource = errors.New("event source cannot be nil")

	// ErrNilHost is returned when no host is provided.
	ErrNilHost = errors.New("host cannot be nil")

	// ErrInvalidMode is returned by ParseMode for unknown names.
	ErrInvalidMode = errors.New("invalid selection mode")
)
