package reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks offerings whose availability data is inconsistent.
	ErrConfiguration = errors.New("reservation unavailable")

	ErrCapacityExceeded        = errors.New("capacity exceeded")
	ErrIncompleteSelection     = errors.New("incomplete selection")
	ErrEntryNotFound           = errors.New("date not selected")
	ErrSlotNotFound            = errors.New("time slot not found")
	ErrNotSlotted              = errors.New("offering does not use time slots")
	ErrInvalidParticipantCount = errors.New("participant count must be at least 1")
	ErrUnknownAddOn            = errors.New("unknown add-on choice")
)

// ConfigurationError describes why an offering's availability cannot be indexed.
type ConfigurationError struct {
	Date   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Date == "" {
		return fmt.Sprintf("invalid availability configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid availability configuration for %s: %s", e.Date, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// CapacityError reports a participant count that was clamped to what is left.
type CapacityError struct {
	Date      DateKey
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d spots left on %s, requested %d", e.Available, e.Date, e.Requested)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// IncompleteSelectionError names what blocks checkout.
type IncompleteSelectionError struct {
	Message string
}

func (e *IncompleteSelectionError) Error() string {
	return e.Message
}

func (e *IncompleteSelectionError) Is(target error) bool {
	return target == ErrIncompleteSelection
}
