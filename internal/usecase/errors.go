package usecase

import (
	"errors"
	"fmt"

	"artstudio-booking/internal/dto/response"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// ErrPaymentRequired means the payment behind a booking could not be verified
// or collected.
var ErrPaymentRequired = errors.New("payment required")

// Error carries a customer-facing message and the category handlers map to
// an HTTP status.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func paymentRejected(err error, message string) *Error {
	return &Error{Kind: ErrPaymentRequired, Message: message, Err: err}
}

// SelectionChangedError means current availability no longer matches what the
// customer selected. Nothing was charged.
type SelectionChangedError struct {
	Adjustments []response.AdjustmentResponse
	Message     string
}

func (e *SelectionChangedError) Error() string {
	return e.Message
}

func (e *SelectionChangedError) Is(target error) bool {
	return target == ErrConflict
}
