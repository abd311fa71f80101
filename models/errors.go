package models

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrStore           = errors.New("store error")
	ErrNotification    = errors.New("notification error")
)

// Error is a domain failure with a client-facing message.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NewValidationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// NewStoreError wraps a persistence failure.
func NewStoreError(msg string, err error) error {
	return &Error{Kind: ErrStore, Message: msg, Err: err}
}

func NewNotificationError(msg string, err error) error {
	return &Error{Kind: ErrNotification, Message: msg, Err: err}
}

// Message returns the client-facing message of err, or fallback when err is not a domain error.
func Message(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return fallback
}
