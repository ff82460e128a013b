package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// ErrInvalidArgument indicates a card was constructed from an
	// unrecognized suit or an out-of-range rank
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrInsufficientCards indicates a draw asked for more cards than
	// the deck still holds
	ErrInsufficientCards ErrorCode = "INSUFFICIENT_CARDS"
)

// CardError represents a card- or deck-related error
type CardError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError
func NewCardError(code ErrorCode, message string) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a CardError
func WrapError(code ErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCardError checks if an error is a CardError and has a specific code
func IsCardError(err error, code ErrorCode) bool {
	var cardErr *CardError
	if err == nil {
		return false
	}
	if ok := As(err, &cardErr); !ok {
		return false
	}
	return cardErr.Code == code
}

// As is a helper function to safely type assert an error to a CardError
func As(err error, target **CardError) bool {
	if target == nil {
		return false
	}
	if cardErr, ok := err.(*CardError); ok {
		*target = cardErr
		return true
	}
	return false
}
