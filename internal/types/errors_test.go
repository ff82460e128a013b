package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewCardError() {
	// Setup
	code := ErrInvalidArgument
	message := "card rank '42' is out of range"

	// Execute
	err := NewCardError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrInsufficientCards
	message := "deck exhausted"
	underlying := errors.New("draw failed")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *CardError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewCardError(ErrInvalidArgument, "unexpected suit 'Cups'"),
			expected: "INVALID_ARGUMENT: unexpected suit 'Cups'",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrInsufficientCards, "deck exhausted", errors.New("draw failed")),
			expected: "INSUFFICIENT_CARDS: deck exhausted (draw failed)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestUnwrap() {
	// Setup
	underlying := errors.New("draw failed")
	err := WrapError(ErrInsufficientCards, "deck exhausted", underlying)

	// Execute & Assert
	s.Equal(underlying, err.Unwrap(), "Unwrap should return the underlying error")
	s.True(errors.Is(err, underlying), "errors.Is should find the underlying error")

	plain := NewCardError(ErrInvalidArgument, "bad rank")
	s.Nil(plain.Unwrap(), "Unwrap should return nil when there is no underlying error")
}

func (s *ErrorTestSuite) TestIsCardError() {
	// Setup
	cardErr := NewCardError(ErrInvalidArgument, "unexpected suit 'Cups'")
	regularErr := errors.New("regular error")

	// Test cases
	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching card error",
			err:      cardErr,
			code:     ErrInvalidArgument,
			expected: true,
		},
		{
			name:     "Non-matching card error",
			err:      cardErr,
			code:     ErrInsufficientCards,
			expected: false,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrInvalidArgument,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrInvalidArgument,
			expected: false,
		},
	}

	// Execute and assert
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := IsCardError(tc.err, tc.code)
			s.Equal(tc.expected, result, "IsCardError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	cardErr := NewCardError(ErrInsufficientCards, "deck exhausted")
	regularErr := errors.New("regular error")

	// Test cases
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Card error",
			err:      cardErr,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	// Execute and assert
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *CardError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(cardErr, target, "Target should be set to the card error")
			}
		})
	}
}
