package dist

import (
	"errors"
	"fmt"
)

// Error represents an invariant or precondition violation detected while
// constructing a distribution.
//
// All combinators validate their preconditions eagerly and fail fast with
// one of the codes below; there is no retry, no recovery, and no partial
// distribution concept. Callers that receive an Error never receive a
// distribution value alongside it.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the combinator that detected the violation.
	Op string

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes construction errors.
type ErrorCode string

const (
	// ErrCodeInvalidWeights indicates a negative weight or a weight vector
	// whose sum deviates from 1 beyond Tolerance.
	ErrCodeInvalidWeights ErrorCode = "INVALID_WEIGHTS"

	// ErrCodeEmptyDomain indicates a constructor was given an empty
	// outcome (sub)domain.
	ErrCodeEmptyDomain ErrorCode = "EMPTY_DOMAIN"

	// ErrCodeDivisionByZero indicates a renormalization whose complement
	// is exactly zero (restricting an outcome carrying all mass).
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeOutOfRange indicates a malformed argument: a mixing weight
	// outside [0,1], a non-bijective permutation, a duplicated outcome,
	// or an index outside the domain.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidWeights returns true if the error carries ErrCodeInvalidWeights.
// Uses errors.As to handle wrapped errors.
func IsInvalidWeights(err error) bool { return hasCode(err, ErrCodeInvalidWeights) }

// IsEmptyDomain returns true if the error carries ErrCodeEmptyDomain.
func IsEmptyDomain(err error) bool { return hasCode(err, ErrCodeEmptyDomain) }

// IsDivisionByZero returns true if the error carries ErrCodeDivisionByZero.
func IsDivisionByZero(err error) bool { return hasCode(err, ErrCodeDivisionByZero) }

// IsOutOfRange returns true if the error carries ErrCodeOutOfRange.
func IsOutOfRange(err error) bool { return hasCode(err, ErrCodeOutOfRange) }

func hasCode(err error, code ErrorCode) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

func newInvalidWeightsError(op, format string, args ...any) *Error {
	return &Error{Code: ErrCodeInvalidWeights, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newEmptyDomainError(op, format string, args ...any) *Error {
	return &Error{Code: ErrCodeEmptyDomain, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newDivisionByZeroError(op, format string, args ...any) *Error {
	return &Error{Code: ErrCodeDivisionByZero, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newOutOfRangeError(op, format string, args ...any) *Error {
	return &Error{Code: ErrCodeOutOfRange, Op: op, Message: fmt.Sprintf(format, args...)}
}
