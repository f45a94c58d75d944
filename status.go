// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import "errors"

var (
	// ErrSaturated means a value was clamped to the container bounds somewhere in the calculation.
	// The (clamped) result is still returned.
	ErrSaturated = errors.New("value saturated")
	// ErrInvalidInput is returned for a not-a-number input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivisionByZero is returned if a divisor converts to raw zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNilDestination is returned if no destination is given for the result.
	ErrNilDestination = errors.New("nil destination")
	// ErrUnknownOp is returned for an operation outside of Op* constants.
	ErrUnknownOp = errors.New("unknown operation")
)

// Status is the outcome of one step of a calculation.
// Statuses are ordered by severity.
type Status uint8

const (
	// StatusOK means the result is exact and in range.
	StatusOK Status = iota
	// StatusSaturated means the result was clamped.
	StatusSaturated
	// StatusInvalid means the input could not be represented at all.
	StatusInvalid
)

// And combines two statuses, returning the worst of them.
// The result is StatusOK only if both are StatusOK.
func (s Status) And(other Status) Status {
	return max(s, other)
}

// OK returns true for StatusOK.
func (s Status) OK() bool {
	return s == StatusOK
}

// Err returns an error for the status, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusSaturated:
		return ErrSaturated
	default:
		return ErrInvalidInput
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSaturated:
		return "saturated"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
