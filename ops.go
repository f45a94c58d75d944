// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"fmt"
	"strings"
)

// Op is an arithmetic operation.
type Op uint8

const (
	// OpAdd is a+b.
	OpAdd Op = iota
	// OpSub is a-b.
	OpSub
	// OpMul is a*b.
	OpMul
	// OpDiv is a/b.
	OpDiv
)

var opNames = [...]string{"ADD", "SUB", "MUL", "DIV"}

// Ops lists all operations.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// ParseOp parses an operation name. Names are case-insensitive,
// both "mul" and "mult" mean OpMul.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return OpAdd, nil
	case "sub":
		return OpSub, nil
	case "mul", "mult":
		return OpMul, nil
	case "div":
		return OpDiv, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOp, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (op Op) MarshalText() ([]byte, error) {
	if int(op) >= len(opNames) {
		return nil, fmt.Errorf("%w %d", ErrUnknownOp, uint8(op))
	}
	return []byte(strings.ToLower(opNames[op])), nil
}

// Apply converts a and b to the format, performs op on the raw values,
// and stores the real result into dst.
//
// The result is written even if it saturated, in which case ErrSaturated is returned.
// Apply returns without touching dst if dst is nil, op is unknown,
// or a division's divisor converts to zero (ErrDivisionByZero).
// A NaN operand yields ErrInvalidInput.
func (f Format[T, W]) Apply(op Op, a, b float64, dst *float64) error {
	if dst == nil {
		return ErrNilDestination
	}
	calc := f.rawOp(op)
	if calc == nil {
		return fmt.Errorf("%w %d", ErrUnknownOp, uint8(op))
	}
	ra, sa := f.FromFloat(a)
	rb, sb := f.FromFloat(b)
	if op == OpDiv && rb == 0 {
		f.logFailure(op, a, b, ErrDivisionByZero)
		return ErrDivisionByZero
	}
	r, sr := calc(ra, rb)
	*dst = f.Float(r)
	st := sa.And(sb).And(sr)
	if !st.OK() {
		f.logFailure(op, a, b, st.Err(), "raw_a", ra, "raw_b", rb, "raw", r)
	}
	return st.Err()
}

// Add stores a+b into dst. See Apply.
func (f Format[T, W]) Add(a, b float64, dst *float64) error {
	return f.Apply(OpAdd, a, b, dst)
}

// Sub stores a-b into dst. See Apply.
func (f Format[T, W]) Sub(a, b float64, dst *float64) error {
	return f.Apply(OpSub, a, b, dst)
}

// Mul stores a*b into dst. See Apply.
func (f Format[T, W]) Mul(a, b float64, dst *float64) error {
	return f.Apply(OpMul, a, b, dst)
}

// Div stores a/b into dst. See Apply.
func (f Format[T, W]) Div(a, b float64, dst *float64) error {
	return f.Apply(OpDiv, a, b, dst)
}

// Add8 adds two values in the Narrow format.
func Add8(a, b float64, dst *float64) error { return Narrow.Add(a, b, dst) }

// Sub8 subtracts two values in the Narrow format.
func Sub8(a, b float64, dst *float64) error { return Narrow.Sub(a, b, dst) }

// Mul8 multiplies two values in the Narrow format.
func Mul8(a, b float64, dst *float64) error { return Narrow.Mul(a, b, dst) }

// Div8 divides two values in the Narrow format.
func Div8(a, b float64, dst *float64) error { return Narrow.Div(a, b, dst) }

// Add16 adds two values in the Wide format.
func Add16(a, b float64, dst *float64) error { return Wide.Add(a, b, dst) }

// Sub16 subtracts two values in the Wide format.
func Sub16(a, b float64, dst *float64) error { return Wide.Sub(a, b, dst) }

// Mul16 multiplies two values in the Wide format.
func Mul16(a, b float64, dst *float64) error { return Wide.Mul(a, b, dst) }

// Div16 divides two values in the Wide format.
func Div16(a, b float64, dst *float64) error { return Wide.Div(a, b, dst) }
