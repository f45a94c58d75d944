// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"github.com/avdva/qfixed/internal/mathutil"
)

// AddRaw returns a+b, clamped to the container bounds.
func (f Format[T, W]) AddRaw(a, b T) (T, Status) {
	return f.saturate(W(a) + W(b))
}

// SubRaw returns a-b, clamped to the container bounds.
func (f Format[T, W]) SubRaw(a, b T) (T, Status) {
	return f.saturate(W(a) - W(b))
}

// MulRaw returns a*b, rounded to the nearest raw value (ties away from zero)
// and clamped to the container bounds.
func (f Format[T, W]) MulRaw(a, b T) (T, Status) {
	// the product has 2*frac fractional bits.
	p := W(a) * W(b)
	return f.saturate(mathutil.RoundShift(p, uint(f.frac)))
}

// DivRaw returns a/b, rounded to the nearest raw value (ties away from zero)
// and clamped to the container bounds.
// b must not be zero, otherwise zero is returned with StatusInvalid.
func (f Format[T, W]) DivRaw(a, b T) (T, Status) {
	if b == 0 {
		return 0, StatusInvalid
	}
	neg := !mathutil.SameSign(a, b)
	num := mathutil.Abs(W(a)) << f.frac
	den := mathutil.Abs(W(b))
	q := (num + den>>1) / den
	if neg {
		q = -q
	}
	return f.saturate(q)
}

func (f Format[T, W]) rawOp(op Op) func(a, b T) (T, Status) {
	switch op {
	case OpAdd:
		return f.AddRaw
	case OpSub:
		return f.SubRaw
	case OpMul:
		return f.MulRaw
	case OpDiv:
		return f.DivRaw
	default:
		return nil
	}
}
