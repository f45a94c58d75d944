// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"golang.org/x/image/math/fixed"

	"github.com/avdva/qfixed/internal/mathutil"
)

// ToInt26_6 converts raw to a 26.6 fixed-point number.
// Fractional bits beyond 6 are rounded to nearest, ties away from zero.
func (f Format[T, W]) ToInt26_6(raw T) fixed.Int26_6 {
	return fixed.Int26_6(rescale(int64(raw), uint(f.frac), 6))
}

// FromInt26_6 converts a 26.6 fixed-point number to a raw value, clamping it to the container.
func (f Format[T, W]) FromInt26_6(v fixed.Int26_6) (T, Status) {
	return f.fromFixed(int64(v), 6)
}

// ToInt52_12 converts raw to a 52.12 fixed-point number.
// Every format up to 12 fractional bits converts exactly.
func (f Format[T, W]) ToInt52_12(raw T) fixed.Int52_12 {
	return fixed.Int52_12(rescale(int64(raw), uint(f.frac), 12))
}

// FromInt52_12 converts a 52.12 fixed-point number to a raw value, clamping it to the container.
func (f Format[T, W]) FromInt52_12(v fixed.Int52_12) (T, Status) {
	return f.fromFixed(int64(v), 12)
}

func (f Format[T, W]) fromFixed(v int64, frac uint) (T, Status) {
	const limit = 1 << 62
	// far outside of any container, keeps RoundShift from overflowing.
	v, _ = mathutil.Clamp(v, -limit, limit)
	to := uint(f.frac)
	if to > frac {
		// shifting left only grows the magnitude, so check the range first.
		if v > int64(f.RawMax()) {
			return f.RawMax(), StatusSaturated
		}
		if v < int64(f.RawMin()) {
			return f.RawMin(), StatusSaturated
		}
	}
	r, ok := mathutil.Clamp(rescale(v, frac, to), int64(f.RawMin()), int64(f.RawMax()))
	if !ok {
		return T(r), StatusSaturated
	}
	return T(r), StatusOK
}

// rescale changes the number of fractional bits of v.
// v must be small enough not to overflow when scaled up.
func rescale(v int64, from, to uint) int64 {
	if to >= from {
		return v << (to - from)
	}
	return mathutil.RoundShift(v, from-to)
}
