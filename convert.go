// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"math"

	"github.com/shopspring/decimal"
)

// FromFloat converts v to the nearest raw value, rounding halfway cases away from zero.
// Values out of range are clamped with StatusSaturated, infinities included.
// NaN converts to zero with StatusInvalid.
func (f Format[T, W]) FromFloat(v float64) (T, Status) {
	if math.IsNaN(v) {
		return 0, StatusInvalid
	}
	// float64 holds every integer in range exactly, so the bounds are checked
	// before narrowing.
	scaled := math.Round(v * float64(f.Scale()))
	if scaled > float64(f.RawMax()) {
		return f.RawMax(), StatusSaturated
	}
	if scaled < float64(f.RawMin()) {
		return f.RawMin(), StatusSaturated
	}
	return T(scaled), StatusOK
}

// Float returns the real value of raw.
func (f Format[T, W]) Float(raw T) float64 {
	return float64(raw) / float64(f.Scale())
}

// FromDecimal converts d to the nearest raw value without going through a float.
// Rounding and saturation are the same as in FromFloat.
func (f Format[T, W]) FromDecimal(d decimal.Decimal) (T, Status) {
	scaled := d.Mul(decimal.New(int64(f.Scale()), 0)).Round(0)
	if scaled.Cmp(decimal.New(int64(f.RawMax()), 0)) > 0 {
		return f.RawMax(), StatusSaturated
	}
	if scaled.Cmp(decimal.New(int64(f.RawMin()), 0)) < 0 {
		return f.RawMin(), StatusSaturated
	}
	return T(scaled.IntPart()), StatusOK
}

// FromString parses a decimal number, like "-3.125" or "1e-2", into a raw value.
// If the number is out of range, the clamped value is returned with ErrSaturated.
func (f Format[T, W]) FromString(s string) (T, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	raw, st := f.FromDecimal(d)
	return raw, st.Err()
}

// MustFromString is like FromString, but panics on any error, including saturation.
func (f Format[T, W]) MustFromString(s string) T {
	raw, err := f.FromString(s)
	if err != nil {
		panic(err)
	}
	return raw
}
