// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package qfixed implements binary fixed-point (Q-format) arithmetic with
// round-to-nearest (ties away from zero) and saturation, for 8 and 16 bit
// signed containers.
//
// A raw value r of a format with f fractional bits represents the real number
// r / 2^f. All arithmetic is done on raw values in a wider intermediate integer
// type, so no operation ever overflows or wraps: results that do not fit the
// container are clamped to its bounds and reported as saturated.
package qfixed

import (
	"errors"
	"fmt"

	"github.com/avdva/qfixed/internal/mathutil"
)

// ErrBadFormat is returned by New for a format that cannot be represented.
var ErrBadFormat = errors.New("bad format")

// Container is a signed integer type holding raw fixed-point values.
type Container interface {
	~int8 | ~int16
}

// Intermediate is a signed integer type used for widened calculations.
// It must be at least twice as wide as the container.
type Intermediate interface {
	~int32 | ~int64
}

// Format describes a Q-format: a container type T, an intermediate type W,
// and the number of fractional bits.
// The zero value is a valid format with no fractional bits.
// A Format is immutable and safe for concurrent use.
type Format[T Container, W Intermediate] struct {
	frac uint8
}

// New returns a format with fracBits fractional bits.
// fracBits must leave room for the sign bit of T.
func New[T Container, W Intermediate](fracBits uint8) (Format[T, W], error) {
	tBits, wBits := mathutil.BitSize[T](), mathutil.BitSize[W]()
	if uint(fracBits) > tBits-1 {
		return Format[T, W]{}, fmt.Errorf("%w: %d fractional bits do not fit a %d-bit signed container", ErrBadFormat, fracBits, tBits)
	}
	if wBits < 2*tBits {
		return Format[T, W]{}, fmt.Errorf("%w: %d-bit intermediate is too narrow for a %d-bit container", ErrBadFormat, wBits, tBits)
	}
	return Format[T, W]{frac: fracBits}, nil
}

// MustNew is like New, but panics on error.
func MustNew[T Container, W Intermediate](fracBits uint8) Format[T, W] {
	f, err := New[T, W](fracBits)
	if err != nil {
		panic(err)
	}
	return f
}

// FracBits returns the number of fractional bits.
func (f Format[T, W]) FracBits() uint8 {
	return f.frac
}

// Bits returns the width of the container in bits.
func (f Format[T, W]) Bits() int {
	return int(mathutil.BitSize[T]())
}

// Scale returns 2^FracBits.
func (f Format[T, W]) Scale() W {
	return W(1) << f.frac
}

// RawMax returns the highest raw value.
func (f Format[T, W]) RawMax() T {
	return T(W(1)<<(mathutil.BitSize[T]()-1) - 1)
}

// RawMin returns the lowest raw value.
func (f Format[T, W]) RawMin() T {
	return T(-(W(1) << (mathutil.BitSize[T]() - 1)))
}

// Resolution returns the real value of one LSB.
func (f Format[T, W]) Resolution() float64 {
	return 1 / float64(f.Scale())
}

// RealMax returns the highest representable real value.
func (f Format[T, W]) RealMax() float64 {
	return f.Float(f.RawMax())
}

// RealMin returns the lowest representable real value.
func (f Format[T, W]) RealMin() float64 {
	return f.Float(f.RawMin())
}

// String returns the Q notation of the format, like "Q3.4".
func (f Format[T, W]) String() string {
	return fmt.Sprintf("Q%d.%d", f.Bits()-1-int(f.frac), f.frac)
}

// saturate narrows v into the container.
func (f Format[T, W]) saturate(v W) (T, Status) {
	c, ok := mathutil.Clamp(v, W(f.RawMin()), W(f.RawMax()))
	if !ok {
		return T(c), StatusSaturated
	}
	return T(c), StatusOK
}
