package mathutil

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	pow5Table = [...]int64{ // up to 5^27
		1, 5, 25, 125, 625,
		3125, 15625, 78125, 390625, 1953125,
		9765625, 48828125, 244140625, 1220703125, 6103515625,
		30517578125, 152587890625, 762939453125, 3814697265625, 19073486328125,
		95367431640625, 476837158203125, 2384185791015625, 11920928955078125, 59604644775390625,
		298023223876953125, 1490116119384765625, 7450580596923828125,
	}
)

// Pow5 returns 5^pow, or 0 if it does not fit an int64.
func Pow5(pow int) int64 {
	if pow < 0 || pow >= len(pow5Table) {
		return 0
	}
	return pow5Table[pow]
}

// BitSize returns the number of bits in a value of type T.
func BitSize[T constraints.Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// Abs returns the absolute value of val.
// For the minimum value of T the result overflows, callers widen first.
func Abs[T constraints.Signed](val T) T {
	mask := val >> (BitSize[T]() - 1)
	return (val + mask) ^ mask
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v>>(BitSize[T]()-1))&1]
}

// SameSign reports whether a and b have the same sign bit.
func SameSign[T constraints.Signed](a, b T) bool {
	return (a ^ b) >= 0
}

// RoundShift divides v by 2^n, rounding to nearest with ties away from zero.
// The magnitude of v plus 2^(n-1) must fit T.
func RoundShift[T constraints.Signed](v T, n uint) T {
	if n == 0 {
		return v
	}
	half := T(1) << (n - 1)
	if v < 0 {
		return -((-v + half) >> n)
	}
	return (v + half) >> n
}

// Clamp limits v to [lo, hi]. The second result is false if v was changed.
func Clamp[T constraints.Integer](v, lo, hi T) (T, bool) {
	switch {
	case v > hi:
		return hi, false
	case v < lo:
		return lo, false
	default:
		return v, true
	}
}
