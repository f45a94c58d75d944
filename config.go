// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

// Build-time Q-format configuration.
// Changing these changes range and resolution, but not the algorithms.
const (
	// NarrowFracBits is the number of fractional bits of the 8-bit format (Q3.4 by default).
	NarrowFracBits = 4
	// WideFracBits is the number of fractional bits of the 16-bit format (Q7.8 by default).
	WideFracBits = 8
)

// both fail to compile if the fraction leaves no room for the sign bit.
const (
	_ uint8 = 7 - NarrowFracBits
	_ uint8 = 15 - WideFracBits
)

type (
	// NarrowFormat is an 8-bit format computed in 32 bits.
	NarrowFormat = Format[int8, int32]
	// WideFormat is a 16-bit format computed in 64 bits.
	WideFormat = Format[int16, int64]
)

var (
	// Narrow is the configured 8-bit format.
	Narrow = MustNew[int8, int32](NarrowFracBits)
	// Wide is the configured 16-bit format.
	Wide = MustNew[int16, int64](WideFracBits)
)
