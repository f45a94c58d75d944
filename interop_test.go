// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestInt26_6(t *testing.T) {
	a := assert.New(t)
	a.Equal(fixed.I(3), Wide.ToInt26_6(768))
	a.Equal(fixed.Int26_6(-2), Wide.ToInt26_6(-8))  // -8/256 = -2/64
	a.Equal(fixed.Int26_6(1), Wide.ToInt26_6(2))    // 0.5 LSB of 26.6 rounds away from zero
	a.Equal(fixed.Int26_6(-1), Wide.ToInt26_6(-2))  // same for negatives
	a.Equal(fixed.Int26_6(0), Wide.ToInt26_6(1))    // below half an LSB
	a.Equal(fixed.Int26_6(-8<<6), Narrow.ToInt26_6(-128))
	a.Equal(fixed.Int26_6(4), Narrow.ToInt26_6(1)) // 1/16 = 4/64

	tests := []struct {
		v   fixed.Int26_6
		raw int16
		st  Status
	}{
		{fixed.I(3), 768, StatusOK},
		{fixed.Int26_6(-1), -4, StatusOK},
		{fixed.I(127) + 63, 32764, StatusOK},
		{fixed.I(128), 32767, StatusSaturated},
		{fixed.I(-128), -32768, StatusOK},
		{fixed.I(-129), -32768, StatusSaturated},
		{fixed.Int26_6(1<<31 - 1), 32767, StatusSaturated},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			raw, st := Wide.FromInt26_6(test.v)
			a.Equal(test.raw, raw)
			a.Equal(test.st, st)
		})
	}

	raw, st := Narrow.FromInt26_6(fixed.Int26_6(2))
	a.Equal(int8(1), raw) // 2/64 = 0.5/16
	a.Equal(StatusOK, st)
	raw, st = Narrow.FromInt26_6(fixed.Int26_6(-2))
	a.Equal(int8(-1), raw)
	a.Equal(StatusOK, st)
	raw, st = Narrow.FromInt26_6(fixed.I(8))
	a.Equal(int8(127), raw)
	a.Equal(StatusSaturated, st)
}

func TestInt52_12(t *testing.T) {
	a := assert.New(t)
	for i := int(Wide.RawMin()); i <= int(Wide.RawMax()); i += 13 {
		v := Wide.ToInt52_12(int16(i))
		raw, st := Wide.FromInt52_12(v)
		if raw != int16(i) || st != StatusOK {
			a.Failf("round trip failed", "%d -> %v -> %d", i, v, raw)
			return
		}
	}

	f := MustNew[int16, int64](15)
	a.Equal(fixed.Int52_12(1), f.ToInt52_12(4))   // 4/32768 = 0.5/4096
	a.Equal(fixed.Int52_12(-1), f.ToInt52_12(-4)) // same for negatives
	raw, st := f.FromInt52_12(fixed.Int52_12(4096))
	a.Equal(int16(32767), raw)
	a.Equal(StatusSaturated, st)
	raw, st = f.FromInt52_12(fixed.Int52_12(-4096))
	a.Equal(int16(-32768), raw)
	a.Equal(StatusOK, st)
	raw, st = f.FromInt52_12(fixed.Int52_12(-1 << 62))
	a.Equal(int16(-32768), raw)
	a.Equal(StatusSaturated, st)

	raw, st = Wide.FromInt52_12(fixed.Int52_12(-1 << 63))
	a.Equal(int16(-32768), raw)
	a.Equal(StatusSaturated, st)
	raw, st = Wide.FromInt52_12(fixed.Int52_12(1<<63 - 1))
	a.Equal(int16(32767), raw)
	a.Equal(StatusSaturated, st)
}
