package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSize(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint(8), BitSize[int8]())
	a.Equal(uint(16), BitSize[int16]())
	a.Equal(uint(32), BitSize[int32]())
	a.Equal(uint(64), BitSize[uint64]())
}

func TestAbsAndSign(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    int64
		abs  int64
		sign int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{-1, 1, -1},
		{-12345, 12345, -1},
		{math.MaxInt64, math.MaxInt64, 1},
		{-math.MaxInt64, math.MaxInt64, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.abs, Abs(test.v))
			a.Equal(test.sign, Sign(test.v))
		})
	}
	a.Equal(int8(127), Abs(int8(-127)))
	a.Equal(-1, Sign(int8(-128)))
}

func TestSameSign(t *testing.T) {
	a := assert.New(t)
	a.True(SameSign(int32(1), int32(5)))
	a.True(SameSign(int32(-1), int32(-5)))
	a.True(SameSign(int32(0), int32(5)))
	a.False(SameSign(int32(0), int32(-5)))
	a.False(SameSign(int16(-3), int16(3)))
}

func TestRoundShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int32
		n   uint
		res int32
	}{
		{0, 4, 0},
		{7, 4, 0},
		{8, 4, 1},
		{-8, 4, -1},
		{-7, 4, 0},
		{24, 4, 2},
		{-24, 4, -2},
		{23, 4, 1},
		{-1600, 4, -100},
		{5, 0, 5},
		{-5, 0, -5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, RoundShift(test.v, test.n))
		})
	}
}

func TestClamp(t *testing.T) {
	a := assert.New(t)
	v, ok := Clamp[int32](200, -128, 127)
	a.Equal(int32(127), v)
	a.False(ok)
	v, ok = Clamp[int32](-200, -128, 127)
	a.Equal(int32(-128), v)
	a.False(ok)
	v, ok = Clamp[int32](-128, -128, 127)
	a.Equal(int32(-128), v)
	a.True(ok)
}

func TestPow5(t *testing.T) {
	a := assert.New(t)
	p := int64(1)
	for i := 0; i < len(pow5Table); i++ {
		a.Equal(p, Pow5(i))
		p *= 5
	}
	a.Zero(Pow5(-1))
	a.Zero(Pow5(len(pow5Table)))
}

func BenchmarkSign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Sign(int64(i)) + Sign(int64(-i)) + Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
