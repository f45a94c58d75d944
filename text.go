// Copyright 2020 Aleksandr Demakin. All rights reserved.

package qfixed

import (
	"strconv"
	"strings"

	"github.com/avdva/qfixed/internal/mathutil"
)

const (
	delim = '.'
)

var (
	// enough for 15 fractional bits.
	manyZeros = "000000000000000"
)

// Text returns the exact decimal representation of raw, like "-6.25".
// A binary fraction always has a finite decimal expansion: raw/2^f = raw*5^f/10^f.
func (f Format[T, W]) Text(raw T) string {
	var builder strings.Builder
	f.toStringsBuilder(raw, &builder)
	return builder.String()
}

func (f Format[T, W]) toStringsBuilder(raw T, builder *strings.Builder) {
	switch mathutil.Sign(raw) {
	case 0:
		builder.WriteRune('0')
		return
	case -1:
		builder.WriteRune('-')
	}
	m := mathutil.Abs(int64(raw))
	e := int(f.frac)
	m *= mathutil.Pow5(e)
	// remove trailing zeros in the fractional part.
	for e > 0 && m%10 == 0 {
		m /= 10
		e--
	}
	s := strconv.FormatInt(m, 10)
	switch diff := len(s) - e; {
	case e == 0:
		builder.WriteString(s)
	case diff <= 0: // add leading zeros and a delimiter
		builder.WriteRune('0')
		builder.WriteRune(delim)
		builder.WriteString(manyZeros[:-diff])
		builder.WriteString(s)
	default: // insert a delimiter
		builder.WriteString(s[:diff])
		builder.WriteRune(delim)
		builder.WriteString(s[diff:])
	}
}
