// show-q shows how decimal numbers are represented in the Q3.4 and Q7.8
// formats, mostly for debugging conversions and rounding.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/avdva/qfixed"
)

var formatsFlag = flag.String("formats", "", "comma separated list of `formats` to show. Available formats are: "+strings.Join(formatKeys, ", ")+". Defaults to all formats")

// format is the part of a qfixed format show-q needs, with raw values widened to int64.
type format interface {
	name() string
	bits() int
	convert(d decimal.Decimal) (int64, qfixed.Status)
	text(raw int64) string
	apply(op qfixed.Op, a, b int64) (int64, qfixed.Status)
}

type qformat[T qfixed.Container, W qfixed.Intermediate] struct {
	f qfixed.Format[T, W]
}

func (q qformat[T, W]) name() string { return q.f.String() }
func (q qformat[T, W]) bits() int    { return q.f.Bits() }

func (q qformat[T, W]) convert(d decimal.Decimal) (int64, qfixed.Status) {
	raw, st := q.f.FromDecimal(d)
	return int64(raw), st
}

func (q qformat[T, W]) text(raw int64) string { return q.f.Text(T(raw)) }

func (q qformat[T, W]) apply(op qfixed.Op, a, b int64) (int64, qfixed.Status) {
	var (
		r  T
		st qfixed.Status
	)
	switch op {
	case qfixed.OpAdd:
		r, st = q.f.AddRaw(T(a), T(b))
	case qfixed.OpSub:
		r, st = q.f.SubRaw(T(a), T(b))
	case qfixed.OpMul:
		r, st = q.f.MulRaw(T(a), T(b))
	default:
		r, st = q.f.DivRaw(T(a), T(b))
	}
	return int64(r), st
}

var formatKeys = []string{"narrow", "wide"}

var formats = map[string]format{
	"narrow": qformat[int8, int32]{qfixed.Narrow},
	"wide":   qformat[int16, int64]{qfixed.Wide},
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}
	fs, err := parseFormats(*formatsFlag)
	if err != nil {
		fail(err.Error())
	}
	var nums []decimal.Decimal
	for _, arg := range flag.Args() {
		d, err := decimal.NewFromString(arg)
		if err != nil {
			fail(fmt.Sprintf("bad number %q: %v", arg, err))
		}
		nums = append(nums, d)
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	show(w, fs, nums)
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parseFormats(s string) ([]format, error) {
	if s == "" {
		s = strings.Join(formatKeys, ",")
	}
	var result []format
	for _, name := range strings.Split(s, ",") {
		f, found := formats[strings.TrimSpace(name)]
		if !found {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		result = append(result, f)
	}
	return result, nil
}

func show(w io.Writer, fs []format, nums []decimal.Decimal) {
	for _, f := range fs {
		raws := make([]int64, len(nums))
		for i, d := range nums {
			var st qfixed.Status
			raws[i], st = f.convert(d)
			showRaw(w, f, d.String(), raws[i], st)
		}
		if len(nums) == 2 {
			for _, op := range qfixed.Ops {
				showOp(w, f, op, raws[0], raws[1])
			}
		}
		fmt.Fprintln(w)
	}
}

func showRaw(w io.Writer, f format, label string, raw int64, st qfixed.Status) {
	mask := uint64(1)<<f.bits() - 1
	fmt.Fprintf(w, "%s\t%s\traw %d\t0x%0*x\t%0*b\t= %s\t%v\n",
		f.name(), label, raw, f.bits()/4, uint64(raw)&mask, f.bits(), uint64(raw)&mask, f.text(raw), st)
}

func showOp(w io.Writer, f format, op qfixed.Op, a, b int64) {
	if op == qfixed.OpDiv && b == 0 {
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\tdivision by zero\n", f.name(), op, f.text(a), f.text(b))
		return
	}
	r, st := f.apply(op, a, b)
	fmt.Fprintf(w, "%s\t%v\t%s\t%s\t= %s\t%v\n", f.name(), op, f.text(a), f.text(b), f.text(r), st)
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help+"\n")
	os.Exit(1)
}

const help = `show-q shows the raw representations of decimal numbers in
the Q3.4 and Q7.8 formats.
Usage:
	show-q [-formats] num [num]

Where num is a decimal number like -3.12. If a second number is provided,
also shows the results of all operations between them.
`
