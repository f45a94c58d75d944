package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avdva/qfixed"
)

// Vector is a single test case.
type Vector struct {
	ID       string    `yaml:"id"`
	Desc     string    `yaml:"desc"`
	Op       qfixed.Op `yaml:"op"`
	Width    int       `yaml:"width"`
	A        Operand   `yaml:"a"`
	B        Operand   `yaml:"b"`
	Expected Operand   `yaml:"expected"`
	Status   Expect    `yaml:"status"`
	// Epsilon is the allowed absolute error. Defaults to 1.1 LSB of the format.
	Epsilon *float64 `yaml:"epsilon"`
}

// Operand is a number or a symbol bound to a format, like "-max" or "half_lsb".
type Operand struct {
	value  float64
	symbol string
	neg    bool
}

var symbols = map[string]func(c calculator) float64{
	"max":       func(c calculator) float64 { return c.RealMax() },
	"min":       func(c calculator) float64 { return c.RealMin() },
	"lsb":       func(c calculator) float64 { return c.Resolution() },
	"half_lsb":  func(c calculator) float64 { return c.Resolution() / 2 },
	"below_res": func(c calculator) float64 { return c.Resolution() * 0.49 },
	"nan":       func(calculator) float64 { return math.NaN() },
}

// Num returns an operand with a fixed value.
func Num(v float64) Operand {
	return Operand{value: v}
}

// ParseOperand parses a number or a symbol.
func ParseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	name := strings.ToLower(strings.TrimPrefix(s, "-"))
	if _, found := symbols[name]; found {
		return Operand{symbol: name, neg: strings.HasPrefix(s, "-")}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("bad operand %q", s)
	}
	return Operand{value: v}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a scalar", node.Line)
	}
	parsed, err := ParseOperand(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = parsed
	return nil
}

// Resolve returns the value of the operand for the given format.
func (o Operand) Resolve(c calculator) float64 {
	v := o.value
	if o.symbol != "" {
		v = symbols[o.symbol](c)
	}
	if o.neg {
		return -v
	}
	return v
}

func (o Operand) String() string {
	if o.symbol == "" {
		return strconv.FormatFloat(o.value, 'g', -1, 64)
	}
	if o.neg {
		return "-" + o.symbol
	}
	return o.symbol
}

// Expect is the class of an operation outcome.
type Expect uint8

const (
	expectOK Expect = iota
	expectSaturated
	expectDivByZero
	expectInvalid
)

var expectNames = [...]string{"ok", "saturated", "div_by_zero", "invalid"}

func (e Expect) String() string {
	if int(e) < len(expectNames) {
		return expectNames[e]
	}
	return fmt.Sprintf("Expect(%d)", uint8(e))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Expect) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range expectNames {
		if s == name {
			*e = Expect(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}

// classify maps an error returned by the library to an outcome class.
func classify(err error) Expect {
	switch {
	case err == nil:
		return expectOK
	case errors.Is(err, qfixed.ErrDivisionByZero):
		return expectDivByZero
	case errors.Is(err, qfixed.ErrSaturated):
		return expectSaturated
	default:
		return expectInvalid
	}
}

type calculator interface {
	Apply(op qfixed.Op, a, b float64, dst *float64) error
	RealMax() float64
	RealMin() float64
	Resolution() float64
	String() string
}

func calculatorFor(width int) (calculator, error) {
	switch width {
	case 8:
		return qfixed.Narrow, nil
	case 16:
		return qfixed.Wide, nil
	default:
		return nil, fmt.Errorf("unsupported width %d", width)
	}
}

// parseVectors decodes a YAML list of vectors.
func parseVectors(data []byte) ([]Vector, error) {
	var vectors []Vector
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		return nil, err
	}
	for i, v := range vectors {
		if _, err := calculatorFor(v.Width); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
	}
	return vectors, nil
}

// Result is the outcome of a vector.
type Result struct {
	Vector
	A, B, Expected, Got float64
	Actual              Expect
	Pass                bool
}

// run executes a vector. For a division by zero dst must stay untouched,
// so Got is NaN in this case.
func run(v Vector) (Result, error) {
	c, err := calculatorFor(v.Width)
	if err != nil {
		return Result{}, err
	}
	r := Result{
		Vector:   v,
		A:        v.A.Resolve(c),
		B:        v.B.Resolve(c),
		Expected: v.Expected.Resolve(c),
		Got:      math.NaN(),
	}
	eps := 1.1 * c.Resolution()
	if v.Epsilon != nil {
		eps = *v.Epsilon
	}
	r.Actual = classify(c.Apply(v.Op, r.A, r.B, &r.Got))
	if r.Actual != v.Status {
		return r, nil
	}
	if v.Status == expectDivByZero {
		r.Pass = math.IsNaN(r.Got)
	} else {
		r.Pass = math.Abs(r.Got-r.Expected) <= eps
	}
	return r, nil
}

func (r Result) String() string {
	verdict := "FAIL"
	if r.Pass {
		verdict = "PASS"
	}
	got := "untouched"
	if !math.IsNaN(r.Got) {
		got = strconv.FormatFloat(r.Got, 'g', 8, 64)
	}
	return fmt.Sprintf("[%s] %s (%d-bit, %v): A=%.8g B=%.8g Exp=%.8g Got=%s Stat(exp/act)=%v/%v %s",
		verdict, r.ID, r.Width, r.Op, r.A, r.B, r.Expected, got, r.Status, r.Actual, r.Desc)
}
