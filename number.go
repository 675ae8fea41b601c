package safeexpr

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// prec is the precision of floating-point results in bits.
const prec = 128

// maxIntExp is the largest integer exponent the power operator accepts
// before giving up with a RangeError. It bounds memory use the way the
// parser's depth limit bounds stack use.
const maxIntExp = 1 << 16

// Number is the result of evaluating an expression: an arbitrary-precision
// integer or a floating-point value. The zero Number is the integer 0.
// Numbers are immutable; operations produce fresh values.
type Number struct {
	i *big.Int
	f *big.Float
}

func intNum(i *big.Int) Number {
	return Number{i: i}
}

func floatNum(f *big.Float) Number {
	return Number{f: f}
}

// parseNumber converts a literal's source text to a Number. Text without a
// decimal point or exponent is an integer; everything else is a float.
func parseNumber(text string) (Number, error) {
	if !strings.ContainsAny(text, ".eE") {
		i, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Number{}, &LiteralError{Text: text}
		}
		return intNum(i), nil
	}
	f, _, err := big.ParseFloat(text, 10, prec, big.ToNearestEven)
	if err != nil {
		return Number{}, &LiteralError{Text: text}
	}
	return floatNum(f), nil
}

// IsInt reports whether the number is of integer kind. Note that a
// floating-point number may still hold an integral value; see Integral.
func (n Number) IsInt() bool {
	return n.f == nil
}

// Integral reports whether the value has no fractional part.
func (n Number) Integral() bool {
	return n.f == nil || n.f.IsInt()
}

// Sign returns -1, 0, or +1 depending on whether the value is negative,
// zero, or positive.
func (n Number) Sign() int {
	if n.f != nil {
		return n.f.Sign()
	}
	if n.i != nil {
		return n.i.Sign()
	}
	return 0
}

// Int returns a copy of the value when the number is of integer kind.
func (n Number) Int() (*big.Int, bool) {
	if n.f != nil {
		return nil, false
	}
	if n.i == nil {
		return new(big.Int), true
	}
	return new(big.Int).Set(n.i), true
}

// Float returns a copy of the value as a floating-point number.
func (n Number) Float() *big.Float {
	f := new(big.Float).SetPrec(prec)
	if n.f != nil {
		return f.Set(n.f)
	}
	if n.i != nil {
		return f.SetInt(n.i)
	}
	return f
}

// Float64 returns the value as a float64, rounded if necessary.
func (n Number) Float64() float64 {
	f, _ := n.Float().Float64()
	return f
}

// String renders the value. Integers have no decimal point; floats always
// have one, so 3/3 renders as "1.0". Format collapses the latter.
func (n Number) String() string {
	if n.f == nil {
		if n.i == nil {
			return "0"
		}
		return n.i.String()
	}
	if n.f.IsInt() {
		return n.f.Text('f', 0) + ".0"
	}
	return n.f.Text('g', -1)
}

// Format renders a result the way a calculator display does: a
// floating-point value with no fractional part is shown in its integer
// form. Front-ends apply this; the evaluator itself never does.
func Format(n Number) string {
	if n.f != nil && n.f.IsInt() {
		i, _ := n.f.Int(nil)
		return i.String()
	}
	return n.String()
}

// The arithmetic below implements the operator table. Integer operands
// stay integer except for true division and negative exponents; any
// floating-point operand promotes the whole operation.

func add(l, r Number) (Number, error) {
	if l.f == nil && r.f == nil {
		return intNum(new(big.Int).Add(l.i, r.i)), nil
	}
	z := l.Float()
	return floatNum(z.Add(z, r.Float())), nil
}

func sub(l, r Number) (Number, error) {
	if l.f == nil && r.f == nil {
		return intNum(new(big.Int).Sub(l.i, r.i)), nil
	}
	z := l.Float()
	return floatNum(z.Sub(z, r.Float())), nil
}

func mul(l, r Number) (Number, error) {
	if l.f == nil && r.f == nil {
		return intNum(new(big.Int).Mul(l.i, r.i)), nil
	}
	z := l.Float()
	return floatNum(z.Mul(z, r.Float())), nil
}

// quo is true division: the result is a float even for integer operands.
func quo(l, r Number) (Number, error) {
	if r.Sign() == 0 {
		return Number{}, &DivisionError{Op: "/"}
	}
	z := l.Float()
	return floatNum(z.Quo(z, r.Float())), nil
}

// floordiv truncates the quotient toward negative infinity, so the result
// takes the sign of the divisor when the division is inexact.
func floordiv(l, r Number) (Number, error) {
	if r.Sign() == 0 {
		return Number{}, &DivisionError{Op: "//"}
	}
	if l.f == nil && r.f == nil {
		q, m := new(big.Int).QuoRem(l.i, r.i, new(big.Int))
		if m.Sign() != 0 && m.Sign() != r.i.Sign() {
			q.Sub(q, big.NewInt(1))
		}
		return intNum(q), nil
	}
	z := l.Float()
	z.Quo(z, r.Float())
	return floatNum(z.SetInt(floorInt(z))), nil
}

// mod matches floordiv: the remainder takes the sign of the divisor.
func mod(l, r Number) (Number, error) {
	if r.Sign() == 0 {
		return Number{}, &DivisionError{Op: "%"}
	}
	if l.f == nil && r.f == nil {
		m := new(big.Int).Rem(l.i, r.i)
		if m.Sign() != 0 && m.Sign() != r.i.Sign() {
			m.Add(m, r.i)
		}
		return intNum(m), nil
	}
	q := l.Float()
	q.Quo(q, r.Float())
	q.SetInt(floorInt(q))
	q.Mul(q, r.Float())
	return floatNum(q.Sub(l.Float(), q)), nil
}

func pow(l, r Number) (Number, error) {
	if l.f == nil && r.f == nil && r.i.Sign() >= 0 {
		if !r.i.IsInt64() || r.i.Int64() > maxIntExp {
			return Number{}, &RangeError{Op: "**"}
		}
		return intNum(new(big.Int).Exp(l.i, r.i, nil)), nil
	}
	// A negative integer exponent promotes the result to a float.
	lf, rf := l.Float(), r.Float()
	switch {
	case lf.Sign() == 0:
		if rf.Sign() < 0 {
			return Number{}, &DivisionError{Op: "**"}
		}
		z := new(big.Float).SetPrec(prec)
		if rf.Sign() == 0 {
			z.SetInt64(1)
		}
		return floatNum(z), nil
	case lf.Signbit():
		// A fractional power of a negative base has no real value.
		if !rf.IsInt() {
			return Number{}, &DomainError{Op: "**", Reason: "negative base with fractional exponent"}
		}
		e, _ := rf.Int(nil)
		z := new(big.Float).SetPrec(prec)
		bigfloat.Pow(z, lf.Neg(lf), rf)
		if e.Bit(0) == 1 {
			z.Neg(z)
		}
		return floatNum(z), nil
	}
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, lf, rf)
	return floatNum(z), nil
}

func pos(x Number) (Number, error) {
	return x, nil
}

func neg(x Number) (Number, error) {
	if x.f == nil {
		return intNum(new(big.Int).Neg(x.i)), nil
	}
	return floatNum(new(big.Float).SetPrec(prec).Neg(x.f)), nil
}

// floorInt returns the largest integer not greater than x.
func floorInt(x *big.Float) *big.Int {
	i, acc := x.Int(nil)
	if acc == big.Above {
		i.Sub(i, big.NewInt(1))
	}
	return i
}
