package safeexpr

import (
	"reflect"
	"testing"
)

// num parses text as a Number, failing the test on error. Leading signs
// are accepted here even though the scanner never emits them, so tables
// can spell negative operands directly.
func num(t *testing.T, text string) Number {
	t.Helper()
	n, err := parseNumber(text)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", text, err)
	}
	return n
}

func TestParseNumberKinds(t *testing.T) {
	ints := []string{"0", "7", "9876543210", "-7"}
	for _, s := range ints {
		if !num(t, s).IsInt() {
			t.Errorf("%q did not parse as an integer", s)
		}
	}
	floats := []string{"1.0", "1e3", ".5", "2.5e-1", "-7.5"}
	for _, s := range floats {
		if num(t, s).IsInt() {
			t.Errorf("%q parsed as an integer", s)
		}
	}
}

func TestPromotion(t *testing.T) {
	cases := []struct {
		name string
		fn   binaryFunc
		l, r string
		int_ bool
	}{
		{"add-int", add, "1", "2", true},
		{"add-float", add, "1", "2.0", false},
		{"sub-float", sub, "1.0", "2", false},
		{"mul-int", mul, "3", "4", true},
		{"quo-int-operands", quo, "4", "2", false},
		{"floordiv-int", floordiv, "4", "2", true},
		{"floordiv-float", floordiv, "4.0", "2", false},
		{"mod-int", mod, "4", "3", true},
		{"pow-int", pow, "2", "3", true},
		{"pow-negexp", pow, "2", "-3", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z, err := c.fn(num(t, c.l), num(t, c.r))
			if err != nil {
				t.Fatalf("(%s, %s) failed: %v", c.l, c.r, err)
			}
			if z.IsInt() != c.int_ {
				t.Errorf("(%s, %s) gave %v with IsInt %v", c.l, c.r, z, z.IsInt())
			}
		})
	}
}

func TestFloorDivMod(t *testing.T) {
	// The quotient rounds toward negative infinity, so the remainder takes
	// the divisor's sign.
	cases := []struct {
		l, r, q, m string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-4", "1"},
		{"7", "-2", "-4", "-1"},
		{"-7", "-2", "3", "-1"},
		{"8", "2", "4", "0"},
		{"-8", "2", "-4", "0"},
		{"7.5", "2", "3.0", "1.5"},
		{"-7.5", "2", "-4.0", "0.5"},
		{"7.5", "-2", "-4.0", "-0.5"},
		{"8.0", "2", "4.0", "0.0"},
	}
	for _, c := range cases {
		q, err := floordiv(num(t, c.l), num(t, c.r))
		if err != nil {
			t.Errorf("%s//%s failed: %v", c.l, c.r, err)
		} else if q.String() != c.q {
			t.Errorf("%s//%s: want %s, got %v", c.l, c.r, c.q, q)
		}
		m, err := mod(num(t, c.l), num(t, c.r))
		if err != nil {
			t.Errorf("%s%%%s failed: %v", c.l, c.r, err)
		} else if m.String() != c.m {
			t.Errorf("%s%%%s: want %s, got %v", c.l, c.r, c.m, m)
		}
	}
}

func TestPow(t *testing.T) {
	cases := []struct {
		l, r, z string
	}{
		{"2", "10", "1024"},
		{"2", "0", "1"},
		{"0", "0", "1"},
		{"0", "5", "0"},
		{"-2", "3", "-8"},
		{"-2", "2", "4"},
		{"2", "-2", "0.25"},
		{"-2.0", "3", "-8.0"},
		{"-2", "-3", "-0.125"},
		{"0.0", "0", "1.0"},
		{"0.0", "3", "0.0"},
	}
	for _, c := range cases {
		z, err := pow(num(t, c.l), num(t, c.r))
		if err != nil {
			t.Errorf("%s**%s failed: %v", c.l, c.r, err)
		} else if z.String() != c.z {
			t.Errorf("%s**%s: want %s, got %v", c.l, c.r, c.z, z)
		}
	}
}

func TestArithErrors(t *testing.T) {
	cases := []struct {
		name string
		fn   binaryFunc
		l, r string
		err  EvalError
	}{
		{"div-zero", quo, "1", "0", new(DivisionError)},
		{"floordiv-zero", floordiv, "7", "0", new(DivisionError)},
		{"mod-zero", mod, "10", "0", new(DivisionError)},
		{"mod-zerofloat", mod, "10", "0.0", new(DivisionError)},
		{"pow-zeroneg", pow, "0", "-1", new(DivisionError)},
		{"pow-domain", pow, "-8", "0.5", new(DomainError)},
		{"pow-range", pow, "9", "70000", new(RangeError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.fn(num(t, c.l), num(t, c.r))
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("(%s, %s): want %T, got %#v", c.l, c.r, c.err, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		text, str, fmt string
	}{
		{"14", "14", "14"},
		{"-7", "-7", "-7"},
		{"1.0", "1.0", "1"},
		{"2.5", "2.5", "2.5"},
		{"-4.0", "-4.0", "-4"},
		{"1e3", "1000.0", "1000"},
		{"0.0", "0.0", "0"},
	}
	for _, c := range cases {
		n := num(t, c.text)
		if s := n.String(); s != c.str {
			t.Errorf("%q: String gave %q, want %q", c.text, s, c.str)
		}
		if s := Format(n); s != c.fmt {
			t.Errorf("%q: Format gave %q, want %q", c.text, s, c.fmt)
		}
	}
}

func TestZeroNumber(t *testing.T) {
	var n Number
	if !n.IsInt() || n.Sign() != 0 || n.String() != "0" {
		t.Errorf("zero Number is %v with sign %d", n, n.Sign())
	}
	i, ok := n.Int()
	if !ok || i.Sign() != 0 {
		t.Errorf("zero Number Int gave %v, %v", i, ok)
	}
	if f := n.Float(); f.Sign() != 0 {
		t.Errorf("zero Number Float gave %v", f)
	}
}
