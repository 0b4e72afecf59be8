package goini_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	goini "github.com/reoring/goini"
)

func TestParseValue_Bool(t *testing.T) {
	for in, want := range map[string]bool{"true": true, "false": false, "  true ": true} {
		v, err := goini.ParseValue(in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", in, err)
		}
		if got, err := v.AsBool(); err != nil || got != want {
			t.Fatalf("ParseValue(%q) = %v, want Bool(%v)", in, v, want)
		}
	}
}

func TestParseValue_BoolIsCaseSensitive(t *testing.T) {
	for _, in := range []string{"TrUe", "True", "TRUE", "False", "fAlSe"} {
		v, err := goini.ParseValue(in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", in, err)
		}
		if v.Kind() != goini.KindString {
			t.Fatalf("ParseValue(%q) kind = %v, want string", in, v.Kind())
		}
		if s, _ := v.AsString(); s != in {
			t.Fatalf("ParseValue(%q) = %q", in, s)
		}
	}
}

func TestParseValue_Integers(t *testing.T) {
	cases := []struct {
		in   string
		kind goini.Kind
		text string
	}{
		{"12345", goini.KindPosInt, "12345"},
		{"0", goini.KindPosInt, "0"},
		{"-0", goini.KindPosInt, "0"},
		{"+5", goini.KindPosInt, "5"},
		{"-12345", goini.KindNegInt, "-12345"},
		{"18446744073709551615", goini.KindPosInt, "18446744073709551615"},
		{"-9223372036854775808", goini.KindNegInt, "-9223372036854775808"},
		{"42.0", goini.KindPosInt, "42"},
		{"1e3", goini.KindPosInt, "1000"},
		{"-2.0", goini.KindNegInt, "-2"},
	}
	for _, tc := range cases {
		v, err := goini.ParseValue(tc.in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", tc.in, err)
		}
		if v.Kind() != tc.kind || v.String() != tc.text {
			t.Fatalf("ParseValue(%q) = %v(%s), want %v(%s)", tc.in, v.Kind(), v, tc.kind, tc.text)
		}
	}
	v := goini.MustParseValue("18446744073709551615")
	if u, err := v.AsPosInt(); err != nil || u != math.MaxUint64 {
		t.Fatalf("max uint64 not preserved exactly: %v %v", u, err)
	}
	v = goini.MustParseValue("-9223372036854775808")
	if i, err := v.AsNegInt(); err != nil || i != math.MinInt64 {
		t.Fatalf("min int64 not preserved exactly: %v %v", i, err)
	}
}

func TestParseValue_IntegerPropertyOverRange(t *testing.T) {
	for _, n := range []int64{1, 7, 99, 1 << 20, 1<<53 + 1, math.MaxInt64, -1, -42, -(1 << 40), math.MinInt64} {
		v, err := goini.ParseValue(strconv.FormatInt(n, 10))
		if err != nil {
			t.Fatalf("%d: %v", n, err)
		}
		got, err := v.AsInt()
		if err != nil || got != n {
			t.Fatalf("%d: got %d (%v)", n, got, err)
		}
		if (n < 0) != (v.Kind() == goini.KindNegInt) {
			t.Fatalf("%d classified as %v", n, v.Kind())
		}
	}
}

func TestParseValue_Float(t *testing.T) {
	for _, in := range []string{"1.2345", "-0.5", "3.14159", "1e-3", "2.5E2x"} {
		v, err := goini.ParseValue(in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", in, err)
		}
		want, perr := strconv.ParseFloat(in, 64)
		if perr != nil {
			if v.Kind() != goini.KindString {
				t.Fatalf("ParseValue(%q) should fall back to string, got %v", in, v.Kind())
			}
			continue
		}
		f, err := v.AsFloat()
		if err != nil || f != want {
			t.Fatalf("ParseValue(%q) = %v (%v), want Float(%v)", in, v, err, want)
		}
	}
	// integral floats beyond 64 bits stay Float
	v := goini.MustParseValue("1e30")
	if v.Kind() != goini.KindFloat {
		t.Fatalf("1e30 kind = %v", v.Kind())
	}
}

func TestParseValue_NonFiniteIsBadNumericFormat(t *testing.T) {
	for _, in := range []string{"NaN", "nan", "inf", "-inf", "+Inf", "Infinity", "1e400", "-1e400"} {
		_, err := goini.ParseValue(in)
		if !errors.Is(err, goini.ErrBadNumericFormat) {
			t.Fatalf("ParseValue(%q): expected bad numeric format, got %v", in, err)
		}
		iss, ok := goini.AsIssues(err)
		if !ok || iss[0].Code != goini.CodeBadNumericFormat || iss[0].Raw != in {
			t.Fatalf("ParseValue(%q): unexpected issues %+v", in, iss)
		}
	}
}

func TestParseValue_Quoted(t *testing.T) {
	for _, s := range []string{"Hello, world!", "", "42", "true", "a = b", "  spaced  "} {
		for _, q := range []string{`"`, `'`} {
			v, err := goini.ParseValue(q + s + q)
			if err != nil {
				t.Fatalf("ParseValue(%s%s%s): %v", q, s, q, err)
			}
			if got, err := v.AsString(); err != nil || got != s {
				t.Fatalf("ParseValue(%s%s%s) = %q (%v), want %q", q, s, q, got, err, s)
			}
		}
	}
}

func TestParseValue_Misquoted(t *testing.T) {
	for _, in := range []string{`Hello, world!"`, `"Hello, world!`, `"`, `'`, `"mixed'`, `'mixed"`, `abc'`} {
		_, err := goini.ParseValue(in)
		if !errors.Is(err, goini.ErrMisquotedString) {
			t.Fatalf("ParseValue(%q): expected misquoted, got %v", in, err)
		}
	}
}

func TestParseValue_UnquotedString(t *testing.T) {
	for _, in := range []string{"Hello, world!", "", "it's fine", "0x", "1_000", "v1.2.3", "0x1p4", "0x1.8p1", "-0x10", "1_0", "1.5_0"} {
		v, err := goini.ParseValue(in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", in, err)
		}
		if s, err := v.AsString(); err != nil || s != in {
			t.Fatalf("ParseValue(%q) = %v", in, v)
		}
	}
}

func TestValue_FormatDropsQuotes(t *testing.T) {
	v := goini.MustParseValue(`"a b"`)
	text := goini.FormatValue(v)
	if text != "a b" {
		t.Fatalf("format = %q", text)
	}
	again := goini.MustParseValue(text)
	if again != v {
		t.Fatalf("semantic value changed: %v != %v", again, v)
	}
}

func TestValue_FloatFormatHasNoExponent(t *testing.T) {
	if s := goini.FloatValue(1.23).String(); s != "1.23" {
		t.Fatalf("got %q", s)
	}
	if s := goini.FloatValue(1e-7).String(); s != "0.0000001" {
		t.Fatalf("got %q", s)
	}
}

func TestValue_WrongVariant(t *testing.T) {
	v := goini.StringValue("x")
	_, err := v.AsBool()
	if !errors.Is(err, goini.ErrWrongVariant) {
		t.Fatalf("expected wrong variant, got %v", err)
	}
	iss, _ := goini.AsIssues(err)
	if iss[0].Params["expected"] != "bool" || iss[0].Params["actual"] != "string" {
		t.Fatalf("unexpected params: %v", iss[0].Params)
	}
	if _, err := goini.PosIntValue(math.MaxUint64).AsInt(); !errors.Is(err, goini.ErrWrongVariant) {
		t.Fatalf("uint64 above MaxInt64 should not fit int64")
	}
	if _, err := goini.BoolValue(true).AsFloat(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValue_Constructors(t *testing.T) {
	if goini.IntValue(3).Kind() != goini.KindPosInt || goini.IntValue(-3).Kind() != goini.KindNegInt {
		t.Fatalf("IntValue sign dispatch")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("NegIntValue(0) should panic")
		}
	}()
	goini.NegIntValue(0)
}

func TestValue_Interface(t *testing.T) {
	cases := map[string]any{
		"true": true, "7": uint64(7), "-7": int64(-7), "0.5": 0.5, "x": "x",
	}
	for in, want := range cases {
		if got := goini.MustParseValue(in).Interface(); got != want {
			t.Fatalf("%q: got %#v want %#v", in, got, want)
		}
	}
}
