package goini

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/goini/i18n"
)

// Kind enumerates the closed set of scalar variants a raw token classifies into.
type Kind uint8

const (
	KindString Kind = iota
	KindBool
	KindPosInt // non-negative whole number
	KindNegInt // negative whole number
	KindFloat  // finite, non-integral
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindPosInt:
		return "posint"
	case KindNegInt:
		return "negint"
	case KindFloat:
		return "float"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a classified scalar. The zero Value is the empty String.
// Values are comparable and safe to copy.
type Value struct {
	kind Kind
	b    bool
	u    uint64
	i    int64
	f    float64
	s    string
}

func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }
func PosIntValue(u uint64) Value { return Value{kind: KindPosInt, u: u} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// NegIntValue panics when i is not negative; use IntValue for either sign.
func NegIntValue(i int64) Value {
	if i >= 0 {
		panic("goini: NegIntValue requires a negative integer")
	}
	return Value{kind: KindNegInt, i: i}
}

// IntValue picks PosInt or NegInt by sign.
func IntValue(i int64) Value {
	if i < 0 {
		return Value{kind: KindNegInt, i: i}
	}
	return Value{kind: KindPosInt, u: uint64(i)}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// ParseValue classifies a raw token. In order: a token wrapped in one matching
// pair of quotes is a String with the quotes removed (no escapes); a token with
// an unbalanced quote is misquoted; the exact literals true/false are Bool;
// anything that parses as a number is PosInt, NegInt or Float (NaN and
// infinities are rejected); everything else is a String as written.
func ParseValue(raw string) (Value, error) {
	tok := strings.TrimSpace(raw)

	if len(tok) >= 2 && isQuote(tok[0]) && tok[len(tok)-1] == tok[0] {
		return StringValue(tok[1 : len(tok)-1]), nil
	}
	if len(tok) > 0 && (isQuote(tok[0]) || isQuote(tok[len(tok)-1])) {
		return Value{}, valueIssue(CodeMisquotedString, tok, nil)
	}

	switch tok {
	case "true":
		return BoolValue(true), nil
	case "false":
		return BoolValue(false), nil
	}

	if goNumberSyntax(tok) {
		return StringValue(tok), nil
	}
	// exact integer paths first so every 64-bit magnitude survives
	if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
		return PosIntValue(u), nil
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return IntValue(i), nil
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return StringValue(tok), nil
	}
	// out-of-range literals come back as +/-Inf alongside ErrRange
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, valueIssue(CodeBadNumericFormat, tok, err)
	}
	if f == math.Trunc(f) {
		// 2^64 and -2^63 are exactly representable, so the bounds are exact.
		switch {
		case f >= 0 && f < 1<<64:
			return PosIntValue(uint64(f)), nil
		case f < 0 && f >= -(1<<63):
			return NegIntValue(int64(f)), nil
		}
	}
	return FloatValue(f), nil
}

// goNumberSyntax reports digit separators and hex mantissas, which strconv
// accepts but which are not decimal literals.
func goNumberSyntax(tok string) bool {
	if strings.ContainsRune(tok, '_') {
		return true
	}
	if tok != "" && (tok[0] == '+' || tok[0] == '-') {
		tok = tok[1:]
	}
	return len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X')
}

// MustParseValue is like ParseValue but panics on error.
func MustParseValue(raw string) Value {
	v, err := ParseValue(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func isQuote(c byte) bool { return c == '"' || c == '\'' }

func valueIssue(code, raw string, cause error) Issues {
	return Issues{{
		Path:    "/",
		Code:    code,
		Message: i18n.T(code, map[string]string{"raw": raw}),
		Cause:   cause,
		Raw:     raw,
	}}
}

// String renders the canonical text of the value. Strings are returned
// verbatim: quotes are never re-applied, so quoting is not preserved through a
// parse/format round trip.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindPosInt:
		return strconv.FormatUint(v.u, 10)
	case KindNegInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// FormatValue is the inverse of ParseValue up to quoting; see Value.String.
func FormatValue(v Value) string { return v.String() }

// AsBool returns the Bool payload or a wrong_variant issue.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, wrongVariant(KindBool, v.kind)
	}
	return v.b, nil
}

// AsPosInt returns the PosInt payload or a wrong_variant issue.
func (v Value) AsPosInt() (uint64, error) {
	if v.kind != KindPosInt {
		return 0, wrongVariant(KindPosInt, v.kind)
	}
	return v.u, nil
}

// AsNegInt returns the NegInt payload or a wrong_variant issue.
func (v Value) AsNegInt() (int64, error) {
	if v.kind != KindNegInt {
		return 0, wrongVariant(KindNegInt, v.kind)
	}
	return v.i, nil
}

// AsInt accepts either integer variant. A PosInt above math.MaxInt64 does not
// fit and is reported as a wrong_variant against NegInt.
func (v Value) AsInt() (int64, error) {
	switch v.kind {
	case KindNegInt:
		return v.i, nil
	case KindPosInt:
		if v.u > math.MaxInt64 {
			return 0, wrongVariant(KindNegInt, v.kind)
		}
		return int64(v.u), nil
	default:
		return 0, wrongVariant(KindPosInt, v.kind)
	}
}

// AsFloat returns the Float payload or a wrong_variant issue.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, wrongVariant(KindFloat, v.kind)
	}
	return v.f, nil
}

// AsString returns the String payload or a wrong_variant issue.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", wrongVariant(KindString, v.kind)
	}
	return v.s, nil
}

// Interface returns the payload as bool, uint64, int64, float64 or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindPosInt:
		return v.u
	case KindNegInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}
