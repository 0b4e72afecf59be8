package codec

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	goini "github.com/reoring/goini"
	js "github.com/reoring/goini/jsonschema"
)

// Signed is the set of signed integer types Int accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types Uint accepts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of floating-point types Float accepts.
type Floating interface {
	~float32 | ~float64
}

// Int parses base-10 text into T, rejecting values that do not fit T.
func Int[T Signed]() goini.Codec[T] { return intCodec[T]{bits: bitSize[T]()} }

type intCodec[T Signed] struct{ bits int }

func (c intCodec[T]) Decode(raw string) (T, error) {
	i, err := strconv.ParseInt(raw, 10, c.bits)
	if err != nil {
		return 0, issue(goini.CodeInvalidFieldValue, raw, "expected an integer of "+strconv.Itoa(c.bits)+" bits", err)
	}
	return T(i), nil
}

func (intCodec[T]) Encode(v T) (string, error) { return strconv.FormatInt(int64(v), 10), nil }
func (intCodec[T]) JSONSchema() *js.Schema     { return &js.Schema{Type: "integer"} }

// Uint parses base-10 text into T, rejecting signs and values that do not fit T.
func Uint[T Unsigned]() goini.Codec[T] { return uintCodec[T]{bits: bitSize[T]()} }

type uintCodec[T Unsigned] struct{ bits int }

func (c uintCodec[T]) Decode(raw string) (T, error) {
	u, err := strconv.ParseUint(raw, 10, c.bits)
	if err != nil {
		return 0, issue(goini.CodeInvalidFieldValue, raw, "expected an unsigned integer of "+strconv.Itoa(c.bits)+" bits", err)
	}
	return T(u), nil
}

func (uintCodec[T]) Encode(v T) (string, error) { return strconv.FormatUint(uint64(v), 10), nil }

func (uintCodec[T]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "integer", Minimum: js.Ptr(0)}
}

// Float parses decimal text into T. NaN and infinities are rejected in both
// directions.
func Float[T Floating]() goini.Codec[T] { return floatCodec[T]{bits: bitSize[T]()} }

type floatCodec[T Floating] struct{ bits int }

func (c floatCodec[T]) Decode(raw string) (T, error) {
	if !decimal(raw) {
		return 0, issue(goini.CodeInvalidFieldValue, raw, "expected a decimal number", nil)
	}
	f, err := strconv.ParseFloat(raw, c.bits)
	if errors.Is(err, strconv.ErrRange) || (err == nil && (math.IsNaN(f) || math.IsInf(f, 0))) {
		return 0, issue(goini.CodeBadNumericFormat, raw, "", err)
	}
	if err != nil {
		return 0, issue(goini.CodeInvalidFieldValue, raw, "expected a decimal number", err)
	}
	return T(f), nil
}

func (c floatCodec[T]) Encode(v T) (string, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", issue(goini.CodeBadNumericFormat, strconv.FormatFloat(f, 'f', -1, 64), "", nil)
	}
	return strconv.FormatFloat(f, 'f', -1, c.bits), nil
}

func (floatCodec[T]) JSONSchema() *js.Schema { return &js.Schema{Type: "number"} }

// decimal rejects the digit separators and hex mantissas strconv also accepts.
func decimal(raw string) bool {
	if strings.ContainsRune(raw, '_') {
		return false
	}
	t := strings.TrimPrefix(strings.TrimPrefix(raw, "+"), "-")
	return !strings.HasPrefix(t, "0x") && !strings.HasPrefix(t, "0X")
}

func bitSize[T any]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}
