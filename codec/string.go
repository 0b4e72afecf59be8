package codec

import (
	goini "github.com/reoring/goini"
	"github.com/reoring/goini/i18n"
	js "github.com/reoring/goini/jsonschema"
)

// String returns the raw text unchanged in both directions.
func String() goini.Codec[string] { return stringCodec[string]{} }

// StringOf projects the raw text to a domain type with underlying string.
func StringOf[T ~string]() goini.Codec[T] { return stringCodec[T]{} }

type stringCodec[T ~string] struct{}

func (stringCodec[T]) Decode(raw string) (T, error) { return T(raw), nil }
func (stringCodec[T]) Encode(v T) (string, error)   { return string(v), nil }
func (stringCodec[T]) JSONSchema() *js.Schema       { return &js.Schema{Type: "string"} }

// Quoted strips one matching pair of '"' or '\'' quotes and rejects unbalanced
// ones. Unquoted text passes through. Encode does not add quotes back.
func Quoted() goini.Codec[string] { return quotedCodec{} }

type quotedCodec struct{}

func (quotedCodec) Decode(raw string) (string, error) {
	if len(raw) >= 2 && isQuote(raw[0]) && raw[len(raw)-1] == raw[0] {
		return raw[1 : len(raw)-1], nil
	}
	if len(raw) > 0 && (isQuote(raw[0]) || isQuote(raw[len(raw)-1])) {
		return "", issue(goini.CodeMisquotedString, raw, "quotes must be balanced", nil)
	}
	return raw, nil
}

func (quotedCodec) Encode(v string) (string, error) { return v, nil }
func (quotedCodec) JSONSchema() *js.Schema          { return &js.Schema{Type: "string"} }

func isQuote(c byte) bool { return c == '"' || c == '\'' }

// Bool accepts exactly "true" and "false".
func Bool() goini.Codec[bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Decode(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, issue(goini.CodeInvalidFieldValue, raw, "expected true or false", nil)
}

func (boolCodec) Encode(v bool) (string, error) {
	if v {
		return "true", nil
	}
	return "false", nil
}

func (boolCodec) JSONSchema() *js.Schema { return &js.Schema{Type: "boolean"} }

// Func adapts a pair of functions. A nil encode falls back to the value's
// String method when it has one.
func Func[T any](decode func(string) (T, error), encode func(T) (string, error)) goini.Codec[T] {
	return funcCodec[T]{decode: decode, encode: encode}
}

type funcCodec[T any] struct {
	decode func(string) (T, error)
	encode func(T) (string, error)
}

func (c funcCodec[T]) Decode(raw string) (T, error) { return c.decode(raw) }

func (c funcCodec[T]) Encode(v T) (string, error) {
	if c.encode != nil {
		return c.encode(v)
	}
	if s, ok := any(v).(interface{ String() string }); ok {
		return s.String(), nil
	}
	return "", issue(goini.CodeInvalidFieldValue, "", "codec has no encoder", nil)
}

func issue(code, raw, hint string, cause error) goini.Issues {
	return goini.Issues{{Path: "/", Code: code, Message: i18n.T(code, map[string]string{"raw": raw}), Hint: hint, Raw: raw, Cause: cause}}
}
