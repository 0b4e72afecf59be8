package codec

import (
	"encoding"

	goini "github.com/reoring/goini"
	js "github.com/reoring/goini/jsonschema"
)

// Text adapts a type whose pointer implements encoding.TextUnmarshaler. T
// itself should implement encoding.TextMarshaler (or fmt.Stringer) for Encode.
//
//	codec.Text[netip.Addr]()
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() goini.Codec[T] {
	return textCodec[T, PT]{}
}

type textCodec[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}] struct{}

func (textCodec[T, PT]) Decode(raw string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(raw)); err != nil {
		var zero T
		return zero, issue(goini.CodeInvalidFieldValue, raw, "", err)
	}
	return v, nil
}

func (textCodec[T, PT]) Encode(v T) (string, error) {
	switch m := any(v).(type) {
	case encoding.TextMarshaler:
		b, err := m.MarshalText()
		if err != nil {
			return "", issue(goini.CodeInvalidFieldValue, "", "", err)
		}
		return string(b), nil
	case interface{ String() string }:
		return m.String(), nil
	}
	if m, ok := any(PT(&v)).(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", issue(goini.CodeInvalidFieldValue, "", "", err)
		}
		return string(b), nil
	}
	return "", issue(goini.CodeInvalidFieldValue, "", "type has no text encoding", nil)
}

func (textCodec[T, PT]) JSONSchema() *js.Schema { return &js.Schema{Type: "string"} }
