package codec

import (
	goini "github.com/reoring/goini"
	js "github.com/reoring/goini/jsonschema"
)

// Value classifies the raw text with goini.ParseValue, so a field can hold any
// scalar variant.
func Value() goini.Codec[goini.Value] { return valueCodec{} }

type valueCodec struct{}

func (valueCodec) Decode(raw string) (goini.Value, error) { return goini.ParseValue(raw) }
func (valueCodec) Encode(v goini.Value) (string, error)   { return v.String(), nil }

func (valueCodec) JSONSchema() *js.Schema {
	return &js.Schema{OneOf: []*js.Schema{
		{Type: "boolean"}, {Type: "integer"}, {Type: "number"}, {Type: "string"},
	}}
}
