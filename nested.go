package goini

import js "github.com/reoring/goini/jsonschema"

// Nested returns a codec that binds a field's raw value with s. The raw value
// is the single line after `name =`, so a nested record written by Encode
// round-trips only while it has exactly one set field: documents have no
// multi-line blocks or section headers, and an empty line reads as unset.
func Nested(s *Schema, opts ...DecodeOpt) Codec[*Record] {
	return nestedCodec{s: s, opt: pickDecodeOpt(opts)}
}

type nestedCodec struct {
	s   *Schema
	opt DecodeOpt
}

func (c nestedCodec) Decode(raw string) (*Record, error) { return decode(raw, c.s, c.opt, nil) }

func (c nestedCodec) Encode(r *Record) (string, error) {
	if r == nil {
		return "", Issues{{Path: "/", Code: CodeInvalidFieldValue, Message: "nil nested record"}}
	}
	return Encode(r, c.s)
}

func (c nestedCodec) Schema() *Schema { return c.s }

func (c nestedCodec) JSONSchema() *js.Schema { return c.s.JSONSchema() }
