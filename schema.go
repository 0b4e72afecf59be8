package goini

import (
	"fmt"
	"reflect"
	"strings"

	js "github.com/reoring/goini/jsonschema"
)

// Codec converts between the raw text of one value and a typed Go value.
// Decode receives the trimmed text after '='; Encode produces the text
// written after `name = `.
type Codec[T any] interface {
	Decode(raw string) (T, error)
	Encode(v T) (string, error)
}

// FieldSpec describes one field of a record. Decode and Encode are untyped so a
// Schema can hold fields of different Go types; Required and Optional build
// them from a typed Codec.
type FieldSpec struct {
	Name     string
	Required bool
	Decode   func(raw string) (any, error)
	Encode   func(v any) (string, error)
	// JSONSchema optionally describes the decoded value for Schema.JSONSchema.
	JSONSchema func() *js.Schema
	// Nested is set when the field's value is itself a record of this schema.
	Nested *Schema
	// GoType is the type Decode returns and Encode expects, when known.
	GoType reflect.Type
}

// Required lifts a codec into a required FieldSpec.
func Required[T any](name string, c Codec[T]) FieldSpec {
	f := fieldFromCodec(name, c)
	f.Required = true
	return f
}

// Optional lifts a codec into an optional FieldSpec.
func Optional[T any](name string, c Codec[T]) FieldSpec {
	return fieldFromCodec(name, c)
}

func fieldFromCodec[T any](name string, c Codec[T]) FieldSpec {
	f := FieldSpec{
		Name:   name,
		GoType: reflect.TypeFor[T](),
		Decode: func(raw string) (any, error) { return c.Decode(raw) },
		Encode: func(v any) (string, error) {
			tv, ok := v.(T)
			if !ok {
				var zero T
				return "", fmt.Errorf("goini: field %q holds %T, want %T", name, v, zero)
			}
			return c.Encode(tv)
		},
	}
	if h, ok := any(c).(interface{ JSONSchema() *js.Schema }); ok {
		f.JSONSchema = h.JSONSchema
	}
	if n, ok := any(c).(interface{ Schema() *Schema }); ok {
		f.Nested = n.Schema()
	}
	return f
}

// Schema is an ordered, immutable list of FieldSpecs. Order only matters for
// encoding output; decoding resolves fields by name.
type Schema struct {
	fields []FieldSpec
	index  map[string]int
}

// NewSchema validates the field list: names must be non-empty, unique and free
// of '=' and line breaks, and every field needs Decode and Encode.
func NewSchema(fields ...FieldSpec) (*Schema, error) {
	s := &Schema{fields: make([]FieldSpec, len(fields)), index: make(map[string]int, len(fields))}
	copy(s.fields, fields)
	for i, f := range s.fields {
		switch {
		case strings.TrimSpace(f.Name) == "":
			return nil, invalidSchema(fmt.Sprintf("field %d has an empty name", i))
		case f.Name != strings.TrimSpace(f.Name) || strings.ContainsAny(f.Name, "=\r\n"):
			return nil, invalidSchema(fmt.Sprintf("field name %q cannot round-trip through a document", f.Name))
		case f.Decode == nil || f.Encode == nil:
			return nil, invalidSchema(fmt.Sprintf("field %q needs both Decode and Encode", f.Name))
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, invalidSchema(fmt.Sprintf("field %q declared twice", f.Name))
		}
		s.index[f.Name] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(fields ...FieldSpec) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns a copy of the field list in declaration order.
func (s *Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// JSONSchema projects the descriptor to a JSON Schema object. Unknown keys are
// accepted by the default decode, hence additionalProperties=true.
func (s *Schema) JSONSchema() *js.Schema {
	out := &js.Schema{
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(s.fields)),
		AdditionalProperties: true,
	}
	for _, f := range s.fields {
		ps := &js.Schema{}
		if f.JSONSchema != nil {
			if p := f.JSONSchema(); p != nil {
				ps = p
			}
		}
		out.Properties[f.Name] = ps
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out
}
