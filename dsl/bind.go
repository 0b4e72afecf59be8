package dsl

import (
	"reflect"

	goini "github.com/reoring/goini"
	js "github.com/reoring/goini/jsonschema"
)

// Builder is satisfied by Object() and by a chain ending in Field(...),
// Required() or Optional().
type Builder interface {
	Build() (*goini.Schema, error)
}

// Bind builds the schema and binds it to struct type T (free function for Go version compatibility).
func Bind[T any](b Builder) (*Struct[T], error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	return BindSchema[T](s)
}

// MustBind is like Bind but panics on error (free function for Go version compatibility).
func MustBind[T any](b Builder) *Struct[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// BindSchema binds an existing schema to struct type T. Every schema field
// needs a struct field with the same key whose type can hold the codec's
// values; struct fields the schema does not name are left alone.
func BindSchema[T any](s *goini.Schema) (*Struct[T], error) {
	b, err := newBinding(s, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return &Struct[T]{b: b}, nil
}

// Struct decodes documents into T and encodes T back. It implements
// goini.Codec[T], so a Struct can be used as the codec of a nested field.
type Struct[T any] struct {
	b *binding
}

// Schema returns the bound schema.
func (s *Struct[T]) Schema() *goini.Schema { return s.b.schema }

// JSONSchema exports the bound schema.
func (s *Struct[T]) JSONSchema() *js.Schema { return s.b.schema.JSONSchema() }

// Decode decodes raw with the default options.
func (s *Struct[T]) Decode(raw string) (T, error) { return s.DecodeWith(raw) }

// DecodeWith decodes text and maps the record into a new T. Optional fields
// without a value keep T's zero value (nil for pointers).
func (s *Struct[T]) DecodeWith(text string, opts ...goini.DecodeOpt) (T, error) {
	var zero T
	r, err := goini.Decode(text, s.b.schema, opts...)
	if err != nil {
		return zero, err
	}
	return s.FromRecord(r)
}

// DecodeWithMeta is DecodeWith plus presence flags keyed by document key.
func (s *Struct[T]) DecodeWithMeta(text string, opts ...goini.DecodeOpt) (goini.Decoded[T], error) {
	var zero goini.Decoded[T]
	dm, err := goini.DecodeWithMeta(text, s.b.schema, opts...)
	if err != nil {
		return zero, err
	}
	out, err := s.FromRecord(dm.Value)
	if err != nil {
		return zero, err
	}
	return goini.Decoded[T]{Value: out, Presence: dm.Presence}, nil
}

// Encode encodes v with the default options.
func (s *Struct[T]) Encode(v T) (string, error) { return s.EncodeWith(v) }

// EncodeWith writes v in schema order. Nil pointer fields are treated as
// unset; every other field is written, zero values included.
func (s *Struct[T]) EncodeWith(v T, opts ...goini.EncodeOpt) (string, error) {
	r, err := s.ToRecord(v)
	if err != nil {
		return "", err
	}
	return goini.Encode(r, s.b.schema, opts...)
}

// EncodePreserving writes keys that were present without a value back as
// `name =`.
func (s *Struct[T]) EncodePreserving(dm goini.Decoded[T], opts ...goini.EncodeOpt) (string, error) {
	r, err := s.ToRecord(dm.Value)
	if err != nil {
		return "", err
	}
	return goini.EncodePreserving(goini.Decoded[*goini.Record]{Value: r, Presence: dm.Presence}, s.b.schema, opts...)
}

// FromRecord maps a record of the bound schema into a new T.
func (s *Struct[T]) FromRecord(r *goini.Record) (T, error) {
	var zero T
	rv, err := s.b.fromRecord(r)
	if err != nil {
		return zero, err
	}
	return rv.Interface().(T), nil
}

// ToRecord copies v into a record of the bound schema.
func (s *Struct[T]) ToRecord(v T) (*goini.Record, error) {
	return s.b.toRecord(reflect.ValueOf(v))
}
