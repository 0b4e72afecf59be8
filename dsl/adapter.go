package dsl

import (
	goini "github.com/reoring/goini"
)

// Adapter carries one field's codec in untyped form so fields of different Go
// types can share a builder.
type Adapter struct {
	field func(name string, required bool) goini.FieldSpec
}

// Codec adapts a typed codec for Field.
func Codec[T any](c goini.Codec[T]) Adapter {
	return Adapter{field: func(name string, required bool) goini.FieldSpec {
		if required {
			return goini.Required(name, c)
		}
		return goini.Optional(name, c)
	}}
}

// Nested adapts a schema whose record is written on the field's single line.
func Nested(s *goini.Schema, opts ...goini.DecodeOpt) Adapter {
	return Codec(goini.Nested(s, opts...))
}

// Spec adapts a hand-written FieldSpec. Its Name and Required flag are
// replaced by the builder's.
func Spec(f goini.FieldSpec) Adapter {
	return Adapter{field: func(name string, required bool) goini.FieldSpec {
		f.Name = name
		f.Required = required
		return f
	}}
}
