package goini

import (
	"iter"
)

// Record holds one value slot per schema field, in schema order. A slot is
// either set or empty; an empty optional field encodes to nothing, an empty
// required field cannot be encoded.
type Record struct {
	schema *Schema
	values []any
	set    []bool
}

// NewRecord returns an empty record for s.
func NewRecord(s *Schema) *Record {
	return &Record{schema: s, values: make([]any, s.Len()), set: make([]bool, s.Len())}
}

// Schema returns the schema the record was built for.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the value of field name and whether it is set.
func (r *Record) Get(name string) (any, bool) {
	i, ok := r.schema.index[name]
	if !ok || !r.set[i] {
		return nil, false
	}
	return r.values[i], true
}

// Has reports whether field name is set.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Set stores v for field name. The value is not checked against the field's
// codec until encoding.
func (r *Record) Set(name string, v any) error {
	i, ok := r.schema.index[name]
	if !ok {
		return Issues{{
			Path:    fieldPath(name),
			Code:    CodeInvalidFieldValue,
			Message: "no such field",
			Params:  map[string]string{"name": name},
		}}
	}
	r.values[i] = v
	r.set[i] = true
	return nil
}

// Unset clears field name.
func (r *Record) Unset(name string) {
	if i, ok := r.schema.index[name]; ok {
		r.values[i] = nil
		r.set[i] = false
	}
}

// All yields the set fields in schema order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, f := range r.schema.fields {
			if !r.set[i] {
				continue
			}
			if !yield(f.Name, r.values[i]) {
				return
			}
		}
	}
}

// Lookup returns field name as T. It reports false when the field is unset or
// holds another type.
func Lookup[T any](r *Record, name string) (T, bool) {
	v, ok := r.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	tv, ok := v.(T)
	return tv, ok
}
