package dsl

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/codec"
	js "github.com/reoring/goini/jsonschema"
)

var (
	timeType          = reflect.TypeFor[time.Time]()
	durationType      = reflect.TypeFor[time.Duration]()
	valueType         = reflect.TypeFor[goini.Value]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Derive builds a schema from the exported fields of struct T, in declaration
// order, and binds it.
//
// Pointer fields are optional and every other field is required; the `ini`
// tag options "optional" and "required" override that. Codecs are picked by
// type: time.Time (RFC 3339), time.Duration, goini.Value, types implementing
// both encoding.TextMarshaler and encoding.TextUnmarshaler, then by kind
// (bool, string, signed and unsigned integers, floats). Struct fields are
// derived recursively and bound as nested records. Other kinds are an
// invalid_schema issue.
func Derive[T any]() (*Struct[T], error) {
	b, err := deriveBinding(reflect.TypeFor[T](), map[reflect.Type]bool{})
	if err != nil {
		return nil, err
	}
	return &Struct[T]{b: b}, nil
}

// MustDerive is like Derive but panics on error.
func MustDerive[T any]() *Struct[T] {
	s, err := Derive[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func deriveBinding(t reflect.Type, inProgress map[reflect.Type]bool) (*binding, error) {
	if t.Kind() != reflect.Struct {
		return nil, invalidSchema(fmt.Sprintf("cannot derive from %s: not a struct", t))
	}
	if inProgress[t] {
		return nil, invalidSchema(fmt.Sprintf("%s refers to itself", t))
	}
	inProgress[t] = true
	defer delete(inProgress, t)

	var specs []goini.FieldSpec
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, opts := ResolveKey(sf)
		if key == "-" || key == "" {
			continue
		}
		ft := sf.Type
		required := true
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
			required = false
		}
		if opts.Optional {
			required = false
		}
		if opts.Required {
			required = true
		}
		spec, err := deriveField(key, required, ft, inProgress)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	s, err := goini.NewSchema(specs...)
	if err != nil {
		return nil, err
	}
	return newBinding(s, t)
}

func lift[T any](name string, required bool, c goini.Codec[T]) goini.FieldSpec {
	if required {
		return goini.Required(name, c)
	}
	return goini.Optional(name, c)
}

func deriveField(name string, required bool, t reflect.Type, inProgress map[reflect.Type]bool) (goini.FieldSpec, error) {
	switch t {
	case timeType:
		return lift(name, required, codec.TimeRFC3339()), nil
	case durationType:
		return lift(name, required, codec.Duration()), nil
	case valueType:
		return lift(name, required, codec.Value()), nil
	}
	if reflect.PointerTo(t).Implements(textUnmarshalType) && reflect.PointerTo(t).Implements(textMarshalerType) {
		return textField(name, required, t), nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return lift(name, required, codec.Bool()), nil
	case reflect.String:
		return lift(name, required, codec.String()), nil
	case reflect.Int:
		return lift(name, required, codec.Int[int]()), nil
	case reflect.Int8:
		return lift(name, required, codec.Int[int8]()), nil
	case reflect.Int16:
		return lift(name, required, codec.Int[int16]()), nil
	case reflect.Int32:
		return lift(name, required, codec.Int[int32]()), nil
	case reflect.Int64:
		return lift(name, required, codec.Int[int64]()), nil
	case reflect.Uint:
		return lift(name, required, codec.Uint[uint]()), nil
	case reflect.Uint8:
		return lift(name, required, codec.Uint[uint8]()), nil
	case reflect.Uint16:
		return lift(name, required, codec.Uint[uint16]()), nil
	case reflect.Uint32:
		return lift(name, required, codec.Uint[uint32]()), nil
	case reflect.Uint64:
		return lift(name, required, codec.Uint[uint64]()), nil
	case reflect.Float32:
		return lift(name, required, codec.Float[float32]()), nil
	case reflect.Float64:
		return lift(name, required, codec.Float[float64]()), nil
	case reflect.Struct:
		sub, err := deriveBinding(t, inProgress)
		if err != nil {
			return goini.FieldSpec{}, err
		}
		return nestedField(name, required, sub), nil
	}
	return goini.FieldSpec{}, invalidSchema(fmt.Sprintf("field %q: unsupported type %s", name, t))
}

func textField(name string, required bool, t reflect.Type) goini.FieldSpec {
	return goini.FieldSpec{
		Name:       name,
		Required:   required,
		GoType:     t,
		JSONSchema: func() *js.Schema { return &js.Schema{Type: "string"} },
		Decode: func(raw string) (any, error) {
			p := reflect.New(t)
			if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
				return nil, err
			}
			return p.Elem().Interface(), nil
		},
		Encode: func(v any) (string, error) {
			p := reflect.New(t)
			p.Elem().Set(reflect.ValueOf(v))
			b, err := p.Interface().(encoding.TextMarshaler).MarshalText()
			return string(b), err
		},
	}
}

func nestedField(name string, required bool, sub *binding) goini.FieldSpec {
	return goini.FieldSpec{
		Name:       name,
		Required:   required,
		GoType:     sub.t,
		Nested:     sub.schema,
		JSONSchema: sub.schema.JSONSchema,
		Decode: func(raw string) (any, error) {
			r, err := goini.Decode(raw, sub.schema)
			if err != nil {
				return nil, err
			}
			rv, err := sub.fromRecord(r)
			if err != nil {
				return nil, err
			}
			return rv.Interface(), nil
		},
		Encode: func(v any) (string, error) {
			r, err := sub.toRecord(reflect.ValueOf(v))
			if err != nil {
				return "", err
			}
			return goini.Encode(r, sub.schema)
		},
	}
}
