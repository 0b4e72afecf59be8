package dsl

import (
	"fmt"
	"reflect"

	goini "github.com/reoring/goini"
)

// binding maps the fields of a schema onto the fields of a struct type. It is
// untyped so Derive can build nested bindings for types only known at runtime.
type binding struct {
	schema *goini.Schema
	t      reflect.Type
	fields []boundField
}

type boundField struct {
	name   string
	index  int
	goType reflect.Type // nil when the FieldSpec does not say
}

func newBinding(s *goini.Schema, t reflect.Type) (*binding, error) {
	if t.Kind() != reflect.Struct {
		return nil, invalidSchema(fmt.Sprintf("cannot bind to %s: not a struct", t))
	}
	idxByKey := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, _ := ResolveKey(sf)
		if key == "-" || key == "" {
			continue
		}
		idxByKey[key] = i
	}
	b := &binding{schema: s, t: t}
	for _, f := range s.Fields() {
		i, ok := idxByKey[f.Name]
		if !ok {
			return nil, invalidSchema(fmt.Sprintf("field %q has no counterpart in %s", f.Name, t))
		}
		ft := t.Field(i).Type
		if f.GoType != nil && !compatible(ft, f.GoType) {
			return nil, invalidSchema(fmt.Sprintf("field %q: %s cannot hold %s", f.Name, ft, f.GoType))
		}
		b.fields = append(b.fields, boundField{name: f.Name, index: i, goType: f.GoType})
	}
	return b, nil
}

// compatible reports whether a struct field of type ft can carry values of
// the codec type gt, directly or through a pointer.
func compatible(ft, gt reflect.Type) bool {
	if convertible(gt, ft) && convertible(ft, gt) {
		return true
	}
	return ft.Kind() == reflect.Pointer && convertible(gt, ft.Elem()) && convertible(ft.Elem(), gt)
}

// convertible permits assignment plus conversions that keep the kind, so a
// named string type binds to a string codec but an int never becomes a string.
func convertible(from, to reflect.Type) bool {
	if from.AssignableTo(to) {
		return true
	}
	return from.Kind() == to.Kind() && from.ConvertibleTo(to)
}

func (b *binding) fromRecord(r *goini.Record) (reflect.Value, error) {
	rv := reflect.New(b.t).Elem()
	for _, f := range b.fields {
		val, ok := r.Get(f.name)
		if !ok || val == nil {
			continue
		}
		if !assign(rv.Field(f.index), reflect.ValueOf(val)) {
			return reflect.Value{}, mismatch(f.name, reflect.TypeOf(val), rv.Field(f.index).Type())
		}
	}
	return rv, nil
}

func assign(fv, vv reflect.Value) bool {
	if fv.Kind() == reflect.Pointer && !convertible(vv.Type(), fv.Type()) {
		p := reflect.New(fv.Type().Elem())
		if !assign(p.Elem(), vv) {
			return false
		}
		fv.Set(p)
		return true
	}
	switch {
	case vv.Type().AssignableTo(fv.Type()):
		fv.Set(vv)
	case convertible(vv.Type(), fv.Type()):
		fv.Set(vv.Convert(fv.Type()))
	default:
		return false
	}
	return true
}

// toRecord copies the struct into a record. A nil pointer leaves its field
// unset; every other value is set, including zero values.
func (b *binding) toRecord(v reflect.Value) (*goini.Record, error) {
	r := goini.NewRecord(b.schema)
	for _, f := range b.fields {
		fv := v.Field(f.index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			if f.goType == nil || !fv.Type().AssignableTo(f.goType) {
				fv = fv.Elem()
			}
		}
		if f.goType != nil && !fv.Type().AssignableTo(f.goType) {
			if !convertible(fv.Type(), f.goType) {
				return nil, mismatch(f.name, fv.Type(), f.goType)
			}
			fv = fv.Convert(f.goType)
		}
		if err := r.Set(f.name, fv.Interface()); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func mismatch(name string, got, want reflect.Type) goini.Issues {
	return goini.Issues{{
		Path:    "/" + name,
		Code:    goini.CodeInvalidFieldValue,
		Message: fmt.Sprintf("field type mismatch: %s vs %s", got, want),
		Params:  map[string]string{"name": name},
	}}
}
