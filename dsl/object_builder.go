package dsl

import (
	"fmt"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/i18n"
)

type objectBuilder struct {
	order    []string
	fields   map[string]Adapter
	required map[string]struct{}
	dups     []string
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new builder. Fields are optional unless marked otherwise
// and are encoded in the order they are declared.
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]Adapter{},
		required: map[string]struct{}{},
	}
}

// Field registers a field with its adapter.
func (b *objectBuilder) Field(name string, ad Adapter) *fieldStep {
	if _, dup := b.fields[name]; dup {
		b.dups = append(b.dups, name)
	} else {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *fieldStep) Field(name string, ad Adapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Build() (*goini.Schema, error)            { return f.b.Build() }
func (f *fieldStep) MustBuild() *goini.Schema                 { return f.b.MustBuild() }

// Require marks one or more fields as required and returns the builder.
func (f *fieldStep) Require(names ...string) *objectBuilder { return f.b.Require(names...) }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Build validates the declarations and returns the schema.
func (b *objectBuilder) Build() (*goini.Schema, error) {
	if len(b.dups) > 0 {
		return nil, invalidSchema(fmt.Sprintf("field %q declared twice", b.dups[0]))
	}
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, invalidSchema(fmt.Sprintf("required field %q is not declared", n))
		}
	}
	specs := make([]goini.FieldSpec, 0, len(b.order))
	for _, n := range b.order {
		ad := b.fields[n]
		if ad.field == nil {
			return nil, invalidSchema(fmt.Sprintf("field %q has no codec", n))
		}
		_, req := b.required[n]
		specs = append(specs, ad.field(n, req))
	}
	return goini.NewSchema(specs...)
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *goini.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func invalidSchema(hint string) goini.Issues {
	return goini.Issues{{
		Path:    "/",
		Code:    goini.CodeInvalidSchema,
		Message: i18n.T(goini.CodeInvalidSchema, nil),
		Hint:    hint,
	}}
}
