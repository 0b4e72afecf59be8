// Package schemafile loads goini schemas from declarative YAML (or JSON)
// documents, so tools can bind documents without Go code.
//
// A schema file lists fields in output order:
//
//	fields:
//	  - name: host
//	    type: string
//	    required: true
//	  - name: mode
//	    type: enum
//	    values: [fast, safe]
//	  - name: listen
//	    type: record
//	    fields:
//	      - {name: port, type: uint, required: true}
//
// Types: string, quoted, bool, int, uint, float, value, time, duration, enum
// and record.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/codec"
	"github.com/reoring/goini/i18n"
	js "github.com/reoring/goini/jsonschema"
)

// File is the decoded form of a schema file.
type File struct {
	Fields []Field `yaml:"fields"`
}

// Field declares one schema field.
type Field struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Required    bool     `yaml:"required"`
	Description string   `yaml:"description"`
	Values      []string `yaml:"values"` // enum literals
	Fields      []Field  `yaml:"fields"` // record fields
}

// Load parses a schema file and builds the schema. Unknown keys in the file
// are rejected.
func Load(data []byte) (*goini.Schema, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return f.Schema()
}

// LoadFile reads path and calls Load.
func LoadFile(path string) (*goini.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return Load(data)
}

// Parse decodes a schema file without building it.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("", "empty schema file", nil)
		}
		return nil, invalid("", "malformed schema file", err)
	}
	return &f, nil
}

// Schema builds the goini schema described by f.
func (f *File) Schema() (*goini.Schema, error) { return buildSchema(f.Fields, "fields") }

func buildSchema(decls []Field, at string) (*goini.Schema, error) {
	specs := make([]goini.FieldSpec, 0, len(decls))
	for i, d := range decls {
		spec, err := buildField(d, fmt.Sprintf("%s[%d]", at, i))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return goini.NewSchema(specs...)
}

func buildField(d Field, at string) (goini.FieldSpec, error) {
	if d.Type != "enum" && len(d.Values) > 0 {
		return goini.FieldSpec{}, invalid(at, "values is only valid for type enum", nil)
	}
	if d.Type != "record" && len(d.Fields) > 0 {
		return goini.FieldSpec{}, invalid(at, "fields is only valid for type record", nil)
	}
	var spec goini.FieldSpec
	switch d.Type {
	case "string", "":
		spec = lift(d, codec.String())
	case "quoted":
		spec = lift(d, codec.Quoted())
	case "bool":
		spec = lift(d, codec.Bool())
	case "int":
		spec = lift(d, codec.Int[int64]())
	case "uint":
		spec = lift(d, codec.Uint[uint64]())
	case "float":
		spec = lift(d, codec.Float[float64]())
	case "value":
		spec = lift(d, codec.Value())
	case "time":
		spec = lift(d, codec.TimeRFC3339())
	case "duration":
		spec = lift(d, codec.Duration())
	case "enum":
		if len(d.Values) == 0 {
			return goini.FieldSpec{}, invalid(at, "enum needs values", nil)
		}
		lits := make(map[string]string, len(d.Values))
		for _, v := range d.Values {
			lits[v] = v
		}
		spec = lift(d, codec.Enum(lits))
	case "record":
		sub, err := buildSchema(d.Fields, at+".fields")
		if err != nil {
			return goini.FieldSpec{}, err
		}
		spec = lift(d, goini.Nested(sub))
	default:
		return goini.FieldSpec{}, invalid(at, fmt.Sprintf("unknown type %q", d.Type), nil)
	}
	if d.Description != "" {
		spec.JSONSchema = describe(spec.JSONSchema, d.Description)
	}
	return spec, nil
}

func lift[T any](d Field, c goini.Codec[T]) goini.FieldSpec {
	if d.Required {
		return goini.Required(d.Name, c)
	}
	return goini.Optional(d.Name, c)
}

func describe(prev func() *js.Schema, text string) func() *js.Schema {
	return func() *js.Schema {
		s := &js.Schema{}
		if prev != nil {
			if p := prev(); p != nil {
				cp := *p
				s = &cp
			}
		}
		s.Description = text
		return s
	}
}

func invalid(at, hint string, cause error) goini.Issues {
	if at != "" {
		hint = at + ": " + hint
	}
	return goini.Issues{{
		Path:    "/",
		Code:    goini.CodeInvalidSchema,
		Message: i18n.T(goini.CodeInvalidSchema, nil),
		Hint:    hint,
		Cause:   cause,
	}}
}
