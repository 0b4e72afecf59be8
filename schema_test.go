package goini_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/codec"
)

func TestNewSchema_Validation(t *testing.T) {
	bad := map[string][]goini.FieldSpec{
		"empty name":   {goini.Required("", codec.String())},
		"blank name":   {goini.Required("  ", codec.String())},
		"padded name":  {goini.Required(" a", codec.String())},
		"equals sign":  {goini.Required("a=b", codec.String())},
		"line break":   {goini.Required("a\nb", codec.String())},
		"duplicate":    {goini.Required("a", codec.String()), goini.Optional("a", codec.Bool())},
		"missing func": {{Name: "a"}},
	}
	for name, fields := range bad {
		if _, err := goini.NewSchema(fields...); !errors.Is(err, goini.ErrInvalidSchema) {
			t.Fatalf("%s: expected invalid schema, got %v", name, err)
		}
	}
}

func TestMustSchema_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	goini.MustSchema(goini.Required("", codec.String()))
}

func TestSchema_FieldsAndLookup(t *testing.T) {
	s := goini.MustSchema(
		goini.Optional("z", codec.String()),
		goini.Required("a", codec.Int[int]()),
	)
	var names []string
	for _, f := range s.Fields() {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"z", "a"}, names); diff != "" {
		t.Fatalf("declaration order (-want +got):\n%s", diff)
	}
	f, ok := s.Field("a")
	if !ok || !f.Required {
		t.Fatalf("lookup a: %+v %v", f, ok)
	}
	if _, ok := s.Field("missing"); ok {
		t.Fatalf("unexpected field")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestSchema_JSONSchemaNested(t *testing.T) {
	inner := goini.MustSchema(goini.Required("port", codec.Uint[uint16]()))
	s := goini.MustSchema(
		goini.Optional("listen", goini.Nested(inner)),
		goini.Optional("raw", codec.Func(func(raw string) (string, error) { return raw, nil }, nil)),
	)
	js := s.JSONSchema()
	if js.Type != "object" || js.AdditionalProperties != true {
		t.Fatalf("root: %+v", js)
	}
	listen := js.Properties["listen"]
	if listen == nil || listen.Type != "object" || listen.Properties["port"] == nil {
		t.Fatalf("nested: %+v", listen)
	}
	if diff := cmp.Diff([]string{"port"}, listen.Required); diff != "" {
		t.Fatalf("nested required (-want +got):\n%s", diff)
	}
	if js.Properties["raw"] == nil {
		t.Fatalf("fields without a hint still get an entry")
	}
}
