package goini_test

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/codec"
)

func TestRecord_MarshalJSON(t *testing.T) {
	inner := goini.MustSchema(goini.Required("port", codec.Uint[uint16]()))
	s := goini.MustSchema(
		goini.Required("a", codec.String()),
		goini.Optional("b", codec.Float[float64]()),
		goini.Optional("v", codec.Value()),
		goini.Optional("listen", goini.Nested(inner)),
	)
	r, err := goini.Decode("v = -3\na = x\nlisten = port = 80\n", s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"a":"x","v":-3,"listen":{"port":80}}` {
		t.Fatalf("got %s", got)
	}
}

func TestRecordFromJSON(t *testing.T) {
	inner := goini.MustSchema(goini.Required("port", codec.Uint[uint16]()))
	s := goini.MustSchema(
		goini.Required("a", codec.String()),
		goini.Optional("n", codec.Uint[uint64]()),
		goini.Optional("on", codec.Bool()),
		goini.Optional("gone", codec.String()),
		goini.Optional("listen", goini.Nested(inner)),
	)
	r, err := goini.RecordFromJSON([]byte(`{"a":"x","n":18446744073709551615,"on":true,"gone":null,"listen":{"port":8080}}`), s)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	out, err := goini.Encode(r, s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := "a = x\nn = 18446744073709551615\non = true\nlisten = port = 8080"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}

	if _, err := goini.RecordFromJSON([]byte(`{"n":1}`), s); !errors.Is(err, goini.ErrMissingRequiredField) {
		t.Fatalf("expected missing required, got %v", err)
	}
	if _, err := goini.RecordFromJSON([]byte(`{"a":{"x":1}}`), s); !errors.Is(err, goini.ErrInvalidFieldValue) {
		t.Fatalf("object for a scalar field: %v", err)
	}
	if _, err := goini.RecordFromJSON([]byte(`[1]`), s); err == nil {
		t.Fatalf("expected error for non-object input")
	}
}
