package codec

import (
	"fmt"
	"sort"
	"strings"

	goini "github.com/reoring/goini"
	js "github.com/reoring/goini/jsonschema"
)

// Enum maps a fixed set of literals to values. Matching is exact. Encoding a
// value that no literal maps to is an error; when two literals map to the same
// value the lexically smallest one is written.
func Enum[T comparable](literals map[string]T) goini.Codec[T] {
	c := enumCodec[T]{byText: make(map[string]T, len(literals)), byValue: make(map[T]string, len(literals))}
	names := make([]string, 0, len(literals))
	for k := range literals {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		v := literals[k]
		c.byText[k] = v
		if _, ok := c.byValue[v]; !ok {
			c.byValue[v] = k
		}
	}
	c.names = names
	return c
}

type enumCodec[T comparable] struct {
	byText  map[string]T
	byValue map[T]string
	names   []string
}

func (c enumCodec[T]) Decode(raw string) (T, error) {
	v, ok := c.byText[raw]
	if !ok {
		var zero T
		return zero, issue(goini.CodeInvalidFieldValue, raw, "expected one of "+strings.Join(c.names, ", "), nil)
	}
	return v, nil
}

func (c enumCodec[T]) Encode(v T) (string, error) {
	s, ok := c.byValue[v]
	if !ok {
		return "", issue(goini.CodeInvalidFieldValue, fmt.Sprint(v), "value has no literal", nil)
	}
	return s, nil
}

func (c enumCodec[T]) JSONSchema() *js.Schema {
	vals := make([]any, len(c.names))
	for i, n := range c.names {
		vals[i] = n
	}
	return &js.Schema{Type: "string", Enum: vals}
}
