package goini_test

import (
	"errors"
	"fmt"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/codec"
)

func ExampleDecode() {
	s := goini.MustSchema(
		goini.Required("a", codec.String()),
		goini.Optional("b", codec.Float[float64]()),
		goini.Optional("c", codec.Uint[uint]()),
	)
	r, err := goini.Decode("a = Hello, world!\nc = 42\n", s)
	if err != nil {
		panic(err)
	}
	a, _ := goini.Lookup[string](r, "a")
	c, _ := goini.Lookup[uint](r, "c")
	fmt.Println(a, r.Has("b"), c)

	_, err = goini.Decode("c = 1\n", s)
	fmt.Println(errors.Is(err, goini.ErrMissingRequiredField))
	// Output:
	// Hello, world! false 42
	// true
}

func ExampleParseValue() {
	for _, tok := range []string{"42", "-3", "2.5", "true", `"quoted"`} {
		v, _ := goini.ParseValue(tok)
		fmt.Printf("%s %s\n", v.Kind(), v)
	}
	// Output:
	// posint 42
	// negint -3
	// float 2.5
	// bool true
	// string quoted
}
