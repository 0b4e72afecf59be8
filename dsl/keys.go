package dsl

import (
	"reflect"
	"strings"
)

// KeyOpts are the options carried by an `ini` struct tag.
type KeyOpts struct {
	Optional bool
	Required bool
}

// ResolveKey applies the package-wide rule to resolve a struct field's
// document key.
// Priority: ini tag name > json tag name > field name; "-" disables the field.
// An `ini` tag with an empty name (`ini:",optional"`) keeps looking.
func ResolveKey(sf reflect.StructField) (string, KeyOpts) {
	var opts KeyOpts
	name := ""
	if it, ok := sf.Tag.Lookup("ini"); ok {
		parts := strings.Split(it, ",")
		name = strings.TrimSpace(parts[0])
		for _, p := range parts[1:] {
			switch strings.TrimSpace(p) {
			case "optional":
				opts.Optional = true
			case "required":
				opts.Required = true
			}
		}
		if name == "-" {
			return "-", opts
		}
	}
	if name != "" {
		return name, opts
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-", opts
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt, opts
		}
	}
	return sf.Name, opts
}
