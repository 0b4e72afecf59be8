// Package codec provides the per-type text rules used by goini fields.
//
// Every constructor returns a goini.Codec[T]. Decode receives the trimmed
// text after '=' and Encode produces the text written after `name = `. Each
// codec also reports a JSON Schema hint that goini.Schema.JSONSchema picks up.
//
//	s := goini.MustSchema(
//	    goini.Required("host", codec.String()),
//	    goini.Optional("port", codec.Uint[uint16]()),
//	    goini.Optional("started", codec.TimeRFC3339()),
//	)
package codec
