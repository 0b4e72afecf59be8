// Package dsl provides a fluent builder and typed struct binding for goini
// schemas.
//
// Overview
//   - Builder API: declare fields in output order with Object()/Field()/Required()/Optional() and finish with Build()/MustBuild().
//   - Typed binding: map a schema onto struct T with Bind[T]/MustBind[T]. The result is itself a goini.Codec[T], so it nests.
//   - Derivation: Derive[T] builds the schema from the struct definition alone.
//   - Adapters: Codec[T](c) lifts any goini.Codec, Nested(s) embeds a schema as a single-line nested record.
//
// Entry points
//   - Object(): create a builder; chain Field(...).Required() and call MustBuild()/Build.
//   - Bind[T](b) / MustBind[T](b): bind a built schema to a struct type.
//   - Derive[T]() / MustDerive[T](): reflect the struct into a schema and bind it.
//
// Key resolution
//
// Struct fields are matched to document keys by the `ini` tag, then the
// `json` tag, then the Go field name. A key of "-" skips the field. The `ini`
// tag accepts the options "optional" and "required", which Derive uses to
// override its default (pointer fields optional, everything else required).
//
// Example (builder + Bind)
//
//	type Server struct {
//	    Host string   `ini:"host"`
//	    Port *uint16  `ini:"port"`
//	}
//
//	srv := dsl.MustBind[Server](dsl.Object().
//	    Field("host", dsl.Codec(codec.String())).Required().
//	    Field("port", dsl.Codec(codec.Uint[uint16]())).Optional())
//
//	v, err := srv.DecodeWith("host = example.com\nport = 8080\n")
//	_ = v // => Server{Host: "example.com", Port: &8080}
//	text, _ := srv.Encode(v)
//	_ = text // => "host = example.com\nport = 8080"
//
// Example (Derive)
//
//	type Job struct {
//	    Name    string        `ini:"name"`
//	    Timeout time.Duration `ini:"timeout"`
//	    Retries *int          `ini:"retries"`
//	}
//	job := dsl.MustDerive[Job]()
//	_, err := job.DecodeWith("name = backup\ntimeout = 30s\n")
//	_ = err // nil; retries stays nil
package dsl
