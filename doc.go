// Package goini provides:
//
// - A typed scalar parser that classifies a raw text token (ParseValue)
// - A flat `key = value` document model with explicit presence (ParseDocument)
// - Schema-driven binding between documents and records in both directions (Decode/Encode)
// - A stable error model via Issues (path, code, message)
//
// Design policy:
// - Keep the public binder API in the root package; builders live under dsl/,
//   scalar codecs under codec/, declarative schema tables under schemafile/ and
//   the CLI under cmd/goini.
// - Every operation is a pure function of its inputs. Schemas are immutable after
//   construction and can be shared between goroutines.
// - Prefer black-box testing against public APIs.
//
// Text format: one assignment per line, key and value separated by the first '=',
// both sides trimmed. Lines without '=' are ignored. There are no comments, no
// section headers and no escape sequences.
//
// Typical usage:
//
//	s := goini.MustSchema(
//	    goini.Required("a", codec.String()),
//	    goini.Optional("b", codec.Float[float64]()),
//	)
//	rec, err := goini.Decode("a = Hello\nb = 1.5\n", s)
//	text, err := goini.Encode(rec, s)
package goini
