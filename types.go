package goini

// DuplicatePolicy controls which occurrence of a repeated key a Document keeps.
type DuplicatePolicy int

const (
	DuplicateLastWins  DuplicatePolicy = iota // Later assignments overwrite earlier ones.
	DuplicateFirstWins                        // The first assignment is kept.
	DuplicateError                            // A repeated key is reported as duplicate_key.
)

// EmptyPolicy controls how an assignment with nothing after '=' is recorded.
type EmptyPolicy int

const (
	EmptyUnset  EmptyPolicy = iota // Key exists with Present=false.
	EmptyAbsent                    // Key is dropped as if the line were missing.
	EmptyString                    // Key exists with Present=true and an empty value.
)

// UnknownPolicy controls how keys not named by the schema are handled.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Leftover keys are dropped.
	UnknownStrict                      // Leftover keys are reported as unknown_key.
)

// DecodeOpt bundles document and binding options. The zero value is the
// canonical behavior: last wins, empty means present without value, unknown
// keys ignored, stop at the first issue.
type DecodeOpt struct {
	Duplicates DuplicatePolicy
	EmptyValue EmptyPolicy
	Unknown    UnknownPolicy
	// CollectAll gathers every field issue instead of stopping at the first.
	// A failed decode never returns a record either way.
	CollectAll bool
}

// EncodeOpt bundles serialization options.
type EncodeOpt struct {
	// EmptyOptional writes `name =` for optional fields without a value
	// instead of omitting the line.
	EmptyOptional bool
	// LineSeparator joins emitted lines. Defaults to "\n".
	LineSeparator string
}

func pickDecodeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[0]
	}
	return DecodeOpt{}
}

func pickEncodeOpt(opts []EncodeOpt) EncodeOpt {
	var o EncodeOpt
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.LineSeparator == "" {
		o.LineSeparator = "\n"
	}
	return o
}
