package goini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goini/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMisquotedString   = "misquoted_string"
	CodeBadNumericFormat  = "bad_numeric_format"
	CodeWrongVariant      = "wrong_variant"
	CodeRequired          = "required"
	CodeInvalidFieldValue = "invalid_field_value"
	// Opt-in strictness (see DecodeOpt)
	CodeDuplicateKey = "duplicate_key"
	CodeUnknownKey   = "unknown_key"
	// Schema construction
	CodeInvalidSchema = "invalid_schema"
)

// Sentinel errors matching each code. Issues unwraps to them, so callers can use
// errors.Is(err, goini.ErrMissingRequiredField).
var (
	ErrMisquotedString      = errors.New("goini: misquoted string")
	ErrBadNumericFormat     = errors.New("goini: bad numeric format")
	ErrWrongVariant         = errors.New("goini: wrong value variant")
	ErrMissingRequiredField = errors.New("goini: missing required field")
	ErrInvalidFieldValue    = errors.New("goini: invalid field value")
	ErrDuplicateKey         = errors.New("goini: duplicate key")
	ErrUnknownKey           = errors.New("goini: unknown key")
	ErrInvalidSchema        = errors.New("goini: invalid schema")
)

var sentinelByCode = map[string]error{
	CodeMisquotedString:   ErrMisquotedString,
	CodeBadNumericFormat:  ErrBadNumericFormat,
	CodeWrongVariant:      ErrWrongVariant,
	CodeRequired:          ErrMissingRequiredField,
	CodeInvalidFieldValue: ErrInvalidFieldValue,
	CodeDuplicateKey:      ErrDuplicateKey,
	CodeUnknownKey:        ErrUnknownKey,
	CodeInvalidSchema:     ErrInvalidSchema,
}

// Issue represents a single decode, encode or classification failure.
type Issue struct {
	Path    string // "/" for a bare scalar, "/name" for a field.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected formats, etc.
	Cause   error  // Optional: underlying error.
	Raw     string // The offending raw text, when there is one.
	Line    int    // 1-based source line (0 when unknown).
	// Params carries structured parameters (e.g., {"expected":"bool","actual":"string"}).
	Params map[string]string
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Line > 0 {
			fmt.Fprintf(b, " (line %d)", it.Line)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the sentinel for every issue code plus any recorded causes.
func (iss Issues) Unwrap() []error {
	out := make([]error, 0, len(iss)*2)
	for _, it := range iss {
		if s, ok := sentinelByCode[it.Code]; ok {
			out = append(out, s)
		}
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func fieldPath(name string) string { return "/" + name }

func missingRequired(name string) Issue {
	return Issue{
		Path:    fieldPath(name),
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"name": name}),
		Params:  map[string]string{"name": name},
	}
}

func invalidFieldValue(name, raw string, line int, cause error) Issue {
	return Issue{
		Path:    fieldPath(name),
		Code:    CodeInvalidFieldValue,
		Message: i18n.T(CodeInvalidFieldValue, map[string]string{"name": name, "raw": raw}),
		Cause:   cause,
		Raw:     raw,
		Line:    line,
		Params:  map[string]string{"name": name},
	}
}

func wrongVariant(expected, actual Kind) Issues {
	data := map[string]string{"expected": expected.String(), "actual": actual.String()}
	return Issues{{
		Path:    "/",
		Code:    CodeWrongVariant,
		Message: i18n.T(CodeWrongVariant, data),
		Params:  data,
	}}
}

func invalidSchema(hint string) Issues {
	return Issues{{Path: "/", Code: CodeInvalidSchema, Message: i18n.T(CodeInvalidSchema, nil), Hint: hint}}
}
