package codec

import (
	"time"

	goini "github.com/reoring/goini"
	js "github.com/reoring/goini/jsonschema"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 text and time.Time.
// Encoding normalizes to UTC.
func TimeRFC3339() goini.Codec[time.Time] { return rfc3339Codec{} }

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(raw string) (time.Time, error) {
	t, err := parseRFC3339(raw)
	if err != nil {
		return time.Time{}, issue(goini.CodeInvalidFieldValue, raw, "expected an RFC3339 time", err)
	}
	return t, nil
}

func (rfc3339Codec) Encode(v time.Time) (string, error) { return formatRFC3339Canonical(v), nil }

func (rfc3339Codec) JSONSchema() *js.Schema { return &js.Schema{Type: "string", Format: "date-time"} }

// Duration converts between time.ParseDuration text ("1h30m") and time.Duration.
func Duration() goini.Codec[time.Duration] { return durationCodec{} }

type durationCodec struct{}

func (durationCodec) Decode(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, issue(goini.CodeInvalidFieldValue, raw, "expected a duration such as 1h30m", err)
	}
	return d, nil
}

func (durationCodec) Encode(v time.Duration) (string, error) { return v.String(), nil }

func (durationCodec) JSONSchema() *js.Schema { return &js.Schema{Type: "string", Format: "duration"} }

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
