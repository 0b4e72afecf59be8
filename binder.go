package goini

import (
	"fmt"
	"strings"

	"github.com/reoring/goini/i18n"
)

// Decode parses text into a Document and binds it to s.
//
// Optional fields are resolved first, in schema order: a missing key or a key
// without a value leaves the field unset, otherwise the field's Decode runs and
// a failure is an invalid_field_value issue. Required fields follow: a missing
// key or a key without a value is a required issue. Keys the schema does not
// name are ignored unless DecodeOpt.Unknown is UnknownStrict. The first issue
// stops decoding unless DecodeOpt.CollectAll is set; no record is returned on
// failure.
func Decode(text string, s *Schema, opts ...DecodeOpt) (*Record, error) {
	return decode(text, s, pickDecodeOpt(opts), nil)
}

// DecodeWithMeta is Decode plus per-field presence flags, which
// EncodePreserving uses to write back keys that were present without a value.
func DecodeWithMeta(text string, s *Schema, opts ...DecodeOpt) (Decoded[*Record], error) {
	pm := PresenceMap{}
	r, err := decode(text, s, pickDecodeOpt(opts), pm)
	if err != nil {
		return Decoded[*Record]{}, err
	}
	return Decoded[*Record]{Value: r, Presence: pm}, nil
}

// DecodeDocument binds an already parsed document. Bound keys are removed from
// doc; whatever remains afterwards was not named by the schema.
func DecodeDocument(doc *Document, s *Schema, opts ...DecodeOpt) (*Record, error) {
	return bind(doc, s, pickDecodeOpt(opts), nil)
}

func decode(text string, s *Schema, opt DecodeOpt, pm PresenceMap) (*Record, error) {
	doc, err := ParseDocument(text, opt)
	if err != nil {
		return nil, err
	}
	return bind(doc, s, opt, pm)
}

func bind(doc *Document, s *Schema, opt DecodeOpt, pm PresenceMap) (*Record, error) {
	r := NewRecord(s)
	var iss Issues
	fail := func(it Issue) bool {
		iss = AppendIssues(iss, it)
		return !opt.CollectAll
	}

	for pass := 0; pass < 2; pass++ {
		wantRequired := pass == 1
		for i, f := range s.fields {
			if f.Required != wantRequired {
				continue
			}
			p, ok := doc.Take(f.Name)
			if ok {
				pm.mark(p)
			}
			if !ok || !p.Present {
				if f.Required && fail(missingRequired(f.Name)) {
					return nil, iss
				}
				continue
			}
			v, err := f.Decode(p.Value)
			if err != nil {
				if fail(invalidFieldValue(f.Name, p.Value, p.Line, err)) {
					return nil, iss
				}
				continue
			}
			r.values[i] = v
			r.set[i] = true
		}
	}

	if opt.Unknown == UnknownStrict {
		for k, p := range doc.Pairs() {
			it := Issue{
				Path:    fieldPath(k),
				Code:    CodeUnknownKey,
				Message: i18n.T(CodeUnknownKey, map[string]string{"key": k}),
				Raw:     p.Value,
				Line:    p.Line,
			}
			if fail(it) {
				return nil, iss
			}
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// Encode writes r as one `name = value` line per set field, in the order of s.
// Unset optional fields produce no line (see EncodeOpt.EmptyOptional) and an
// unset required field is a required issue. A value whose text would span
// lines, or a nested record with no set fields, is an invalid_field_value
// issue. Lines are joined by the separator with none leading or trailing.
func Encode(r *Record, s *Schema, opts ...EncodeOpt) (string, error) {
	return encode(r, s, pickEncodeOpt(opts), nil)
}

// EncodePreserving is Encode, except optional fields that were present without
// a value in the decoded input are written back as `name =`.
func EncodePreserving(dm Decoded[*Record], s *Schema, opts ...EncodeOpt) (string, error) {
	return encode(dm.Value, s, pickEncodeOpt(opts), dm.Presence)
}

func encode(r *Record, s *Schema, opt EncodeOpt, pm PresenceMap) (string, error) {
	lines := make([]string, 0, s.Len())
	for _, f := range s.fields {
		v, ok := r.Get(f.Name)
		if !ok {
			switch {
			case f.Required:
				return "", Issues{missingRequired(f.Name)}
			case opt.EmptyOptional || pm.Empty(f.Name):
				lines = append(lines, f.Name+" =")
			}
			continue
		}
		text, err := f.Encode(v)
		if err != nil {
			return "", Issues{invalidFieldValue(f.Name, fmt.Sprint(v), 0, err)}
		}
		if f.Nested != nil && text == "" {
			it := invalidFieldValue(f.Name, text, 0, nil)
			it.Hint = "nested record has no set fields"
			return "", Issues{it}
		}
		if strings.ContainsAny(text, "\r\n") {
			it := invalidFieldValue(f.Name, text, 0, nil)
			it.Hint = "encoded value spans several lines"
			return "", Issues{it}
		}
		lines = append(lines, f.Name+" = "+text)
	}
	return strings.Join(lines, opt.LineSeparator), nil
}
