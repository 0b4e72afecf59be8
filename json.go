package goini

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// MarshalJSON renders the payload as the matching JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.Interface()) }

// MarshalJSON renders the set fields as a JSON object in schema order.
// Field values are marshaled as-is, so nested records become nested objects.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, v := range r.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("goini: marshal field %q: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecordFromJSON builds a record for s from a JSON object. Each scalar is
// turned back into its text form (numbers keep their literal spelling) and run
// through the field's Decode, so the result is what decoding the equivalent
// document would produce. Objects are accepted only for nested fields. null is
// treated like a key without a value.
func RecordFromJSON(data []byte, s *Schema) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, Issues{{Path: "/", Code: CodeInvalidFieldValue, Message: "expected a JSON object", Cause: err}}
	}
	return recordFromMap(m, s)
}

func recordFromMap(m map[string]any, s *Schema) (*Record, error) {
	r := NewRecord(s)
	for i, f := range s.fields {
		jv, ok := m[f.Name]
		if !ok || jv == nil {
			if f.Required {
				return nil, Issues{missingRequired(f.Name)}
			}
			continue
		}
		text, err := jsonText(f, jv)
		if err != nil {
			return nil, Issues{invalidFieldValue(f.Name, fmt.Sprint(jv), 0, err)}
		}
		v, err := f.Decode(text)
		if err != nil {
			return nil, Issues{invalidFieldValue(f.Name, text, 0, err)}
		}
		r.values[i] = v
		r.set[i] = true
	}
	return r, nil
}

func jsonText(f FieldSpec, jv any) (string, error) {
	switch t := jv.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case map[string]any:
		if f.Nested == nil {
			return "", fmt.Errorf("object given for scalar field %q", f.Name)
		}
		sub, err := recordFromMap(t, f.Nested)
		if err != nil {
			return "", err
		}
		return Encode(sub, f.Nested)
	default:
		return "", fmt.Errorf("unsupported JSON value %T for field %q", jv, f.Name)
	}
}
