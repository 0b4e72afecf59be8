package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "raw").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "ja":
		switch code {
		case "misquoted_string":
			tmpl = "引用符が対応していません: {raw}"
		case "bad_numeric_format":
			tmpl = "数値として不正です (NaN/無限大): {raw}"
		case "wrong_variant":
			tmpl = "値の種類が違います: {expected} を期待しましたが {actual} でした"
		case "required":
			tmpl = "必須フィールドが不足しています: {name}"
		case "invalid_field_value":
			tmpl = "フィールドの値が不正です: {name}"
		case "duplicate_key":
			tmpl = "キーが重複しています: {key}"
		case "unknown_key":
			tmpl = "未知のキーです: {key}"
		case "invalid_schema":
			tmpl = "スキーマが不正です"
		}
	default: // "en"
		switch code {
		case "misquoted_string":
			tmpl = "misquoted string: {raw}"
		case "bad_numeric_format":
			tmpl = "bad numeric format (NaN or infinite): {raw}"
		case "wrong_variant":
			tmpl = "wrong value variant: expected {expected}, got {actual}"
		case "required":
			tmpl = "missing required field: {name}"
		case "invalid_field_value":
			tmpl = "invalid value for field: {name}"
		case "duplicate_key":
			tmpl = "duplicate key: {key}"
		case "unknown_key":
			tmpl = "unknown key: {key}"
		case "invalid_schema":
			tmpl = "invalid schema"
		}
	}
	if tmpl == "" {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {name} placeholders; missing keys are left empty.
func expand(tmpl string, data map[string]string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	b := &strings.Builder{}
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			break
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:i])
		b.WriteString(data[tmpl[i+1:i+j]])
		tmpl = tmpl[i+j+1:]
	}
	return strings.TrimSuffix(b.String(), ": ")
}

// current holds the process-wide Translator. Swaps are atomic, so changing the
// language while other goroutines decode is race-free; messages built after the
// swap use the new language.
var current atomic.Pointer[Translator]

func init() { SetTranslator(nil) }

// SetLanguage switches the built-in Translator language ("en"/"ja") for the
// whole process.
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&tr)
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return (*current.Load()).Message(code, data)
}
