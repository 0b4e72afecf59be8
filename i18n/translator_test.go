package i18n

import (
	"sync"
	"testing"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", map[string]string{"name": "host"}); msg != "missing required field: host" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", map[string]string{"name": "host"}); msg == "missing required field: host" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_MissingDataTrimsPlaceholder(t *testing.T) {
	if msg := T("invalid_field_value", nil); msg != "invalid value for field" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := T("invalid_schema", nil); msg != "invalid schema" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", map[string]string{"name": "a"}); msg != "missing required field: a" {
		t.Fatalf("reset did not restore default: %q", msg)
	}
}

func TestSetLanguage_ConcurrentWithLookups(t *testing.T) {
	defer SetLanguage("en")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLanguage("ja")
			SetLanguage("en")
		}()
		go func() {
			defer wg.Done()
			if msg := T("required", map[string]string{"name": "a"}); msg == "" {
				t.Errorf("empty message")
			}
		}()
	}
	wg.Wait()
}
