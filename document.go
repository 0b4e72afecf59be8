package goini

import (
	"io"
	"iter"
	"sort"
	"strconv"
	"strings"

	"github.com/reoring/goini/i18n"
)

// RawPair is one parsed assignment. Present is false when nothing followed the
// '=' on its line, which is distinct from the key not appearing at all.
type RawPair struct {
	Key     string
	Value   string
	Present bool
	Line    int // 1-based
}

// Document is the flat key -> RawPair mapping of one input text. Iteration
// order carries no meaning; Keys and Pairs sort for reproducibility only.
type Document struct {
	pairs map[string]RawPair
}

// ParseDocument folds every line of text into a Document. A line without '='
// (or with nothing before it) is not an assignment and is skipped. Only the
// first '=' separates, so values may contain '='. With the default options the
// call never fails; DuplicateError is the only policy that reports issues.
func ParseDocument(text string, opts ...DecodeOpt) (*Document, error) {
	opt := pickDecodeOpt(opts)
	d := &Document{pairs: make(map[string]RawPair)}
	var iss Issues
	for n, line := range strings.Split(text, "\n") {
		k, v, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		p := RawPair{Key: k, Value: strings.TrimSpace(v), Present: true, Line: n + 1}
		if p.Value == "" {
			switch opt.EmptyValue {
			case EmptyAbsent:
				continue
			case EmptyString:
			default:
				p.Present = false
			}
		}
		if prev, dup := d.pairs[k]; dup {
			switch opt.Duplicates {
			case DuplicateFirstWins:
				continue
			case DuplicateError:
				iss = AppendIssues(iss, Issue{
					Path:    fieldPath(k),
					Code:    CodeDuplicateKey,
					Message: i18n.T(CodeDuplicateKey, map[string]string{"key": k}),
					Hint:    "first assigned on line " + strconv.Itoa(prev.Line),
					Raw:     p.Value,
					Line:    p.Line,
				})
				if !opt.CollectAll {
					return nil, iss
				}
				continue
			}
		}
		d.pairs[k] = p
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return d, nil
}

// ReadDocument reads r to the end and parses it with ParseDocument.
func ReadDocument(r io.Reader, opts ...DecodeOpt) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(string(b), opts...)
}

// Lookup returns the pair for key without removing it.
func (d *Document) Lookup(key string) (RawPair, bool) {
	p, ok := d.pairs[key]
	return p, ok
}

// Take removes key and returns its pair.
func (d *Document) Take(key string) (RawPair, bool) {
	p, ok := d.pairs[key]
	if ok {
		delete(d.pairs, key)
	}
	return p, ok
}

// Len returns the number of distinct keys.
func (d *Document) Len() int { return len(d.pairs) }

// Keys returns the keys in ascending order.
func (d *Document) Keys() []string {
	ks := make([]string, 0, len(d.pairs))
	for k := range d.pairs {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Pairs yields a sorted snapshot; the document may be modified while iterating.
func (d *Document) Pairs() iter.Seq2[string, RawPair] {
	keys := d.Keys()
	snap := make([]RawPair, len(keys))
	for i, k := range keys {
		snap[i] = d.pairs[k]
	}
	return func(yield func(string, RawPair) bool) {
		for i, k := range keys {
			if !yield(k, snap[i]) {
				return
			}
		}
	}
}
