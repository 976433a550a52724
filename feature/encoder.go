package feature

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
)

// UnknownCategoryError reports a value absent from a fitted encoding table.
// At the serving boundary this means the request vocabulary and the persisted
// artifacts have drifted apart, since validation screens raw input first.
type UnknownCategoryError struct {
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("feature: category %q not present in encoding table", e.Value)
}

// EncodingTable is a closed bijection from a categorical vocabulary to the
// contiguous codes 0..n-1. Codes are assigned by lexicographic order of the
// distinct fitted values, so refitting on the same data yields the same
// table.
type EncodingTable struct {
	classes []string
	index   map[string]int
}

// FitEncoder builds a table from the distinct values observed in values.
func FitEncoder(values []string) (*EncodingTable, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("feature: cannot fit encoder on empty input")
	}
	seen := make(map[string]struct{}, len(values))
	var classes []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	sort.Strings(classes)
	return newEncodingTable(classes), nil
}

func newEncodingTable(classes []string) *EncodingTable {
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &EncodingTable{classes: classes, index: index}
}

// Lookup reports the code for value and whether the table contains it.
func (t *EncodingTable) Lookup(value string) (int, bool) {
	code, ok := t.index[value]
	return code, ok
}

// Transform returns the code for value, failing with UnknownCategoryError
// when the value is outside the fitted vocabulary.
func (t *EncodingTable) Transform(value string) (int, error) {
	code, ok := t.index[value]
	if !ok {
		return 0, &UnknownCategoryError{Value: value}
	}
	return code, nil
}

// Inverse is the exact left inverse of Transform.
func (t *EncodingTable) Inverse(code int) (string, error) {
	if code < 0 || code >= len(t.classes) {
		return "", fmt.Errorf("feature: code %d out of range [0,%d)", code, len(t.classes))
	}
	return t.classes[code], nil
}

// Classes returns the fitted vocabulary in code order.
func (t *EncodingTable) Classes() []string {
	out := make([]string, len(t.classes))
	copy(out, t.classes)
	return out
}

// Len is the vocabulary size.
func (t *EncodingTable) Len() int { return len(t.classes) }

// GobEncode serializes only the ordered class list; the index is derived.
func (t *EncodingTable) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t.classes); err != nil {
		return nil, fmt.Errorf("failed to encode encoding table: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode restores the class list and rebuilds the lookup index.
func (t *EncodingTable) GobDecode(data []byte) error {
	var classes []string
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&classes); err != nil {
		return fmt.Errorf("failed to decode encoding table: %w", err)
	}
	*t = *newEncodingTable(classes)
	return nil
}
