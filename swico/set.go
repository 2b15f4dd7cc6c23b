package swico

import (
	"strings"
	"unicode/utf8"
)

// StructuredSet maps Swico tags to their values. Keys are unique and
// iteration is always in ascending tag-id order, whatever the insertion
// order was.
type StructuredSet struct {
	values map[Tag]string
}

func newStructuredSet() StructuredSet {
	return StructuredSet{values: map[Tag]string{}}
}

func (s StructuredSet) insert(t Tag, v string) {
	s.values[t] = v
}

// Get returns the value stored for a tag.
func (s StructuredSet) Get(t Tag) (string, bool) {
	v, ok := s.values[t]
	return v, ok
}

// Len is the number of stored fields.
func (s StructuredSet) Len() int { return len(s.values) }

// Tags returns the stored tags in ascending id order.
func (s StructuredSet) Tags() []Tag {
	out := make([]Tag, 0, len(s.values))
	for _, t := range allTags {
		if _, ok := s.values[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (s StructuredSet) clone() StructuredSet {
	c := newStructuredSet()
	for t, v := range s.values {
		c.values[t] = v
	}
	return c
}

// totalLen is the combined character count of every stored value,
// counted in Unicode scalars, delimiters excluded.
func (s StructuredSet) totalLen() int {
	n := 0
	for _, v := range s.values {
		n += utf8.RuneCountInString(v)
	}
	return n
}

// structuredParts returns delimiter+value for every non-unstructured
// field in canonical order.
func (s StructuredSet) structuredParts() []string {
	var parts []string
	for _, t := range s.Tags() {
		if t == TagUnstructured {
			continue
		}
		parts = append(parts, t.Delimiter()+s.values[t])
	}
	return parts
}

// S1 is a validated Swico S1 structured set. Only the S1 syntax version
// exists today; an S2 would be a sibling type behind the same accessors.
type S1 struct {
	set StructuredSet
}

// Get returns the raw value of a field.
func (s *S1) Get(t Tag) (string, bool) { return s.set.Get(t) }

// Unstructured returns the free text recorded alongside the structured
// fields, when present.
func (s *S1) Unstructured() (string, bool) {
	return s.set.Get(TagUnstructured)
}

// Structured returns the canonical serialization of the structured
// fields: each delimiter plus value, concatenated in ascending tag-id
// order.
func (s *S1) Structured() (string, bool) {
	parts := s.set.structuredParts()
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ""), true
}

// StructuredParts returns the per-field delimiter+value strings in
// canonical order, for layout purposes.
func (s *S1) StructuredParts() []string { return s.set.structuredParts() }
