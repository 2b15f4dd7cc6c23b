package swico

import (
	"sort"
	"strings"
)

// PrefixMarker starts the structured region of an S1 string.
const PrefixMarker = "//S1"

// ParseS1 parses the raw text of an additional information field into a
// validated S1 set.
//
// The scan locates delimiter substrings without interpreting backslash
// escapes, matching the format as it circulates: an unescaped /NN/
// inside a value is claimed by the delimiter scan first and the escape
// rule of the syntax validation then rejects the mangled value.
func ParseS1(s string) (*S1, error) {
	if err := scanBeacons(s); err != nil {
		return nil, err
	}
	uns, structured, found := strings.Cut(s, PrefixMarker)
	if !found {
		return nil, &ParseError{Input: s}
	}

	set := newStructuredSet()
	set.insert(TagUnstructured, strings.TrimSpace(uns))

	type located struct {
		offset int
		tag    Tag
	}
	var locs []located
	for _, t := range parseTags {
		if i := strings.Index(structured, t.Delimiter()); i >= 0 {
			locs = append(locs, located{offset: i, tag: t})
		}
	}
	if len(locs) == 0 {
		return nil, &ParseError{Input: s}
	}
	sort.Slice(locs, func(a, b int) bool { return locs[a].offset < locs[b].offset })

	for i := 0; i+1 < len(locs); i++ {
		val := structured[locs[i].offset:locs[i+1].offset]
		val = strings.ReplaceAll(val, locs[i].tag.Delimiter(), "")
		if val != "" {
			set.insert(locs[i].tag, val)
		}
	}
	last := locs[len(locs)-1]
	val := strings.ReplaceAll(structured[last.offset:], last.tag.Delimiter(), "")
	set.insert(last.tag, val)
	set.insert(TagPrefix, "S1")

	return validateS1(set)
}

// scanBeacons rejects any /NN/ marker that belongs to no known field,
// before the string is split into fields. This keeps an unknown future
// field from being silently folded into a neighbour's value.
func scanBeacons(s string) error {
	for _, b := range invalidBeacons() {
		if strings.Contains(s, b) {
			return &UnknownBeaconError{Beacon: b}
		}
	}
	return nil
}
