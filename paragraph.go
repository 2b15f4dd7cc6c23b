package qrbill

import (
	"strings"
	"unicode/utf8"
)

// foldThreshold is the line length under which free text is left alone.
const foldThreshold = 70

// AsParagraph lays both parts out as display lines for the payment part:
// the folded unstructured text first, then the structured data divided
// into one to three near-equal pieces depending on its own length
// (1 under 70 characters, 2 up to 124, 3 up to 140). Returns nil when
// there is nothing to show.
func (b BillingInfos) AsParagraph() []string {
	var structured []string
	uns, hasUns := "", false
	if b.emitter != nil && b.emitter.swico != nil {
		structured = b.emitter.swico.StructuredParts()
		uns, hasUns = b.emitter.swico.Unstructured()
	}
	if b.unstructured != nil {
		uns, hasUns = *b.unstructured, true
	}

	var lines []string
	if hasUns {
		lines = append(lines, foldUnstructured(uns)...)
	}
	if len(structured) > 0 {
		pieces := 1
		switch total := partsLen(structured); {
		case total >= 125 && total <= 140:
			pieces = 3
		case total >= 70 && total <= 124:
			pieces = 2
		}
		size := (len(structured) + pieces - 1) / pieces
		for i := 0; i < len(structured); i += size {
			end := i + size
			if end > len(structured) {
				end = len(structured)
			}
			if s := strings.Join(structured[i:end], ""); s != "" {
				lines = append(lines, s)
			}
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

func partsLen(parts []string) int {
	n := 0
	for _, p := range parts {
		n += utf8.RuneCountInString(p)
	}
	return n
}

// foldUnstructured splits long free text into two lines at a natural
// break near the middle. The break is the earliest occurrence of any
// candidate character whose first position falls strictly inside the
// middle window of the text.
//
// When no candidate falls inside the window the whole text collapses to
// a single empty line. That drops the text from display; the behavior
// is kept as-is and pinned by a regression test until the upstream
// format owners clarify the intended fallback.
func foldUnstructured(s string) []string {
	if len(s) < foldThreshold {
		return []string{s}
	}
	m := len(s) / 2
	c := (len(s) - m) / 2
	lower, upper := m-c, m+c
	best := -1
	for _, sep := range []string{";", "/", "\\", ",", ".", " "} {
		if i := strings.Index(s, sep); i > lower && i < upper && (best == -1 || i < best) {
			best = i
		}
	}
	if best == -1 {
		return []string{""}
	}
	return []string{strings.TrimSpace(s[:best+1]), strings.TrimSpace(s[best+1:])}
}
