package formatter

import (
	"strings"

	"github.com/Yatekii/qrbill/label"
)

// BuildText renders a billing report as the labelled block shown under
// the additional information heading.
func (rb *responseBuilder) BuildText(r BillingReport, lang label.Language) []byte {
	labels := label.ForLanguage(lang)
	var b strings.Builder
	b.WriteString(labels.AdditionalInformation)
	b.WriteByte('\n')
	for _, line := range r.Paragraph {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// BuildReferenceText renders a reference report under its heading.
func (rb *responseBuilder) BuildReferenceText(r ReferenceReport, lang label.Language) []byte {
	labels := label.ForLanguage(lang)
	var b strings.Builder
	b.WriteString(labels.Reference)
	b.WriteByte('\n')
	if r.Formatted != "" {
		b.WriteString(r.Formatted)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
