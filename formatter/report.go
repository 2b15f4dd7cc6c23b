package formatter

import (
	qrbill "github.com/Yatekii/qrbill"
	"github.com/Yatekii/qrbill/reference"
)

// BillingReport is the serializable result of parsing and validating an
// additional information string.
type BillingReport struct {
	Unstructured string   `json:"unstructured,omitempty"`
	Structured   string   `json:"structured,omitempty"`
	Length       int      `json:"length"`
	Paragraph    []string `json:"paragraph,omitempty"`
}

// WrapBillingInfos flattens billing information into a report.
func WrapBillingInfos(b qrbill.BillingInfos) BillingReport {
	r := BillingReport{Length: b.Len(), Paragraph: b.AsParagraph()}
	if u, ok := b.Unstructured(); ok {
		r.Unstructured = u
	}
	if s, ok := b.Structured(); ok {
		r.Structured = s
	}
	return r
}

// ReferenceReport is the serializable result of validating or generating
// a payment reference.
type ReferenceReport struct {
	Type      string `json:"type"`
	Raw       string `json:"raw"`
	Formatted string `json:"formatted"`
}

// WrapReference flattens a payment reference into a report.
func WrapReference(ref reference.Reference) ReferenceReport {
	dl := ref.DataList()
	return ReferenceReport{Type: dl[0], Raw: dl[1], Formatted: ref.String()}
}
