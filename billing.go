// Package qrbill validates and encodes the payment references and the
// billing information (additional information field) of a Swiss QR bill.
//
// BillingInfos aggregates an optional structured Swico S1 emitter and an
// optional free-text override, enforces the shared 140-character cap,
// and lays both parts out as display paragraphs for the payment part.
// Reference schemes (QRR/SCOR) live in the reference subpackage, the
// Swico S1 codec in the swico subpackage.
package qrbill

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Yatekii/qrbill/swico"
)

// MaxBillingLen is the combined cap on unstructured and structured text.
const MaxBillingLen = 140

// emitter is the closed union of structured billing formats. Swico is
// the only scheme in circulation; a future scheme adds a field here and
// the matching switch arms in the accessors.
type emitter struct {
	swico *swico.S1
}

// BillingInfos aggregates the structured (Swico) and unstructured parts
// of the additional information field. The zero value is empty and
// valid; all methods are read-only and AddUnstructured returns a copy.
type BillingInfos struct {
	emitter      *emitter
	unstructured *string
}

// New returns empty billing information.
func New() BillingInfos { return BillingInfos{} }

// FromS1 wraps a validated Swico S1 set, with no standalone override.
func FromS1(s1 *swico.S1) BillingInfos {
	return BillingInfos{emitter: &emitter{swico: s1}}
}

// Parse reads the raw text of an additional information field. The text
// must carry a //S1 marker; plain free text goes through
// New().AddUnstructured instead.
func Parse(s string) (BillingInfos, error) {
	if !strings.Contains(s, swico.PrefixMarker) {
		return BillingInfos{}, &NoStructuredDataError{Input: s}
	}
	s1, err := swico.ParseS1(s)
	if err != nil {
		return BillingInfos{}, err
	}
	return FromS1(s1), nil
}

// AddUnstructured returns a copy with the free-text override replaced,
// keeping the emitter. It fails when the override plus the structured
// part would exceed 140 characters.
func (b BillingInfos) AddUnstructured(text string) (BillingInfos, error) {
	n := utf8.RuneCountInString(text)
	if n > MaxBillingLen {
		return BillingInfos{}, &swico.TooLongError{Length: n}
	}
	if s, ok := b.Structured(); ok {
		if total := n + utf8.RuneCountInString(s); total > MaxBillingLen {
			return BillingInfos{}, &swico.TooLongError{Length: total}
		}
	}
	return BillingInfos{emitter: b.emitter, unstructured: &text}, nil
}

// Unstructured returns the override when set, else the emitter's own
// free text.
func (b BillingInfos) Unstructured() (string, bool) {
	if b.unstructured != nil {
		return *b.unstructured, true
	}
	if b.emitter != nil && b.emitter.swico != nil {
		return b.emitter.swico.Unstructured()
	}
	return "", false
}

// Structured returns the canonical ascending-id serialization of the
// emitter's structured fields.
func (b BillingInfos) Structured() (string, bool) {
	if b.emitter != nil && b.emitter.swico != nil {
		return b.emitter.swico.Structured()
	}
	return "", false
}

// Len is the combined character count of both parts, computed fresh on
// every call.
func (b BillingInfos) Len() int {
	n := 0
	if u, ok := b.Unstructured(); ok {
		n += utf8.RuneCountInString(u)
	}
	if s, ok := b.Structured(); ok {
		n += utf8.RuneCountInString(s)
	}
	return n
}

func (b BillingInfos) IsEmpty() bool { return b.Len() == 0 }

// NoStructuredDataError reports input without any known structured
// marker.
type NoStructuredDataError struct {
	Input string
}

func (e *NoStructuredDataError) Error() string {
	return fmt.Sprintf("could not parse string into Swico: %q", e.Input)
}
