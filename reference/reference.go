package reference

import (
	"strconv"
	"strings"
)

// QR-IID range: bank identifiers reserved for QRR-capable accounts.
const (
	qrIIDStart = 30000
	qrIIDEnd   = 31999
)

// Kind discriminates the reference scheme carried in a payment.
type Kind int

const (
	KindNone Kind = iota
	KindQRR
	KindSCOR
)

// Reference is the closed union of payment reference schemes: QRR (ESR),
// SCOR (ISO 11649), or no reference at all. A future scheme adds a Kind
// and the matching switch arms.
type Reference struct {
	kind Kind
	esr  ESR
	scor ISO11649
}

// QRR wraps an ESR reference.
func QRR(e ESR) Reference { return Reference{kind: KindQRR, esr: e} }

// SCOR wraps an ISO 11649 creditor reference.
func SCOR(r ISO11649) Reference { return Reference{kind: KindSCOR, scor: r} }

// None is the explicit no-reference case.
func None() Reference { return Reference{kind: KindNone} }

func (r Reference) Kind() Kind { return r.kind }

// DataList returns the reference type and raw value pair emitted into
// the QR payload.
func (r Reference) DataList() [2]string {
	switch r.kind {
	case KindQRR:
		return [2]string{"QRR", r.esr.Raw()}
	case KindSCOR:
		return [2]string{"SCOR", r.scor.Raw()}
	default:
		return [2]string{"NON", ""}
	}
}

// String renders the reference in its printed grouping, or empty for the
// no-reference case.
func (r Reference) String() string {
	switch r.kind {
	case KindQRR:
		return r.esr.String()
	case KindSCOR:
		return r.scor.String()
	default:
		return ""
	}
}

// CompatibleWithIBAN checks the reference scheme against the bank
// identifier of the account IBAN: a QR-IID (30000-31999) requires a QRR
// reference, a plain IID forbids one.
func (r Reference) CompatibleWithIBAN(iban string) error {
	electronic := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(electronic) < 9 || (!strings.HasPrefix(electronic, "CH") && !strings.HasPrefix(electronic, "LI")) {
		return &FormatError{Input: iban, Reason: "IBAN needs to start with CH or LI"}
	}
	iid, err := strconv.Atoi(electronic[4:9])
	if err != nil {
		return &FormatError{Input: iban, Reason: "IBAN bank identifier must be numeric"}
	}
	if iid >= qrIIDStart && iid <= qrIIDEnd {
		if r.kind != KindQRR {
			return &IBANCompatibilityError{IBAN: electronic, Reason: "carries a QR-IID and requires a QRR reference"}
		}
		return nil
	}
	if r.kind == KindQRR {
		return &IBANCompatibilityError{IBAN: electronic, Reason: "carries a plain IID and cannot be used with a QRR reference"}
	}
	return nil
}
