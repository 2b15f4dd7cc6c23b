package reference

import "fmt"

// LengthError reports a reference whose normalized form falls outside
// the length range of its scheme.
type LengthError struct {
	Length int
	Min    int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length must be between %d and %d, found %d", e.Min, e.Max, e.Length)
}

// FormatError reports content outside the scheme's alphabet, such as a
// non-digit in an ESR number or a missing RF prefix.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s, found %q", e.Reason, e.Input)
}

// ChecksumError reports a reference whose trailing check digits do not
// match the recomputed value.
type ChecksumError struct {
	Input string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum is invalid for %q", e.Input)
}

// IBANCompatibilityError reports a reference scheme that the bank
// identifier of the account IBAN does not admit.
type IBANCompatibilityError struct {
	IBAN   string
	Reason string
}

func (e *IBANCompatibilityError) Error() string {
	return fmt.Sprintf("IBAN %q %s", e.IBAN, e.Reason)
}
