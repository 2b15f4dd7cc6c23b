package swico

import "fmt"

// TooLongError reports billing information over the 140-character cap.
type TooLongError struct {
	Length int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("maximum 140 characters authorized for billing information, found %d", e.Length)
}

// ParseError reports raw text in which no Swico fields could be located.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not locate Swico fields in %q", e.Input)
}

// UnknownBeaconError reports a /NN/ marker that belongs to no known
// field.
type UnknownBeaconError struct {
	Beacon string
}

func (e *UnknownBeaconError) Error() string {
	return fmt.Sprintf("invalid Swico beacon/group, found %q", e.Beacon)
}

// EscapeError reports a value with an unescaped '/' or a dangling '\'.
type EscapeError struct {
	Value string
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf(`invalid escape char on %q: '\' and '/' must be escaped, replace them by '\\' or '\/'`, e.Value)
}

// DateFormatError reports a date value that is not one or two valid
// YYMMDD dates.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format, expected YYMMDD, found %q", e.Value)
}

// VatNumFormatError reports a VAT number that is not exactly 9 digits.
type VatNumFormatError struct {
	Value string
}

func (e *VatNumFormatError) Error() string {
	return fmt.Sprintf("VAT ID/NUM must be 9 digits, found %q", e.Value)
}

// DecimalSeparatorError reports an amount list using ',' where '.' is
// required.
type DecimalSeparatorError struct {
	Value string
}

func (e *DecimalSeparatorError) Error() string {
	return fmt.Sprintf("an amount or a percentage with decimal places must use the character '.' (full stop) as the separator, found %q", e.Value)
}

// NumberFormatError reports a subgroup that does not parse as a number.
type NumberFormatError struct {
	Value string
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("could not parse %q as a number", e.Value)
}

// ConditionsFormatError reports a payment condition that is not a
// rate:days pair.
type ConditionsFormatError struct {
	Value string
}

func (e *ConditionsFormatError) Error() string {
	return fmt.Sprintf(`conditions consist of 2 elements "Skonto(float):Days(int)", found %q`, e.Value)
}
