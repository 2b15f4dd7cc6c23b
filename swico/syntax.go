package swico

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// dateFormat is the wire form of all S1 dates (YYMMDD).
const dateFormat = "060102"

// validateS1 applies the S1 per-field format rules and returns the set
// wrapped as a validated S1. The set itself is never modified; either
// every rule holds or a typed error is returned.
func validateS1(set StructuredSet) (*S1, error) {
	for _, t := range []Tag{TagDocDate, TagVatDate} {
		if v, ok := set.Get(t); ok {
			if err := checkDate(v); err != nil {
				return nil, err
			}
		}
	}
	if v, ok := set.Get(TagVatNum); ok {
		if err := checkVatNum(v); err != nil {
			return nil, err
		}
	}
	for _, t := range []Tag{TagInvoiceRef, TagClientRef} {
		if v, ok := set.Get(t); ok {
			if err := checkEscapes(v); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range []Tag{TagVatDetails, TagVatImport, TagConditions} {
		if v, ok := set.Get(t); ok {
			if err := checkGroups(v, t == TagConditions); err != nil {
				return nil, err
			}
		}
	}
	return &S1{set: set}, nil
}

// checkDate accepts a single YYMMDD date or a YYMMDDYYMMDD range; each
// half must be a real calendar date.
func checkDate(v string) error {
	switch utf8.RuneCountInString(v) {
	case 6:
		return parseWireDate(v)
	case 12:
		if err := parseWireDate(v[:6]); err != nil {
			return err
		}
		return parseWireDate(v[6:])
	default:
		return &DateFormatError{Value: v}
	}
}

func parseWireDate(v string) error {
	if _, err := time.Parse(dateFormat, v); err != nil {
		return &DateFormatError{Value: v}
	}
	return nil
}

// checkVatNum requires the numerical UID: exactly 9 ASCII digits.
func checkVatNum(v string) error {
	if utf8.RuneCountInString(v) != 9 {
		return &VatNumFormatError{Value: v}
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return &VatNumFormatError{Value: v}
		}
	}
	return nil
}

// checkEscapes rejects unescaped '/' and any '\' not followed by '\' or
// '/'.
func checkEscapes(v string) error {
	rs := []rune(v)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '/':
			return &EscapeError{Value: v}
		case '\\':
			if i+1 >= len(rs) || (rs[i+1] != '\\' && rs[i+1] != '/') {
				return &EscapeError{Value: v}
			}
			i++
		}
	}
	return nil
}

// checkGroups validates the ';'-separated groups of ':'-separated
// numbers used by VAT details, VAT import and payment conditions. For
// conditions every group must be a rate:days pair with integer days.
func checkGroups(v string, conditions bool) error {
	if strings.ContainsRune(v, ',') {
		return &DecimalSeparatorError{Value: v}
	}
	for _, group := range strings.Split(v, ";") {
		subs := strings.Split(group, ":")
		for _, sub := range subs {
			if _, err := strconv.ParseFloat(sub, 32); err != nil {
				return &NumberFormatError{Value: sub}
			}
		}
		if conditions {
			if len(subs) != 2 {
				return &ConditionsFormatError{Value: v}
			}
			if _, err := strconv.ParseUint(subs[1], 10, 8); err != nil {
				return &ConditionsFormatError{Value: v}
			}
		}
	}
	return nil
}
