package reference

import (
	"strconv"
	"strings"
)

// esrTable is the modulo-10 substitution table of the ESR scheme.
var esrTable = [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}

// ESR is a Swiss QRR payment reference carrying a trailing modulo-10
// check digit. The zero value is not usable; construct via
// TryWithChecksum or TryWithoutChecksum.
type ESR struct {
	number string
}

// TryWithChecksum validates a complete ESR reference whose last digit is
// the check digit. Spaces and leading zeros are stripped before
// validation.
func TryWithChecksum(raw string) (ESR, error) {
	number := normalizeESR(raw)
	if len(number) > 27 || len(number) < 5 {
		return ESR{}, &LengthError{Length: len(number), Min: 5, Max: 27}
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return ESR{}, &FormatError{Input: number, Reason: "ESR requires only digits"}
		}
	}
	check, err := esrChecksum(number[:len(number)-1])
	if err != nil {
		return ESR{}, err
	}
	if number[len(number)-1:] != check {
		return ESR{}, &ChecksumError{Input: number}
	}
	return ESR{number: number}, nil
}

// TryWithoutChecksum computes and appends the check digit for a bare ESR
// body, then validates the assembled reference.
func TryWithoutChecksum(raw string) (ESR, error) {
	number := normalizeESR(raw)
	if len(number) > 25 || len(number) < 5 {
		return ESR{}, &LengthError{Length: len(number), Min: 5, Max: 25}
	}
	check, err := esrChecksum(number)
	if err != nil {
		return ESR{}, err
	}
	return TryWithChecksum(number + check)
}

// Raw returns the normalized reference without padding or grouping.
func (e ESR) Raw() string { return e.number }

// String renders the reference zero-padded to 27 digits and grouped
// 2+5+5+5+5+5, as printed on the payment part.
func (e ESR) String() string {
	padded := strings.Repeat("0", 27-len(e.number)) + e.number
	parts := make([]string, 0, 6)
	parts = append(parts, padded[:2])
	for i := 2; i < 27; i += 5 {
		parts = append(parts, padded[i:i+5])
	}
	return strings.Join(parts, " ")
}

func normalizeESR(raw string) string {
	return strings.TrimLeft(strings.ReplaceAll(raw, " ", ""), "0")
}

// esrChecksum folds the body digits through the substitution table and
// returns the check digit.
func esrChecksum(number string) (string, error) {
	c := 0
	for _, r := range number {
		if r < '0' || r > '9' {
			return "", &FormatError{Input: number, Reason: "ESR requires only digits"}
		}
		c = esrTable[(int(r-'0')+c)%10]
	}
	return strconv.Itoa((10 - c) % 10), nil
}
