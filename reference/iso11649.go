package reference

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// generativeBodyMax caps the body so that the full RF reference stays
// within the 25-character limit of the scheme.
const generativeBodyMax = 21

// ISO11649 is an ISO 11649 creditor reference (SCOR): the literal RF,
// two check digits computed by ISO 7064 MOD 97-10, and an alphanumeric
// body.
type ISO11649 struct {
	number string
}

// TryNew validates an existing creditor reference. Common punctuation
// (space, '-', '.', ',', '/', ':') is stripped before validation.
func TryNew(raw string) (ISO11649, error) {
	number := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', ',', '/', ':':
			return -1
		}
		return r
	}, raw)
	if len(number) < 5 || len(number) > 25 {
		return ISO11649{}, &LengthError{Length: len(number), Min: 5, Max: 25}
	}
	if !strings.HasPrefix(number, "RF") {
		return ISO11649{}, &FormatError{Input: number, Reason: "number must start with 'RF'"}
	}
	rem, err := mod97(number[4:] + number[:4])
	if err != nil {
		return ISO11649{}, err
	}
	if rem != 1 {
		return ISO11649{}, &ChecksumError{Input: number}
	}
	return ISO11649{number: number}, nil
}

// New builds a creditor reference from arbitrary text. The text is
// transliterated to ASCII, uppercased, reduced to the base-36 alphabet
// and truncated to 21 characters before the check digits are computed.
// This constructor cannot fail.
func New(text string) ISO11649 {
	body := transliterate(text)
	// body is base-36 clean by construction, mod97 cannot fail here
	rem, _ := mod97(body + "RF00")
	return ISO11649{number: fmt.Sprintf("RF%02d%s", 98-rem, body)}
}

// Raw returns the reference without grouping.
func (r ISO11649) Raw() string { return r.number }

// String renders the reference in space-separated groups of four.
func (r ISO11649) String() string {
	var parts []string
	for i := 0; i < len(r.number); i += 4 {
		end := i + 4
		if end > len(r.number) {
			end = len(r.number)
		}
		parts = append(parts, r.number[i:end])
	}
	return strings.Join(parts, " ")
}

// mod97 maps each character to its base-36 value, concatenates the
// decimal digit strings and reduces the resulting decimal number
// modulo 97 (ISO 7064 MOD 97-10).
func mod97(s string) (int, error) {
	rem := 0
	for _, r := range s {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r >= 'A' && r <= 'Z':
			v = int(r-'A') + 10
		case r >= 'a' && r <= 'z':
			v = int(r-'a') + 10
		default:
			return 0, &FormatError{Input: s, Reason: "reference must contain only alphanumeric characters"}
		}
		if v < 10 {
			rem = (rem*10 + v) % 97
		} else {
			rem = (rem*100 + v) % 97
		}
	}
	return rem, nil
}

// asciiFold strips combining marks so that accented letters survive the
// base-36 reduction, e.g. "Dépôt" becomes "Depot".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func transliterate(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(folded) {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
		if b.Len() == generativeBodyMax {
			break
		}
	}
	return b.String()
}
