// Package label provides the QR bill heading labels in the four allowed
// languages (Annex D of the Swiss implementation guidelines).
package label

// Language is one of the four languages allowed on a QR bill.
type Language int

const (
	English Language = iota
	German
	French
	Italian
)

// FromCode maps a configuration language code to a Language, defaulting
// to English.
func FromCode(code string) Language {
	switch code {
	case "de":
		return German
	case "fr":
		return French
	case "it":
		return Italian
	default:
		return English
	}
}

// Labels is the set of headings in a single language.
type Labels struct {
	PaymentPart           string
	PayableTo             string
	Reference             string
	AdditionalInformation string
	Currency              string
	Amount                string
	Receipt               string
	AcceptancePoint       string
	PayableBy             string
	PayableByExtended     string
	PayableByDate         string
}

// ForLanguage returns every known heading in the given language.
func ForLanguage(l Language) Labels {
	return Labels{
		PaymentPart:           paymentPart.to(l),
		PayableTo:             payableTo.to(l),
		Reference:             reference.to(l),
		AdditionalInformation: additionalInformation.to(l),
		Currency:              currency.to(l),
		Amount:                amount.to(l),
		Receipt:               receipt.to(l),
		AcceptancePoint:       acceptancePoint.to(l),
		PayableBy:             payableBy.to(l),
		PayableByExtended:     payableByExtended.to(l),
		PayableByDate:         payableByDate.to(l),
	}
}

// translation holds one heading in all four languages.
type translation struct {
	en, de, fr, it string
}

func (t translation) to(l Language) string {
	switch l {
	case German:
		return t.de
	case French:
		return t.fr
	case Italian:
		return t.it
	default:
		return t.en
	}
}

// Annex D: multilingual headings.
var (
	paymentPart = translation{
		en: "Payment part",
		de: "Zahlteil",
		fr: "Section paiement",
		it: "Sezione pagamento",
	}
	payableTo = translation{
		en: "Account / Payable to",
		de: "Konto / Zahlbar an",
		fr: "Compte / Payable à",
		it: "Conto / Pagabile a",
	}
	reference = translation{
		en: "Reference",
		de: "Referenz",
		fr: "Référence",
		it: "Riferimento",
	}
	additionalInformation = translation{
		en: "Additional information",
		de: "Zusätzliche Informationen",
		fr: "Informations supplémentaires",
		it: "Informazioni supplementari",
	}
	currency = translation{
		en: "Currency",
		de: "Währung",
		fr: "Monnaie",
		it: "Valuta",
	}
	amount = translation{
		en: "Amount",
		de: "Betrag",
		fr: "Montant",
		it: "Importo",
	}
	receipt = translation{
		en: "Receipt",
		de: "Empfangsschein",
		fr: "Récépissé",
		it: "Ricevuta",
	}
	acceptancePoint = translation{
		en: "Acceptance point",
		de: "Annahmestelle",
		fr: "Point de dépôt",
		it: "Punto di accettazione",
	}
	payableBy = translation{
		en: "Payable by",
		de: "Zahlbar durch",
		fr: "Payable par",
		it: "Pagabile da",
	}
	payableByExtended = translation{
		en: "Payable by (name/address)",
		de: "Zahlbar durch (Name/Adresse)",
		fr: "Payable par (nom/adresse)",
		it: "Pagabile da (nome/indirizzo)",
	}
	// Differs from payableBy only in German, French and Italian; the
	// English heading is shared.
	payableByDate = translation{
		en: "Payable by",
		de: "Zahlbar bis",
		fr: "Payable jusqu’au",
		it: "Pagabile fino al",
	}
)
