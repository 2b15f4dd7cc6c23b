package swico

import "fmt"

// Tag identifies a Swico S1 field. The numeric value is the two-digit id
// used in the wire format.
type Tag int

const (
	TagUnstructured Tag = 0  // free text before the //S1 marker
	TagPrefix       Tag = 1  // the //S1 marker itself
	TagInvoiceRef   Tag = 10 // /10/ voucher or invoice number
	TagDocDate      Tag = 11 // /11/ voucher date
	TagClientRef    Tag = 20 // /20/ customer reference
	TagVatNum       Tag = 30 // /30/ numerical UID of the creditor
	TagVatDate      Tag = 31 // /31/ date or range the service was provided
	TagVatDetails   Tag = 32 // /32/ VAT rates and net amounts
	TagVatImport    Tag = 33 // /33/ import VAT amounts
	TagConditions   Tag = 40 // /40/ discounts and payment terms
)

// parseTags lists the tags that carry a /NN/ delimiter, in ascending id
// order.
var parseTags = []Tag{
	TagInvoiceRef,
	TagDocDate,
	TagClientRef,
	TagVatNum,
	TagVatDate,
	TagVatDetails,
	TagVatImport,
	TagConditions,
}

// allTags is every tag in canonical serialization order.
var allTags = []Tag{
	TagUnstructured,
	TagPrefix,
	TagInvoiceRef,
	TagDocDate,
	TagClientRef,
	TagVatNum,
	TagVatDate,
	TagVatDetails,
	TagVatImport,
	TagConditions,
}

// Delimiter returns the literal marker introducing the tag in the wire
// format: "//" for the prefix, "/NN/" for numbered tags and the empty
// string for the leading free text.
func (t Tag) Delimiter() string {
	switch t {
	case TagUnstructured:
		return ""
	case TagPrefix:
		return "//"
	default:
		return fmt.Sprintf("/%02d/", int(t))
	}
}

func (t Tag) String() string {
	switch t {
	case TagUnstructured:
		return "Unstructured"
	case TagPrefix:
		return "Prefix"
	case TagInvoiceRef:
		return "InvoiceRef"
	case TagDocDate:
		return "DocDate"
	case TagClientRef:
		return "ClientRef"
	case TagVatNum:
		return "VatNum"
	case TagVatDate:
		return "VatDate"
	case TagVatDetails:
		return "VatDetails"
	case TagVatImport:
		return "VatImport"
	case TagConditions:
		return "Conditions"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// invalidBeacons enumerates every /NN/ marker with NN in 00..99 that
// does not belong to a known field.
func invalidBeacons() []string {
	var out []string
	for i := 0; i < 100; i++ {
		known := false
		for _, t := range parseTags {
			if int(t) == i {
				known = true
				break
			}
		}
		if !known {
			out = append(out, fmt.Sprintf("/%02d/", i))
		}
	}
	return out
}
