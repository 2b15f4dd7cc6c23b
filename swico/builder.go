package swico

import "time"

// S1Builder accumulates Swico S1 fields one call at a time. A later call
// for the same field overwrites the earlier value. Build validates the
// accumulated set; the builder can be reused afterwards.
type S1Builder struct {
	set StructuredSet
}

// NewS1Builder returns an empty builder.
func NewS1Builder() *S1Builder {
	return &S1Builder{set: newStructuredSet()}
}

// AddUnstructured sets the free text placed before the //S1 marker.
func (b *S1Builder) AddUnstructured(text string) *S1Builder {
	b.set.insert(TagUnstructured, text)
	return b
}

// InvoiceRef sets the voucher/invoice number (/10/). Its date is the
// reference date for the payment conditions (/40/).
func (b *S1Builder) InvoiceRef(text string) *S1Builder {
	b.set.insert(TagInvoiceRef, text)
	return b
}

// DocDate sets the voucher date (/11/) from a raw YYMMDD string. Both
// "240101" and "010124" are valid dates, so prefer DocDateTime when the
// value is not already in wire form.
func (b *S1Builder) DocDate(text string) *S1Builder {
	b.set.insert(TagDocDate, text)
	return b
}

// DocDateTime sets the voucher date (/11/).
func (b *S1Builder) DocDateTime(date time.Time) *S1Builder {
	b.set.insert(TagDocDate, date.Format(dateFormat))
	return b
}

// ClientRef sets the customer reference (/20/), used by the customer to
// identify the bill.
func (b *S1Builder) ClientRef(text string) *S1Builder {
	b.set.insert(TagClientRef, text)
	return b
}

// VatNum sets the creditor's numerical UID (/30/), without the CHE
// prefix, separators and VAT suffix. For a bill with more than one VAT
// number, the first should be entered.
func (b *S1Builder) VatNum(text string) *S1Builder {
	b.set.insert(TagVatNum, text)
	return b
}

// VatDate sets the date the service was provided (/31/) from a raw
// YYMMDD or YYMMDDYYMMDD string. Prefer VatDateTime or VatDatePeriod
// when the value is not already in wire form.
func (b *S1Builder) VatDate(text string) *S1Builder {
	b.set.insert(TagVatDate, text)
	return b
}

// VatDateTime sets the single date the service was provided (/31/).
func (b *S1Builder) VatDateTime(date time.Time) *S1Builder {
	b.set.insert(TagVatDate, date.Format(dateFormat))
	return b
}

// VatDatePeriod sets the range the service was provided over (/31/).
func (b *S1Builder) VatDatePeriod(start, end time.Time) *S1Builder {
	b.set.insert(TagVatDate, start.Format(dateFormat)+end.Format(dateFormat))
	return b
}

// VatDetails sets the VAT rates on the invoiced amount (/32/): a single
// percentage, or rate:net-amount pairs separated by ';'.
func (b *S1Builder) VatDetails(text string) *S1Builder {
	b.set.insert(TagVatDetails, text)
	return b
}

// VatImport sets the import VAT amounts (/33/) as rate:amount pairs.
func (b *S1Builder) VatImport(text string) *S1Builder {
	b.set.insert(TagVatImport, text)
	return b
}

// Conditions sets the discounts and payment terms (/40/) as
// percentage:days pairs; "0:30" marks the default payment term.
// Without a zero-rate entry payment software cannot suggest a date.
func (b *S1Builder) Conditions(text string) *S1Builder {
	b.set.insert(TagConditions, text)
	return b
}

// Build injects the //S1 prefix when more than one field is present,
// enforces the 140-character cap over every stored value, and runs the
// syntax validation.
func (b *S1Builder) Build() (*S1, error) {
	if b.set.Len() > 1 {
		b.set.insert(TagPrefix, "S1")
	}
	if n := b.set.totalLen(); n > 140 {
		return nil, &TooLongError{Length: n}
	}
	return validateS1(b.set.clone())
}
