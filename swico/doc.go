// Package swico implements the Swico S1 micro-format used to embed
// structured invoice metadata in the additional information field of a
// Swiss QR bill.
//
// The wire format is free text followed by the //S1 marker and /NN/
// delimited fields:
//
//	Message au payeur//S1/10/10201409/11/190512/30/106017086/40/2:10;0:30
//
// ParseS1 turns such a string into a validated S1 set; S1Builder builds
// one field by field. Both run the same syntax validation and serialize
// fields in ascending tag-id order regardless of input order.
//
// Syntax references:
//
//	FRENCH: https://www.swiss-qr-invoice.org/downloads/qr-bill-s1-syntax-fr.pdf
//	GERMAN: https://www.swiss-qr-invoice.org/downloads/qr-bill-s1-syntax-de.pdf
package swico
