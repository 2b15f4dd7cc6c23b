// Package reference implements the two payment reference schemes allowed
// on a Swiss QR bill:
//
//   - QRR: the numeric ESR reference with a modulo-10 substitution-table
//     check digit, via ESR
//   - SCOR: the ISO 11649 creditor reference with ISO 7064 MOD 97-10
//     check digits, via ISO11649
//
// Reference is the closed union of both schemes plus the no-reference
// case, and knows which scheme the bank identifier (IID) of an account
// IBAN admits.
//
// All values are immutable once constructed; the validating constructors
// either return a fully valid value or a typed error.
package reference
