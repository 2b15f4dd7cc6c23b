// Package formatter renders parse and validation results as JSON or as
// the labelled text block printed on the payment part.
package formatter
