package formatter

import "encoding/json"

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new builder for formatting reports
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a report to JSON
func (rb *responseBuilder) BuildJSON(report any) []byte {
	b, _ := json.Marshal(report)
	return b
}
