package models

// Source identifies which stage of the resolution pipeline produced a response.
type Source string

const (
	SourceRule     Source = "rule"
	SourceFAQ      Source = "faq"
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
	SourceError    Source = "error"
)

// Resolution is the outcome of resolving a single user question.
// Every resolution carries exactly one Source tag so callers can tell a real
// answer from a degraded one.
type Resolution struct {
	Response string `json:"response"`
	Source   Source `json:"source"`
}
