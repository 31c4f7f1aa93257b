package chat

import "strings"

// domainKeywords are institution/academic/facility terms whose presence marks
// a question as plausibly about the college, gating the AI fallback.
var domainKeywords = []string{
	"college", "admission", "fee", "course", "department", "faculty",
	"placement", "exam", "hod", "cse", "ece", "ise", "ai", "ml", "mba",
	"hostel", "transport", "canteen", "library", "scholarship",
}

// InDomain reports whether the question contains at least one domain keyword.
// Case-insensitive substring containment; punctuation is left alone.
func InDomain(question string) bool {
	q := strings.ToLower(question)
	for _, word := range domainKeywords {
		if strings.Contains(q, word) {
			return true
		}
	}
	return false
}
