package validation

// MaxMessageLength bounds the accepted chat message size. The resolver
// itself is total over any string; this only rejects abusive payloads at the
// transport edge.
const MaxMessageLength = 4096

// ValidateMessage checks an incoming chat message. Empty messages are
// accepted: the resolver answers them with its fallback.
func ValidateMessage(message string) (bool, string) {
	if len(message) > MaxMessageLength {
		return false, "message too long"
	}
	return true, ""
}
