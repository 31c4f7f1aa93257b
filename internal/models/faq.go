package models

// FAQ represents a stored question/answer pair used for fuzzy matching.
// Identity is not tracked at this layer; matching is purely by text content.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
