package models

// Contact holds the admin contact referenced in the static fallback message.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
