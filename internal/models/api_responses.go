package models

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	UserMessage string `json:"user_message"`
}

// FAQListResponse is the body of GET /faqs.
type FAQListResponse struct {
	Count int   `json:"count"`
	FAQs  []FAQ `json:"faqs"`
}

// ReplaceFAQsRequest is the body of PUT /admin/faqs.
type ReplaceFAQsRequest struct {
	FAQs []FAQ `json:"faqs"`
}
