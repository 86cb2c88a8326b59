// internal/models/payload.go
package models

// TransformedAnswer is one rendered answer, ordered by catalog order.
type TransformedAnswer struct {
	QuestionID string `json:"questionId"`
	Text       string `json:"text"`
	Code       string `json:"code"`
	Answer     string `json:"answer"`
}

// Payload is the wire body POSTed to the webhook endpoint: the raw response
// fields plus the injected identifiers and the "map" of transformed answers.
type Payload map[string]interface{}

// DeliveryResult is the outcome of one webhook dispatch attempt.
type DeliveryResult struct {
	Delivered  bool   `json:"delivered"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}
