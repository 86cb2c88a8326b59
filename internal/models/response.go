// internal/models/response.go
package models

// RawResponse is a completed response as fetched from the response store.
// Immutable once fetched; answers are keyed by question code.
type RawResponse struct {
	ID          string            `json:"id"`
	Token       string            `json:"token"`
	Language    string            `json:"startlanguage"`
	SubmittedAt string            `json:"submitdate"`
	Answers     map[string]string `json:"answers"`
}

// Answer returns the raw stored value for a question code; absent answers
// read as the empty string.
func (r RawResponse) Answer(code string) string {
	return r.Answers[code]
}

// TokenInfo carries the participant identifiers resolved from the response's
// stored token value.
type TokenInfo struct {
	TID           string `json:"tid"`
	ParticipantID string `json:"participant_id"`
}

// CompletionEvent is the inbound survey-completion notification from the host.
type CompletionEvent struct {
	SurveyID      string `json:"surveyId"`
	ResponseID    string `json:"responseId"`
	ParticipantID string `json:"participantId,omitempty"`
}
