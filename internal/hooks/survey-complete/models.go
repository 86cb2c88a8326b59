// internal/hooks/survey-complete/models.go
package surveycomplete

import "time"

// Hook outcome statuses.
const (
	StatusDelivered = "delivered"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// Input is the survey-completion notification accepted by the hook.
type Input struct {
	SurveyID      string `json:"surveyId"`
	ResponseID    string `json:"responseId"`
	ParticipantID string `json:"participantId,omitempty"`
}

// Output reports what the hook did with one completion event.
type Output struct {
	Status      string    `json:"status"`
	StatusCode  int       `json:"statusCode,omitempty"`
	DispatchID  string    `json:"dispatchId,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}
