// internal/transform/builder.go
package transform

import "survey-webhooks/internal/models"

// BuildPayload merges the raw response with the injected identifiers and the
// transformed answer map into the wire body. The raw answers (keyed by
// question code) and the response's scalar fields all carry over; the
// injected identifiers are written last and win any field-name collision.
func BuildPayload(surveyID string, raw models.RawResponse, answers []models.TransformedAnswer, token *models.TokenInfo) models.Payload {
	payload := make(models.Payload, len(raw.Answers)+8)

	for code, value := range raw.Answers {
		payload[code] = value
	}

	payload["id"] = raw.ID
	payload["token"] = raw.Token
	payload["startlanguage"] = raw.Language
	if raw.SubmittedAt != "" {
		payload["submitdate"] = raw.SubmittedAt
	}

	payload["surveyId"] = surveyID
	if token != nil {
		payload["tid"] = token.TID
		payload["participant_id"] = token.ParticipantID
	}

	payload["map"] = answers

	return payload
}
