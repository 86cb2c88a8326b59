// internal/transform/renderer.go
package transform

import "survey-webhooks/internal/models"

// renderOutcome carries the rendered value plus the recoverable conditions
// absorbed while rendering. They never surface as errors; the transformer
// turns them into metrics and debug logs.
type renderOutcome struct {
	answer       string
	lookupMiss   bool
	missingLabel bool
}

func renderAnswer(question models.Question, raw, language string) renderOutcome {
	switch question.Type {
	case models.QuestionTypeFreeText, models.QuestionTypeSingleLine:
		// Already human-readable; absent answers read as the empty string.
		return renderOutcome{answer: raw}

	case models.QuestionTypeList:
		for _, option := range question.Answers {
			if option.Code != raw {
				continue
			}
			// First catalog match wins should the catalog ever carry
			// duplicate codes.
			if label, ok := option.Label(language); ok {
				return renderOutcome{answer: label}
			}
			return renderOutcome{answer: raw, missingLabel: true}
		}
		// A stale or custom code still produces output.
		return renderOutcome{answer: raw, lookupMiss: true}

	default:
		return renderOutcome{answer: raw}
	}
}

// RenderAnswer produces the human-readable answer text for one question and
// one raw stored value. It never fails: unmatched list codes and unknown
// question types pass the raw value through.
func RenderAnswer(question models.Question, raw, language string) string {
	return renderAnswer(question, raw, language).answer
}
