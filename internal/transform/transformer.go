// internal/transform/transformer.go
package transform

import (
	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/common/metrics"
	"survey-webhooks/internal/models"
)

// Transformer turns a raw answer record plus a question catalog into the
// ordered answer collection carried by the payload.
type Transformer struct {
	logger logger.Logger
}

func NewTransformer(log logger.Logger) *Transformer {
	return &Transformer{logger: log}
}

// Transform walks the catalog in its defined order (which matches the form
// layout) and renders one TransformedAnswer per question. An empty catalog
// yields an empty collection; nothing here fails.
//
// The response's own recorded language is authoritative for text lookup;
// the language argument is the fallback when the response carries none.
func (t *Transformer) Transform(surveyID, language string, raw models.RawResponse, catalog []models.Question) []models.TransformedAnswer {
	if raw.Language != "" {
		language = raw.Language
	}

	answers := make([]models.TransformedAnswer, 0, len(catalog))
	for _, question := range catalog {
		text, ok := question.Text(language)
		if !ok || text == "" {
			// Missing localization falls back to the question code as
			// display text rather than failing the dispatch.
			text = question.Code
			t.logger.Debug("question text missing for language", map[string]interface{}{
				"surveyId": surveyID,
				"question": question.Code,
				"language": language,
			})
		}

		outcome := renderAnswer(question, raw.Answer(question.Code), language)
		if outcome.lookupMiss {
			metrics.AnswerLookupMisses.WithLabelValues(surveyID).Inc()
			t.logger.Debug("answer code not in catalog, passing through", map[string]interface{}{
				"surveyId": surveyID,
				"question": question.Code,
			})
		}

		answers = append(answers, models.TransformedAnswer{
			QuestionID: question.ID,
			Text:       text,
			Code:       question.Code,
			Answer:     outcome.answer,
		})
	}

	return answers
}
