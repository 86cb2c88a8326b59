// internal/transform/transformer_test.go
package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/models"
)

func testCatalog() []models.Question {
	return []models.Question{
		{ID: "11", Code: "Q1", Type: models.QuestionTypeFreeText, Texts: map[string]string{"en": "Any comments?"}},
		listQuestion(),
		{ID: "13", Code: "Q3", Type: models.QuestionTypeSingleLine, Texts: map[string]string{"en": "Your city?"}},
	}
}

func TestTransformPreservesCatalogOrder(t *testing.T) {
	transformer := NewTransformer(logger.NewTestLogger(t))

	raw := models.RawResponse{
		Language: "en",
		Answers:  map[string]string{"Q3": "Berlin", "Q1": "great survey", "Q2": "A1"},
	}

	answers := transformer.Transform("981292", "en", raw, testCatalog())
	require.Len(t, answers, 3)

	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, []string{answers[0].Code, answers[1].Code, answers[2].Code})
	assert.Equal(t, "great survey", answers[0].Answer)
	assert.Equal(t, "Red", answers[1].Answer)
	assert.Equal(t, "Berlin", answers[2].Answer)
	assert.Equal(t, "Any comments?", answers[0].Text)
	assert.Equal(t, "11", answers[0].QuestionID)
}

func TestTransformResponseLanguageWins(t *testing.T) {
	transformer := NewTransformer(logger.NewTestLogger(t))

	raw := models.RawResponse{
		Language: "de",
		Answers:  map[string]string{"Q2": "A1"},
	}

	answers := transformer.Transform("981292", "en", raw, []models.Question{listQuestion()})
	require.Len(t, answers, 1)
	assert.Equal(t, "Lieblingsfarbe?", answers[0].Text)
	assert.Equal(t, "Rot", answers[0].Answer)
}

func TestTransformMissingLocalizationUsesQuestionCode(t *testing.T) {
	transformer := NewTransformer(logger.NewTestLogger(t))

	catalog := []models.Question{
		{ID: "11", Code: "Q1", Type: models.QuestionTypeFreeText, Texts: map[string]string{"en": "Any comments?"}},
	}
	raw := models.RawResponse{Language: "fr", Answers: map[string]string{"Q1": "bonjour"}}

	answers := transformer.Transform("981292", "en", raw, catalog)
	require.Len(t, answers, 1)
	assert.Equal(t, "Q1", answers[0].Text, "missing localization falls back to the code")
	assert.Equal(t, "bonjour", answers[0].Answer)
}

func TestTransformUnansweredQuestionsAppearEmpty(t *testing.T) {
	transformer := NewTransformer(logger.NewTestLogger(t))

	raw := models.RawResponse{Language: "en", Answers: map[string]string{}}

	answers := transformer.Transform("981292", "en", raw, testCatalog())
	require.Len(t, answers, 3)
	for _, a := range answers {
		assert.Empty(t, a.Answer)
	}
}

func TestTransformEmptyCatalog(t *testing.T) {
	transformer := NewTransformer(logger.NewTestLogger(t))

	answers := transformer.Transform("981292", "en", models.RawResponse{Language: "en"}, nil)
	assert.NotNil(t, answers)
	assert.Empty(t, answers)
}
