// internal/models/question.go
package models

// Question types as stored by the survey platform.
const (
	QuestionTypeFreeText   = "T"
	QuestionTypeSingleLine = "S"
	QuestionTypeList       = "L" // answers are option codes resolved via the catalog
)

// AnswerOption is one selectable option of a list-type question.
type AnswerOption struct {
	Code   string            `json:"code"`
	Labels map[string]string `json:"labels"` // language -> label
}

// Label returns the option label for the given language.
func (a AnswerOption) Label(language string) (string, bool) {
	label, ok := a.Labels[language]
	return label, ok
}

// Question is one row of the survey's question catalog. The catalog order
// matches the form layout and must be preserved downstream.
type Question struct {
	ID      string            `json:"id"`
	Code    string            `json:"code"` // stable external key, response fields are keyed by it
	Type    string            `json:"type"`
	Texts   map[string]string `json:"texts"` // language -> question text
	Answers []AnswerOption    `json:"answers,omitempty"`
}

// Text returns the localized question text for the given language.
func (q Question) Text(language string) (string, bool) {
	text, ok := q.Texts[language]
	return text, ok
}
