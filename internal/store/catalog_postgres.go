// internal/store/catalog_postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"survey-webhooks/internal/models"
)

// PostgresCatalogStore serves the per-survey question catalog. Localized
// texts and answer options are stored as JSONB documents alongside each
// question row; the sort order column reflects the form layout.
type PostgresCatalogStore struct {
	db *sql.DB
}

func NewPostgresCatalogStore(db *sql.DB) *PostgresCatalogStore {
	return &PostgresCatalogStore{db: db}
}

const questionsQuery = `
	SELECT id, code, type, texts, answer_options
	FROM questions
	WHERE survey_id = $1
	ORDER BY sort_order ASC`

// QuestionsForSurvey returns the full catalog in form order. A survey with
// no questions yields an empty slice, not an error.
func (s *PostgresCatalogStore) QuestionsForSurvey(ctx context.Context, surveyID string) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, questionsQuery, surveyID)
	if err != nil {
		return nil, fmt.Errorf("query questions for survey %s: %w", surveyID, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var texts, options []byte

		if err := rows.Scan(&q.ID, &q.Code, &q.Type, &texts, &options); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		if err := json.Unmarshal(texts, &q.Texts); err != nil {
			return nil, fmt.Errorf("decode texts for question %s: %w", q.ID, err)
		}
		if len(options) > 0 {
			if err := json.Unmarshal(options, &q.Answers); err != nil {
				return nil, fmt.Errorf("decode answer options for question %s: %w", q.ID, err)
			}
		}

		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question rows: %w", err)
	}

	return questions, nil
}
