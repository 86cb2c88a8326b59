// internal/store/respondents_postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"survey-webhooks/internal/models"
)

// PostgresRespondentStore reads completed responses and the participant
// token table.
type PostgresRespondentStore struct {
	db *sql.DB
}

func NewPostgresRespondentStore(db *sql.DB) *PostgresRespondentStore {
	return &PostgresRespondentStore{db: db}
}

const responseQuery = `
	SELECT id, token, start_language, COALESCE(submit_date, ''), answers
	FROM responses
	WHERE survey_id = $1 AND id = $2`

// GetResponse fetches one completed response. The answers column is a JSONB
// document keyed by question code.
func (s *PostgresRespondentStore) GetResponse(ctx context.Context, surveyID, responseID string) (models.RawResponse, error) {
	var resp models.RawResponse
	var answers []byte

	row := s.db.QueryRowContext(ctx, responseQuery, surveyID, responseID)
	if err := row.Scan(&resp.ID, &resp.Token, &resp.Language, &resp.SubmittedAt, &answers); err != nil {
		return models.RawResponse{}, fmt.Errorf("fetch response %s of survey %s: %w", responseID, surveyID, err)
	}

	if err := json.Unmarshal(answers, &resp.Answers); err != nil {
		return models.RawResponse{}, fmt.Errorf("decode answers of response %s: %w", responseID, err)
	}

	return resp, nil
}

const tokenQuery = `
	SELECT tid, participant_id
	FROM survey_tokens
	WHERE survey_id = $1 AND token = $2`

// GetToken resolves a response token to its participant identifiers. An
// unknown token is not an error; anonymous surveys have no token rows.
func (s *PostgresRespondentStore) GetToken(ctx context.Context, surveyID, token string) (*models.TokenInfo, error) {
	if token == "" {
		return nil, nil
	}

	var info models.TokenInfo
	row := s.db.QueryRowContext(ctx, tokenQuery, surveyID, token)
	if err := row.Scan(&info.TID, &info.ParticipantID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("look up token for survey %s: %w", surveyID, err)
	}

	return &info, nil
}
