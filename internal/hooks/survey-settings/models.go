// internal/hooks/survey-settings/models.go
package surveysettings

import "survey-webhooks/internal/settings"

// SettingView is one setting as presented on the per-survey settings panel:
// its definition plus the currently effective value and its source tier.
type SettingView struct {
	Name     string            `json:"name"`
	Type     settings.Type     `json:"type"`
	Label    string            `json:"label"`
	Help     string            `json:"help,omitempty"`
	Options  map[string]string `json:"options,omitempty"`
	Nullable bool              `json:"nullable,omitempty"`
	Value    interface{}       `json:"value"`
	Source   settings.Source   `json:"source"`
}

// ListOutput is the settings panel for one survey.
type ListOutput struct {
	SurveyID string        `json:"surveyId"`
	Settings []SettingView `json:"settings"`
}

// SaveInput carries the values submitted from the settings panel.
type SaveInput struct {
	SurveyID string                 `json:"surveyId"`
	Values   map[string]interface{} `json:"values"`
}
