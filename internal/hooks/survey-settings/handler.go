// internal/hooks/survey-settings/handler.go
package surveysettings

import (
	"context"

	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/settings"
)

// Handler serves the per-survey settings panel: listing the registered
// definitions with their effective values, and persisting submitted ones.
type Handler struct {
	resolver *settings.Resolver
	logger   logger.Logger
}

func NewHandler(resolver *settings.Resolver, log logger.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   log.WithFields(map[string]interface{}{"hook": "survey-settings"}),
	}
}

// List returns the survey-visible settings with their effective values.
// Global-only settings never appear on the survey panel.
func (h *Handler) List(ctx context.Context, surveyID string) (*ListOutput, error) {
	defs := h.resolver.Registry().All()
	views := make([]SettingView, 0, len(defs))

	for _, def := range defs {
		if def.GlobalOnly {
			continue
		}

		effective, err := h.resolver.Resolve(ctx, def.Name, surveyID)
		if err != nil {
			return nil, err
		}

		views = append(views, SettingView{
			Name:     def.Name,
			Type:     def.Type,
			Label:    def.Label,
			Help:     def.Help,
			Options:  def.Options,
			Nullable: def.Nullable,
			Value:    effective.Value,
			Source:   effective.Source,
		})
	}

	return &ListOutput{SurveyID: surveyID, Settings: views}, nil
}

// Save persists submitted values at the survey tier. Null values are
// substituted with the next tier of the cascade before writing, so saving
// a cleared field captures the then-current fallback.
func (h *Handler) Save(ctx context.Context, input SaveInput) error {
	if err := h.resolver.Apply(ctx, input.SurveyID, input.Values); err != nil {
		return err
	}

	h.logger.Info("survey settings saved", map[string]interface{}{
		"surveyId": input.SurveyID,
		"count":    len(input.Values),
	})

	return nil
}
