// internal/hooks/survey-complete/handler.go
package surveycomplete

import (
	"context"
	"time"

	"github.com/google/uuid"

	"survey-webhooks/internal/common/config"
	"survey-webhooks/internal/common/errors"
	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/common/metrics"
	"survey-webhooks/internal/common/observability"
	"survey-webhooks/internal/models"
	"survey-webhooks/internal/settings"
	"survey-webhooks/internal/transform"
)

// ResponseStore reads completed responses and their participant tokens.
type ResponseStore interface {
	GetResponse(ctx context.Context, surveyID, responseID string) (models.RawResponse, error)
	GetToken(ctx context.Context, surveyID, token string) (*models.TokenInfo, error)
}

// CatalogStore serves the per-survey question catalog in form order.
type CatalogStore interface {
	QuestionsForSurvey(ctx context.Context, surveyID string) ([]models.Question, error)
}

// Deliverer performs the outbound webhook POST.
type Deliverer interface {
	Deliver(ctx context.Context, baseURL, authToken string, payload models.Payload) (models.DeliveryResult, error)
}

// Gate decides whether the hook fires for a survey.
type Gate interface {
	IsActive(ctx context.Context, surveyID string) (bool, error)
}

// Handler runs the completion pipeline: activation check, response and
// catalog fetch, transformation, payload assembly, webhook delivery.
type Handler struct {
	config      *Config
	gate        Gate
	resolver    *settings.Resolver
	responses   ResponseStore
	catalog     CatalogStore
	transformer *transform.Transformer
	dispatcher  Deliverer
	obs         *observability.Observability
	logger      logger.Logger
}

func NewHandler(
	config *Config,
	gate Gate,
	resolver *settings.Resolver,
	responses ResponseStore,
	catalog CatalogStore,
	transformer *transform.Transformer,
	dispatcher Deliverer,
	obs *observability.Observability,
	log logger.Logger,
) *Handler {
	return &Handler{
		config:      config,
		gate:        gate,
		resolver:    resolver,
		responses:   responses,
		catalog:     catalog,
		transformer: transformer,
		dispatcher:  dispatcher,
		obs:         obs,
		logger:      log.WithFields(map[string]interface{}{"hook": "survey-complete"}),
	}
}

// Handle processes one completion event.
func (h *Handler) Handle(ctx context.Context, input Input) (*Output, error) {
	if input.SurveyID == "" || input.ResponseID == "" {
		return nil, errors.NewEventInvalidError("survey-complete", "surveyId and responseId are required")
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	log := h.logger.WithFields(map[string]interface{}{
		"surveyId":   input.SurveyID,
		"responseId": input.ResponseID,
	})

	active, err := h.gate.IsActive(ctx, input.SurveyID)
	if err != nil {
		return nil, err
	}
	if !active {
		log.Debug("webhook inactive for survey, skipping", nil)
		return h.skip(ctx, input.SurveyID, "webhook inactive"), nil
	}

	urlSetting, err := h.resolver.Resolve(ctx, settings.SettingWebhookURL, input.SurveyID)
	if err != nil {
		return nil, err
	}
	baseURL := settings.AsString(urlSetting.Value)
	if baseURL == "" {
		log.Warn("webhook active but no url configured, skipping", nil)
		return h.skip(ctx, input.SurveyID, "no webhook url configured"), nil
	}

	tokenSetting, err := h.resolver.Resolve(ctx, settings.SettingAuthToken, input.SurveyID)
	if err != nil {
		return nil, err
	}
	authToken := settings.AsString(tokenSetting.Value)

	resp, err := h.responses.GetResponse(ctx, input.SurveyID, input.ResponseID)
	if err != nil {
		return nil, errors.NewResponseFetchFailedError(input.SurveyID, input.ResponseID, err)
	}

	catalog, err := h.catalog.QuestionsForSurvey(ctx, input.SurveyID)
	if err != nil {
		return nil, errors.NewCatalogFetchFailedError(input.SurveyID, err)
	}

	answers := h.transformer.Transform(input.SurveyID, resp.Language, resp, catalog)

	tokenInfo, err := h.responses.GetToken(ctx, input.SurveyID, resp.Token)
	if err != nil {
		return nil, errors.NewTokenLookupFailedError(input.SurveyID, err)
	}

	payload := transform.BuildPayload(input.SurveyID, resp, answers, tokenInfo)

	start := time.Now()
	result, err := h.dispatcher.Deliver(ctx, baseURL, authToken, payload)
	duration := time.Since(start)

	if err != nil {
		metrics.DispatchesFailed.WithLabelValues(input.SurveyID, string(errors.ErrCodeDeliveryFailed)).Inc()
		metrics.DispatchDuration.WithLabelValues("failed").Observe(duration.Seconds())
		h.obs.RecordDispatch(ctx, "failed")
		h.obs.RecordDispatchDuration(ctx, duration, "failed")

		if h.config.FailurePolicy == config.FailurePolicyFatal {
			return nil, err
		}

		log.Error("delivery failed, continuing per failure policy", map[string]interface{}{
			"statusCode": result.StatusCode,
			"error":      result.Error,
		})
		return &Output{
			Status:      StatusFailed,
			StatusCode:  result.StatusCode,
			Reason:      result.Error,
			CompletedAt: time.Now().UTC(),
		}, nil
	}

	metrics.DispatchesDelivered.WithLabelValues(input.SurveyID).Inc()
	metrics.DispatchDuration.WithLabelValues("delivered").Observe(duration.Seconds())
	h.obs.RecordDispatch(ctx, "delivered")
	h.obs.RecordDispatchDuration(ctx, duration, "delivered")

	log.Info("webhook delivered", map[string]interface{}{
		"statusCode": result.StatusCode,
		"durationMs": duration.Milliseconds(),
	})

	return &Output{
		Status:      StatusDelivered,
		StatusCode:  result.StatusCode,
		DispatchID:  uuid.NewString(),
		CompletedAt: time.Now().UTC(),
	}, nil
}

func (h *Handler) skip(ctx context.Context, surveyID, reason string) *Output {
	metrics.DispatchesSkipped.WithLabelValues(surveyID).Inc()
	h.obs.RecordDispatch(ctx, "skipped")

	return &Output{
		Status:      StatusSkipped,
		Reason:      reason,
		CompletedAt: time.Now().UTC(),
	}
}
