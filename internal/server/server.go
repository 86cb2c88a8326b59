// internal/server/server.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"survey-webhooks/internal/common/errors"
	"survey-webhooks/internal/common/logger"
	surveycomplete "survey-webhooks/internal/hooks/survey-complete"
	surveysettings "survey-webhooks/internal/hooks/survey-settings"
	"survey-webhooks/pkg/registry"
)

// Server is the HTTP ingress: completion events from the survey host and
// the settings panel endpoints.
type Server struct {
	events   *registry.EventRegistry
	complete *surveycomplete.Handler
	settings *surveysettings.Handler
	logger   logger.Logger
}

func New(events *registry.EventRegistry, complete *surveycomplete.Handler, settings *surveysettings.Handler, log logger.Logger) *Server {
	return &Server{
		events:   events,
		complete: complete,
		settings: settings,
		logger:   log,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /events/survey-complete", s.handleSurveyComplete)
	mux.HandleFunc("GET /surveys/{surveyId}/settings", s.handleListSettings)
	mux.HandleFunc("POST /surveys/{surveyId}/settings", s.handleSaveSettings)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

	return mux
}

func (s *Server) handleSurveyComplete(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, errors.NewEventInvalidError(registry.EventSurveyComplete, err.Error()))
		return
	}

	if err := s.events.Validate(registry.EventSurveyComplete, body); err != nil {
		s.writeError(w, errors.NewEventInvalidError(registry.EventSurveyComplete, err.Error()))
		return
	}

	var input surveycomplete.Input
	if err := json.Unmarshal(body, &input); err != nil {
		s.writeError(w, errors.NewEventInvalidError(registry.EventSurveyComplete, err.Error()))
		return
	}

	output, err := s.complete.Handle(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, output)
}

func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	output, err := s.settings.List(r.Context(), r.PathValue("surveyId"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, output)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, errors.NewEventInvalidError(registry.EventSettingsSave, err.Error()))
		return
	}

	if err := s.events.Validate(registry.EventSettingsSave, body); err != nil {
		s.writeError(w, errors.NewEventInvalidError(registry.EventSettingsSave, err.Error()))
		return
	}

	var input surveysettings.SaveInput
	if err := json.Unmarshal(body, &input); err != nil {
		s.writeError(w, errors.NewEventInvalidError(registry.EventSettingsSave, err.Error()))
		return
	}
	input.SurveyID = r.PathValue("surveyId")

	if err := s.settings.Save(r.Context(), input); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("write response failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	payload := map[string]interface{}{"error": err.Error()}

	if stdErr, ok := errors.AsStandardError(err); ok {
		status = statusForCode(stdErr.Code)
		payload = map[string]interface{}{
			"code":    stdErr.Code,
			"message": stdErr.Message,
			"details": stdErr.Details,
		}
	}

	s.logger.Warn("request failed", map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	})

	s.writeJSON(w, status, payload)
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeEventInvalid, errors.ErrCodeUnknownSetting:
		return http.StatusBadRequest
	case errors.ErrCodeDeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
