// internal/dispatch/dispatcher.go
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"survey-webhooks/internal/common/errors"
	commonhttp "survey-webhooks/internal/common/http"
	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/models"
)

// Dispatcher performs the outbound webhook delivery: one synchronous POST
// per completed response, no retries. The HTTP client keeps default TLS
// verification and always carries a bounded timeout so a hanging endpoint
// cannot stall the completion handler.
type Dispatcher struct {
	client *commonhttp.Client
	logger logger.Logger
}

func NewDispatcher(timeout time.Duration, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		client: commonhttp.NewClient(timeout),
		logger: log,
	}
}

// composeURL appends the auth token as a percent-encoded query parameter.
func composeURL(baseURL, authToken string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse webhook url: %w", err)
	}

	q := u.Query()
	q.Set("token", authToken)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// ScrubURL strips the token query parameter so the URL can appear in logs
// and error details without leaking the auth token.
func ScrubURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "(unparseable url)"
	}

	q := u.Query()
	q.Del("token")
	u.RawQuery = q.Encode()

	return u.String()
}

// redactToken removes token occurrences from transport error text; net/http
// errors embed the full request URL.
func redactToken(message, authToken string) string {
	if authToken == "" {
		return message
	}
	message = strings.ReplaceAll(message, authToken, "[redacted]")
	return strings.ReplaceAll(message, url.QueryEscape(authToken), "[redacted]")
}

// Deliver POSTs the payload to baseURL with the token appended as a query
// parameter. Any transport error, TLS failure or non-2xx status is
// classified as a delivery failure; the returned error carries only the
// token-scrubbed URL. The DeliveryResult is populated in both outcomes.
func (d *Dispatcher) Deliver(ctx context.Context, baseURL, authToken string, payload models.Payload) (models.DeliveryResult, error) {
	target, err := composeURL(baseURL, authToken)
	if err != nil {
		stdErr := errors.NewDeliveryFailedError(ScrubURL(baseURL), 0, err)
		return models.DeliveryResult{Error: stdErr.Details}, stdErr
	}
	scrubbed := ScrubURL(target)

	body, err := json.Marshal(payload)
	if err != nil {
		stdErr := errors.NewDeliveryFailedError(scrubbed, 0, fmt.Errorf("encode payload: %w", err))
		return models.DeliveryResult{Error: stdErr.Details}, stdErr
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		stdErr := errors.NewDeliveryFailedError(scrubbed, 0, err)
		return models.DeliveryResult{Error: stdErr.Details}, stdErr
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json;charset=UTF-8")

	resp, err := d.client.Do(req)
	if err != nil {
		stdErr := errors.NewDeliveryFailedError(scrubbed, 0, fmt.Errorf("%s", redactToken(err.Error(), authToken)))
		d.logger.Error("webhook delivery failed", map[string]interface{}{
			"url":   scrubbed,
			"error": stdErr.Details,
		})
		return models.DeliveryResult{Error: stdErr.Details}, stdErr
	}
	defer resp.Body.Close()

	// Response body is ignored; drain it so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		stdErr := errors.NewDeliveryFailedError(scrubbed, resp.StatusCode, nil)
		d.logger.Error("webhook endpoint returned non-2xx", map[string]interface{}{
			"url":    scrubbed,
			"status": resp.StatusCode,
		})
		return models.DeliveryResult{StatusCode: resp.StatusCode, Error: stdErr.Details}, stdErr
	}

	return models.DeliveryResult{Delivered: true, StatusCode: resp.StatusCode}, nil
}
