// internal/dispatch/dispatcher_test.go
package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-webhooks/internal/common/errors"
	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/models"
)

func testPayload() models.Payload {
	return models.Payload{
		"id":       "42",
		"token":    "abc123",
		"surveyId": "981292",
	}
}

func TestDeliverSuccess(t *testing.T) {
	var gotContentType, gotAccept, gotToken string
	var gotBody map[string]interface{}
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		gotToken = r.URL.Query().Get("token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(2*time.Second, logger.NewTestLogger(t))

	result, err := dispatcher.Deliver(context.Background(), server.URL, "secret-token", testPayload())
	require.NoError(t, err)

	assert.True(t, result.Delivered)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, 1, requests)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json;charset=UTF-8", gotAccept)
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, "42", gotBody["id"])
	assert.Equal(t, "981292", gotBody["surveyId"])
}

func TestDeliverTokenPercentEncoding(t *testing.T) {
	var gotToken string
	var rawQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("token")
		rawQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(2*time.Second, logger.NewNoOpLogger())

	token := "sp&cial=chars value"
	result, err := dispatcher.Deliver(context.Background(), server.URL, token, testPayload())
	require.NoError(t, err)
	assert.True(t, result.Delivered)

	// The decoded parameter round-trips, and the raw query never carries
	// the reserved characters literally.
	assert.Equal(t, token, gotToken)
	assert.NotContains(t, rawQuery, "sp&cial")
}

func TestDeliverNon2xxFails(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(2*time.Second, logger.NewNoOpLogger())

	result, err := dispatcher.Deliver(context.Background(), server.URL, "secret-token", testPayload())
	require.Error(t, err)

	assert.False(t, result.Delivered)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Equal(t, 1, requests, "a failed delivery must not be retried")

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDeliveryFailed, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Equal(t, http.StatusInternalServerError, stdErr.Metadata["httpStatus"])
}

func TestDeliverTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(50*time.Millisecond, logger.NewNoOpLogger())

	result, err := dispatcher.Deliver(context.Background(), server.URL, "secret-token", testPayload())
	require.Error(t, err)
	assert.False(t, result.Delivered)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDeliveryFailed))
}

func TestDeliverErrorsNeverLeakToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(2*time.Second, logger.NewNoOpLogger())

	token := "super-secret-token"
	_, err := dispatcher.Deliver(context.Background(), server.URL, token, testPayload())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), token)

	// Transport-level failures embed the request URL in the error text;
	// the token must be redacted there too.
	_, err = dispatcher.Deliver(context.Background(), "http://127.0.0.1:1", token, testPayload())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), token)
}

func TestDeliverInvalidURL(t *testing.T) {
	dispatcher := NewDispatcher(2*time.Second, logger.NewNoOpLogger())

	result, err := dispatcher.Deliver(context.Background(), "://not-a-url", "tok", testPayload())
	require.Error(t, err)
	assert.False(t, result.Delivered)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDeliveryFailed))
}

func TestScrubURL(t *testing.T) {
	scrubbed := ScrubURL("https://hooks.example.com/lime?token=secret&keep=1")
	assert.NotContains(t, scrubbed, "secret")
	assert.True(t, strings.Contains(scrubbed, "keep=1"))
}
