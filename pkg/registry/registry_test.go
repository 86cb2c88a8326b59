// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSurveyCompleteEvent(t *testing.T) {
	reg, err := NewEventRegistry()
	require.NoError(t, err)

	assert.NoError(t, reg.Validate(EventSurveyComplete, []byte(`{"surveyId":"981292","responseId":"42"}`)))
	assert.NoError(t, reg.Validate(EventSurveyComplete, []byte(`{"surveyId":"981292","responseId":"42","participantId":"p-1"}`)))

	assert.Error(t, reg.Validate(EventSurveyComplete, []byte(`{"surveyId":"981292"}`)), "responseId is required")
	assert.Error(t, reg.Validate(EventSurveyComplete, []byte(`{"surveyId":"","responseId":"42"}`)), "surveyId must be non-empty")
	assert.Error(t, reg.Validate(EventSurveyComplete, []byte(`{"surveyId":"1","responseId":"2","extra":true}`)), "unknown fields are rejected")
}

func TestValidateSettingsSaveEvent(t *testing.T) {
	reg, err := NewEventRegistry()
	require.NoError(t, err)

	assert.NoError(t, reg.Validate(EventSettingsSave, []byte(`{"values":{"isActive":true}}`)))
	assert.Error(t, reg.Validate(EventSettingsSave, []byte(`{"values":{}}`)), "an empty save is rejected")
	assert.Error(t, reg.Validate(EventSettingsSave, []byte(`{}`)))
}

func TestValidateUnknownEventType(t *testing.T) {
	reg, err := NewEventRegistry()
	require.NoError(t, err)

	assert.Error(t, reg.Validate("not-an-event", []byte(`{}`)))
}
