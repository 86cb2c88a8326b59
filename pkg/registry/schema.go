// pkg/registry/schema.go
package registry

// Inbound event types accepted by the service.
const (
	EventSurveyComplete = "survey-complete"
	EventSettingsSave   = "settings-save"
)

// EventSchema pairs an event type with the JSON schema its body must satisfy.
type EventSchema struct {
	Type   string                 `json:"type"`
	Schema map[string]interface{} `json:"schema"`
}

func defaultSchemas() []EventSchema {
	return []EventSchema{
		{
			Type: EventSurveyComplete,
			Schema: map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"surveyId", "responseId"},
				"properties": map[string]interface{}{
					"surveyId":      map[string]interface{}{"type": "string", "minLength": 1},
					"responseId":    map[string]interface{}{"type": "string", "minLength": 1},
					"participantId": map[string]interface{}{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
		{
			Type: EventSettingsSave,
			Schema: map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"values"},
				"properties": map[string]interface{}{
					"values": map[string]interface{}{
						"type":          "object",
						"minProperties": 1,
					},
				},
				"additionalProperties": false,
			},
		},
	}
}
