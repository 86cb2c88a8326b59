// pkg/registry/registry.go
package registry

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// EventRegistry validates inbound event bodies against the schema
// registered for their event type.
type EventRegistry struct {
	schemas map[string]*gojsonschema.Schema
}

// NewEventRegistry compiles the built-in event schemas.
func NewEventRegistry() (*EventRegistry, error) {
	reg := &EventRegistry{schemas: map[string]*gojsonschema.Schema{}}

	for _, es := range defaultSchemas() {
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(es.Schema))
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", es.Type, err)
		}
		reg.schemas[es.Type] = compiled
	}

	return reg, nil
}

// Validate checks a raw JSON body against the schema for eventType.
func (r *EventRegistry) Validate(eventType string, body []byte) error {
	schema, ok := r.schemas[eventType]
	if !ok {
		return fmt.Errorf("unknown event type: %s", eventType)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("validate %s event: %w", eventType, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%s event validation failed: %v", eventType, errs)
	}

	return nil
}
