// internal/settings/definitions.go
package settings

import "survey-webhooks/internal/common/config"

// Type enumerates the value types a setting can carry.
type Type string

const (
	TypeBoolean Type = "boolean"
	TypeString  Type = "string"
	TypeSelect  Type = "select"
)

// Scope is where a stored setting value applies.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeSurvey Scope = "survey"
)

// Source records which tier of the cascade produced an effective value.
type Source string

const (
	SourceSurvey  Source = "survey"
	SourceGlobal  Source = "global"
	SourceDefault Source = "default"
)

// Setting names registered by the service.
const (
	SettingIsActive   = "isActive"
	SettingUseAlways  = "useAlways"
	SettingWebhookURL = "webhookUrl"
	SettingAuthToken  = "authToken"
)

// Definition describes one configurable setting. Definitions are static;
// only values move at runtime.
type Definition struct {
	Name       string            `json:"name"`
	Type       Type              `json:"type"`
	Label      string            `json:"label"`
	Help       string            `json:"help,omitempty"`
	Options    map[string]string `json:"options,omitempty"` // for select types
	Default    interface{}       `json:"default,omitempty"`
	GlobalOnly bool              `json:"globalOnly,omitempty"`
	// Nullable settings may resolve to an explicit null, meaning
	// "intentionally unset" rather than "missing".
	Nullable bool `json:"nullable,omitempty"`
}

// Registry holds the setting definitions in registration order.
type Registry struct {
	defs  map[string]Definition
	order []string
}

func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if _, exists := r.defs[def.Name]; !exists {
			r.order = append(r.order, def.Name)
		}
		r.defs[def.Name] = def
	}
	return r
}

// Get returns the definition for a setting name.
func (r *Registry) Get(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// All returns the definitions in registration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// DefaultDefinitions builds the service's setting registry. Process-wide
// webhook config seeds the static defaults, so environment-derived values
// act as the lowest-priority tier of the cascade.
func DefaultDefinitions(cfg config.WebhookConfig) []Definition {
	useAlwaysDefault := "0"
	if cfg.UseAlways {
		useAlwaysDefault = "1"
	}

	return []Definition{
		{
			Name:    SettingIsActive,
			Type:    TypeBoolean,
			Label:   "Send a hook for responses to this survey?",
			Help:    "Enable or disable webhook delivery for this survey.",
			Default: false,
		},
		{
			Name:       SettingUseAlways,
			Type:       TypeSelect,
			GlobalOnly: true,
			Options:    map[string]string{"0": "No", "1": "Yes"},
			Label:      "Send a hook for every survey by default?",
			Default:    useAlwaysDefault,
		},
		{
			Name:    SettingWebhookURL,
			Type:    TypeString,
			Label:   "The target webhook URL",
			Help:    "The URL to which the payload is sent after a survey response is submitted.",
			Default: cfg.DefaultURL,
		},
		{
			Name:     SettingAuthToken,
			Type:     TypeString,
			Nullable: true,
			Label:    "Webhook authorization token",
			Help:     "Appended to the webhook URL as a query parameter.",
			Default:  tokenDefault(cfg.DefaultToken),
		},
	}
}

func tokenDefault(token string) interface{} {
	if token == "" {
		return nil
	}
	return token
}
