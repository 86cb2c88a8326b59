// internal/settings/resolver.go
package settings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"survey-webhooks/internal/common/errors"
)

// Store is the external settings store. Get distinguishes an absent value
// (ok=false) from a stored explicit null (ok=true, value=nil).
type Store interface {
	Get(ctx context.Context, name string, scope Scope, entityID string) (value interface{}, ok bool, err error)
	Set(ctx context.Context, name string, scope Scope, entityID string, value interface{}) error
}

// EffectiveSetting is a resolved setting value. Never persisted.
type EffectiveSetting struct {
	Name   string      `json:"name"`
	Value  interface{} `json:"value"`
	Source Source      `json:"source"`
}

// Resolver computes effective setting values by walking the override
// cascade: survey value, then global value, then the static default.
type Resolver struct {
	registry *Registry
	store    Store
}

func NewResolver(registry *Registry, store Store) *Resolver {
	return &Resolver{registry: registry, store: store}
}

// Registry exposes the definitions backing this resolver.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve computes the effective value of a setting for one survey.
// Pure read, no side effects.
func (r *Resolver) Resolve(ctx context.Context, name, surveyID string) (EffectiveSetting, error) {
	def, ok := r.registry.Get(name)
	if !ok {
		return EffectiveSetting{}, errors.NewUnknownSettingError(name)
	}

	value, found, err := r.store.Get(ctx, name, ScopeSurvey, surveyID)
	if err != nil {
		return EffectiveSetting{}, errors.NewSettingsStoreFailedError(err)
	}
	if found && value != nil {
		return EffectiveSetting{Name: name, Value: value, Source: SourceSurvey}, nil
	}

	// An explicitly stored null on a nullable setting stops the cascade:
	// it means intentionally unset, not missing, so it must not fall
	// through to the global tier. A field that was never written does.
	if found && def.Nullable {
		return EffectiveSetting{Name: name, Value: nil, Source: SourceSurvey}, nil
	}

	return r.resolveGlobal(ctx, def)
}

// ResolveGlobal computes the effective value at global scope, skipping any
// survey override. Used by Apply and by global-only settings.
func (r *Resolver) ResolveGlobal(ctx context.Context, name string) (EffectiveSetting, error) {
	def, ok := r.registry.Get(name)
	if !ok {
		return EffectiveSetting{}, errors.NewUnknownSettingError(name)
	}
	return r.resolveGlobal(ctx, def)
}

func (r *Resolver) resolveGlobal(ctx context.Context, def Definition) (EffectiveSetting, error) {
	value, found, err := r.store.Get(ctx, def.Name, ScopeGlobal, "")
	if err != nil {
		return EffectiveSetting{}, errors.NewSettingsStoreFailedError(err)
	}
	if found && value != nil {
		return EffectiveSetting{Name: def.Name, Value: value, Source: SourceGlobal}, nil
	}

	return EffectiveSetting{Name: def.Name, Value: def.Default, Source: SourceDefault}, nil
}

// Apply persists submitted per-survey values. A null incoming value is
// substituted with the global value, then the static default, before being
// written, so a save never stores an unintended null for a non-nullable
// setting. Writes are last-write-wins per (name, scope, entity).
func (r *Resolver) Apply(ctx context.Context, surveyID string, values map[string]interface{}) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := r.registry.Get(name); !ok {
			return errors.NewUnknownSettingError(name)
		}

		value := values[name]
		if value == nil {
			fallback, err := r.ResolveGlobal(ctx, name)
			if err != nil {
				return err
			}
			value = fallback.Value
		}

		if err := r.store.Set(ctx, name, ScopeSurvey, surveyID, value); err != nil {
			return errors.NewSettingsStoreFailedError(err)
		}
	}

	return nil
}

// AsBool coerces a stored setting value to a boolean. Stored values arrive
// as bools, select codes ("0"/"1") or JSON numbers depending on the save
// path, so all of those shapes are accepted.
func AsBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// AsString coerces a stored setting value to a string; nil reads as empty.
func AsString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
