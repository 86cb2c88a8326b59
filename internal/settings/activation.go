// internal/settings/activation.go
package settings

import "context"

// ActivationGate decides whether dispatch should occur for a survey.
//
// Activation is an OR across scopes: the per-survey isActive flag adds
// surveys, the global useAlways flag covers every survey. A survey cannot
// opt out of global coverage.
type ActivationGate struct {
	resolver *Resolver
}

func NewActivationGate(resolver *Resolver) *ActivationGate {
	return &ActivationGate{resolver: resolver}
}

// IsActive reports whether a completion event for the survey should be
// dispatched. An inactive survey is a normal no-op, not an error.
func (g *ActivationGate) IsActive(ctx context.Context, surveyID string) (bool, error) {
	perSurvey, err := g.resolver.Resolve(ctx, SettingIsActive, surveyID)
	if err != nil {
		return false, err
	}
	if AsBool(perSurvey.Value) {
		return true, nil
	}

	useAlways, err := g.resolver.ResolveGlobal(ctx, SettingUseAlways)
	if err != nil {
		return false, err
	}
	return AsBool(useAlways.Value), nil
}
