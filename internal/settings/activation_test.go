// internal/settings/activation_test.go
package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsActivePerSurveyFlag(t *testing.T) {
	store := newMemStore()
	gate := NewActivationGate(newTestResolver(store))
	ctx := context.Background()

	active, err := gate.IsActive(ctx, "981292")
	require.NoError(t, err)
	assert.False(t, active, "inactive by default")

	store.put(SettingIsActive, ScopeSurvey, "981292", true)
	active, err = gate.IsActive(ctx, "981292")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = gate.IsActive(ctx, "111111")
	require.NoError(t, err)
	assert.False(t, active, "activation is per survey")
}

func TestIsActiveGlobalUseAlways(t *testing.T) {
	store := newMemStore()
	gate := NewActivationGate(newTestResolver(store))
	ctx := context.Background()

	store.put(SettingUseAlways, ScopeGlobal, "", "1")

	// Every survey fires, including ones that explicitly set isActive false.
	store.put(SettingIsActive, ScopeSurvey, "981292", false)

	active, err := gate.IsActive(ctx, "981292")
	require.NoError(t, err)
	assert.True(t, active, "the global switch covers surveys that opted out")

	active, err = gate.IsActive(ctx, "111111")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestIsActiveStoreFailure(t *testing.T) {
	store := newMemStore()
	store.getErr = fmt.Errorf("connection reset")
	gate := NewActivationGate(newTestResolver(store))

	_, err := gate.IsActive(context.Background(), "981292")
	require.Error(t, err)
}
