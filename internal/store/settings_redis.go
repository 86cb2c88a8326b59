// internal/store/settings_redis.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"survey-webhooks/internal/settings"
)

// RedisSettingsStore persists setting values in one Redis hash per
// (scope, entity) pair. Values are JSON-encoded so an explicit null
// survives the round trip; a missing hash field means the setting was
// never written at that tier.
type RedisSettingsStore struct {
	client *redis.Client
}

func NewRedisSettingsStore(client *redis.Client) *RedisSettingsStore {
	return &RedisSettingsStore{client: client}
}

// settingsKey builds the hash key for a scope tier. The global tier has no
// entity, so its key carries no trailing segment.
func settingsKey(scope settings.Scope, entityID string) string {
	if scope == settings.ScopeGlobal {
		return "settings:global"
	}
	return fmt.Sprintf("settings:%s:%s", scope, entityID)
}

func (s *RedisSettingsStore) Get(ctx context.Context, name string, scope settings.Scope, entityID string) (interface{}, bool, error) {
	raw, err := s.client.HGet(ctx, settingsKey(scope, entityID), name).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read setting %s: %w", name, err)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, false, fmt.Errorf("decode setting %s: %w", name, err)
	}

	return value, true, nil
}

func (s *RedisSettingsStore) Set(ctx context.Context, name string, scope settings.Scope, entityID string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", name, err)
	}

	if err := s.client.HSet(ctx, settingsKey(scope, entityID), name, string(encoded)).Err(); err != nil {
		return fmt.Errorf("write setting %s: %w", name, err)
	}

	return nil
}
