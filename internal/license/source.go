package license

import (
	"context"
	"fmt"
)

// Source yields the raw license feature list.
type Source interface {
	Features(ctx context.Context) (string, error)
}

// StaticSource is a fixed feature list, typically from configuration.
type StaticSource string

// Features returns the configured list.
func (s StaticSource) Features(context.Context) (string, error) {
	return string(s), nil
}

type settingsReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// SettingsSource reads the list from a host settings store under a fixed key.
// Both the postgres settings table and the redis settings cache satisfy it.
type SettingsSource struct {
	settings settingsReader
	key      string
}

// NewSettingsSource creates a SettingsSource.
func NewSettingsSource(settings settingsReader, key string) *SettingsSource {
	return &SettingsSource{settings: settings, key: key}
}

// Features reads the value under the configured key.
func (s *SettingsSource) Features(ctx context.Context) (string, error) {
	raw, err := s.settings.Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("read license setting %q: %w", s.key, err)
	}
	return raw, nil
}
