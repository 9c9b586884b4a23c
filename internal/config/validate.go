package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		return fmt.Errorf("auth.jwt_issuer must not be empty")
	}

	if err := c.Boards.validate(); err != nil {
		return fmt.Errorf("boards: %w", err)
	}
	if err := c.Features.validate(); err != nil {
		return fmt.Errorf("features: %w", err)
	}
	if c.Features.Source == FeatureSourceRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when features.source is %q", FeatureSourceRedis)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (b *BoardsConfig) validate() error {
	if b.PositionStep < 2 {
		return fmt.Errorf("position_step must be >= 2 (got %d)", b.PositionStep)
	}
	if b.ActivityPageSize <= 0 {
		return fmt.Errorf("activity_page_size must be > 0 (got %d)", b.ActivityPageSize)
	}
	if b.ActivityMaxPageSize < b.ActivityPageSize {
		return fmt.Errorf("activity_max_page_size must be >= activity_page_size (%d < %d)",
			b.ActivityMaxPageSize, b.ActivityPageSize)
	}
	return nil
}

func (f *FeaturesConfig) validate() error {
	switch f.Source {
	case FeatureSourceStatic, FeatureSourcePostgres, FeatureSourceRedis:
	default:
		return fmt.Errorf("source must be one of static, postgres, redis (got %q)", f.Source)
	}
	if f.Source != FeatureSourceStatic && strings.TrimSpace(f.SettingsKey) == "" {
		return fmt.Errorf("settings_key must not be empty for source %q", f.Source)
	}
	if f.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %s)", f.CacheTTL)
	}
	if strings.TrimSpace(f.Required) == "" {
		return fmt.Errorf("required must name a feature")
	}
	return nil
}
