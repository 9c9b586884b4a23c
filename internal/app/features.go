package app

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/boards-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/boards-backend/internal/adapter/redis"
	"github.com/heartmarshall/boards-backend/internal/config"
	"github.com/heartmarshall/boards-backend/internal/license"
	"github.com/heartmarshall/boards-backend/internal/transport/rest"
)

// featureSource is the configured license source plus whatever it holds open.
type featureSource struct {
	source license.Source
	pinger rest.Pinger
	client *goredis.Client
}

func newFeatureSource(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*featureSource, error) {
	switch cfg.Features.Source {
	case config.FeatureSourceStatic:
		return &featureSource{source: license.StaticSource(cfg.Features.Static)}, nil
	case config.FeatureSourcePostgres:
		return &featureSource{
			source: license.NewSettingsSource(settings.New(pool), cfg.Features.SettingsKey),
		}, nil
	case config.FeatureSourceRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		store := redis.NewSettings(client)
		return &featureSource{
			source: license.NewSettingsSource(store, cfg.Features.SettingsKey),
			pinger: store,
			client: client,
		}, nil
	default:
		return nil, fmt.Errorf("unknown feature source %q", cfg.Features.Source)
	}
}

// Close releases the redis connection, if any.
func (f *featureSource) Close() {
	if f.client != nil {
		_ = f.client.Close()
	}
}
