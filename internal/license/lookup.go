package license

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Lookup caches the feature set read from a Source for a fixed TTL.
// Concurrent refreshes are coalesced into one read.
type Lookup struct {
	src   Source
	ttl   time.Duration
	now   func() time.Time
	log   *slog.Logger
	group singleflight.Group

	mu      sync.RWMutex
	cached  FeatureSet
	expires time.Time
	loaded  bool
}

// NewLookup creates a Lookup. A zero ttl re-reads the source on every call.
func NewLookup(log *slog.Logger, src Source, ttl time.Duration) *Lookup {
	return &Lookup{
		src: src,
		ttl: ttl,
		now: time.Now,
		log: log.With("component", "license"),
	}
}

// IsEnabled reports whether feature is licensed.
func (l *Lookup) IsEnabled(ctx context.Context, feature string) (bool, error) {
	set, err := l.Features(ctx)
	if err != nil {
		return false, err
	}
	return set.Has(feature), nil
}

// Features returns the current feature set, refreshing it when stale.
func (l *Lookup) Features(ctx context.Context) (FeatureSet, error) {
	if set, ok := l.fresh(); ok {
		return set, nil
	}

	v, err, _ := l.group.Do("features", func() (any, error) {
		if set, ok := l.fresh(); ok {
			return set, nil
		}
		// Shared by every waiter; one caller going away must not fail the rest.
		raw, err := l.src.Features(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		set := Parse(raw)

		l.mu.Lock()
		l.cached = set
		l.expires = l.now().Add(l.ttl)
		l.loaded = true
		l.mu.Unlock()

		l.log.DebugContext(ctx, "license features refreshed",
			slog.Bool("unrestricted", set.Unrestricted()),
			slog.Any("features", set.Names()),
		)
		return set, nil
	})
	if err != nil {
		return FeatureSet{}, fmt.Errorf("license lookup: %w", err)
	}
	return v.(FeatureSet), nil
}

func (l *Lookup) fresh() (FeatureSet, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.loaded && l.now().Before(l.expires) {
		return l.cached, true
	}
	return FeatureSet{}, false
}

// Invalidate drops the cached set so the next call re-reads the source.
func (l *Lookup) Invalidate() {
	l.mu.Lock()
	l.loaded = false
	l.mu.Unlock()
}
