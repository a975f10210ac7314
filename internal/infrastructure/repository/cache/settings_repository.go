// Package cache decorates repositories with an in-process TTL cache.
package cache

import (
	"context"

	"github.com/caballebrios/nightboard/internal/domain/settings"
	basecache "github.com/caballebrios/nightboard/internal/platform/cache"
)

// cachedSettingValue carries the found flag through the cache so missing
// keys are remembered too.
type cachedSettingValue struct {
	value  string
	exists bool
}

// SettingsRepository caches reads in front of the persistent settings
// store. Writes go through and invalidate, so in-process readers always
// see their own updates; the TTL only bounds staleness across processes.
type SettingsRepository struct {
	next  settings.Repository
	cache *basecache.Store
}

func NewSettingsRepository(next settings.Repository, cache *basecache.Store) *SettingsRepository {
	return &SettingsRepository{next: next, cache: cache}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "settings:"+key, func(ctx context.Context) (any, error) {
		value, exists, err := r.next.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return cachedSettingValue{value: value, exists: exists}, nil
	})
	if err != nil {
		return "", false, err
	}

	cached, _ := v.(cachedSettingValue)
	return cached.value, cached.exists, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	if err := r.next.Set(ctx, key, value); err != nil {
		return err
	}
	r.cache.Delete(ctx, "settings:"+key)

	return nil
}
