package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/smallbiznis/sitesapi/internal/config"
	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"go.uber.org/zap"
)

const keyPrefix = "sites:"

// SiteCache caches rendered site responses. A nil SiteCache, or one whose settings are
// disabled, always misses. Backend failures are logged and treated as misses.
type SiteCache struct {
	store    Store
	settings *config.CacheConfigHolder
	log      *zap.Logger
}

func NewSiteCache(store Store, settings *config.CacheConfigHolder, log *zap.Logger) *SiteCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &SiteCache{
		store:    store,
		settings: settings,
		log:      log.Named("cache.site"),
	}
}

// Enabled reports whether lookups can hit.
func (c *SiteCache) Enabled() bool {
	return c != nil && c.store != nil && c.settings.Get().Enabled
}

func (c *SiteCache) GetSite(ctx context.Context, id int64) (*domain.Response, bool) {
	var resp domain.Response
	if !c.get(ctx, siteKey(id), &resp) {
		return nil, false
	}
	return &resp, true
}

func (c *SiteCache) SetSite(ctx context.Context, resp domain.Response) {
	c.set(ctx, siteKey(resp.ID), resp)
}

func (c *SiteCache) GetList(ctx context.Context, state *string) ([]domain.Response, bool) {
	var items []domain.Response
	if !c.get(ctx, listKey(state), &items) {
		return nil, false
	}
	return items, true
}

func (c *SiteCache) SetList(ctx context.Context, state *string, items []domain.Response) {
	c.set(ctx, listKey(state), items)
}

func (c *SiteCache) get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *SiteCache) set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, raw, c.settings.Get().TTL); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func siteKey(id int64) string {
	return keyPrefix + "site:" + strconv.FormatInt(id, 10)
}

func listKey(state *string) string {
	if state == nil {
		return keyPrefix + "list:all"
	}
	return keyPrefix + "list:state:" + *state
}
