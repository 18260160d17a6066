package appresolver

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

type resolver interface {
	App(ctx context.Context, appGuid string) (models.AppRecord, error)
}

// Cached remembers resolved apps for ttl. Failed lookups are not remembered.
type Cached struct {
	resolver resolver
	cache    *ttlcache.Cache[string, models.AppRecord]
}

func NewCached(r resolver, ttl time.Duration) *Cached {
	return &Cached{
		resolver: r,
		cache: ttlcache.New(
			ttlcache.WithTTL[string, models.AppRecord](ttl),
			ttlcache.WithDisableTouchOnHit[string, models.AppRecord](),
		),
	}
}

func (c *Cached) App(ctx context.Context, appGuid string) (models.AppRecord, error) {
	if item := c.cache.Get(appGuid); item != nil {
		return item.Value(), nil
	}

	app, err := c.resolver.App(ctx, appGuid)
	if err != nil {
		return models.AppRecord{}, err
	}
	c.cache.Set(appGuid, app, ttlcache.DefaultTTL)
	return app, nil
}
