package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/haneul-labs/haneul/internal/cache"
	"github.com/haneul-labs/haneul/internal/observability/metrics"
	weatherdomain "github.com/haneul-labs/haneul/internal/weather/domain"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachingProvider fronts a Provider with a TTL cache keyed by coordinates
// rounded to two decimals (~1 km grouping). An optional shared redis tier
// sits between the in-memory cache and the upstream fetch; redis failures
// degrade silently to the local path.
type CachingProvider struct {
	inner weatherdomain.Provider
	mem   cache.Cache[string, weatherdomain.Baseline]
	redis *redis.Client
	ttl   time.Duration
	log   *zap.Logger
	obs   *metrics.Metrics
}

func NewCachingProvider(inner weatherdomain.Provider, redisClient *redis.Client, ttl time.Duration, log *zap.Logger, obs *metrics.Metrics) *CachingProvider {
	return &CachingProvider{
		inner: inner,
		mem:   cache.NewTTLCache[string, weatherdomain.Baseline](),
		redis: redisClient,
		ttl:   ttl,
		log:   log.Named("weather.cache"),
		obs:   obs,
	}
}

func (p *CachingProvider) Baseline(ctx context.Context, lat, lon float64) (weatherdomain.Baseline, error) {
	key := coordKey(lat, lon)

	if b, ok := p.mem.Get(key); ok {
		p.obs.RecordWeatherFetch("hit")
		return b, nil
	}
	if b, ok := p.redisGet(ctx, key); ok {
		p.mem.Set(key, b, p.ttl)
		p.obs.RecordWeatherFetch("hit")
		return b, nil
	}

	b, err := p.inner.Baseline(ctx, lat, lon)
	if err != nil {
		p.obs.RecordWeatherFetch("error")
		return weatherdomain.Baseline{}, err
	}
	p.obs.RecordWeatherFetch("miss")
	p.mem.Set(key, b, p.ttl)
	p.redisSet(ctx, key, b)
	return b, nil
}

func (p *CachingProvider) redisGet(ctx context.Context, key string) (weatherdomain.Baseline, bool) {
	if p.redis == nil {
		return weatherdomain.Baseline{}, false
	}
	raw, err := p.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			p.log.Debug("redis get failed", zap.Error(err))
		}
		return weatherdomain.Baseline{}, false
	}
	var b weatherdomain.Baseline
	if err := json.Unmarshal(raw, &b); err != nil {
		return weatherdomain.Baseline{}, false
	}
	return b, true
}

func (p *CachingProvider) redisSet(ctx context.Context, key string, b weatherdomain.Baseline) {
	if p.redis == nil {
		return
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := p.redis.Set(ctx, key, raw, p.ttl).Err(); err != nil {
		p.log.Debug("redis set failed", zap.Error(err))
	}
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("weather:baseline:%.2f:%.2f", lat, lon)
}
