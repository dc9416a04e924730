package weather

import (
	"strings"

	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/observability/metrics"
	weatherdomain "github.com/haneul-labs/haneul/internal/weather/domain"
	"github.com/haneul-labs/haneul/internal/weather/service"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go.uber.org/fx"
)

var Module = fx.Module("weather.provider",
	fx.Provide(NewProvider),
)

// NewProvider wires the configured provider chain: a no-op when the override
// is disabled, otherwise the archive client behind the TTL cache, with a
// shared redis tier when an address is configured.
func NewProvider(cfg config.Config, log *zap.Logger, obs *metrics.Metrics) weatherdomain.Provider {
	wc := cfg.Weather
	if !wc.Enabled {
		return service.NoOpProvider{}
	}

	var redisClient *redis.Client
	if addr := strings.TrimSpace(wc.RedisAddr); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: wc.RedisPassword,
			DB:       wc.RedisDB,
		})
	}

	client := service.NewClient(wc.BaseURL, wc.FetchTimeout, log)
	return service.NewCachingProvider(client, redisClient, wc.CacheTTL, log, obs)
}
