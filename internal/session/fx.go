package session

import (
	"context"
	"time"

	sessiondomain "github.com/haneul-labs/haneul/internal/session/domain"
	"github.com/haneul-labs/haneul/internal/session/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const purgeInterval = 10 * time.Minute

var Module = fx.Module("session.service",
	fx.Provide(
		service.NewService,
	),
	fx.Invoke(registerPurgeLoop),
)

// registerPurgeLoop runs the expired-set sweeper for the lifetime of the app.
func registerPurgeLoop(lc fx.Lifecycle, svc sessiondomain.Service, log *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := svc.PurgeExpired(ctx); err != nil {
							log.Warn("facility set purge failed", zap.Error(err))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
