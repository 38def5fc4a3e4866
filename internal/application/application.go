package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"weapon_market/internal/config"
	service "weapon_market/internal/domain/service/market"
	"weapon_market/internal/infrastructure/cache"
	"weapon_market/internal/infrastructure/persistence"
	"weapon_market/internal/server"
	"weapon_market/internal/worker"
	"weapon_market/pkg/application/connectors"
	"weapon_market/pkg/application/modules"
	"weapon_market/pkg/contextx"
	"weapon_market/pkg/logx"
	"weapon_market/pkg/middlewarex"
	"weapon_market/pkg/probe"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает все модули приложения и блокируется до отмены ctx или
// падения любого из них.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}

	db := pg.Client(ctx)
	defer pg.Close(ctx)

	checks := []probe.Check{{Name: "postgres", Func: db.PingContext}}

	svc := service.NewMarketService(persistence.NewWeaponRepository(db))

	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		rc := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		client := rc.Client(ctx)
		defer rc.Close(ctx)

		svc.WithCache(cache.NewRedisStore(client), cfg.Cache.TTL)

		checks = append(checks, probe.Check{
			Name: "redis",
			Func: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	case config.CacheDriverMemory:
		svc.WithCache(cache.NewMemoryStore(cfg.Cache.CleanupInterval), cfg.Cache.TTL)
	}

	// Фоновые записи в кэш дописываются до закрытия соединений.
	defer svc.Wait()

	logger(ctx).Info("search cache configured", slog.String("driver", cfg.Cache.Driver))

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		middlewarex.Authentication(cfg.Auth.Tokens),
	)

	server.NewServer(server.NewMarketServer(svc)).RegisterRoutes(router)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	warmer := worker.NewCacheWarmer(svc, cfg.Warmer.Interval).WithNetworks(cfg.Warmer.Networks...)

	g.Go(func() error {
		if err := warmer.Run(ctx); err != nil {
			return fmt.Errorf("warmer.Run: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
