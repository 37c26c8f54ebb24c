// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/tomtranjr/msds601-highdim-group9/design"
	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
	"github.com/tomtranjr/msds601-highdim-group9/internal/config"
	"github.com/tomtranjr/msds601-highdim-group9/server"
	"github.com/tomtranjr/msds601-highdim-group9/session"
)

const (
	shutdownGrace      = 10 * time.Second
	housekeepingPeriod = time.Minute
)

type serveFlags struct {
	host      string
	port      int
	store     string
	redisAddr string
}

func serveCmd(ctx context.Context, a *app) *cobra.Command {
	var f serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive diagnostic over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyServeFlags(cmd, a.cfg, f)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return runServe(ctx, a)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.host, "host", "", "listen host (overrides config)")
	fs.IntVarP(&f.port, "port", "p", 0, "listen port (overrides config and HTTP_PORT)")
	fs.StringVar(&f.store, "store", "", "session store: memory or redis")
	fs.StringVar(&f.redisAddr, "redis-addr", "", "Redis address for the redis store")

	return cmd
}

// applyServeFlags overlays only the flags the user set.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config, f serveFlags) {
	fs := cmd.Flags()
	if fs.Changed("host") {
		cfg.Server.Host = f.host
	}
	if fs.Changed("port") {
		cfg.Server.Port = f.port
	}
	if fs.Changed("store") {
		cfg.Session.Store = f.store
	}
	if fs.Changed("redis-addr") {
		cfg.Redis.Addr = f.redisAddr
	}
}

func runServe(ctx context.Context, a *app) error {
	cfg, logger := a.cfg, a.logger

	seeds, err := design.NewLockedSource(cfg.Seed.SourceSeed(), design.SeedUpperBound)
	if err != nil {
		return err
	}

	var opts []server.Option
	var store session.Store
	switch cfg.Session.Store {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		defer client.Close()
		rs := session.NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.Session.TTL())
		bs := session.NewBreakerStore(rs, session.BreakerConfig{
			Name:                "session-store",
			MaxRequests:         cfg.Breaker.HalfOpenRequests,
			Interval:            time.Duration(cfg.Breaker.IntervalSeconds) * time.Second,
			Timeout:             time.Duration(cfg.Breaker.OpenSeconds) * time.Second,
			ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
		}, logger)
		store = bs
		opts = append(opts, server.WithHealthCheck("redis", rs.Ping),
			server.WithHealthCheck("store_breaker", func(context.Context) error {
				if st := bs.State(); st == "open" {
					return fmt.Errorf("breaker %s", st)
				}
				return nil
			}))
	default:
		store = session.NewMemoryStore(cfg.Session.TTL())
	}

	metrics := server.NewMetrics()
	engine := fullrank.NewEngine(
		fullrank.WithObserver(metrics),
		fullrank.WithEngineLogger(logger),
	)
	mgr := session.NewManager(store, engine, seeds,
		session.WithLogger(logger),
		session.WithRateLimit(session.RateConfig{
			EventsPerSecond: cfg.RateLimit.EventsPerSecond,
			Burst:           cfg.RateLimit.Burst,
			IdleTTL:         time.Duration(cfg.RateLimit.IdleSeconds) * time.Second,
		}),
	)
	go mgr.RunHousekeeping(ctx, housekeepingPeriod)

	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr(),
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
		RequestTimeout: cfg.Server.RequestTimeout(),
		CookieName:     cfg.Session.CookieName,
		CookieTTL:      cfg.Session.TTL(),
	}, mgr, metrics, append(opts, server.WithLogger(logger))...)

	logger.Info().
		Str("addr", srv.Addr()).
		Str("store", cfg.Session.Store).
		Int64("seed_source", cfg.Seed.SourceSeed()).
		Msg("highdim serving")

	return srv.Run(ctx, shutdownGrace)
}
