// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/go-core-stack/forward-proxy/pkg/config"
	"github.com/go-core-stack/forward-proxy/pkg/metrics"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
	"github.com/go-core-stack/forward-proxy/pkg/web"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("invalid log level")
	}
	log.Logger = log.Level(level)

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(registry)

	app, err := proxy.NewBuilder().
		ID(cfg.ID).
		Client(proxy.NewClient(cfg.InsecureSkipVerify, cfg.RequestTimeout)).
		Auths(cfg.Authenticators()...).
		Handlers(cfg.Handlers()...).
		Metrics(collector).
		Logger(log.Logger).
		Build()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct proxy")
	}

	webServer := web.New(registry, log.With().Str("component", "web").Logger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.Run(gctx, cfg.ListenAddr)
	})

	g.Go(func() error {
		return webServer.Run(gctx, cfg.WebListenAddr)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("forward proxy exited unexpectedly")
	}

	log.Info().Msg("forward proxy stopped")
}
