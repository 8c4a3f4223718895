package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/pkg/cache"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/config"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/logger"
	"github.com/FACorreiaa/influencer-hub/internal/routes"
	"github.com/FACorreiaa/influencer-hub/internal/server"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel),
		zap.String("service", cfg.Observability.ServiceName),
		zap.String("version", version),
	); err != nil {
		return err
	}
	l := logger.Log
	defer func() { _ = l.Sync() }()

	otelShutdown, err := server.InitObservability(cfg.Observability, version, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			l.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(context.Background(), cfg, l)
	if err != nil {
		return err
	}
	defer srv.Close()

	router, err := server.SetupRouter(routes.Dependencies{
		Config: cfg,
		Pool:   srv.GetDBPool(),
		Caches: cache.NewCacheManager(cfg.Session.ApplicationsTTL, cfg.Session.MaxAge, l),
		Logger: l,
	})
	if err != nil {
		l.Error("Failed to setup router", zap.Error(err))
		return err
	}
	srv.SetRouter(router)

	// pprof stays on its own port, not exposed publicly
	pprofServer := server.StartPprofServer(cfg.Observability.PprofAddr, l)

	httpServer := srv.HTTPServer()

	done := make(chan struct{})
	go server.GracefulShutdown(httpServer, l, done, pprofServer)

	l.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("Server error", zap.Error(err))
		return err
	}

	<-done
	l.Info("Graceful shutdown complete")

	return nil
}
