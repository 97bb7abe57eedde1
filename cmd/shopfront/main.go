package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/config"
	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/httpserver"
	"finitefield.org/shopfront/internal/shop/httpserver/ui"
	"finitefield.org/shopfront/internal/shop/observability"
	"finitefield.org/shopfront/internal/shop/orders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	uiDeps, err := buildServices(cfg.Backend, logger)
	if err != nil {
		logger.Fatal("init services", zap.Error(err))
	}

	srv, err := httpserver.New(httpserver.Config{
		Server: cfg.Server,
		Logger: logger,
		UI:     uiDeps,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("storefront server listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("base_path", cfg.Server.BasePath))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

// buildServices wires the backend services: in-memory static implementations
// when no backend URL is configured, HTTP services otherwise.
func buildServices(backend config.BackendConfig, logger *zap.Logger) (ui.Dependencies, error) {
	if backend.BaseURL == "" {
		logger.Info("backend URL not configured; using in-memory services")
		return ui.Dependencies{
			Orders:  orders.NewStaticService(),
			Coupons: coupons.NewStaticService(),
		}, nil
	}

	client, err := api.NewClient(backend.BaseURL, &http.Client{Timeout: backend.Timeout})
	if err != nil {
		return ui.Dependencies{}, err
	}
	logger.Info("backend API configured", zap.String("base_url", backend.BaseURL))
	return ui.Dependencies{
		Orders:  orders.NewHTTPService(client),
		Coupons: coupons.NewHTTPService(client),
	}, nil
}
