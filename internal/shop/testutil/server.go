// Package testutil provides helpers shared by the HTTP handler tests.
package testutil

import (
	"net/http/httptest"
	"testing"

	"finitefield.org/shopfront/internal/shop/config"
	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/httpserver"
	"finitefield.org/shopfront/internal/shop/notify"
	"finitefield.org/shopfront/internal/shop/orders"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithBasePath sets a custom base path for the storefront routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Server.BasePath = path
	}
}

// WithOrdersService wires a custom orders service implementation.
func WithOrdersService(service orders.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.UI.Orders = service
	}
}

// WithCouponsService wires a custom coupons service implementation.
func WithCouponsService(service coupons.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.UI.Coupons = service
	}
}

// WithCenter wires a shared notification center so tests can inspect its
// state after requests.
func WithCenter(center *notify.Center) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.UI.Center = center
	}
}

// NewServer constructs an httptest server running the storefront HTTP stack
// with in-memory services.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Server: config.ServerConfig{
			Addr:     ":0",
			BasePath: "/",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
