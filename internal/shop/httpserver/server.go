// Package httpserver assembles the chi router, middleware stack, and embedded
// assets into the storefront UI server.
package httpserver

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/shopfront/internal/shop/config"
	"finitefield.org/shopfront/internal/shop/httpserver/ui"
	"finitefield.org/shopfront/internal/shop/observability"
	"finitefield.org/shopfront/public"
)

// Config holds runtime options for the storefront HTTP server.
type Config struct {
	Server config.ServerConfig
	Logger *zap.Logger
	UI     ui.Dependencies
}

// New constructs the HTTP server with its middleware stack and routes.
func New(cfg Config) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.RequestLoggerMiddleware(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, err
	}

	basePath := NormalizeBasePath(cfg.Server.BasePath)

	uiDeps := cfg.UI
	uiDeps.BasePath = basePath
	uiDeps.Logger = logger
	handlers := ui.NewHandlers(uiDeps)

	mountRoutes(router, basePath, handlers, staticContent)

	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, nil
}

func mountRoutes(router chi.Router, base string, handlers *ui.Handlers, staticContent fs.FS) {
	mount := func(r chi.Router) {
		r.Handle("/static/*", http.StripPrefix(joinBase(base, "/static/"), http.FileServer(http.FS(staticContent))))

		r.Get("/", handlers.Home)
		r.Get("/orders/new", handlers.OrderForm)
		r.Post("/orders/new", handlers.PlaceOrder)
		r.Get("/orders", handlers.OrderHistory)
		r.Get("/orders/{orderNumber}", handlers.OrderDetail)
		r.Post("/orders/{orderNumber}/cancel", handlers.CancelOrder)
		r.Get("/coupons", handlers.Coupons)
		r.Post("/coupons", handlers.CreateCoupon)
	}

	if base == "/" {
		mount(router)
		return
	}
	router.Get(base, handlers.Home)
	router.Route(base, mount)
}

// NormalizeBasePath canonicalizes a configured base path: leading slash,
// no trailing slash, "/" when empty.
func NormalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func joinBase(base, path string) string {
	if base == "/" {
		return path
	}
	return base + path
}
