// Package config loads runtime configuration from environment variables,
// optionally primed from a local .env file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultHTTPAddr     = ":8080"
	defaultBasePath     = "/"
	defaultAPIBaseURL   = "http://localhost:8081"
	defaultAPITimeout   = 15 * time.Second
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
}

// ServerConfig configures the UI HTTP server.
type ServerConfig struct {
	Addr         string
	BasePath     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// BackendConfig points the client at the storefront API. An empty BaseURL
// switches the process to the in-memory static services.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from the environment. Values already present in
// the environment win over the .env file.
func Load() (Config, error) {
	if err := loadEnvFile(defaultEnvFile); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:         getEnv("SHOPFRONT_HTTP_ADDR", defaultHTTPAddr),
			BasePath:     getEnv("SHOPFRONT_BASE_PATH", defaultBasePath),
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		Backend: BackendConfig{
			BaseURL: getEnv("SHOPFRONT_API_URL", defaultAPIBaseURL),
			Timeout: defaultAPITimeout,
		},
	}

	if raw := strings.TrimSpace(os.Getenv("SHOPFRONT_API_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse SHOPFRONT_API_TIMEOUT: %w", err)
		}
		cfg.Backend.Timeout = timeout
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// loadEnvFile sets KEY=VALUE pairs from the given file into the process
// environment without overriding values that are already set. A missing
// file is not an error.
func loadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("config: set %s: %w", key, err)
		}
	}
	return scanner.Err()
}
