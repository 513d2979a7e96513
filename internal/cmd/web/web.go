// Package web wires configuration and dependencies for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/config"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/platform/otel"
	"github.com/okastrup/renteregner.dk/internal/platform/timeouts"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/services/web"
	"github.com/okastrup/renteregner.dk/internal/storage/sqlite"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"DB_PATH"`
	RedisURL string `env:"REDIS_URL"`
}

// ParseConfig loads configuration from the environment and parses flag
// overrides on top.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite telemetry database path (empty disables persistence)")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "redis URL for the shared inputs store (empty uses in-memory)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server with all dependencies wired.
func Run(ctx context.Context, cfg Config) error {
	otelShutdown, err := otel.Setup(ctx, "renteregner-web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	var emitter *telemetry.Emitter
	if cfg.DBPath != "" {
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open telemetry database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("close telemetry database: %v", err)
			}
		}()
		emitter = telemetry.NewEmitter(db)
	}

	store, closeStore, err := newInputsStore(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("init inputs store: %w", err)
	}
	defer closeStore()

	server := web.NewServer(web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Engine:    projection.NewEngine(),
		Store:     store,
		Telemetry: emitter,
		Metrics:   metrics.Default(),
		Logger:    log.Default(),
	})
	defer server.Close()

	log.Printf("web server listening addr=%s", cfg.HTTPAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func newInputsStore(ctx context.Context, redisURL string) (inputs.Store, func(), error) {
	if redisURL == "" {
		return inputs.NewMemoryStore(), func() {}, nil
	}
	store, err := inputs.NewRedisStore(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Printf("close inputs store: %v", err)
		}
	}
	return store, closeStore, nil
}
