// Package mcp wires configuration and dependencies for the MCP command.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/config"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/services/mcp/service"
	"github.com/okastrup/renteregner.dk/internal/storage"
	"github.com/okastrup/renteregner.dk/internal/storage/sqlite"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

// Config holds the MCP command configuration.
type Config struct {
	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	DBPath    string `env:"DB_PATH"`
	RedisURL  string `env:"REDIS_URL"`
}

// ParseConfig loads configuration from the environment and parses flag
// overrides on top.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport (stdio)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite telemetry database path (empty disables persistence)")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "redis URL for the shared inputs store (empty uses in-memory)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server with all dependencies wired.
func Run(ctx context.Context, cfg Config) error {
	var emitter *telemetry.Emitter
	var reader storage.TelemetryReader
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
		reader = db
	}

	var store inputs.Store = inputs.NewMemoryStore()
	if cfg.RedisURL != "" {
		redisStore, err := inputs.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("init inputs store: %w", err)
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Printf("close inputs store: %v", err)
			}
		}()
		store = redisStore
	}

	return service.Run(ctx, service.Config{
		Transport:       service.TransportKind(cfg.Transport),
		Engine:          projection.NewEngine(),
		Store:           store,
		Telemetry:       emitter,
		TelemetryReader: reader,
		Metrics:         metrics.Default(),
	})
}
