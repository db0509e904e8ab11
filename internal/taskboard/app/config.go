package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer string `env:"TASKBOARD_ISSUER" envDefault:"taskboard"`

	// DBDriver selects the storage backend (sqlite, postgres).
	DBDriver     string `env:"TASKBOARD_DB_DRIVER" envDefault:"sqlite"`
	DatabaseFile string `env:"TASKBOARD_DATABASE_FILE" envDefault:"taskboard.db"`
	DatabaseURL  string `env:"TASKBOARD_DATABASE_URL"`

	SessionTTL time.Duration `env:"TASKBOARD_SESSION_TTL" envDefault:"720h"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("TASKBOARD_DATABASE_URL is required with the postgres driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}

	return cfg, nil
}
