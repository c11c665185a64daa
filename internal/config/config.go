package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"FAKEBOOK_ENV" envDefault:"dev"`
	DataDir  string `env:"FAKEBOOK_DATA_DIR" envDefault:"DataStorage"`
	LogLevel string `env:"FAKEBOOK_LOG_LEVEL" envDefault:"info"`

	SeedUsers        int   `env:"FAKEBOOK_SEED_USERS" envDefault:"20"`
	SeedMaxPostsEach int   `env:"FAKEBOOK_SEED_MAX_POSTS" envDefault:"10"`
	SeedRandom       int64 `env:"FAKEBOOK_SEED_RANDOM" envDefault:"0"`
}

// Load reads configuration from the environment, with an optional .env file
// filling in unset keys.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFromEnv(nil)
}

// LoadFromEnv parses configuration from the given key/value set; nil means
// the process environment. Split out so tests can inject values.
func LoadFromEnv(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Env {
	case "dev", "test", "prod":
	default:
		return Config{}, errors.New("FAKEBOOK_ENV: must be one of dev, test, prod")
	}
	if cfg.DataDir == "" {
		return Config{}, errors.New("FAKEBOOK_DATA_DIR: must not be empty")
	}
	if cfg.SeedUsers <= 0 {
		return Config{}, errors.New("FAKEBOOK_SEED_USERS: must be > 0")
	}
	if cfg.SeedMaxPostsEach < 0 {
		return Config{}, errors.New("FAKEBOOK_SEED_MAX_POSTS: must be >= 0")
	}

	return cfg, nil
}

func (c Config) IsProd() bool { return c.Env == "prod" }
