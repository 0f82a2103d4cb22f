package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ErrConfiguration marks fatal configuration problems. They abort the run
// before any symbol is processed.
var ErrConfiguration = errors.New("configuration error")

type (
	API struct {
		BaseURL        string `yaml:"base_url" envconfig:"API_BASE_URL"`
		APIKey         string `yaml:"-" envconfig:"ALPHA_VANTAGE_API_KEY"`
		TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"API_TIMEOUT_SEC"`
	}

	Postgres struct {
		Host     string `yaml:"host" envconfig:"DB_HOST"`
		Port     string `yaml:"port" envconfig:"DB_PORT"`
		User     string `yaml:"user" envconfig:"DB_USER"`
		Password string `yaml:"-" envconfig:"DB_PASSWORD"`
		DBName   string `yaml:"database" envconfig:"DB_NAME"`
	}

	Redis struct {
		Addr string `yaml:"addr" envconfig:"REDIS_ADDR"`
		DB   int    `yaml:"db" envconfig:"REDIS_DB"`
	}

	Logging struct {
		Level string `yaml:"level" envconfig:"LOG_LVL"`
	}

	Config struct {
		API      API      `yaml:"api"`
		Postgres Postgres `yaml:"postgres"`
		Redis    Redis    `yaml:"redis"`
		Logging  Logging  `yaml:"logging"`
		Symbols  []string `yaml:"symbols" envconfig:"SYMBOLS"`
	}
)

// Load reads YAML configuration from path, then applies .env and environment
// overrides. Secrets (API key, DB password) only ever come from the
// environment, never the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrConfiguration, path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		API: API{
			BaseURL:        "https://www.alphavantage.co/query",
			TimeoutSeconds: 30,
		},
		Postgres: Postgres{
			Host:   "localhost",
			Port:   "5432",
			User:   "postgres",
			DBName: "selene",
		},
		Redis: Redis{
			Addr: "localhost:6379",
		},
		Logging: Logging{
			Level: "prod",
		},
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("%w: api base_url must be an http(s) URL", ErrConfiguration)
	}
	key := strings.TrimSpace(c.API.APIKey)
	if key == "" {
		return fmt.Errorf("%w: ALPHA_VANTAGE_API_KEY is required", ErrConfiguration)
	}
	if len(key) < 8 {
		return fmt.Errorf("%w: ALPHA_VANTAGE_API_KEY looks too short to be a valid key", ErrConfiguration)
	}
	if c.Postgres.DBName == "" {
		return fmt.Errorf("%w: postgres database name is required", ErrConfiguration)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: api timeout_seconds must be positive", ErrConfiguration)
	}
	return nil
}
