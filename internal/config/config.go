package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
)

type Config struct {
	App struct {
		Name        string   `envconfig:"APP_NAME" default:"Pay & Grow"`
		Port        int      `envconfig:"PORT" default:"8080"`
		CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	}

	DB struct {
		// Driver is one of pgx, sqlite3 or memory.
		Driver     string `envconfig:"DB_DRIVER" default:"sqlite3"`
		Host       string `envconfig:"DB_HOST" default:"localhost"`
		Port       int    `envconfig:"DB_PORT" default:"5432"`
		User       string `envconfig:"DB_USER" default:"postgres"`
		Password   string `envconfig:"DB_PASSWORD" default:""`
		Name       string `envconfig:"DB_NAME" default:"paygrow"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"paygrow.db"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
	}

	Gemini struct {
		APIKey string `envconfig:"GEMINI_API_KEY"`
		Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	}

	Insight struct {
		// Timeout bounds every insight call, remote or local.
		Timeout time.Duration `envconfig:"INSIGHT_TIMEOUT" default:"10s"`
	}

	Seed struct {
		Name                string `envconfig:"SEED_NAME" default:"Alex Doe"`
		Balance             string `envconfig:"SEED_BALANCE" default:"15450.75"`
		MultiplierThreshold string `envconfig:"MULTIPLIER_THRESHOLD" default:"10000"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// SeedBalance is the opening balance of a new account, in paise.
func (c *Config) SeedBalance() (int64, error) {
	return money.Parse(c.Seed.Balance)
}

// MultiplierThreshold is the balance, in paise, above which boosted
// multipliers are offered.
func (c *Config) MultiplierThreshold() (int64, error) {
	return money.Parse(c.Seed.MultiplierThreshold)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.SeedBalance(); err != nil {
		return nil, fmt.Errorf("parsing SEED_BALANCE: %w", err)
	}

	if _, err := cfg.MultiplierThreshold(); err != nil {
		return nil, fmt.Errorf("parsing MULTIPLIER_THRESHOLD: %w", err)
	}

	return &cfg, nil
}
