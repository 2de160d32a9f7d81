package cliparse

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
	StorageBackend string `env:"STORAGE_BACKEND"`

	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_ANON_KEY"`

	SheetsAPIKey string `env:"GOOGLE_SHEETS_API_KEY"`
	SheetID      string `env:"GOOGLE_SHEET_ID"`
	SheetRange   string `env:"GOOGLE_SHEET_RANGE" envDefault:"Sheet1!A:E"`

	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"postgres"`
	PoolMaxSize  int    `env:"DB_POOL_MAX_SIZE" envDefault:"10"`

	// Managed-hosting platforms export the connection string under
	// different names; DATABASE_URL wins when more than one is set.
	PostgresURL           string `env:"POSTGRES_URL"`
	PostgresURLNonPooling string `env:"POSTGRES_URL_NON_POOLING"`

	CORSOrigins       []string `env:"FRONTEND_ORIGINS" envSeparator:","`
	CORSOrigin        string   `env:"FRONTEND_ORIGIN"`
	CORSOriginPattern string   `env:"CORS_ALLOW_ORIGIN_REGEX" envDefault:"https://.*\\.vercel\\.app"`

	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8000"`
}

// Debug reports whether debug logging should be enabled.
func (c Config) Debug() bool {
	return c.Environment == EnvDevelopment
}

// ParseFlags loads configuration from the environment, then applies CLI
// flag overrides for the settings that are convenient to set ad hoc in dev.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("anytime-contest", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Listen host")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "Storage backend (supabase, sheets, postgres; empty for memory)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = cfg.PostgresURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = cfg.PostgresURLNonPooling
	}

	cfg.CORSOrigins = cleanOrigins(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 && cfg.CORSOrigin != "" {
		cfg.CORSOrigins = cleanOrigins(strings.Split(cfg.CORSOrigin, ","))
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost",
			"http://127.0.0.1",
		}
	}

	if cfg.PoolMaxSize < 1 {
		cfg.PoolMaxSize = 1
	}

	return cfg, nil
}

func cleanOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
