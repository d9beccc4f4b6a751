package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string `env:"BOOKTRACKER_DATA_DIR" envDefault:"data"`
	CatalogFile string `env:"BOOKTRACKER_CATALOG_FILE" envDefault:"general.csv"`
	UsersFile   string `env:"BOOKTRACKER_USERS_FILE" envDefault:"users.txt"`
	SessionFile string `env:"BOOKTRACKER_SESSION_FILE" envDefault:"current_user.txt"`

	Addr      string        `env:"APP_ADDR" envDefault:":8080"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`

	ReadingTick time.Duration `env:"READING_TICK" envDefault:"1m"`

	RateLimitRPS       float64  `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" envDefault:"20"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxBodyBytes       int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	EnableHSTS         bool     `env:"ENABLE_HSTS" envDefault:"false"`

	OpenLibraryUserAgent  string   `env:"OPENLIBRARY_USER_AGENT" envDefault:"booktracker/1.0"`
	OpenLibraryRPS        float64  `env:"OPENLIBRARY_RPS" envDefault:"1"`
	OpenLibraryMaxRetries int      `env:"OPENLIBRARY_MAX_RETRIES" envDefault:"3"`
	ImportBooksMax        int      `env:"IMPORT_BOOKS_MAX" envDefault:"50"`
	ImportSubjects        []string `env:"IMPORT_SUBJECTS" envSeparator:"," envDefault:"fiction,fantasy,science_fiction,mystery"`
}

// LoadEnvFiles reads .env and .env.local. Variables already set in the
// environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads env files, parses the environment and validates the result.
func Load() (*Config, error) {
	LoadEnvFiles()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("BOOKTRACKER_DATA_DIR cannot be empty")
	}
	if c.CatalogFile == "" || c.UsersFile == "" || c.SessionFile == "" {
		return errors.New("BOOKTRACKER_CATALOG_FILE, BOOKTRACKER_USERS_FILE and BOOKTRACKER_SESSION_FILE cannot be empty")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.ReadingTick <= 0 {
		return errors.New("READING_TICK must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1")
	}
	if c.MaxBodyBytes < 1 {
		return errors.New("MAX_BODY_BYTES must be at least 1")
	}
	if c.OpenLibraryRPS <= 0 {
		return errors.New("OPENLIBRARY_RPS must be positive")
	}
	if c.OpenLibraryMaxRetries < 0 {
		return errors.New("OPENLIBRARY_MAX_RETRIES cannot be negative")
	}
	if c.ImportBooksMax < 0 {
		return errors.New("IMPORT_BOOKS_MAX cannot be negative")
	}
	return nil
}

// RequireJWTSecret reports whether the API can issue tokens.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func (c *Config) CatalogPath() string { return c.resolve(c.CatalogFile) }
func (c *Config) UsersPath() string   { return c.resolve(c.UsersFile) }
func (c *Config) SessionPath() string { return c.resolve(c.SessionFile) }

// resolve places relative file names under DataDir.
func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
