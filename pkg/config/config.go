package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	APIPrefix string `mapstructure:"API_PREFIX"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`

	MongoURI        string        `mapstructure:"MONGO_URI"`
	MongoDatabase   string        `mapstructure:"MONGO_DATABASE"`
	PostgresConnStr string        `mapstructure:"POSTGRES_CONN_STR"`
	StoreTimeout    time.Duration `mapstructure:"STORE_TIMEOUT"`

	SessionSecret     string        `mapstructure:"SESSION_SECRET"`
	SessionCookieName string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	SessionSecure     bool          `mapstructure:"SESSION_SECURE"`
	SessionStore      string        `mapstructure:"SESSION_STORE"`

	CORSOrigins             []string `mapstructure:"CORS_ORIGINS"`
	FirebaseCredentialsPath string   `mapstructure:"FIREBASE_CREDENTIALS_PATH"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads .env when present, then the environment, over built-in defaults.
func Load() (*Config, error) {
	cfg, err := unmarshal(nil)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStore is Load for offline tools: same sources and defaults, but only
// the document store settings are required. Non-empty overrides, keyed by
// variable name, take precedence over the environment.
func LoadStore(overrides map[string]string) (*Config, error) {
	cfg, err := unmarshal(overrides)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateStore(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(overrides map[string]string) (*Config, error) {
	_ = godotenv.Load() // optional file

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "wanderlog")
	v.SetDefault("POSTGRES_CONN_STR", "")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_COOKIE_NAME", "connect.sid")
	v.SetDefault("SESSION_TTL", "1h")
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("SESSION_STORE", "mongo")
	v.SetDefault("CORS_ORIGINS", "http://localhost:4200")
	v.SetDefault("FIREBASE_CREDENTIALS_PATH", "")
}

func (c *Config) validate() error {
	var errs []error
	if err := c.validateStore(); err != nil {
		errs = append(errs, err)
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET environment variable not set"))
	}
	switch c.SessionStore {
	case "mongo", "memory":
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE must be mongo or memory, got %q", c.SessionStore))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateStore() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI environment variable not set"))
	}
	if c.StoreTimeout <= 0 {
		errs = append(errs, errors.New("STORE_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
