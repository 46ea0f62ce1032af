package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultRatesCacheTTL   = 24 * time.Hour
	defaultProviderTimeout = 10 * time.Second
	defaultPublicRateLimit = "60-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	EnableDBCheck    bool
	UseInMemoryStore bool
	JWTSecret        string

	// LocalStorePath is the BadgerDB directory for cached rates and the
	// currency preference. Empty runs the currency core headless.
	LocalStorePath string

	RatesProviderURL     string
	RatesProviderTimeout time.Duration
	RatesCacheTTL        time.Duration

	// PublicRateLimit uses the limiter format, e.g. "60-M" for 60 per minute.
	PublicRateLimit    string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("USE_IN_MEMORY_STORE", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("LOCAL_STORE_PATH", "./data/localstore")
	viper.SetDefault("RATES_PROVIDER_URL", "")
	viper.SetDefault("RATES_PROVIDER_TIMEOUT", defaultProviderTimeout.String())
	viper.SetDefault("RATES_CACHE_TTL", defaultRatesCacheTTL.String())
	viper.SetDefault("PUBLIC_RATE_LIMIT", defaultPublicRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		UseInMemoryStore: viper.GetBool("USE_IN_MEMORY_STORE"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		LocalStorePath:   strings.TrimSpace(viper.GetString("LOCAL_STORE_PATH")),
		RatesProviderURL: viper.GetString("RATES_PROVIDER_URL"),
		PublicRateLimit:  viper.GetString("PUBLIC_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" && !cfg.UseInMemoryStore {
		log.Println("Warning: PGSQL_URL not set and USE_IN_MEMORY_STORE is false.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RatesProviderTimeout = parseDuration("RATES_PROVIDER_TIMEOUT", defaultProviderTimeout)
	cfg.RatesCacheTTL = parseDuration("RATES_CACHE_TTL", defaultRatesCacheTTL)

	if cfg.PublicRateLimit == "" {
		cfg.PublicRateLimit = defaultPublicRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// parseDuration reads key as a Go duration, falling back to def on empty, invalid or non-positive values.
func parseDuration(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
