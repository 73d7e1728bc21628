package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/sixteen/internal/provider/openai"
)

// Config represents the solver service configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	OpenAI  openai.Config
	Pricing PricingConfig
	Cache   CacheConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"180"`
}

// CORSConfig contains CORS policy settings for the browser UI.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// PricingConfig points at the external pricing catalog. Empty means no
// catalog: built-in fallback pricing only.
type PricingConfig struct {
	CatalogSource string `env:"PRICING_CATALOG_SOURCE"`
}

// CacheConfig controls the solve-result cache. With no Redis address the
// in-memory cache is used.
type CacheConfig struct {
	RedisAddr string `env:"CACHE_REDIS_ADDR"`
	TTL       int    `env:"CACHE_TTL"      envDefault:"86400"` // seconds
	MaxSize   int    `env:"CACHE_MAX_SIZE" envDefault:"1024"`  // in-memory entries
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*openai.Config
	*PricingConfig
	*CacheConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.OpenAI,
		&cfg.Pricing,
		&cfg.Cache,
	}
}
