package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Postgres  PostgresConfig
	PostgREST PostgRESTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=postgres://localhost:5432/player_platform?sslmode=disable"`
}

// PostgRESTConfig selects the REST-over-Postgres credential backend when both
// fields are present. Backend selection happens once at startup; it is a
// deployment concern, not a per-request branch.
type PostgRESTConfig struct {
	URL string `env:"POSTGREST_URL"`
	Key string `env:"POSTGREST_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=player_platform"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// UseRESTBackend reports whether the REST-over-Postgres credential backend
// is configured.
func (c *Config) UseRESTBackend() bool {
	return c.PostgREST.URL != "" && c.PostgREST.Key != ""
}
