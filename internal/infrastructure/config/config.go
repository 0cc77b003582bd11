package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// insecureDefaultSecret is the documented fallback signing secret. It exists
// so the service boots in local development; production deployments MUST set
// JWT_SECRET.
const insecureDefaultSecret = "your-secret-key"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs bearer tokens. Falls back to a known weak default.
	JWTSecret string `env:"JWT_SECRET"`
	// JWTExpiresIn bounds token validity. Zero means tokens never expire.
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=task_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureDefaultSecret
	}
	return &cfg
}

// UsingDefaultSecret reports whether the insecure fallback secret is in use,
// so startup can log a loud warning.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == insecureDefaultSecret
}
