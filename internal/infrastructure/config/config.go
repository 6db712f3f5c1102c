package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=8h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// StorageDriver selects the record store: mongo or sqlite.
	StorageDriver string `env:"STORAGE_DRIVER, default=mongo"`

	BootstrapAdminPassword string   `env:"BOOTSTRAP_ADMIN_PASSWORD"`
	CORSOrigins            []string `env:"CORS_ORIGINS, default=*"`
	CleanupWorkers         int      `env:"CLEANUP_WORKERS, default=2"`

	Mongo  MongoConfig
	SQLite SQLiteConfig
	Redis  RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gestor"`
	PoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=0"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=gestor.db"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Password string `env:"REDIS_PASSWORD"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=0"`
}

// Load reads a .env file when present and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.StorageDriver {
	case DriverMongo, DriverSQLite:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
