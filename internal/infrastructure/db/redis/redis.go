package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gestaoclientes/gestor/internal/core/domain"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
)

// Config holds the connection settings of the session store.
type Config struct {
	Addr     string
	DB       int
	Password string
	// PoolSize defaults to the go-redis default when zero.
	PoolSize int
}

// Connect opens the client and pings it once. A failed ping is reported as
// domain.ErrUpstream so startup logs name the unavailable dependency.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		Password:     cfg.Password,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w: %v", cfg.Addr, domain.ErrUpstream, err)
	}
	return client, nil
}
