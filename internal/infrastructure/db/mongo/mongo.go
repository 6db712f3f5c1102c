package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
	// MaxPoolSize keeps the driver default when zero.
	MaxPoolSize uint64
}

// Connect opens the client and pings it. Failures wrap domain.ErrUpstream.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetAppName("gestor")
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w: %v", domain.ErrUpstream, err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w: %v", cfg.Database, domain.ErrUpstream, err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique indexes every repository relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	if err := NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("client indexes: %w", err)
	}
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := NewCredentialStore(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("credential indexes: %w", err)
	}
	return nil
}
