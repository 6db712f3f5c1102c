package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gestaoclientes/gestor/internal/api"
	"github.com/gestaoclientes/gestor/internal/core/ports"
	"github.com/gestaoclientes/gestor/internal/core/service"
	"github.com/gestaoclientes/gestor/internal/infrastructure/config"
	mongodb "github.com/gestaoclientes/gestor/internal/infrastructure/db/mongo"
	redisdb "github.com/gestaoclientes/gestor/internal/infrastructure/db/redis"
	"github.com/gestaoclientes/gestor/internal/infrastructure/db/sqlite"
	"github.com/gestaoclientes/gestor/internal/infrastructure/http/handlers"
	"github.com/gestaoclientes/gestor/internal/infrastructure/queue"
	"github.com/gestaoclientes/gestor/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// storage bundles the record stores of the selected driver.
type storage struct {
	clients ports.ClientRepository
	users   ports.UserRepository
	creds   ports.CredentialStore
	check   handlers.Check
	close   func(context.Context) error
}

// @title Gestor API
// @version 1.0
// @description Client and user management for the accounting office.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("open storage")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close storage")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	janitor := queue.NewJanitor(cfg.CleanupWorkers, store.creds, logger.Component("janitor"))
	janitor.Start(ctx)

	authService := service.NewAuthService(store.users, store.creds, redisdb.NewSessionStore(rdb), cfg.JWTSecret, cfg.TokenTTL, log)
	if err := authService.EnsureBootstrapAdmin(ctx, cfg.BootstrapAdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap administrator")
	}

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Clients: service.NewClientService(store.clients, log),
		Users:   service.NewUserService(store.users, store.creds, janitor, log),
		Checks: map[string]handlers.Check{
			cfg.StorageDriver: store.check,
			"redis":           handlers.RedisCheck(rdb),
		},
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if err := sqlite.RunMigrations(ctx, db); err != nil {
			return nil, err
		}
		return &storage{
			clients: sqlite.NewClientRepository(db),
			users:   sqlite.NewUserRepository(db),
			creds:   sqlite.NewCredentialStore(db),
			check:   handlers.SQLCheck(db),
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.PoolSize,
		})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &storage{
			clients: mongodb.NewClientRepository(db),
			users:   mongodb.NewUserRepository(db),
			creds:   mongodb.NewCredentialStore(db),
			check:   handlers.MongoCheck(db),
			close:   client.Disconnect,
		}, nil
	}
}
