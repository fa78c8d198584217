package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindhealth/internal/config"
	"mindhealth/internal/observability"
	"mindhealth/internal/repository"
	"mindhealth/internal/scoring"
)

// Stores is the storage backend selected by config
type Stores struct {
	Assessments repository.AssessmentRepo
	References  repository.ReferenceRepo

	close func(context.Context) error
}

// Close releases the backend connection.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStores connects the configured backend and ensures its indexes.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	log := observability.Logger()

	var stores *Stores
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		s, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("opened sqlite store", "path", cfg.SQLitePath)
		stores = &Stores{
			Assessments: s,
			References:  s,
			close:       func(context.Context) error { return s.Close() },
		}

	default:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect to MongoDB: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("ping MongoDB: %w", err)
		}
		log.Info("connected to MongoDB", "db", cfg.MongoDB)

		db := client.Database(cfg.MongoDB)
		stores = &Stores{
			Assessments: repository.NewAssessmentRepo(db),
			References:  repository.NewReferenceRepo(db),
			close:       client.Disconnect,
		}
	}

	if err := stores.Assessments.EnsureIndexes(ctx); err != nil {
		stores.Close(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return stores, nil
}

// ConnectRedis opens and pings the cache connection.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: config.RedisAddr(addr),
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping Redis: %w", err)
	}
	observability.Logger().Info("connected to Redis", "addr", addr)
	return rdb, nil
}

// Engine builds the scoring engine with the configured windows.
func Engine(cfg *config.Config) *scoring.Engine {
	p := scoring.DefaultParams()
	p.FetchWindow = cfg.FetchLimit
	p.ProfileWindow = cfg.ProfileWindow
	return scoring.NewEngine(p)
}
