package app

import (
	"context"
	"fmt"

	"conferenceassistant/config"
	"conferenceassistant/internal/domain"
	"conferenceassistant/internal/repository/memory"
	"conferenceassistant/internal/repository/postgres"
	"conferenceassistant/internal/repository/redis"
	"conferenceassistant/internal/repository/sqlite"
)

// OpenStore builds the key-value store selected by cfg.StoreDriver. The returned close
// function releases the underlying connection and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config) (domain.KVStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		return memory.NewStore(), func() error { return nil }, nil
	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewKVStore(db, cfg.KVTable)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	case config.StoreRedis:
		rdb, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStore(rdb, cfg.RedisNamespace), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
