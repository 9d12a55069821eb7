package storage

import (
	"context"
	"fmt"

	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/infrastructure/config"
	mongostore "github.com/waresmart/warehouse-console/internal/infrastructure/db/mongo"
	redisstore "github.com/waresmart/warehouse-console/internal/infrastructure/db/redis"
)

// Backend is an opened key/value store and the function that releases it.
type Backend struct {
	KV    ports.KeyValueStore
	Name  string
	Close func(context.Context) error
}

func noopClose(context.Context) error { return nil }

// Open connects the backend selected by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return &Backend{KV: NewMemoryKV(), Name: cfg.Store.Backend, Close: noopClose}, nil

	case config.StoreFile:
		kv := NewFileKV(cfg.Store.Path)
		if err := kv.Ping(ctx); err != nil {
			return nil, err
		}
		return &Backend{KV: kv, Name: cfg.Store.Backend, Close: noopClose}, nil

	case config.StoreRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return &Backend{
			KV:    redisstore.NewKV(client, cfg.Redis.Prefix),
			Name:  cfg.Store.Backend,
			Close: func(context.Context) error { return client.Close() },
		}, nil

	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		return &Backend{
			KV:    mongostore.NewKV(db, cfg.Mongo.Collection),
			Name:  cfg.Store.Backend,
			Close: client.Disconnect,
		}, nil
	}
	return nil, fmt.Errorf("storage: unknown backend %q", cfg.Store.Backend)
}
