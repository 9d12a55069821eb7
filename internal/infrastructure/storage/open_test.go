package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/infrastructure/config"
)

func TestOpen_Backends(t *testing.T) {
	mr := miniredis.RunT(t)

	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{Store: config.StoreConfig{Backend: config.StoreMemory}}},
		{"file", config.Config{Store: config.StoreConfig{Backend: config.StoreFile, Path: filepath.Join(t.TempDir(), "s.json")}}},
		{"redis", config.Config{
			Store: config.StoreConfig{Backend: config.StoreRedis},
			Redis: config.RedisConfig{Addr: mr.Addr(), Prefix: "ws:"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			backend, err := Open(ctx, &tc.cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer backend.Close(ctx)

			if backend.Name != tc.name {
				t.Fatalf("expected name %q, got %q", tc.name, backend.Name)
			}
			if err := backend.KV.Set(ctx, ports.KeyAccessToken, "t1"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if got, err := backend.KV.Get(ctx, ports.KeyAccessToken); err != nil || got != "t1" {
				t.Fatalf("get: %q %v", got, err)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Store: config.StoreConfig{Backend: "etcd"}})
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
