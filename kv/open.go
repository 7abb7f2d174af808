// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package kv

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config selects and configures a backend.
type Config struct {
	Backend  string
	Path     string // sqlite database file; empty for in-memory
	DSN      string // mysql
	Dir      string // file
	RedisURL string // redis
	Prefix   string // redis key prefix
	Fs       afero.Fs
}

// Open returns the configured store.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		return NewSQLStoreWithConfig(StoreConfig{Dialect: DialectSQLite, Path: cfg.Path})
	case BackendMySQL:
		return NewSQLStoreWithConfig(StoreConfig{Dialect: DialectMySQL, DSN: cfg.DSN, InitSchema: true})
	case BackendFile:
		fs := cfg.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewFileStore(fs, cfg.Dir)
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.Prefix)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
