// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads server and store settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mdhender/rythuvedika/kv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvAddr            = "RYTHUVEDIKA_ADDR"
	EnvStore           = "RYTHUVEDIKA_STORE"
	EnvDB              = "RYTHUVEDIKA_DB"
	EnvDSN             = "RYTHUVEDIKA_DSN"
	EnvDataDir         = "RYTHUVEDIKA_DATA_DIR"
	EnvRedisURL        = "RYTHUVEDIKA_REDIS_URL"
	EnvStatic          = "RYTHUVEDIKA_STATIC"
	EnvShutdownTimeout = "RYTHUVEDIKA_SHUTDOWN_TIMEOUT"
	EnvSeed            = "RYTHUVEDIKA_SEED"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
)

type Config struct {
	Addr            string
	Store           string // one of the kv.Backend names
	DBPath          string // sqlite file; empty for in-memory
	DSN             string
	DataDir         string
	RedisURL        string
	StaticDir       string
	ShutdownTimeout time.Duration
	SeedFile        string // replaces the built-in seed records when set
	LogLevel        string
	LogFormat       string // "text" or "json"
}

// Default returns the settings used when nothing is configured:
// an in-memory sqlite store served on :8787.
func Default() Config {
	return Config{
		Addr:            ":8787",
		Store:           kv.BackendSQLite,
		DataDir:         "data",
		StaticDir:       "web/static",
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads envFile, if it exists, into the process environment without
// overriding variables that are already set, then builds a Config from the
// environment on top of Default. An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", envFile, err)
		}
		logrus.WithField("component", "config").Debugf("config: %s not found, using environment", envFile)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from the lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvAddr, &cfg.Addr)
	str(EnvStore, &cfg.Store)
	str(EnvDB, &cfg.DBPath)
	str(EnvDSN, &cfg.DSN)
	str(EnvDataDir, &cfg.DataDir)
	str(EnvRedisURL, &cfg.RedisURL)
	str(EnvStatic, &cfg.StaticDir)
	str(EnvSeed, &cfg.SeedFile)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFormat, &cfg.LogFormat)
	if v, ok := lookup(EnvShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvShutdownTimeout, err)
		}
		cfg.ShutdownTimeout = d
	}
	cfg.Store = strings.ToLower(cfg.Store)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch c.Store {
	case kv.BackendSQLite, kv.BackendMemory:
	case kv.BackendMySQL:
		if c.DSN == "" {
			return fmt.Errorf("config: store %q needs %s", c.Store, EnvDSN)
		}
	case kv.BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("config: store %q needs %s", c.Store, EnvDataDir)
		}
	case kv.BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: store %q needs %s", c.Store, EnvRedisURL)
		}
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("config: negative shutdown timeout %v", c.ShutdownTimeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

// KV translates the store settings for kv.Open.
func (c Config) KV() kv.Config {
	return kv.Config{
		Backend:  c.Store,
		Path:     c.DBPath,
		DSN:      c.DSN,
		Dir:      c.DataDir,
		RedisURL: c.RedisURL,
		Prefix:   "rythuvedika:",
	}
}

// ConfigureLogging applies the level and format to the standard logrus logger.
func (c Config) ConfigureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logrus.SetLevel(level)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
