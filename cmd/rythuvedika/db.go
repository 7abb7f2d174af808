// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/mdhender/rythuvedika/complaints"
	"github.com/mdhender/rythuvedika/kv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func cmdInitDB() *cobra.Command {
	return &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a new SQLite database file with the schema applied",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.InitDatabase(args[0]); err != nil {
				return err
			}
			logrus.WithField("component", "db").Infof("db: created %s", args[0])
			return nil
		},
	}
}

func cmdCompactDB() *cobra.Command {
	return &cobra.Command{
		Use:          "compact-db <path>",
		Short:        "checkpoint the WAL and vacuum a SQLite database file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kv.CompactDatabase(args[0]); err != nil {
				return err
			}
			logrus.WithField("component", "db").Infof("db: compacted %s", args[0])
			return nil
		},
	}
}

// openComplaints opens the configured store and the complaint collection in it.
// The caller must close the returned kv.Store.
func openComplaints(ctx context.Context) (kv.Store, *complaints.Store, error) {
	log := logrus.WithField("component", "store")
	if cfg.Store == kv.BackendSQLite && cfg.DBPath == "" {
		log.Infof("store: using in-memory SQLite")
	} else {
		log.Infof("store: using %s", cfg.Store)
	}
	backing, err := kv.Open(ctx, cfg.KV())
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	var opts []complaints.Option
	if cfg.SeedFile != "" {
		list, nextID, err := complaints.LoadSeedFile(afero.NewOsFs(), cfg.SeedFile)
		if err != nil {
			backing.Close()
			return nil, nil, err
		}
		log.Infof("store: seed %s: %d complaints", cfg.SeedFile, len(list))
		opts = append(opts, complaints.WithSeed(list, nextID))
	}
	store, err := complaints.Open(ctx, backing, opts...)
	if err != nil {
		backing.Close()
		return nil, nil, err
	}
	stats := store.Stats()
	log.Infof("store: %d complaints, next id %d", stats.Total, stats.NextID)
	return backing, store, nil
}
