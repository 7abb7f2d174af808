// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/session"
	"github.com/mdhender/rythuvedika/web/handlers"
	"github.com/mdhender/rythuvedika/web/metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func cmdServe() *cobra.Command {
	var addr, staticDir string
	var timeout, shutdownTimeout time.Duration
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default from RYTHUVEDIKA_ADDR or :8787)")
		cmd.Flags().StringVar(&staticDir, "static", "", "static files directory")
		cmd.Flags().DurationVar(&timeout, "timeout", 0, "auto-shutdown after duration (e.g., 5s, 1m)")
		cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "time allowed for in-flight requests on shutdown")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "serve",
		Short:        "run the web server",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("static") {
				cfg.StaticDir = staticDir
			}
			if cmd.Flags().Changed("shutdown-timeout") {
				cfg.ShutdownTimeout = shutdownTimeout
			}
			return serve(timeout)
		},
	}
	if err := addFlags(cmd); err != nil {
		logrus.Fatal(err)
	}
	return cmd
}

func serve(timeout time.Duration) error {
	log := logrus.WithField("component", "server")

	backing, store, err := openComplaints(context.Background())
	if err != nil {
		return err
	}
	defer backing.Close()

	m := metrics.New(func() map[model.Status]int { return store.Stats().ByStatus })
	h := handlers.New(catalog.Default(), store, session.NewManager(backing), m)

	if _, err := os.Stat(cfg.StaticDir); err != nil {
		log.Warnf("server: static directory %q: %v", cfg.StaticDir, err)
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Routes(cfg.StaticDir),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	if timeout > 0 {
		go func() {
			log.Infof("server: will auto-shutdown in %v", timeout)
			time.Sleep(timeout)
			log.Infof("server: timeout reached, initiating shutdown")
			shutdown <- os.Interrupt
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("server: listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-shutdown:
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}
	log.Infof("server: shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown error: %w", err)
	}

	log.Infof("server: stopped")
	return nil
}
