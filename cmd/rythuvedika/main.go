// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/mdhender/rythuvedika"
	"github.com/mdhender/rythuvedika/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfg is loaded once by the root command before any subcommand runs.
var cfg config.Config

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with caller file and line")
		cmd.PersistentFlags().Bool("log-with-timestamp", true, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		cmd.PersistentFlags().String("env-file", ".env", "load environment from file, if it exists")
		cmd.PersistentFlags().String("store", "", "store backend: sqlite, mysql, file, redis, memory")
		cmd.PersistentFlags().String("db", "", "SQLite database file path (empty = in-memory)")
		cmd.PersistentFlags().String("dsn", "", "MySQL data source name")
		cmd.PersistentFlags().String("data-dir", "", "directory for the file store")
		cmd.PersistentFlags().String("redis-url", "", "Redis URL, e.g. redis://localhost:6379/0")
		cmd.PersistentFlags().String("seed", "", "JSON file of complaints used when the store is empty")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "rythuvedika",
		Short: "Rythuvedika complaint desk",
		Long:  `Collect farmer complaints against a Rythu Vedika location and triage them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			var err error
			if cfg, err = config.Load(envFile); err != nil {
				return err
			}
			for flag, dst := range map[string]*string{
				"store":     &cfg.Store,
				"db":        &cfg.DBPath,
				"dsn":       &cfg.DSN,
				"data-dir":  &cfg.DataDir,
				"redis-url": &cfg.RedisURL,
				"seed":      &cfg.SeedFile,
			} {
				if cmd.Flags().Changed(flag) {
					*dst, _ = cmd.Flags().GetString(flag)
				}
			}

			debug, _ := cmd.Flags().GetBool("debug")
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")
			switch {
			case debug:
				cfg.LogLevel = "debug"
			case quiet:
				cfg.LogLevel = "warn"
			case verbose:
				cfg.LogLevel = "info"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.ConfigureLogging(); err != nil {
				return err
			}
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logrus.SetReportCaller(logWithShortFileName)
			if logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp"); !logWithTimestamp {
				if tf, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); ok {
					tf.DisableTimestamp = true
				}
			}

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("rythuvedika: version %q\n", rythuvedika.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdServe())
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdCompactDB())
	cmdRoot.AddCommand(cmdComplaints())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		logrus.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(rythuvedika.Version().String())
				return nil
			}
			fmt.Println(rythuvedika.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		logrus.Fatal(err)
	}
	return cmd
}
