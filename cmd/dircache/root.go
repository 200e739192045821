// Package main provides the dircache CLI application.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cicd-cache/dircache/pkg/cache"
	"github.com/cicd-cache/dircache/pkg/config"
	"github.com/cicd-cache/dircache/pkg/logging"
	"github.com/cicd-cache/dircache/pkg/mirror"
	"github.com/cicd-cache/dircache/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dircache",
	Short: "Directory cache for CI pipelines",
	Long: `dircache persists expensive directory trees (dependency installs,
build outputs) on a shared cache root, keyed by content keys.

Run "dircache restore" before a build step and "dircache save" after it.
A restore miss is a normal outcome and exits successfully.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// globalFlags holds the flags shared by all commands
type globalFlags struct {
	config   string
	logLevel string
	logFile  string
}

// syncFlags holds the mirror tuning flags, passed through to rsync
type syncFlags struct {
	compress  bool
	bwlimit   string
	rsyncArgs []string
}

var (
	globalOpts globalFlags
	syncOpts   syncFlags
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logrus.WithError(err).Error("command failed")
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalOpts.config, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logFile, "log-file", "", "Log file path (rotated); defaults to stderr")

	rootCmd.PersistentFlags().BoolVar(&syncOpts.compress, "compress", false, "Compress file data during transfer")
	rootCmd.PersistentFlags().StringVar(&syncOpts.bwlimit, "bwlimit", "", "Bandwidth limit for transfers (passed to rsync)")
	rootCmd.PersistentFlags().StringArrayVar(&syncOpts.rsyncArgs, "rsync-arg", nil, "Extra argument for rsync (repeatable)")
}

// buildCache resolves the effective configuration and wires the cache with
// its rsync-backed syncer. Ambient environment (DIRCACHE_*) is read here
// and nowhere below.
func buildCache(cmd *cobra.Command) (*cache.Cache, *logrus.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if globalOpts.config != "" {
		cfg, err = config.Load(globalOpts.config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, nil, err
	}

	config.ApplyEnv(cfg)

	// Flags override both file and environment.
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = globalOpts.logLevel
	}
	if globalOpts.logFile != "" {
		cfg.Log.File = globalOpts.logFile
	}
	if cmd.Flags().Changed("compress") {
		cfg.Rsync.Compress = syncOpts.compress
	}
	if cmd.Flags().Changed("bwlimit") {
		cfg.Rsync.BWLimit = syncOpts.bwlimit
	}
	if len(syncOpts.rsyncArgs) > 0 {
		cfg.Rsync.ExtraArgs = append(cfg.Rsync.ExtraArgs, syncOpts.rsyncArgs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	syncer := mirror.NewRsync(cfg.Rsync, logger)
	c := cache.New(cfg.Root(), syncer, cache.WithLogger(logger))

	return c, logger, nil
}
