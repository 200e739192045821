// Package main provides the dircache CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicd-cache/dircache/pkg/cache"
)

// restoreFlags holds the flags for the restore command
type restoreFlags struct {
	paths       []string
	key         string
	restoreKeys []string
}

var restoreOpts restoreFlags

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore cached directories for a key",
	Long: `Restore looks up a cache entry for the primary key, or for the
restore keys in order when given, and mirrors it into the first --path.

A miss is a normal outcome: the command prints nothing and exits 0, and
the build step proceeds to produce the directory from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, logger, err := buildCache(cmd)
		if err != nil {
			return err
		}

		result, err := c.Restore(cmd.Context(), cache.RestoreRequest{
			Paths:       restoreOpts.paths,
			PrimaryKey:  restoreOpts.key,
			RestoreKeys: restoreOpts.restoreKeys,
		})
		if err != nil {
			logger.WithError(err).Error("restore failed")
			return err
		}

		if result.Hit {
			fmt.Println(result.MatchedKey)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringArrayVarP(&restoreOpts.paths, "path", "p", nil, "Path to restore into (repeatable; only the first is synchronized)")
	restoreCmd.Flags().StringVarP(&restoreOpts.key, "key", "k", "", "Primary cache key")
	restoreCmd.Flags().StringSliceVar(&restoreOpts.restoreKeys, "restore-keys", nil, "Comma-separated fallback keys, tried in order")

	_ = restoreCmd.MarkFlagRequired("path")
	_ = restoreCmd.MarkFlagRequired("key")
}
