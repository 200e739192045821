// Package main provides the dircache CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicd-cache/dircache/pkg/cache"
)

// saveFlags holds the flags for the save command
type saveFlags struct {
	paths []string
	key   string
}

var saveOpts saveFlags

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save directories to the cache under a key",
	Long: `Save mirrors the first --path into a cache entry named by --key.

An existing entry under the same key is overwritten; the mirror is
destructive and makes the entry match the source exactly. On success the
save identifier is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, logger, err := buildCache(cmd)
		if err != nil {
			return err
		}

		result, err := c.Save(cmd.Context(), cache.SaveRequest{
			Paths: saveOpts.paths,
			Key:   saveOpts.key,
		})
		if err != nil {
			logger.WithError(err).Error("save failed")
			return err
		}

		fmt.Println(result.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().StringArrayVarP(&saveOpts.paths, "path", "p", nil, "Path to save (repeatable; only the first is synchronized)")
	saveCmd.Flags().StringVarP(&saveOpts.key, "key", "k", "", "Cache key to save under")

	_ = saveCmd.MarkFlagRequired("path")
	_ = saveCmd.MarkFlagRequired("key")
}
