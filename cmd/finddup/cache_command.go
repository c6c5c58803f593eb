package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finddup/internal/fingerprintcache"
)

func newCacheCommand(cctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the fingerprint cache",
	}

	cacheCmd.AddCommand(newCachePruneCommand(cctx))

	return cacheCmd
}

func newCachePruneCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cache entries for files that no longer exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.Cache.Enabled {
				fmt.Fprintln(out, "Fingerprint cache is disabled (set enabled = true under [cache])")
				return nil
			}

			store, err := fingerprintcache.Open(cfg.Cache.Path, cctx.ensureLogger())
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context(), func(path string) bool {
				_, statErr := os.Stat(path)
				return statErr == nil
			})
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintln(out, "No cache entries pruned")
				return nil
			}
			fmt.Fprintf(out, "Pruned %d cache entries\n", removed)
			return nil
		},
	}
}
