package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"finddup/internal/config"
	"finddup/internal/dedup"
	"finddup/internal/fileutil"
	"finddup/internal/fingerprintcache"
	"finddup/internal/logging"
	"finddup/internal/pipeline"
	"finddup/internal/report"
	"finddup/internal/scan"
)

// rowFunc renders the table row for one grouped path; metadata lookups that
// fail render placeholders, never abort the listing.
type rowFunc func(cmd *cobra.Command, cfg *config.Config, path string) []string

func runScan(cmd *cobra.Command, cctx *commandContext, flags *scanFlags, kind dedup.Kind, folder string, headers []string, row rowFunc) error {
	base, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *base
	if err := flags.apply(&cfg); err != nil {
		return err
	}
	logger := cctx.ensureLogger()

	opts := scan.Options{
		Recursive:     cfg.Scan.Recursive,
		IncludeHidden: cfg.Scan.IncludeHidden,
		IgnoreNames:   cfg.Scan.IgnoreNames,
	}
	var paths []string
	if kind == dedup.KindVideo {
		paths, err = scan.Videos(folder, opts)
	} else {
		paths, err = scan.Images(folder, opts)
	}
	if err != nil {
		return err
	}

	cachePath := ""
	if cfg.Cache.Enabled {
		cachePath = cfg.Cache.Path
	}
	store, err := fingerprintcache.Open(cachePath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	p := pipeline.New(&cfg, store, logger, progressOutput())
	var result pipeline.Result
	if kind == dedup.KindVideo {
		result, err = p.FingerprintVideos(cmd.Context(), paths)
	} else {
		result, err = p.HashImages(cmd.Context(), paths)
	}
	if err != nil {
		return err
	}

	thresholds := dedup.Thresholds{
		Identical: cfg.Hash.IdenticalThreshold,
		Similar:   cfg.Hash.SimilarThreshold,
	}
	dedup.MarkGroups(result.Items, dedup.NewCounter(), thresholds)

	rep := report.Build(result.Items, result.Failed)
	out := cmd.OutOrStdout()

	if rep.Empty() {
		fmt.Fprintf(out, "No duplicates found among %d files (%d failed)\n",
			rep.ScannedFiles, rep.FailedFiles)
	} else {
		printGroups(cmd, &cfg, rep, headers, row)
		fmt.Fprintf(out, "%d files in %d groups (scanned %d, %d failed)\n",
			rep.GroupedFiles, len(rep.Groups), rep.ScannedFiles, rep.FailedFiles)
	}

	if strings.TrimSpace(flags.jsonPath) != "" {
		if err := rep.DumpJSON(flags.jsonPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote group mapping to %s\n", flags.jsonPath)
	}

	return disposeDuplicates(cmd, flags, rep, logger)
}

func printGroups(cmd *cobra.Command, cfg *config.Config, rep *report.Report, headers []string, row rowFunc) {
	out := cmd.OutOrStdout()
	for _, group := range rep.Groups {
		fmt.Fprintf(out, "Group %d\n", group.ID)
		rows := make([][]string, 0, len(group.Paths))
		for _, path := range group.Paths {
			rows = append(rows, row(cmd, cfg, path))
		}
		fmt.Fprintln(out, renderTable(headers, rows))
	}
}

// disposeDuplicates applies --delete or --move-to. The naturally first path
// of each group is always kept; without --force the actions are printed
// only.
func disposeDuplicates(cmd *cobra.Command, flags *scanFlags, rep *report.Report, logger *slog.Logger) error {
	moveTo := strings.TrimSpace(flags.moveTo)
	if !flags.deleteDupes && moveTo == "" {
		return nil
	}

	out := cmd.OutOrStdout()
	for _, group := range rep.Groups {
		for _, path := range group.Paths[1:] {
			switch {
			case flags.deleteDupes && flags.force:
				if err := fileutil.Remove(path); err != nil {
					logger.Warn("delete failed", logging.String("path", path), logging.Error(err))
					continue
				}
				fmt.Fprintf(out, "Deleted %s\n", path)
			case flags.deleteDupes:
				fmt.Fprintf(out, "Would delete %s\n", path)
			case flags.force:
				moved, err := fileutil.MoveWithoutOverwrite(path, moveTo)
				if err != nil {
					logger.Warn("move failed", logging.String("path", path), logging.Error(err))
					continue
				}
				fmt.Fprintf(out, "Moved %s -> %s\n", path, moved)
			default:
				fmt.Fprintf(out, "Would move %s -> %s\n", path, moveTo)
			}
		}
	}
	if !flags.force {
		fmt.Fprintln(out, "Re-run with --force to apply")
	}
	return nil
}

func progressOutput() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return os.Stderr
	}
	return io.Discard
}
