package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"finddup/internal/config"
	"finddup/internal/dedup"
	"finddup/internal/deps"
	"finddup/internal/media/ffprobe"
	"finddup/internal/report"
)

func newVideosCommand(cctx *commandContext) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "videos <folder>",
		Short: "Find visually duplicate videos in a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := deps.Missing(deps.CheckBinaries(deps.VideoRequirements(cfg))); err != nil {
				return err
			}
			headers := []string{"Path", "Resolution", "Duration", "Size", "FPS", "Codec"}
			return runScan(cmd, cctx, flags, dedup.KindVideo, args[0], headers, videoRow)
		},
	}

	flags.register(cmd)
	return cmd
}

func videoRow(cmd *cobra.Command, cfg *config.Config, path string) []string {
	info, err := ffprobe.Inspect(cmd.Context(), cfg.Video.FFprobeBinary, path)
	if err != nil {
		return []string{path, "-", "-", "-", "-", "-"}
	}
	return []string{
		path,
		report.FormatResolution(info.Width, info.Height),
		report.FormatDuration(info.DurationSeconds),
		report.FormatBytes(info.SizeBytes),
		strconv.Itoa(info.FPS),
		info.Codec,
	}
}
