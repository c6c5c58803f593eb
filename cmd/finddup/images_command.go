package main

import (
	"github.com/spf13/cobra"

	"finddup/internal/config"
	"finddup/internal/dedup"
	"finddup/internal/media"
	"finddup/internal/report"
)

func newImagesCommand(cctx *commandContext) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "images <folder>",
		Short: "Find visually duplicate images in a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Path", "Resolution", "Size"}
			return runScan(cmd, cctx, flags, dedup.KindImage, args[0], headers, imageRow)
		},
	}

	flags.register(cmd)
	return cmd
}

func imageRow(cmd *cobra.Command, cfg *config.Config, path string) []string {
	info, err := media.InspectImage(path)
	if err != nil {
		return []string{path, "-", "-"}
	}
	return []string{
		path,
		report.FormatResolution(info.Width, info.Height),
		report.FormatBytes(info.SizeBytes),
	}
}
