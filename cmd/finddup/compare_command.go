package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"finddup/internal/dedup"
	"finddup/internal/imagehash"
	"finddup/internal/media"
)

func newCompareCommand(cctx *commandContext) *cobra.Command {
	var hashName string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "compare <image-a> <image-b>",
		Short: "Compare two images and print their fingerprints and distance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			name := cfg.Hash.Algorithm
			if strings.TrimSpace(hashName) != "" {
				name = hashName
			}
			computer := imagehash.NewComputer(name, cfg.Hash.Size, cctx.ensureLogger())

			fps := make([]imagehash.Fingerprint, 2)
			for i, path := range args {
				img, err := media.DecodeImage(path)
				if err != nil {
					return &imagehash.HashError{Path: path, Err: err}
				}
				fp, err := computer.Compute(img)
				if err != nil {
					return &imagehash.HashError{Path: path, Err: err}
				}
				fps[i] = fp
			}

			distance, err := fps[0].Distance(fps[1])
			if err != nil {
				return err
			}

			thresholds := dedup.Thresholds{
				Identical: cfg.Hash.IdenticalThreshold,
				Similar:   cfg.Hash.SimilarThreshold,
			}
			verdict := "different"
			switch {
			case thresholds.IdenticalFingerprints(fps[0], fps[1]):
				verdict = "identical"
			case thresholds.SimilarFingerprints(fps[0], fps[1]):
				verdict = "similar"
			}

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"a":        map[string]string{"path": args[0], "fingerprint": fps[0].String()},
					"b":        map[string]string{"path": args[1], "fingerprint": fps[1].String()},
					"distance": distance,
					"verdict":  verdict,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", fps[0], args[0])
			fmt.Fprintf(out, "%s  %s\n", fps[1], args[1])
			fmt.Fprintf(out, "distance %d (%s)\n", distance, verdict)
			return nil
		},
	}

	cmd.Flags().StringVar(&hashName, "hash", "", "Fingerprint algorithm: average or perceptual")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the comparison as JSON")
	return cmd
}
