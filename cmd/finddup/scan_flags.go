package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"finddup/internal/config"
)

// scanFlags are the options shared by the images and videos commands. They
// override the loaded configuration for one run.
type scanFlags struct {
	jsonPath      string
	noRecursive   bool
	includeHidden bool
	ignoreNames   []string
	hashName      string
	moveTo        string
	deleteDupes   bool
	force         bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.jsonPath, "json", "", "Write the group mapping to this file as JSON")
	cmd.Flags().BoolVar(&f.noRecursive, "no-recursive", false, "Do not descend into subdirectories")
	cmd.Flags().BoolVar(&f.includeHidden, "include-hidden", false, "Include dot-prefixed files and directories")
	cmd.Flags().StringSliceVar(&f.ignoreNames, "ignore-names", nil, "Skip paths containing any of these substrings")
	cmd.Flags().StringVar(&f.hashName, "hash", "", "Fingerprint algorithm: average or perceptual")
	cmd.Flags().StringVar(&f.moveTo, "move-to", "", "Move duplicates (all but the first of each group) into this directory")
	cmd.Flags().BoolVar(&f.deleteDupes, "delete", false, "Delete duplicates (all but the first of each group)")
	cmd.Flags().BoolVar(&f.force, "force", false, "Actually move or delete; otherwise only print what would happen")
}

// apply folds the flag overrides into cfg and checks flag combinations.
func (f *scanFlags) apply(cfg *config.Config) error {
	if f.deleteDupes && strings.TrimSpace(f.moveTo) != "" {
		return errors.New("--delete and --move-to are mutually exclusive")
	}
	if f.force && !f.deleteDupes && strings.TrimSpace(f.moveTo) == "" {
		return errors.New("--force requires --delete or --move-to")
	}

	if f.noRecursive {
		cfg.Scan.Recursive = false
	}
	if f.includeHidden {
		cfg.Scan.IncludeHidden = true
	}
	if len(f.ignoreNames) > 0 {
		cfg.Scan.IgnoreNames = append(cfg.Scan.IgnoreNames, f.ignoreNames...)
	}
	if strings.TrimSpace(f.hashName) != "" {
		cfg.Hash.Algorithm = f.hashName
	}
	return nil
}
