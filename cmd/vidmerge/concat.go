package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/vidmerge/internal/validation"
)

func newConcatCmd(a *app) *cobra.Command {
	var (
		forceReencode bool
		crf           int
		preset        string
	)

	cmd := &cobra.Command{
		Use:   "concat <output> <input> <input>...",
		Short: "Concatenate local video files",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyEncodeFlags(cmd, crf, preset)

			output, err := filepath.Abs(validation.EnsureMP4Ext(args[0]))
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			inputs := make([]string, 0, len(args)-1)
			for _, in := range args[1:] {
				abs, err := filepath.Abs(in)
				if err != nil {
					return fmt.Errorf("resolve input %s: %w", in, err)
				}
				inputs = append(inputs, abs)
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			result, err := a.pipeline().MergeFiles(cmd.Context(), inputs, output, forceReencode, stageReporter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	addEncodeFlags(cmd, &forceReencode, &crf, &preset)
	return cmd
}
