package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/validation"
)

type mergeOptions struct {
	output        string
	outDir        string
	cookies       string
	forceReencode bool
	crf           int
	preset        string
}

func newMergeCmd(a *app) *cobra.Command {
	var opts mergeOptions

	cmd := &cobra.Command{
		Use:   "merge <url1> <url2>",
		Short: "Download two videos and concatenate them",
		Long: "Download two videos with yt-dlp, compare their codecs with ffprobe and join them " +
			"into one MP4. Identical formats are joined without re-encoding; otherwise, or if " +
			"that fails, both are re-encoded to H.264/AAC.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				if err := validation.ValidateVideoURL(raw); err != nil {
					return err
				}
			}
			a.applyEncodeFlags(cmd, opts.crf, opts.preset)

			output, err := filepath.Abs(validation.EnsureMP4Ext(opts.output))
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			outDir := opts.outDir
			if !cmd.Flags().Changed("out-dir") {
				outDir = a.cfg.DataDir
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			req := domain.MergeRequest{
				URL1:          args[0],
				URL2:          args[1],
				OutputPath:    output,
				WorkDir:       outDir,
				CookiesPath:   opts.cookies,
				ForceReencode: opts.forceReencode,
			}
			result, err := a.pipeline().Run(cmd.Context(), req, stageReporter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "./output_final.mp4", "Merged MP4 path")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "./downloads", "Directory for the downloaded videos (default DATA_DIR)")
	cmd.Flags().StringVar(&opts.cookies, "cookies", "", "Netscape cookies.txt passed to yt-dlp")
	addEncodeFlags(cmd, &opts.forceReencode, &opts.crf, &opts.preset)
	return cmd
}

func addEncodeFlags(cmd *cobra.Command, force *bool, crf *int, preset *string) {
	defaults := domain.DefaultEncodeSettings()
	cmd.Flags().BoolVar(force, "force-reencode", false, "Skip the stream copy attempt and always re-encode")
	cmd.Flags().IntVar(crf, "crf", defaults.CRF, "x264 constant rate factor for re-encoding (default CRF)")
	cmd.Flags().StringVar(preset, "preset", defaults.Preset, "x264 preset for re-encoding (default PRESET)")
}

// applyEncodeFlags lets explicit flags win over the environment.
func (a *app) applyEncodeFlags(cmd *cobra.Command, crf int, preset string) {
	if cmd.Flags().Changed("crf") {
		a.cfg.Encode.CRF = crf
	}
	if cmd.Flags().Changed("preset") {
		a.cfg.Encode.Preset = preset
	}
}
