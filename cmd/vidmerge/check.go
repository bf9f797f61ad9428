package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/vidmerge/internal/adapter/toolcheck"
	"github.com/bnema/vidmerge/internal/domain"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that yt-dlp, ffmpeg and ffprobe are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.checker().Report(cmd.Context())
			if printToolReport(cmd.OutOrStdout(), report) {
				return nil
			}
			return domain.NewPipelineError(domain.StageEnvironment, domain.ErrorKindEnvironment,
				fmt.Errorf("missing tools: %w", domain.ErrToolNotFound))
		},
	}
}

// printToolReport prints one line per tool and reports whether all were found.
func printToolReport(w io.Writer, report []toolcheck.ToolStatus) bool {
	ok := true
	for _, s := range report {
		if !s.OK() {
			ok = false
			_, _ = fmt.Fprintf(w, "[missing] %-8s %v\n", s.Name, s.Err)
			continue
		}
		_, _ = fmt.Fprintf(w, "[ok]      %-8s %s (%s)\n", s.Name, s.Version, s.Path)
	}
	return ok
}
