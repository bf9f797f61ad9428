package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/vidmerge/internal/domain"
)

type probeReport struct {
	Profiles []domain.MediaProfile `json:"profiles"`
	Decision *domain.ConcatDecision `json:"decision,omitempty"`
}

func newProbeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe <file>...",
		Short: "Show codec details and whether the files can be joined without re-encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, decision, err := a.pipeline().Probe(cmd.Context(), args)
			if err != nil {
				return err
			}
			report := probeReport{Profiles: profiles}
			if len(profiles) > 1 {
				report.Decision = &decision
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printProbeReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func printProbeReport(w io.Writer, report probeReport) {
	for _, p := range report.Profiles {
		_, _ = fmt.Fprintf(w, "%s\n", p.Path)
		_, _ = fmt.Fprintf(w, "  video:    %s %s @ %s fps\n", p.VideoCodec, p.Resolution(), domain.FormatFrameRate(p.FrameRate))
		if p.HasAudio() {
			_, _ = fmt.Fprintf(w, "  audio:    %s %d Hz, %d ch\n", p.AudioCodec, p.SampleRate, p.Channels)
		} else {
			_, _ = fmt.Fprintln(w, "  audio:    none")
		}
		_, _ = fmt.Fprintf(w, "  duration: %s\n", domain.FormatDuration(p.Duration))
	}
	if report.Decision == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "recommendation: %s\n", report.Decision.Method)
	for _, reason := range report.Decision.Reasons {
		_, _ = fmt.Fprintf(w, "  - %s\n", reason)
	}
	for _, warning := range report.Decision.Warnings {
		_, _ = fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}
