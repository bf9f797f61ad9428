package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/vidmerge/config"
	"github.com/bnema/vidmerge/internal/adapter/converter/ffmpeg"
	"github.com/bnema/vidmerge/internal/adapter/downloader/ytdlp"
	"github.com/bnema/vidmerge/internal/adapter/toolcheck"
	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/infrastructure/procexec"
	"github.com/bnema/vidmerge/internal/service"
)

// Process exit codes. Usage and configuration errors exit with 1.
const (
	exitOK          = 0
	exitFailure     = 1
	exitEnvironment = 3
	exitDownload    = 4
	exitEncode      = 5
)

// app carries what every subcommand shares once flags are parsed.
type app struct {
	cfg     *config.Config
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "vidmerge",
		Short:         "Download two social media videos and join them into one MP4",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output")

	root.AddCommand(
		newMergeCmd(a),
		newConcatCmd(a),
		newProbeCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup() error {
	logger.Setup(a.stderr, a.verbose)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if bin, added := toolcheck.UseBundledTools(); added {
		logger.Info.Printf("using bundled tools from %s", bin)
	}
	return nil
}

func (a *app) checker() *toolcheck.Checker {
	return toolcheck.NewChecker(a.cfg.YtDlpPath, a.cfg.FfmpegPath, a.cfg.FfprobePath, procexec.ExecRunner{})
}

func (a *app) pipeline() *service.Pipeline {
	runner := procexec.ExecRunner{}
	return service.NewPipeline(
		a.checker(),
		ytdlp.NewDownloader(a.cfg.YtDlpPath, runner, a.cfg.SocketTimeout),
		ffmpeg.NewConverter(a.cfg.FfmpegPath, a.cfg.FfprobePath, runner),
		a.cfg.Encode,
	)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch domain.KindOf(err) {
	case domain.ErrorKindEnvironment:
		return exitEnvironment
	case domain.ErrorKindDownload:
		return exitDownload
	case domain.ErrorKindEncode:
		return exitEncode
	}
	if errors.Is(err, domain.ErrToolNotFound) {
		return exitEnvironment
	}
	return exitFailure
}

// stageReporter prints pipeline progress for humans.
func stageReporter(w io.Writer) service.StageFunc {
	return func(stage domain.Stage) {
		_, _ = fmt.Fprintf(w, "==> %s\n", stage)
	}
}

// printResult writes the summary shown after a merge.
func printResult(w io.Writer, result *domain.MergeResult) {
	for i, p := range result.Profiles {
		_, _ = fmt.Fprintf(w, "input %d: %s\n", i+1, p)
	}
	for _, reason := range result.Decision.Reasons {
		_, _ = fmt.Fprintf(w, "re-encode needed: %s\n", reason)
	}
	for _, warning := range result.Decision.Warnings {
		_, _ = fmt.Fprintf(w, "warning: %s\n", warning)
	}
	method := string(result.Method)
	if result.FellBack {
		method += " (stream copy failed, fell back)"
	}
	_, _ = fmt.Fprintf(w, "method: %s\n", method)
	_, _ = fmt.Fprintf(w, "output: %s\n", result.OutputPath)
}
