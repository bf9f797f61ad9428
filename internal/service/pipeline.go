package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/port"
)

var ErrMissingOutput = errors.New("output path is required")

// StageFunc is called when the pipeline enters a stage.
type StageFunc func(stage domain.Stage)

// Pipeline downloads two videos, probes them and joins them into one MP4.
// A run is strictly sequential.
type Pipeline struct {
	checker    port.ToolChecker
	downloader port.Downloader
	converter  port.MediaConverter
	settings   domain.EncodeSettings
}

func NewPipeline(checker port.ToolChecker, downloader port.Downloader, converter port.MediaConverter, settings domain.EncodeSettings) *Pipeline {
	return &Pipeline{
		checker:    checker,
		downloader: downloader,
		converter:  converter,
		settings:   settings,
	}
}

// Run executes check, download, probe, plan and concat for req. On failure
// the returned error is a *domain.PipelineError and the result carries it too.
// A missing output path is a caller error and is returned as ErrMissingOutput
// before any stage starts.
func (p *Pipeline) Run(ctx context.Context, req domain.MergeRequest, onStage StageFunc) (*domain.MergeResult, error) {
	result := &domain.MergeResult{OutputPath: req.OutputPath}
	if req.OutputPath == "" {
		return p.fail(result, ErrMissingOutput)
	}

	notify(onStage, domain.StageEnvironment)
	if err := p.checker.CheckDeps(ctx); err != nil {
		return p.fail(result, domain.NewPipelineError(domain.StageEnvironment, domain.ErrorKindEnvironment, err))
	}
	if err := os.MkdirAll(req.WorkDir, 0o755); err != nil {
		return p.fail(result, domain.NewPipelineError(domain.StageEnvironment, domain.ErrorKindEnvironment,
			fmt.Errorf("create work directory: %w", err)))
	}

	notify(onStage, domain.StageDownload)
	opts := port.DownloadOptions{CookiesPath: req.CookiesPath}
	paths := make([]string, 0, 2)
	for i, url := range []string{req.URL1, req.URL2} {
		logger.Info.Printf("downloading video %d: %s", i+1, logger.SanitizeURL(url))
		path, err := p.downloader.Download(ctx, url, req.WorkDir, opts)
		if err != nil {
			return p.fail(result, domain.NewPipelineError(domain.StageDownload, domain.ErrorKindDownload,
				fmt.Errorf("video %d: %w", i+1, err)))
		}
		logger.Info.Printf("downloaded video %d to %s", i+1, logger.SanitizeForLog(path))
		paths = append(paths, path)
	}

	return p.merge(ctx, result, paths, req.ForceReencode, domain.ErrorKindDownload, onStage)
}

// MergeFiles joins local files. Probe failures are reported as encode failures
// since nothing was downloaded.
func (p *Pipeline) MergeFiles(ctx context.Context, inputs []string, outputPath string, forceReencode bool, onStage StageFunc) (*domain.MergeResult, error) {
	result := &domain.MergeResult{OutputPath: outputPath}
	if outputPath == "" {
		return p.fail(result, ErrMissingOutput)
	}
	if len(inputs) < 2 {
		return p.fail(result, domain.NewPipelineError(domain.StagePlan, domain.ErrorKindEncode, domain.ErrNotEnoughInputs))
	}
	return p.merge(ctx, result, inputs, forceReencode, domain.ErrorKindEncode, onStage)
}

// Probe inspects every path and returns the profiles alongside the decision
// the planner would take.
func (p *Pipeline) Probe(ctx context.Context, paths []string) ([]domain.MediaProfile, domain.ConcatDecision, error) {
	profiles, err := p.probeAll(ctx, paths, domain.ErrorKindEncode)
	if err != nil {
		return nil, domain.ConcatDecision{}, err
	}
	return profiles, domain.DecideAll(profiles...), nil
}

func (p *Pipeline) probeAll(ctx context.Context, paths []string, kind domain.ErrorKind) ([]domain.MediaProfile, error) {
	profiles := make([]domain.MediaProfile, 0, len(paths))
	for i, path := range paths {
		profile, err := p.converter.Probe(ctx, path)
		if err != nil {
			return nil, domain.NewPipelineError(domain.StageProbe, kind, fmt.Errorf("input %d: %w", i+1, err))
		}
		logger.Info.Printf("input %d: %s", i+1, profile)
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (p *Pipeline) merge(ctx context.Context, result *domain.MergeResult, paths []string, force bool, probeKind domain.ErrorKind, onStage StageFunc) (*domain.MergeResult, error) {
	notify(onStage, domain.StageProbe)
	profiles, err := p.probeAll(ctx, paths, probeKind)
	if err != nil {
		return p.fail(result, err)
	}
	result.Profiles = profiles

	notify(onStage, domain.StagePlan)
	decision := domain.DecideAll(profiles...)
	if force {
		decision = domain.ForcedReencode()
	}
	result.Decision = decision
	logger.Info.Printf("concat method: %s", decision.Method)
	for _, r := range decision.Reasons {
		logger.Info.Printf("  reason: %s", r)
	}
	for _, w := range decision.Warnings {
		logger.Warn.Printf("  %s", w)
	}

	notify(onStage, domain.StageConcat)
	if err := os.MkdirAll(filepath.Dir(result.OutputPath), 0o755); err != nil {
		return p.fail(result, domain.NewPipelineError(domain.StageConcat, domain.ErrorKindEncode,
			fmt.Errorf("create output directory: %w", err)))
	}

	if decision.Method == domain.MethodStreamCopy {
		err := p.converter.ConcatCopy(ctx, paths, result.OutputPath)
		if err == nil {
			result.Method = domain.MethodStreamCopy
			return p.succeed(result, onStage)
		}
		logger.Warn.Printf("stream copy failed, falling back to re-encode: %v", err)
		result.FellBack = true
	}

	target := domain.TargetFor(profiles)
	logger.Info.Printf("re-encoding to %dx%d @ %s", target.Width, target.Height, domain.FormatFrameRate(target.FrameRate))
	if err := p.converter.ConcatReencode(ctx, profiles, result.OutputPath, target, p.settings); err != nil {
		result.Method = domain.MethodReencode
		return p.fail(result, domain.NewPipelineError(domain.StageConcat, domain.ErrorKindEncode, err))
	}
	result.Method = domain.MethodReencode
	return p.succeed(result, onStage)
}

func (p *Pipeline) succeed(result *domain.MergeResult, onStage StageFunc) (*domain.MergeResult, error) {
	result.Success = true
	notify(onStage, domain.StageDone)
	logger.Info.Printf("merged into %s (%s)", logger.SanitizeForLog(result.OutputPath), result.Method)
	return result, nil
}

func (p *Pipeline) fail(result *domain.MergeResult, err error) (*domain.MergeResult, error) {
	result.Success = false
	result.Err = err
	logger.Error.Printf("pipeline failed: %v", err)
	return result, err
}

func notify(fn StageFunc, stage domain.Stage) {
	if fn != nil {
		fn(stage)
	}
}
