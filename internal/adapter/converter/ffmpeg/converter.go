package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/procexec"
	"github.com/bnema/vidmerge/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains a null byte")
)

const (
	silentAudioSource = "anullsrc=channel_layout=stereo:sample_rate=48000"
	targetSampleRate  = "48000"
	targetChannels    = "2"
)

type Converter struct {
	ffmpegPath  string
	ffprobePath string
	runner      procexec.Runner
}

func NewConverter(ffmpegPath, ffprobePath string, runner procexec.Runner) *Converter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if runner == nil {
		runner = procexec.ExecRunner{}
	}
	return &Converter{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		runner:      runner,
	}
}

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// Probe reads codec, geometry and timing of inputPath with one ffprobe call.
func (c *Converter) Probe(ctx context.Context, inputPath string) (*domain.MediaProfile, error) {
	if err := validatePath(inputPath); err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}

	res, err := c.runner.Run(ctx, c.ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", inputPath, err)
	}

	probe, err := ParseProbeJSON(res.Stdout)
	if err != nil {
		return nil, err
	}

	profile, err := probe.Profile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", inputPath, err)
	}
	return profile, nil
}

// ParseProbeJSON decodes raw ffprobe output.
func ParseProbeJSON(data []byte) (*domain.ProbeResult, error) {
	var probe domain.ProbeResult
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &probe, nil
}

// ConcatCopy joins inputs with the concat demuxer without touching the streams.
func (c *Converter) ConcatCopy(ctx context.Context, inputPaths []string, outputPath string) error {
	if len(inputPaths) < 2 {
		return domain.ErrNotEnoughInputs
	}
	for _, p := range inputPaths {
		if err := validatePath(p); err != nil {
			return fmt.Errorf("invalid input path: %w", err)
		}
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	listPath, err := writeConcatList(inputPaths)
	if err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	defer func() { _ = os.Remove(listPath) }()

	args := []string{
		"-hide_banner", "-nostdin", "-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-movflags", "+faststart",
		outputPath,
	}
	if _, err := c.runner.Run(ctx, c.ffmpegPath, args...); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("stream copy concat: %w", err)
	}
	return nil
}

func writeConcatList(inputPaths []string) (string, error) {
	f, err := os.CreateTemp("", "vidmerge-concat-*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	var sb strings.Builder
	for _, p := range inputPaths {
		line, err := concatListLine(p)
		if err != nil {
			_ = os.Remove(f.Name())
			return "", err
		}
		sb.WriteString(line)
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// concatListLine quotes an absolute path for the concat demuxer list format.
func concatListLine(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return "file '" + strings.ReplaceAll(abs, "'", `'\''`) + "'\n", nil
}

// ConcatReencode transcodes every input to an H.264/AAC MPEG-TS with common
// geometry, then joins the parts with the concat protocol into outputPath.
func (c *Converter) ConcatReencode(ctx context.Context, inputs []domain.MediaProfile, outputPath string, target domain.EncodeTarget, settings domain.EncodeSettings) error {
	if len(inputs) < 2 {
		return domain.ErrNotEnoughInputs
	}
	for _, in := range inputs {
		if err := validatePath(in.Path); err != nil {
			return fmt.Errorf("invalid input path: %w", err)
		}
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "vidmerge-reencode-*")
	if err != nil {
		return fmt.Errorf("create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	parts := make([]string, 0, len(inputs))
	for i, in := range inputs {
		part := filepath.Join(tmpDir, fmt.Sprintf("part_%d.ts", i+1))
		if _, err := c.runner.Run(ctx, c.ffmpegPath, reencodeArgs(in, part, target, settings)...); err != nil {
			return fmt.Errorf("re-encode %s: %w", filepath.Base(in.Path), err)
		}
		parts = append(parts, part)
	}

	args := []string{
		"-hide_banner", "-nostdin", "-y",
		"-i", "concat:" + strings.Join(parts, "|"),
		"-c", "copy",
		"-bsf:a", "aac_adtstoasc",
		"-movflags", "+faststart",
		outputPath,
	}
	if _, err := c.runner.Run(ctx, c.ffmpegPath, args...); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("mux re-encoded parts: %w", err)
	}
	return nil
}

func reencodeArgs(in domain.MediaProfile, outPath string, target domain.EncodeTarget, settings domain.EncodeSettings) []string {
	args := []string{"-hide_banner", "-nostdin", "-y", "-i", in.Path}
	if !in.HasAudio() {
		args = append(args, "-f", "lavfi", "-i", silentAudioSource)
	}

	// V skips attached pictures, which ffprobe also reports as video.
	args = append(args, "-map", "0:V:0")
	if in.HasAudio() {
		args = append(args, "-map", "0:a:0")
	} else {
		args = append(args, "-map", "1:a:0", "-shortest")
	}

	args = append(args,
		"-vf", scaleFilter(target),
		"-c:v", "libx264",
		"-preset", settings.Preset,
		"-crf", strconv.Itoa(settings.CRF),
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", settings.AudioBitrate,
		"-ar", targetSampleRate,
		"-ac", targetChannels,
		"-f", "mpegts",
		outPath,
	)
	return args
}

// scaleFilter letterboxes the input into the target frame and fixes the rate.
func scaleFilter(t domain.EncodeTarget) string {
	w, h := strconv.Itoa(t.Width), strconv.Itoa(t.Height)
	return fmt.Sprintf(
		"scale=%s:%s:force_original_aspect_ratio=decrease,pad=%s:%s:(ow-iw)/2:(oh-ih)/2,setsar=1,fps=%s",
		w, h, w, h, strconv.FormatFloat(t.FrameRate, 'f', -1, 64),
	)
}

var _ port.MediaConverter = (*Converter)(nil)
