// Package toolcheck verifies that the external tools the pipeline shells out
// to are installed, and reports where they were found.
package toolcheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/procexec"
	"github.com/bnema/vidmerge/internal/port"
)

var (
	ErrYtDlpNotFound   = errors.New("yt-dlp not found on PATH")
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

type tool struct {
	name        string
	binary      string
	versionArgs []string
	missing     error
}

// ToolStatus is one line of the environment report.
type ToolStatus struct {
	Name    string
	Path    string
	Version string
	Err     error
}

func (s ToolStatus) OK() bool {
	return s.Err == nil
}

type Checker struct {
	tools    []tool
	runner   procexec.Runner
	lookPath func(string) (string, error)
}

func NewChecker(ytdlpPath, ffmpegPath, ffprobePath string, runner procexec.Runner) *Checker {
	if runner == nil {
		runner = procexec.ExecRunner{}
	}
	return &Checker{
		tools: []tool{
			{name: "yt-dlp", binary: orDefault(ytdlpPath, "yt-dlp"), versionArgs: []string{"--version"}, missing: ErrYtDlpNotFound},
			{name: "ffmpeg", binary: orDefault(ffmpegPath, "ffmpeg"), versionArgs: []string{"-hide_banner", "-version"}, missing: ErrFfmpegNotFound},
			{name: "ffprobe", binary: orDefault(ffprobePath, "ffprobe"), versionArgs: []string{"-hide_banner", "-version"}, missing: ErrFfprobeNotFound},
		},
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// CheckDeps returns the first missing tool as an error matching both the
// tool's sentinel and domain.ErrToolNotFound.
func (c *Checker) CheckDeps(_ context.Context) error {
	for _, t := range c.tools {
		if _, err := c.lookPath(t.binary); err != nil {
			return fmt.Errorf("%w: %w", t.missing, domain.ErrToolNotFound)
		}
	}
	return nil
}

// Report resolves every tool and asks it for its version. It never stops early.
func (c *Checker) Report(ctx context.Context) []ToolStatus {
	statuses := make([]ToolStatus, 0, len(c.tools))
	for _, t := range c.tools {
		st := ToolStatus{Name: t.name}
		path, err := c.lookPath(t.binary)
		if err != nil {
			st.Err = t.missing
			statuses = append(statuses, st)
			continue
		}
		st.Path = path

		res, err := c.runner.Run(ctx, path, t.versionArgs...)
		if err != nil {
			st.Err = fmt.Errorf("%s found but version query failed: %w", t.name, err)
		} else {
			st.Version = firstLine(string(res.Stdout))
		}
		statuses = append(statuses, st)
	}
	return statuses
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// PrependBundledPath puts <dir>/ffmpeg/bin in front of PATH when it exists,
// so a portable build can ship its own ffmpeg next to the executable.
func PrependBundledPath(dir string) (string, bool) {
	bin := filepath.Join(dir, "ffmpeg", "bin")
	info, err := os.Stat(bin)
	if err != nil || !info.IsDir() {
		return "", false
	}
	current := os.Getenv("PATH")
	for _, p := range filepath.SplitList(current) {
		if p == bin {
			return bin, false
		}
	}
	if current == "" {
		_ = os.Setenv("PATH", bin)
	} else {
		_ = os.Setenv("PATH", bin+string(os.PathListSeparator)+current)
	}
	return bin, true
}

// UseBundledTools applies PrependBundledPath to the running executable's directory.
func UseBundledTools() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	return PrependBundledPath(filepath.Dir(exe))
}

var _ port.ToolChecker = (*Checker)(nil)
