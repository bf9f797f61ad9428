// Package ytdlp downloads social media videos by shelling out to yt-dlp.
package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/infrastructure/procexec"
	"github.com/bnema/vidmerge/internal/port"
	"github.com/bnema/vidmerge/internal/validation"
)

var (
	ErrOutputNotFound = errors.New("download finished but no output file was found")
	ErrCookiesMissing = errors.New("cookies file does not exist")
)

var statusURLPattern = regexp.MustCompile(`^https?://(?:www\.|mobile\.)?(?:x\.com|twitter\.com)/[^/]+/(?:status|statuses)/(\d+)`)

// formatPartPattern matches per-format files such as 123.f137.mp4 that
// yt-dlp writes before merging.
var formatPartPattern = regexp.MustCompile(`\.f\d+\.[^.]+$`)

type Downloader struct {
	binary        string
	runner        procexec.Runner
	socketTimeout time.Duration
}

func NewDownloader(binary string, runner procexec.Runner, socketTimeout time.Duration) *Downloader {
	if binary == "" {
		binary = "yt-dlp"
	}
	if runner == nil {
		runner = procexec.ExecRunner{}
	}
	return &Downloader{
		binary:        binary,
		runner:        runner,
		socketTimeout: socketTimeout,
	}
}

// StatusID returns the numeric post ID of an X/Twitter status URL, or "".
func StatusID(rawURL string) string {
	m := statusURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// OutputName is the file stem used for rawURL: the status ID when there is
// one, otherwise a short hash of the URL.
func OutputName(rawURL string) string {
	if id := StatusID(rawURL); id != "" {
		return id
	}
	sum := sha256.Sum256([]byte(rawURL))
	return "clip-" + hex.EncodeToString(sum[:])[:12]
}

func (d *Downloader) args(rawURL, outDir, name string, opts port.DownloadOptions) []string {
	args := []string{
		"--no-playlist",
		"--no-progress",
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"-o", filepath.Join(outDir, name+".%(ext)s"),
		"--print", "after_move:filepath",
		"--no-simulate",
	}
	if opts.CookiesPath != "" {
		args = append(args, "--cookies", opts.CookiesPath)
	}
	if d.socketTimeout > 0 {
		args = append(args, "--socket-timeout", strconv.Itoa(int(d.socketTimeout.Seconds())))
	}
	return append(args, "--", rawURL)
}

// Download fetches rawURL into outDir and returns the path of the video file.
func (d *Downloader) Download(ctx context.Context, rawURL, outDir string, opts port.DownloadOptions) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := validation.ValidateVideoURL(rawURL); err != nil {
		return "", err
	}
	if opts.CookiesPath != "" {
		if _, err := os.Stat(opts.CookiesPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrCookiesMissing, opts.CookiesPath)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	name := OutputName(rawURL)
	logger.Info.Printf("downloading %s as %s", logger.SanitizeURL(rawURL), name)

	res, err := d.runner.Run(ctx, d.binary, d.args(rawURL, outDir, name, opts)...)
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	path := printedPath(res.Stdout)
	if path == "" {
		if path, err = findOutput(outDir, name); err != nil {
			return "", err
		}
	}

	mime, err := validation.SniffVideoFile(path)
	if err != nil {
		return "", fmt.Errorf("downloaded file %s: %w", filepath.Base(path), err)
	}
	logger.Debug.Printf("downloaded %s (%s)", logger.SanitizeForLog(path), mime)
	return path, nil
}

// printedPath returns the last line of stdout that names an existing file.
func printedPath(stdout []byte) string {
	var last string
	sc := bufio.NewScanner(bytes.NewReader(stdout))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if info, err := os.Stat(line); err == nil && !info.IsDir() {
			last = line
		}
	}
	return last
}

// findOutput looks for <name>.* in dir, skipping partial downloads.
func findOutput(dir, name string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, name+".*"))
	if err != nil {
		return "", err
	}
	var candidates []string
	for _, m := range matches {
		ext := filepath.Ext(m)
		if ext == ".part" || ext == ".ytdl" || formatPartPattern.MatchString(filepath.Base(m)) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s.*", ErrOutputNotFound, name)
	}
	// prefer the merged mp4 when yt-dlp left several files behind
	sort.SliceStable(candidates, func(i, j int) bool {
		return filepath.Ext(candidates[i]) == ".mp4" && filepath.Ext(candidates[j]) != ".mp4"
	})
	return candidates[0], nil
}

var _ port.Downloader = (*Downloader)(nil)
