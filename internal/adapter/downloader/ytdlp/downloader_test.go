package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/infrastructure/procexec"
	"github.com/bnema/vidmerge/internal/port"
	"github.com/bnema/vidmerge/internal/validation"
)

var mp4Header = append([]byte("\x00\x00\x00\x18ftypisom"), make([]byte, 500)...)

// fakeYtDlp writes content to the -o template with the given extension and
// optionally prints the resulting path.
type fakeYtDlp struct {
	args    []string
	ext     string
	content []byte
	print   bool
	err     error
}

func (f *fakeYtDlp) Run(_ context.Context, _ string, args ...string) (procexec.Result, error) {
	f.args = args
	if f.err != nil {
		return procexec.Result{Stderr: []byte("ERROR: Unsupported URL")}, f.err
	}
	var tmpl string
	for i, a := range args {
		if a == "-o" {
			tmpl = args[i+1]
		}
	}
	path := strings.Replace(tmpl, "%(ext)s", f.ext, 1)
	if err := os.WriteFile(path, f.content, 0o644); err != nil {
		return procexec.Result{}, err
	}
	if f.print {
		return procexec.Result{Stdout: []byte("[info] done\n" + path + "\n")}, nil
	}
	return procexec.Result{}, nil
}

func TestStatusID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://x.com/user/status/1234567890", "1234567890"},
		{"https://twitter.com/user/status/42?s=20", "42"},
		{"http://www.twitter.com/some_user/statuses/987", "987"},
		{"https://mobile.twitter.com/u/status/555/video/1", "555"},
		{"https://www.youtube.com/watch?v=abc", ""},
		{"https://x.com/user", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusID(tt.url))
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "1234", OutputName("https://x.com/a/status/1234"))

	name := OutputName("https://www.instagram.com/reel/xyz/")
	assert.True(t, strings.HasPrefix(name, "clip-"))
	assert.Len(t, name, len("clip-")+12)
	assert.Equal(t, name, OutputName("https://www.instagram.com/reel/xyz/"))
	assert.NotEqual(t, name, OutputName("https://www.instagram.com/reel/abc/"))
}

func TestDownloader_Download_PrintedPath(t *testing.T) {
	dir := t.TempDir()
	cookies := filepath.Join(dir, "cookies.txt")
	require.NoError(t, os.WriteFile(cookies, []byte("# Netscape HTTP Cookie File\n"), 0o600))

	fake := &fakeYtDlp{ext: "mp4", content: mp4Header, print: true}
	d := NewDownloader("yt-dlp", fake, 30*time.Second)

	path, err := d.Download(context.Background(), " https://x.com/a/status/777 ", dir, port.DownloadOptions{CookiesPath: cookies})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "777.mp4"), path)

	joined := strings.Join(fake.args, " ")
	assert.Contains(t, joined, "--no-playlist")
	assert.Contains(t, joined, "-f bestvideo+bestaudio/best")
	assert.Contains(t, joined, "--merge-output-format mp4")
	assert.Contains(t, joined, "--print after_move:filepath")
	assert.Contains(t, joined, "--cookies "+cookies)
	assert.Contains(t, joined, "--socket-timeout 30")
	assert.Equal(t, "https://x.com/a/status/777", fake.args[len(fake.args)-1])
	assert.Equal(t, "--", fake.args[len(fake.args)-2])
}

// pathPrinter reports an existing file as the downloaded path.
type pathPrinter struct {
	path string
}

func (p pathPrinter) Run(context.Context, string, ...string) (procexec.Result, error) {
	return procexec.Result{Stdout: []byte(p.path + "\n")}, nil
}

func TestDownloader_Download_LogsEscapedPath(t *testing.T) {
	dir := t.TempDir()
	forged := filepath.Join(dir, "clip\rINFO: forged.mp4")
	require.NoError(t, os.WriteFile(forged, mp4Header, 0o644))

	var buf bytes.Buffer
	logger.Setup(&buf, true)
	t.Cleanup(func() { logger.Setup(os.Stdout, false) })

	d := NewDownloader("yt-dlp", pathPrinter{path: forged}, 0)
	path, err := d.Download(context.Background(), "https://x.com/a/status/999", dir, port.DownloadOptions{})
	require.NoError(t, err)
	assert.Equal(t, forged, path)

	assert.Contains(t, buf.String(), `clip\rINFO: forged.mp4`)
	assert.NotContains(t, buf.String(), "clip\rINFO")
}

func TestDownloader_Download_FallbackSearch(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeYtDlp{ext: "webm", content: append([]byte("\x1a\x45\xdf\xa3\x9f\x42\x82\x84webm"), make([]byte, 64)...)}
	d := NewDownloader("", fake, 0)

	path, err := d.Download(context.Background(), "https://x.com/a/status/888", dir, port.DownloadOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "888.webm"), path)
	assert.NotContains(t, fake.args, "--cookies")
	assert.NotContains(t, fake.args, "--socket-timeout")
}

func TestDownloader_Download_Errors(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		fake := &fakeYtDlp{}
		_, err := NewDownloader("", fake, 0).Download(context.Background(), "not a url", t.TempDir(), port.DownloadOptions{})
		assert.ErrorIs(t, err, validation.ErrInvalidURL)
		assert.Nil(t, fake.args)
	})

	t.Run("missing cookies file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewDownloader("", &fakeYtDlp{}, 0).Download(context.Background(), "https://x.com/a/status/1", dir,
			port.DownloadOptions{CookiesPath: filepath.Join(dir, "nope.txt")})
		assert.ErrorIs(t, err, ErrCookiesMissing)
	})

	t.Run("yt-dlp failure", func(t *testing.T) {
		fake := &fakeYtDlp{err: &procexec.ExitError{Name: "yt-dlp", Err: errors.New("exit status 1"), Stderr: "ERROR: Unsupported URL"}}
		_, err := NewDownloader("", fake, 0).Download(context.Background(), "https://x.com/a/status/1", t.TempDir(), port.DownloadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported URL")
	})

	t.Run("html instead of video", func(t *testing.T) {
		fake := &fakeYtDlp{ext: "mp4", content: []byte("<html><body>login</body></html>"), print: true}
		_, err := NewDownloader("", fake, 0).Download(context.Background(), "https://x.com/a/status/2", t.TempDir(), port.DownloadOptions{})
		assert.ErrorIs(t, err, validation.ErrNotVideo)
	})
}

func TestFindOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"99.f137.mp4", "99.webm.part", "99.mkv", "99.mp4"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	path, err := findOutput(dir, "99")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "99.mp4"), path)

	_, err = findOutput(dir, "100")
	assert.ErrorIs(t, err, ErrOutputNotFound)
}
