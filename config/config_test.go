package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"HOST", "PORT", "DATA_DIR", "YTDLP_PATH", "FFMPEG_PATH", "FFPROBE_PATH",
	"CRF", "PRESET", "AUDIO_BITRATE", "WORKERS", "RETENTION_HOURS",
	"SOCKET_TIMEOUT_SECONDS", "CSRF_SECRET",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.Equal(t, "./downloads", cfg.DataDir)
	assert.Equal(t, "yt-dlp", cfg.YtDlpPath)
	assert.Equal(t, "ffmpeg", cfg.FfmpegPath)
	assert.Equal(t, "ffprobe", cfg.FfprobePath)
	assert.Equal(t, 20, cfg.Encode.CRF)
	assert.Equal(t, "veryfast", cfg.Encode.Preset)
	assert.Equal(t, "128k", cfg.Encode.AudioBitrate)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 24*time.Hour, cfg.Retention)
	assert.Equal(t, 30*time.Second, cfg.SocketTimeout)
	assert.Len(t, cfg.CSRFSecret, 64)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("CRF", "28")
	t.Setenv("PRESET", "slow")
	t.Setenv("WORKERS", "3")
	t.Setenv("RETENTION_HOURS", "2")
	t.Setenv("SOCKET_TIMEOUT_SECONDS", "0")
	t.Setenv("CSRF_SECRET", "fixed")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, 28, cfg.Encode.CRF)
	assert.Equal(t, "slow", cfg.Encode.Preset)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2*time.Hour, cfg.Retention)
	assert.Zero(t, cfg.SocketTimeout)
	assert.Equal(t, "fixed", cfg.CSRFSecret)
}

func TestLoad_RandomSecretPerLoad(t *testing.T) {
	clearEnv(t)

	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)

	assert.NotEqual(t, a.CSRFSecret, b.CSRFSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"PORT", "abc", "invalid PORT"},
		{"PORT", "70000", "invalid PORT"},
		{"CRF", "x", "invalid CRF"},
		{"CRF", "60", "invalid CRF"},
		{"WORKERS", "many", "invalid WORKERS"},
		{"RETENTION_HOURS", "1.5", "invalid RETENTION_HOURS"},
		{"SOCKET_TIMEOUT_SECONDS", "soon", "invalid SOCKET_TIMEOUT_SECONDS"},
		{"SOCKET_TIMEOUT_SECONDS", "-5", "invalid SOCKET_TIMEOUT_SECONDS"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
