package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/bnema/vidmerge/internal/domain"
)

type Config struct {
	Host            string
	Port            int
	DataDir         string
	YtDlpPath       string
	FfmpegPath      string
	FfprobePath     string
	Encode          domain.EncodeSettings
	Workers         int
	Retention       time.Duration
	SocketTimeout   time.Duration
	CSRFSecret      string
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d out of range", port)
	}

	crf, err := strconv.Atoi(getEnv("CRF", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRF: %w", err)
	}
	if crf < 0 || crf > 51 {
		return nil, fmt.Errorf("invalid CRF: %d not in 0-51", crf)
	}

	workers, err := strconv.Atoi(getEnv("WORKERS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKERS: %w", err)
	}

	retentionHours, err := strconv.Atoi(getEnv("RETENTION_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid RETENTION_HOURS: %w", err)
	}

	// Passed to yt-dlp as --socket-timeout; 0 keeps yt-dlp's own default.
	socketTimeout, err := strconv.Atoi(getEnv("SOCKET_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SOCKET_TIMEOUT_SECONDS: %w", err)
	}
	if socketTimeout < 0 {
		return nil, fmt.Errorf("invalid SOCKET_TIMEOUT_SECONDS: %d is negative", socketTimeout)
	}

	csrfSecret := os.Getenv("CSRF_SECRET")
	if csrfSecret == "" {
		csrfSecret = randomSecret()
	}

	return &Config{
		Host:        getEnv("HOST", "127.0.0.1"),
		Port:        port,
		DataDir:     getEnv("DATA_DIR", "./downloads"),
		YtDlpPath:   getEnv("YTDLP_PATH", "yt-dlp"),
		FfmpegPath:  getEnv("FFMPEG_PATH", "ffmpeg"),
		FfprobePath: getEnv("FFPROBE_PATH", "ffprobe"),
		Encode: domain.EncodeSettings{
			CRF:          crf,
			Preset:       getEnv("PRESET", "veryfast"),
			AudioBitrate: getEnv("AUDIO_BITRATE", "128k"),
		},
		Workers:         workers,
		Retention:       time.Duration(retentionHours) * time.Hour,
		SocketTimeout:   time.Duration(socketTimeout) * time.Second,
		CSRFSecret:      csrfSecret,
	}, nil
}

// Addr is the host:port the web server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
