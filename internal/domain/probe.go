package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ProbeFormat struct {
	Filename   string            `json:"filename"`
	FormatName string            `json:"format_name"`
	FormatLong string            `json:"format_long_name"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	BitRate    string            `json:"bit_rate"`
	NbStreams  int               `json:"nb_streams"`
	Tags       map[string]string `json:"tags"`
}

type ProbeStream struct {
	Index         int               `json:"index"`
	CodecType     string            `json:"codec_type"`
	CodecName     string            `json:"codec_name"`
	CodecLong     string            `json:"codec_long_name"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	PixFmt        string            `json:"pix_fmt"`
	RFrameRate    string            `json:"r_frame_rate"`
	AvgFrameRate  string            `json:"avg_frame_rate"`
	Duration      string            `json:"duration"`
	SampleRate    string            `json:"sample_rate"`
	Channels      int               `json:"channels"`
	ChannelLayout string            `json:"channel_layout"`
	Disposition   map[string]int    `json:"disposition"`
	Tags          map[string]string `json:"tags"`
}

// ProbeResult mirrors the JSON printed by ffprobe -show_format -show_streams.
type ProbeResult struct {
	Format  ProbeFormat   `json:"format"`
	Streams []ProbeStream `json:"streams"`
}

const (
	oneKilobyte = 1024
	oneMegabyte = oneKilobyte * 1024
	oneGigabyte = oneMegabyte * 1024
)

// VideoStream returns the first video stream that is not cover art.
func (p *ProbeResult) VideoStream() *ProbeStream {
	for i := range p.Streams {
		s := &p.Streams[i]
		if s.CodecType == "video" && s.Disposition["attached_pic"] != 1 {
			return s
		}
	}
	return nil
}

func (p *ProbeResult) AudioStream() *ProbeStream {
	for i := range p.Streams {
		if p.Streams[i].CodecType == "audio" {
			return &p.Streams[i]
		}
	}
	return nil
}

// Profile reduces the probe to a MediaProfile for path.
func (p *ProbeResult) Profile(path string) (*MediaProfile, error) {
	vs := p.VideoStream()
	if vs == nil {
		return nil, ErrNoVideoStream
	}

	fps := ParseFrameRate(vs.RFrameRate)
	if fps == 0 {
		fps = ParseFrameRate(vs.AvgFrameRate)
	}

	duration := ParseDuration(p.Format.Duration)
	if duration == 0 {
		duration = ParseDuration(vs.Duration)
	}

	profile := &MediaProfile{
		Path:       path,
		FormatName: p.Format.FormatName,
		VideoCodec: vs.CodecName,
		Width:      vs.Width,
		Height:     vs.Height,
		FrameRate:  fps,
		Duration:   duration,
		PixFmt:     vs.PixFmt,
	}

	if as := p.AudioStream(); as != nil {
		profile.AudioCodec = as.CodecName
		profile.SampleRate, _ = strconv.Atoi(strings.TrimSpace(as.SampleRate))
		profile.Channels = as.Channels
	}

	return profile, nil
}

// ParseFrameRate accepts "30000/1001", "30/1" or "30".
func ParseFrameRate(fraction string) float64 {
	fraction = strings.TrimSpace(fraction)
	if fraction == "" || fraction == "0/0" {
		return 0
	}
	var num, den int
	if _, err := fmt.Sscanf(fraction, "%d/%d", &num, &den); err == nil {
		if den <= 0 {
			return 0
		}
		return float64(num) / float64(den)
	}
	if fps, err := strconv.ParseFloat(fraction, 64); err == nil && fps > 0 {
		return fps
	}
	return 0
}

func ParseDuration(durationStr string) float64 {
	if durationStr == "" || durationStr == "N/A" {
		return 0
	}
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0
	}
	return duration
}

func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "00:00"
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func FormatFrameRate(fps float64) string {
	if fps <= 0 {
		return "? FPS"
	}
	if fps == math.Floor(fps) {
		return fmt.Sprintf("%.0f FPS", fps)
	}
	return fmt.Sprintf("%.2f FPS", fps)
}

func FormatSize(bytes int64) string {
	if bytes < oneKilobyte {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < oneMegabyte {
		return fmt.Sprintf("%.1f KB", float64(bytes)/oneKilobyte)
	}
	if bytes < oneGigabyte {
		return fmt.Sprintf("%.1f MB", float64(bytes)/oneMegabyte)
	}
	return fmt.Sprintf("%.1f GB", float64(bytes)/oneGigabyte)
}
