package domain

import (
	"fmt"
	"math"
)

// MediaProfile is what the pipeline knows about one input file. It is built
// once from a probe and never mutated afterwards.
type MediaProfile struct {
	Path       string  `json:"path"`
	FormatName string  `json:"format_name"`
	VideoCodec string  `json:"video_codec"`
	AudioCodec string  `json:"audio_codec"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FrameRate  float64 `json:"frame_rate"`
	Duration   float64 `json:"duration"`
	PixFmt     string  `json:"pix_fmt"`
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
}

func (p MediaProfile) HasAudio() bool {
	return p.AudioCodec != ""
}

func (p MediaProfile) Resolution() string {
	if p.Width <= 0 || p.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// frameRateTolerance absorbs rounding between r_frame_rate representations.
const frameRateTolerance = 0.01

func sameFrameRate(a, b float64) bool {
	return math.Abs(a-b) <= frameRateTolerance
}

func (p MediaProfile) String() string {
	audio := p.AudioCodec
	if audio == "" {
		audio = "none"
	}
	return fmt.Sprintf("video=%s %s @ %s, audio=%s, duration=%s",
		p.VideoCodec, p.Resolution(), FormatFrameRate(p.FrameRate), audio, FormatDuration(p.Duration))
}
