package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullHD() MediaProfile {
	return MediaProfile{
		VideoCodec: "h264",
		AudioCodec: "aac",
		Width:      1920,
		Height:     1080,
		FrameRate:  30,
		Duration:   10,
		PixFmt:     "yuv420p",
		SampleRate: 44100,
		Channels:   2,
	}
}

func TestDecide_MatchingProfilesStreamCopy(t *testing.T) {
	tests := []struct {
		name string
		a, b MediaProfile
	}{
		{
			name: "identical 1080p h264/aac 30fps",
			a:    fullHD(),
			b:    fullHD(),
		},
		{
			name: "both without audio",
			a:    MediaProfile{VideoCodec: "h264", Width: 1280, Height: 720, FrameRate: 25},
			b:    MediaProfile{VideoCodec: "h264", Width: 1280, Height: 720, FrameRate: 25},
		},
		{
			name: "ntsc rates within tolerance",
			a:    MediaProfile{VideoCodec: "h264", AudioCodec: "aac", Width: 720, Height: 1280, FrameRate: 30000.0 / 1001},
			b:    MediaProfile{VideoCodec: "h264", AudioCodec: "aac", Width: 720, Height: 1280, FrameRate: 29.97},
		},
		{
			name: "different durations do not matter",
			a:    fullHD(),
			b: func() MediaProfile {
				p := fullHD()
				p.Duration = 42
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.a, tt.b)
			assert.Equal(t, MethodStreamCopy, d.Method)
			assert.Empty(t, d.Reasons)
		})
	}
}

func TestDecide_AnyMismatchReencodes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *MediaProfile)
		reason string
	}{
		{"video codec", func(p *MediaProfile) { p.VideoCodec = "hevc" }, "video codec"},
		{"audio codec", func(p *MediaProfile) { p.AudioCodec = "opus" }, "audio codec"},
		{"audio missing on one side", func(p *MediaProfile) { p.AudioCodec = "" }, "audio codec"},
		{"width", func(p *MediaProfile) { p.Width = 1280 }, "resolution"},
		{"height", func(p *MediaProfile) { p.Height = 720 }, "resolution"},
		{"frame rate", func(p *MediaProfile) { p.FrameRate = 60 }, "frame rate"},
		{"frame rate just over tolerance", func(p *MediaProfile) { p.FrameRate = 30.02 }, "frame rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fullHD()
			tt.mutate(&b)

			d := Decide(fullHD(), b)
			assert.Equal(t, MethodReencode, d.Method)
			assert.Len(t, d.Reasons, 1)
			assert.Contains(t, d.Reasons[0], tt.reason)

			// Order of arguments must not change the verdict.
			assert.Equal(t, MethodReencode, Decide(b, fullHD()).Method)
		})
	}
}

func TestDecide_AdvisoryDifferencesOnlyWarn(t *testing.T) {
	b := fullHD()
	b.PixFmt = "yuvj420p"
	b.SampleRate = 48000
	b.Channels = 1

	d := Decide(fullHD(), b)

	assert.Equal(t, MethodStreamCopy, d.Method)
	assert.Empty(t, d.Reasons)
	assert.Len(t, d.Warnings, 3)
}

func TestDecideAll(t *testing.T) {
	t.Run("single input cannot be concatenated", func(t *testing.T) {
		d := DecideAll(fullHD())
		assert.Equal(t, MethodReencode, d.Method)
	})

	t.Run("third input mismatching forces re-encode", func(t *testing.T) {
		third := fullHD()
		third.VideoCodec = "vp9"
		d := DecideAll(fullHD(), fullHD(), third)
		assert.Equal(t, MethodReencode, d.Method)
		assert.Contains(t, d.Reasons[0], "between 1 and 3")
	})
}

func TestForcedReencode(t *testing.T) {
	d := ForcedReencode()
	assert.Equal(t, MethodReencode, d.Method)
	assert.NotEmpty(t, d.Reasons)
}

func TestTargetFor(t *testing.T) {
	tests := []struct {
		name     string
		profiles []MediaProfile
		want     EncodeTarget
	}{
		{
			name:     "uses first profile",
			profiles: []MediaProfile{fullHD(), {Width: 640, Height: 360, FrameRate: 24}},
			want:     EncodeTarget{Width: 1920, Height: 1080, FrameRate: 30},
		},
		{
			name:     "odd dimensions rounded down to even",
			profiles: []MediaProfile{{Width: 721, Height: 1279, FrameRate: 25}},
			want:     EncodeTarget{Width: 720, Height: 1278, FrameRate: 25},
		},
		{
			name:     "unknown geometry falls back",
			profiles: []MediaProfile{{}},
			want:     EncodeTarget{Width: 1280, Height: 720, FrameRate: 30},
		},
		{
			name: "no profiles",
			want: EncodeTarget{Width: 1280, Height: 720, FrameRate: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetFor(tt.profiles))
		})
	}
}
