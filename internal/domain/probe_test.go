package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 30000.0 / 1001},
		{"25", 25},
		{"23.976", 23.976},
		{"0/0", 0},
		{"30/0", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFrameRate(tt.in), 1e-9)
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 12.5, ParseDuration("12.500000"))
	assert.Equal(t, 0.0, ParseDuration("N/A"))
	assert.Equal(t, 0.0, ParseDuration(""))
	assert.Equal(t, 0.0, ParseDuration("abc"))
}

func TestProbeResult_Profile(t *testing.T) {
	probe := &ProbeResult{
		Format: ProbeFormat{FormatName: "mov,mp4,m4a,3gp,3g2,mj2", Duration: "10.010000"},
		Streams: []ProbeStream{
			{CodecType: "video", CodecName: "mjpeg", Width: 300, Height: 300, Disposition: map[string]int{"attached_pic": 1}},
			{CodecType: "video", CodecName: "h264", Width: 1920, Height: 1080, PixFmt: "yuv420p", RFrameRate: "30/1"},
			{CodecType: "audio", CodecName: "aac", SampleRate: "44100", Channels: 2},
			{CodecType: "audio", CodecName: "mp3", SampleRate: "48000", Channels: 1},
		},
	}

	profile, err := probe.Profile("/tmp/a.mp4")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/a.mp4", profile.Path)
	assert.Equal(t, "h264", profile.VideoCodec)
	assert.Equal(t, "aac", profile.AudioCodec)
	assert.Equal(t, 1920, profile.Width)
	assert.Equal(t, 1080, profile.Height)
	assert.Equal(t, 30.0, profile.FrameRate)
	assert.InDelta(t, 10.01, profile.Duration, 1e-9)
	assert.Equal(t, 44100, profile.SampleRate)
	assert.Equal(t, 2, profile.Channels)
}

func TestProbeResult_Profile_FallbacksAndErrors(t *testing.T) {
	t.Run("avg frame rate and stream duration fallback", func(t *testing.T) {
		probe := &ProbeResult{
			Streams: []ProbeStream{
				{CodecType: "video", CodecName: "vp9", Width: 640, Height: 360, RFrameRate: "0/0", AvgFrameRate: "25/1", Duration: "3.5"},
			},
		}
		profile, err := probe.Profile("b.webm")
		require.NoError(t, err)
		assert.Equal(t, 25.0, profile.FrameRate)
		assert.Equal(t, 3.5, profile.Duration)
		assert.False(t, profile.HasAudio())
	})

	t.Run("audio only is rejected", func(t *testing.T) {
		probe := &ProbeResult{Streams: []ProbeStream{{CodecType: "audio", CodecName: "aac"}}}
		_, err := probe.Profile("c.m4a")
		assert.ErrorIs(t, err, ErrNoVideoStream)
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "1:01:01", FormatDuration(3661))

	assert.Equal(t, "30 FPS", FormatFrameRate(30))
	assert.Equal(t, "29.97 FPS", FormatFrameRate(29.97))
	assert.Equal(t, "? FPS", FormatFrameRate(0))

	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "2.0 MB", FormatSize(2*1024*1024))
	assert.Equal(t, "1.0 GB", FormatSize(1024*1024*1024))
}

func TestMediaProfile_String(t *testing.T) {
	p := MediaProfile{VideoCodec: "h264", Width: 1280, Height: 720, FrameRate: 30, Duration: 61}
	assert.Equal(t, "video=h264 1280x720 @ 30 FPS, audio=none, duration=1:01", p.String())
}
