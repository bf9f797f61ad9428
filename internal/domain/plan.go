package domain

import "fmt"

type ConcatMethod string

const (
	MethodStreamCopy ConcatMethod = "stream_copy"
	MethodReencode   ConcatMethod = "re_encode"
)

// ConcatDecision is the planner's verdict. Reasons explain a RE_ENCODE choice;
// Warnings record differences that a stream copy usually survives.
type ConcatDecision struct {
	Method   ConcatMethod `json:"method"`
	Reasons  []string     `json:"reasons,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Decide compares two profiles.
func Decide(a, b MediaProfile) ConcatDecision {
	return DecideAll(a, b)
}

// DecideAll compares every profile against the first one. Stream copy is only
// chosen when video codec, audio codec, resolution and frame rate all match.
func DecideAll(profiles ...MediaProfile) ConcatDecision {
	if len(profiles) < 2 {
		return ConcatDecision{
			Method:  MethodReencode,
			Reasons: []string{ErrNotEnoughInputs.Error()},
		}
	}

	var reasons, warnings []string
	first := profiles[0]
	for i, p := range profiles[1:] {
		n := i + 2
		if p.VideoCodec != first.VideoCodec {
			reasons = append(reasons, fmt.Sprintf("video codec differs between 1 and %d: %s != %s", n, first.VideoCodec, p.VideoCodec))
		}
		if p.AudioCodec != first.AudioCodec {
			reasons = append(reasons, fmt.Sprintf("audio codec differs between 1 and %d: %s != %s", n, codecOrNone(first.AudioCodec), codecOrNone(p.AudioCodec)))
		}
		if p.Width != first.Width || p.Height != first.Height {
			reasons = append(reasons, fmt.Sprintf("resolution differs between 1 and %d: %s != %s", n, first.Resolution(), p.Resolution()))
		}
		if !sameFrameRate(p.FrameRate, first.FrameRate) {
			reasons = append(reasons, fmt.Sprintf("frame rate differs between 1 and %d: %.3f != %.3f", n, first.FrameRate, p.FrameRate))
		}

		if p.PixFmt != first.PixFmt {
			warnings = append(warnings, fmt.Sprintf("pixel format differs between 1 and %d: %s != %s", n, first.PixFmt, p.PixFmt))
		}
		if first.HasAudio() && p.HasAudio() {
			if p.SampleRate != first.SampleRate {
				warnings = append(warnings, fmt.Sprintf("sample rate differs between 1 and %d: %d != %d", n, first.SampleRate, p.SampleRate))
			}
			if p.Channels != first.Channels {
				warnings = append(warnings, fmt.Sprintf("channel count differs between 1 and %d: %d != %d", n, first.Channels, p.Channels))
			}
		}
	}

	method := MethodStreamCopy
	if len(reasons) > 0 {
		method = MethodReencode
	}
	return ConcatDecision{Method: method, Reasons: reasons, Warnings: warnings}
}

// ForcedReencode is the decision used when the caller skips the comparison.
func ForcedReencode() ConcatDecision {
	return ConcatDecision{Method: MethodReencode, Reasons: []string{"re-encode forced by caller"}}
}

func codecOrNone(codec string) string {
	if codec == "" {
		return "none"
	}
	return codec
}

// EncodeSettings are the H.264/AAC parameters of the re-encode path.
type EncodeSettings struct {
	CRF          int
	Preset       string
	AudioBitrate string
}

func DefaultEncodeSettings() EncodeSettings {
	return EncodeSettings{CRF: 20, Preset: "veryfast", AudioBitrate: "128k"}
}

// EncodeTarget is the common geometry every input is scaled to before muxing.
type EncodeTarget struct {
	Width     int
	Height    int
	FrameRate float64
}

const (
	fallbackWidth     = 1280
	fallbackHeight    = 720
	fallbackFrameRate = 30
)

// TargetFor derives the re-encode target from the first profile.
func TargetFor(profiles []MediaProfile) EncodeTarget {
	t := EncodeTarget{Width: fallbackWidth, Height: fallbackHeight, FrameRate: fallbackFrameRate}
	if len(profiles) == 0 {
		return t
	}
	first := profiles[0]
	if first.Width > 0 && first.Height > 0 {
		// libx264 with yuv420p needs even dimensions.
		t.Width = first.Width &^ 1
		t.Height = first.Height &^ 1
	}
	if first.FrameRate > 0 {
		t.FrameRate = first.FrameRate
	}
	return t
}
