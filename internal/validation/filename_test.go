package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "merged.mp4", expected: "merged.mp4"},
		{name: "spaces", input: "my merged clip.mp4", expected: "my merged clip.mp4"},
		{name: "unicode preserved", input: "vidéo 動画.mp4", expected: "vidéo 動画.mp4"},
		{name: "double quote", input: `a"b.mp4`, expected: "a_b.mp4"},
		{name: "backslash", input: `a\b.mp4`, expected: "a_b.mp4"},
		{name: "slash", input: "../etc/passwd", expected: ".._etc_passwd"},
		{name: "colon", input: "C:clip.mp4", expected: "C_clip.mp4"},
		{name: "header injection", input: "a.mp4\r\nSet-Cookie: x", expected: "a.mp4__Set-Cookie_ x"},
		{name: "control chars", input: "a\x00b\x7f.mp4", expected: "a_b_.mp4"},
		{name: "surrounding whitespace", input: "  clip.mp4  ", expected: "clip.mp4"},
		{name: "empty", input: "", expected: "video.mp4"},
		{name: "only separators", input: "///", expected: "video.mp4"},
		{name: "only dots", input: "..", expected: "video.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 300) + ".mp4"
	got := SanitizeFilename(long)
	assert.Len(t, got, maxFilenameLength)
	assert.True(t, strings.HasSuffix(got, ".mp4"))

	multibyte := strings.Repeat("é", 200) + ".mp4"
	got = SanitizeFilename(multibyte)
	assert.LessOrEqual(t, len(got), maxFilenameLength)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, ".mp4"))
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="merged.mp4"`, ContentDisposition("merged.mp4"))
	assert.Equal(t, `attachment; filename="a_b.mp4"`, ContentDisposition(`a"b.mp4`))
}

func TestEnsureMP4Ext(t *testing.T) {
	assert.Equal(t, "out.mp4", EnsureMP4Ext("out"))
	assert.Equal(t, "out.MP4", EnsureMP4Ext("out.MP4"))
	assert.Equal(t, "out.mkv.mp4", EnsureMP4Ext("out.mkv"))
}
