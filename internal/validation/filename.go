package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxFilenameLength = 255

// unsafeRunes break Content-Disposition quoting or act as path separators.
var unsafeRunes = map[rune]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	':':  true,
	'\n': true,
	'\r': true,
}

// SanitizeFilename makes name safe for a Content-Disposition header and for
// use as a single path element. Unicode is preserved, control characters and
// separators become underscores, and long names are cut to 255 bytes while
// keeping the extension. An empty result becomes "video.mp4".
func SanitizeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if r < 32 || r == 127 || unsafeRunes[r] {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}

	result := strings.TrimSpace(sb.String())
	if strings.Trim(result, "_.") == "" {
		return "video.mp4"
	}
	if len(result) > maxFilenameLength {
		result = truncateKeepingExt(result)
	}
	return result
}

func truncateKeepingExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || len(ext) >= maxFilenameLength {
		return truncateUTF8(name, maxFilenameLength)
	}
	base := strings.TrimSuffix(name, ext)
	return truncateUTF8(base, maxFilenameLength-len(ext)) + ext
}

// truncateUTF8 cuts s to at most n bytes on a rune boundary.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ContentDisposition builds an attachment header value for filename.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", SanitizeFilename(filename))
}

// EnsureMP4Ext appends .mp4 to name unless it already ends with it.
func EnsureMP4Ext(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".mp4") {
		return name
	}
	return name + ".mp4"
}
