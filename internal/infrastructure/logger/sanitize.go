package logger

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// maxLogValue caps a single user-supplied value in a log line.
const maxLogValue = 512

// SanitizeForLog escapes control characters so user input cannot forge log
// lines or drive the terminal. Unicode is kept. Values longer than 512 bytes
// are cut and marked with "...".
func SanitizeForLog(s string) string {
	truncated := false
	if len(s) > maxLogValue {
		cut := maxLogValue
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
		truncated = true
	}

	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		case '\x00':
			result.WriteString("\\x00")
		default:
			if r < 32 || r == 127 {
				result.WriteString(fmt.Sprintf("\\x%02x", r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	if truncated {
		result.WriteString("...")
	}
	return result.String()
}

// SanitizeURL drops the query string, fragment and credentials of a URL
// before sanitizing it. Share links often carry tracking or session tokens.
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return SanitizeForLog(raw)
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return SanitizeForLog(u.String())
}
