// Package validation checks downloaded media and user supplied file names.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrNotVideo is returned when a file does not start like a video container.
var ErrNotVideo = errors.New("file is not a video container")

const sniffLen = 512

var videoMIMETypes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"video/x-matroska": true,
	"video/mp2t":       true,
	"video/x-flv":      true,
	"video/avi":        true,
	"video/x-msvideo":  true,
}

// DetectMIME reads up to 512 bytes from r and returns the detected MIME type.
// Container formats that http.DetectContentType misses are handled first.
func DetectMIME(r io.Reader) (string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if n == 0 {
		return "application/octet-stream", nil
	}
	buf = buf[:n]

	if mime := detectContainer(buf); mime != "" {
		return mime, nil
	}
	return http.DetectContentType(buf), nil
}

func detectContainer(buf []byte) string {
	switch {
	case len(buf) >= 12 && bytes.Equal(buf[4:8], []byte("ftyp")):
		if string(buf[8:12]) == "qt  " {
			return "video/quicktime"
		}
		return "video/mp4"
	case bytes.HasPrefix(buf, []byte{0x1A, 0x45, 0xDF, 0xA3}):
		// EBML header; webm and matroska share it
		if bytes.Contains(buf, []byte("webm")) {
			return "video/webm"
		}
		return "video/x-matroska"
	case bytes.HasPrefix(buf, []byte("FLV")):
		return "video/x-flv"
	case len(buf) >= 189 && buf[0] == 0x47 && buf[188] == 0x47:
		return "video/mp2t"
	}
	return ""
}

// IsVideoMIME reports whether mime names a container the pipeline accepts.
func IsVideoMIME(mime string) bool {
	return videoMIMETypes[mime]
}

// SniffVideoFile checks the magic bytes of path and returns its MIME type,
// or an error wrapping ErrNotVideo.
func SniffVideoFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	mime, err := DetectMIME(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !IsVideoMIME(mime) {
		return mime, fmt.Errorf("%w: detected %s", ErrNotVideo, mime)
	}
	return mime, nil
}
