package utils

import (
	"errors"
	"mime/multipart"
	"regexp"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email trims and validates an address, returning the cleaned value.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/webm": true,
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/wav":  true,
	"audio/ogg":  true,
}

const maxUploadBytes = 100 * 1024 * 1024

// ValidateFileHeader rejects empty, oversized, or unsupported uploads.
func ValidateFileHeader(h *multipart.FileHeader) error {
	if h.Size == 0 || h.Size > maxUploadBytes {
		return errors.New("file size not allowed")
	}
	ct := h.Header.Get("Content-Type")
	if ct != "" && !allowedTypes[strings.ToLower(ct)] {
		return errors.New("invalid content type")
	}
	return nil
}
