package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an opaque document identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
