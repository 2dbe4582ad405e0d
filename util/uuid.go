package util

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDShort returns the first segment of a fresh UUID, enough for call tracing.
func UUIDShort() string {
	s := uuid.Must(uuid.NewUUID()).String()
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}
