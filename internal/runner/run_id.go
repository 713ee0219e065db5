package runner

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRunID returns a sortable run identifier: a UTC timestamp plus a
// random suffix so concurrent runs in the same second stay distinct.
func NewRunID(now time.Time) string {
	return FormatRunID(now, uuidSuffix())
}

// FormatRunID renders a run ID from its parts.
func FormatRunID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}

func uuidSuffix() string {
	id := uuid.New().String()
	if idx := strings.IndexByte(id, '-'); idx > 0 {
		return id[:idx]
	}
	return id
}
