package util

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NormalizeDate reduces a calendar date to "YYYY-MM-DD". Browsers sometimes
// send a full RFC 3339 timestamp; only its date part is kept.
func NormalizeDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("date is required")
	}

	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return t.Format(dateLayout), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, trimmed); err == nil {
		return t.UTC().Format(dateLayout), nil
	}

	return "", fmt.Errorf("date %q must use the YYYY-MM-DD format", trimmed)
}
