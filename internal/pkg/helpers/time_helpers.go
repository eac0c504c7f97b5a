package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// NowUTC returns the current time truncated to milliseconds, which is the
// finest precision every document backend keeps.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NormalizeKey lowercases and trims a lookup key such as an email or roll number.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
