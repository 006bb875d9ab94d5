package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns def on error
func ParseDuration(durationStr string, def time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("duration", durationStr).Dur("default", def).Msg("Failed to parse duration, using default")
		return def
	}
	return duration
}

// RemainingTTL returns how long until expiresAt, never negative
func RemainingTTL(expiresAt, now time.Time) time.Duration {
	if ttl := expiresAt.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}
