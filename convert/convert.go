// Package convert provides parse-or-default conversions from strings to
// common value types. Every function returns the caller-supplied default
// instead of an error when the input does not parse; blank input always
// yields the default. Nothing in this package panics.
package convert

import (
	"strconv"
	"strings"
	"time"

	guuid "github.com/google/uuid"
)

// Int parses s as a base-10 integer, returning def on failure.
func Int(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// Int64 parses s as a base-10 64-bit integer, returning def on failure.
func Int64(s string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// Uint64 parses s as a base-10 unsigned 64-bit integer, returning def on
// failure. Negative input fails.
func Uint64(s string, def uint64) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// Float64 parses s as a floating-point number, returning def on failure.
func Float64(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// Bool parses s with the same lexicon as strconv.ParseBool ("1", "t",
// "true", "0", "f", "false", any casing), returning def on failure.
func Bool(s string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// Duration parses s in time.ParseDuration syntax ("1h30m", "250ms"),
// returning def on failure.
func Duration(s string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// Time parses s against layout, returning def on failure.
func Time(s, layout string, def time.Time) time.Time {
	v, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// UUID parses s as a UUID in any form github.com/google/uuid accepts,
// returning def on failure.
func UUID(s string, def guuid.UUID) guuid.UUID {
	v, err := guuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
