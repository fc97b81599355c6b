// Package timecode converts between "HH:MM" text and minute offsets within a
// single day. Conversions never fail: malformed input maps to midnight.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in the modelled day.
const MinutesPerDay = 24 * 60

// ParseTimeToMinutes converts "HH:MM" (or "H:MM", optionally "HH:MM:SS") to
// minutes since midnight in [0, MinutesPerDay). Empty or malformed text
// yields 0.
func ParseTimeToMinutes(text string) int {
	m, ok := parse(text)
	if !ok {
		return 0
	}
	return m
}

// Valid reports whether text is a well formed time of day.
func Valid(text string) bool {
	_, ok := parse(text)
	return ok
}

func parse(text string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, false
	}
	if len(parts) == 3 {
		if s, err := strconv.Atoi(parts[2]); err != nil || s < 0 || s > 59 {
			return 0, false
		}
	}
	return h*60 + m, true
}

// FormatMinutes renders minutes as "HH:MM". Values outside a day wrap, so
// 1440 renders as "00:00" and -15 as "23:45".
func FormatMinutes(min int) string {
	min %= MinutesPerDay
	if min < 0 {
		min += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
