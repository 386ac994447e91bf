// Package duration normalizes free-text time input into hours and formats
// hours back into HH:MM strings.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	colonPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
	decimalPattern = regexp.MustCompile(`^\d{1,2}(?:\.\d+)?$`)
)

// Parse converts user input into hours. Two grammars are accepted, tried in
// order: "H:MM"/"HH:MM" with 0<=H<24 and 0<=MM<60, and a plain decimal number
// (dot or comma separator) with 0<=v<24. The upper bound is exclusive, so
// exactly 24 hours cannot be expressed. Any other shape or out-of-range value
// returns ok=false; invalid input is a caller-facing condition, not an error.
func Parse(text string) (float64, bool) {
	if m := colonPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours < 24 && minutes < 60 {
			return float64(hours) + float64(minutes)/60.0, true
		}
		return 0, false
	}

	normalized := strings.ReplaceAll(text, ",", ".")
	if decimalPattern.MatchString(normalized) {
		hours, err := strconv.ParseFloat(normalized, 64)
		if err != nil || hours >= 24 {
			return 0, false
		}
		return hours, true
	}

	return 0, false
}

// Format renders hours as a zero-padded "HH:MM" string. Sub-minute precision
// is truncated, never rounded. The hours component is not capped at 24 so
// weekly totals like 30.5 format as "30:30".
func Format(hours float64) string {
	// The epsilon compensates for representation noise (1:40 parses to
	// 99.99999999999999 minutes); it must stay far below one minute so
	// genuine sub-minute fractions are still dropped.
	totalMinutes := int(hours*60 + 1e-9)
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
