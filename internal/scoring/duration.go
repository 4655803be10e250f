package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	durationHours   = regexp.MustCompile(`(\d+)H`)
	durationMinutes = regexp.MustCompile(`(\d+)M`)
	durationSeconds = regexp.MustCompile(`(\d+)S`)
)

// ParseISO8601Duration converts a YouTube "PT1H2M30S" style duration to
// seconds. Malformed input yields 0.
func ParseISO8601Duration(duration string) int {
	if duration == "" || !strings.HasPrefix(duration, "PT") {
		return 0
	}
	duration = duration[2:]

	total := 0
	if m := durationHours.FindStringSubmatch(duration); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 3600
	}
	if m := durationMinutes.FindStringSubmatch(duration); m != nil {
		min, _ := strconv.Atoi(m[1])
		total += min * 60
	}
	if m := durationSeconds.FindStringSubmatch(duration); m != nil {
		s, _ := strconv.Atoi(m[1])
		total += s
	}
	return total
}

// SpeakingPaceWPM estimates words per minute from transcript-like text and a
// duration in seconds. Zero when either input is missing.
func SpeakingPaceWPM(text string, durationSeconds int) float64 {
	if text == "" || durationSeconds <= 0 {
		return 0
	}
	words := len(strings.Fields(text))
	return float64(words) / (float64(durationSeconds) / 60)
}
