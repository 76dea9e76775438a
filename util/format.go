package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBytes renders a byte count with a binary-magnitude unit prefix.
func FormatBytes(bytes uint64) string {
	const unit = 1024.0
	if bytes < uint64(unit) {
		return fmt.Sprintf("%d B", bytes)
	}

	exponent := int(math.Log(float64(bytes)) / math.Log(unit))
	prefixes := "KMGTPE"
	prefix := byte('?')
	if exponent-1 < len(prefixes) {
		prefix = prefixes[exponent-1]
	}

	value := float64(bytes) / math.Pow(unit, float64(exponent))
	return fmt.Sprintf("%.2f %cB", value, prefix)
}

// FormatDuration renders a second count as zero-padded HH:MM:SS.
func FormatDuration(totalSeconds uint64) string {
	hours := totalSeconds / 3600
	rest := totalSeconds % 3600
	return fmt.Sprintf("%02d:%02d:%02d", hours, rest/60, rest%60)
}

// ParseDuration interprets "SS", "MM:SS" or "HH:MM:SS" strings as total seconds.
func ParseDuration(s string) (uint64, error) {
	parts := strings.Split(s, ":")

	parsePart := func(p string) (uint64, error) {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time format: %q", s)
		}
		return n, nil
	}

	switch len(parts) {
	case 3:
		hours, err := parsePart(parts[0])
		if err != nil {
			return 0, err
		}
		minutes, err := parsePart(parts[1])
		if err != nil {
			return 0, err
		}
		seconds, err := parsePart(parts[2])
		if err != nil {
			return 0, err
		}
		return hours*3600 + minutes*60 + seconds, nil
	case 2:
		minutes, err := parsePart(parts[0])
		if err != nil {
			return 0, err
		}
		seconds, err := parsePart(parts[1])
		if err != nil {
			return 0, err
		}
		return minutes*60 + seconds, nil
	case 1:
		return parsePart(parts[0])
	default:
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
}
