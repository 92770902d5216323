package utils

import (
	"strconv"
	"strings"
)

// ParseFloat converts string to float64 with default value
func ParseFloat(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseYear extracts the leading year from an OMDb year string, which may be
// a range like "2010-2012" or "N/A".
func ParseYear(value string) int {
	value = strings.TrimSpace(value)
	if len(value) > 4 {
		value = value[:4]
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return year
}
