package normalize

import (
	"strconv"
	"strings"
)

// Float coerces numeric text (estimated hours, cost, satisfaction
// score) to a float64. Absent or unparsable values are zero.
func Float(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
