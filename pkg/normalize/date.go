// Package normalize converts the spreadsheet's loosely formatted date
// and numeric text into canonical values. Nothing in here returns an
// error: a value that cannot be understood passes through untouched
// (dates) or becomes zero (numbers), because the upstream sheet is
// hand-edited and the pipeline must keep moving.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The sheet locale writes day before month. That is a property of the
// upstream form, not something to auto-detect per row.
var dmyPattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})(?: (\d{1,2}):(\d{1,2}):(\d{1,2}))?`)

var gmtPattern = regexp.MustCompile(`GMT([+-])(\d{1,2}):(\d{2})`)

// Layouts tried when the D/M/Y pattern does not match.
var fallbackLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC822,
}

// Timestamp normalizes date text into an RFC 3339 UTC instant. The
// local time is interpreted as UTC. Unparsable text is returned
// unchanged.
func Timestamp(value string) string {
	return TimestampInZone(value, "")
}

// TimestampInZone normalizes date text, interpreting the constructed
// local time in the UTC offset carried by a free-text timezone label
// of the form "GMT+10:00". An absent or unrecognized label means UTC.
// Unparsable date text is returned unchanged.
func TimestampInZone(value, tzLabel string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}

	if parsed, ok := parseDMY(value, zoneFromLabel(tzLabel)); ok {
		return parsed.UTC().Format(time.RFC3339)
	}

	for _, layout := range fallbackLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC().Format(time.RFC3339)
		}
	}

	return value
}

// IsDateField reports whether a canonical field name receives date
// normalization: any name containing "date" or "timestamp".
func IsDateField(field string) bool {
	lower := strings.ToLower(field)
	return strings.Contains(lower, "date") || strings.Contains(lower, "timestamp")
}

func parseDMY(value string, loc *time.Location) (time.Time, bool) {
	match := dmyPattern.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	var hour, minute, second int
	if match[4] != "" {
		hour, _ = strconv.Atoi(match[4])
		minute, _ = strconv.Atoi(match[5])
		second, _ = strconv.Atoi(match[6])
	}

	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), true
}

func zoneFromLabel(label string) *time.Location {
	match := gmtPattern.FindStringSubmatch(label)
	if match == nil {
		return time.UTC
	}

	hours, _ := strconv.Atoi(match[2])
	minutes, _ := strconv.Atoi(match[3])
	offset := hours*3600 + minutes*60
	if match[1] == "-" {
		offset = -offset
	}

	return time.FixedZone(match[0], offset)
}
