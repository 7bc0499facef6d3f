package csvio

import "strings"

// Document encodes a header row plus data rows into CSV text. Any
// field containing a comma, quote, or newline is quote-wrapped with
// embedded quotes doubled, so values already in canonical stringified
// form survive a later Parse unchanged.
func Document(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, encodeRow(headers))
	for _, row := range rows {
		lines = append(lines, encodeRow(row))
	}
	return strings.Join(lines, "\n")
}

func encodeRow(row []string) string {
	escaped := make([]string, len(row))
	for i, field := range row {
		escaped[i] = escapeField(field)
	}
	return strings.Join(escaped, ",")
}

func escapeField(value string) string {
	if strings.ContainsAny(value, "\",\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
