// Package csvio reads and writes the CSV dialect produced by the
// spreadsheet export endpoint. The reader is deliberately not
// encoding/csv: the export is human-edited and the pipeline must never
// fail on it, so malformed quoting degrades into best-effort field
// boundaries instead of a structural error.
package csvio

import "strings"

// Parse tokenizes raw CSV text into rows of string cells in a single
// pass. Quoted fields may contain commas and newlines, a doubled quote
// inside a quoted field is a literal quote, and LF outside quotes
// separates records (CR is dropped). Rows may have fewer cells than
// the header; consumers treat missing indices as absent. A row that is
// exactly one empty cell is a blank line and is dropped. Parse never
// returns an error.
func Parse(raw string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		quoted   bool
		hasField bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
		hasField = false
	}

	endRow := func() {
		endField()
		if len(row) == 1 && row[0] == "" {
			// blank line
			row = nil
			return
		}
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if quoted {
			if c == '"' {
				if i+1 < len(raw) && raw[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				quoted = false
				continue
			}
			if c != '\r' {
				field.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			// Opening quote at the start of a field; anywhere else it
			// is stray and kept literally.
			if field.Len() == 0 && !hasField {
				quoted = true
				hasField = true
			} else {
				field.WriteByte(c)
			}
		case ',':
			endField()
		case '\n':
			endRow()
		case '\r':
			// dropped; LF handles the record break
		default:
			field.WriteByte(c)
			hasField = true
		}
	}

	// Unterminated quotes fall through here with whatever was
	// accumulated; flush the final record unless it is empty.
	if field.Len() > 0 || hasField || len(row) > 0 {
		endRow()
	}

	return rows
}
