// Package csvline splits a single comma-separated line, honoring double
// quotes around fields. Quotes only toggle the quoted state; they are never
// part of the field and cannot be escaped.
package csvline

import "strings"

const (
	separator = ','
	quote     = '"'
)

// Split returns the fields of line. It always returns at least one field.
func Split(line string) []string {
	fields := make([]string, 0, 4)
	var current strings.Builder
	inQuotes := false

	for _, c := range line {
		switch {
		case c == quote:
			inQuotes = !inQuotes
		case c == separator && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}

	return append(fields, current.String())
}
