package statement

import (
	"strings"
)

// Lines splits a raw statement blob into trimmed lines. A line wholly wrapped
// in a single pair of double quotes has the pair stripped once. Blank lines
// are kept; callers decide whether to skip them.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, stripWrappingQuotes(strings.TrimSpace(l)))
	}
	return lines
}

// stripWrappingQuotes removes one wrapping quote pair, but only when the pair
// is the only quoting on the line. A CSV row like `"a","b"` also starts and
// ends with a quote and must stay intact for field splitting.
func stripWrappingQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' && strings.Count(s, `"`) == 2 {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// SplitFields splits a comma-delimited row into trimmed fields. Commas inside
// double quotes do not separate fields, and one wrapping quote pair is
// stripped per field.
func SplitFields(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, cleanField(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, cleanField(b.String()))
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
