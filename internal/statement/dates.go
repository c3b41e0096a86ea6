package statement

import (
	"regexp"
	"strings"
)

// datePattern accepts 1-2 digit day/month parts and a 2- or 4-digit year,
// with the same separator throughout (slash or dash, never mixed).
var datePattern = regexp.MustCompile(`^(?:\d{1,2}/\d{1,2}/\d{2}(?:\d{2})?|\d{1,2}-\d{1,2}-\d{2}(?:\d{2})?)$`)

// IsValidDate reports whether s looks like a numeric statement date.
// No calendar bounds are checked; any numeric triple matching the shape
// passes.
func IsValidDate(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 6 && datePattern.MatchString(s)
}

// NormalizeDate rewrites a date into canonical slash form, widening a
// two-digit year with a "20" prefix. The day/month order of the source is
// preserved as-is.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	sep := "/"
	if !strings.Contains(s, "/") && strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) == 3 && len(parts[2]) == 2 {
		parts[2] = "20" + parts[2]
	}
	return strings.Join(parts, "/")
}
