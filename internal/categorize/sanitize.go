package categorize

import (
	"regexp"
	"strings"
)

// redactionToken replaces numeric identifiers before text crosses the
// oracle boundary.
const redactionToken = "[#REDACTED#]"

var (
	// longDigitRun matches mobile numbers, account numbers and cards.
	longDigitRun = regexp.MustCompile(`\b\d{10,16}\b`)
	// markerDigits matches reference patterns like "REF# 12345", keeping the
	// marker word.
	markerDigits = regexp.MustCompile(`(REF|TXN|UPI|POS)[\W_]*\d+`)
)

// Sanitize upper-cases raw statement text and redacts numeric identifiers
// while preserving merchant names and locations verbatim.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	clean := strings.ToUpper(raw)
	clean = longDigitRun.ReplaceAllString(clean, redactionToken)
	clean = markerDigits.ReplaceAllString(clean, "${1}-[#]")
	return clean
}
