package statement

import (
	"strings"
)

// Format identifies a recognized statement layout.
type Format string

const (
	FormatHDFCCard Format = "HDFC_CC"
	FormatHDFCBank Format = "HDFC_BANK"
	FormatUnknown  Format = "UNKNOWN"
)

// state is the header-detection state machine. Activation is one-shot: once a
// header is matched the parser never re-evaluates headers for the document.
type state int

const (
	seekingHeader state = iota
	readingCard
	readingBank
	done
)

// Header markers. The card export header uses upper-case DATE, which keeps it
// distinct from the bank export's mixed-case Date column.
const (
	cardDateMarker     = "DATE"
	cardTypeMarker     = "Transaction type"
	pipeDelimiter      = "|||"
	bankDateMarker     = "Date"
	bankNarrationCol   = "Narration"
	bankWithdrawalCol  = "Withdrawal"
	commaDelimiter     = ","
	footerEndMarker    = "end of statement"
	footerSummaryLabel = "statement summary"
)

// detectHeader classifies a pre-activation line. It returns the activated
// state and the field delimiter; the header line itself is consumed.
func detectHeader(line string) (state, string) {
	if strings.Contains(line, cardDateMarker) && strings.Contains(line, cardTypeMarker) {
		if strings.Contains(line, pipeDelimiter) {
			return readingCard, pipeDelimiter
		}
		return readingCard, commaDelimiter
	}
	if strings.Contains(line, bankDateMarker) &&
		strings.Contains(line, bankNarrationCol) &&
		strings.Contains(line, bankWithdrawalCol) {
		return readingBank, commaDelimiter
	}
	return seekingHeader, commaDelimiter
}

// isFooter reports whether a line ends transaction parsing for the whole
// document.
func isFooter(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, footerEndMarker) || strings.Contains(l, footerSummaryLabel)
}

// isSeparator reports whether a line is decorative (a run of asterisks) and
// should be skipped without terminating.
func isSeparator(line string) bool {
	return strings.HasPrefix(line, "***")
}
