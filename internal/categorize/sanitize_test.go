package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_RedactsLongDigitRuns(t *testing.T) {
	// The digit-run mask runs first, so the channel marker keeps the
	// generic redaction token rather than the marker form.
	assert.Equal(t, "UPI-[#REDACTED#]", Sanitize("UPI-9812345678"))
	assert.Equal(t, "ACCT [#REDACTED#] TRANSFER", Sanitize("acct 1234567890123456 transfer"))
}

func TestSanitize_KeepsMarkerWord(t *testing.T) {
	assert.Equal(t, "REF-[#] GROCERY RUN", Sanitize("REF# 12345 grocery run"))
	assert.Equal(t, "TXN-[#]", Sanitize("TXN 99881"))
}

func TestSanitize_PreservesLocationText(t *testing.T) {
	out := Sanitize("POS 1234567890123 BIG BAZAAR INDIRANAGAR BANGALORE")
	assert.Contains(t, out, "BIG BAZAAR INDIRANAGAR BANGALORE")
	assert.NotContains(t, out, "1234567890123")
}

func TestSanitize_ShortDigitRunsKept(t *testing.T) {
	// Up to 9 digits can be a street number or store code, not an identifier.
	assert.Equal(t, "STORE 123456789", Sanitize("store 123456789"))
}

func TestSanitize_Empty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_UpperCases(t *testing.T) {
	assert.Equal(t, "ZEPTO MARKETPLACE", Sanitize("Zepto Marketplace"))
}
