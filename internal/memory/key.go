package memory

import (
	"regexp"
	"strings"
)

// UnknownKey is the sentinel key for transactions with no raw description.
const UnknownKey = "UNKNOWN"

// keyLength caps the merchant key. Collisions are intentional: rows from the
// same counterparty should usually share a key.
const keyLength = 15

// channelPrefix matches one leading transaction-channel marker
// (UPI-, POS , NEFT/, and so on) with its trailing separator run.
var channelPrefix = regexp.MustCompile(`(?i)^(UPI|POS|NEFT|IMPS|ACH|RTGS)[\s/:.-]+`)

// DeriveKey normalizes a raw statement description into a merchant key.
// It is a pure function of the raw text: strip one channel prefix, trim,
// take the first 15 characters, upper-case.
func DeriveKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownKey
	}
	key := strings.TrimSpace(channelPrefix.ReplaceAllString(raw, ""))
	if len(key) > keyLength {
		key = key[:keyLength]
	}
	return strings.ToUpper(key)
}
