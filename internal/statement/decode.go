package statement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/varunriyer/ozark-app/internal/model"
)

// Card export columns (HDFC_CC).
const (
	cardMinFields     = 5
	cardColDate       = 2
	cardColDesc       = 3
	cardColAmount     = 4
	cardColType       = 5
	cardCreditMarker  = "CR"
	cardPaymentMarker = "CC PAYMENT"
	cardPaymentLabel  = "Credit Card Payment"
)

// Bank export columns (HDFC_BANK).
const (
	bankMinFields     = 6
	bankColDate       = 0
	bankColDesc       = 1
	bankColWithdrawal = 4
	bankColDeposit    = 5
)

// Parse converts raw exported statement text into normalized transactions,
// preserving input line order. An unrecognized document yields an empty list
// and FormatUnknown; that is a normal outcome, not an error. Malformed rows
// are dropped silently.
func Parse(text string) ([]model.Transaction, Format) {
	st := seekingHeader
	delimiter := commaDelimiter
	format := FormatUnknown

	var txns []model.Transaction
	for _, line := range Lines(text) {
		if line == "" {
			continue
		}

		switch st {
		case seekingHeader:
			st, delimiter = detectHeader(line)
			switch st {
			case readingCard:
				format = FormatHDFCCard
			case readingBank:
				format = FormatHDFCBank
			}
		case readingCard, readingBank:
			if isFooter(line) {
				st = done
				continue
			}
			if isSeparator(line) {
				continue
			}
			fields := splitRow(line, delimiter)
			var txn model.Transaction
			var ok bool
			if st == readingCard {
				txn, ok = decodeCardRow(fields)
			} else {
				txn, ok = decodeBankRow(fields)
			}
			if ok {
				txns = append(txns, txn)
			}
		case done:
			// Footer seen; everything after is ignored.
		}
	}
	return txns, format
}

// splitRow splits a transaction row by the active delimiter. Comma rows get
// the quote-aware splitter; the multi-character pipe delimiter is literal.
func splitRow(line, delimiter string) []string {
	if delimiter == commaDelimiter {
		return SplitFields(line)
	}
	parts := strings.Split(line, delimiter)
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = cleanField(p)
	}
	return fields
}

// decodeCardRow maps an HDFC_CC row. The date is the first whitespace token
// of the date field; the unmodified description is retained as OriginalRaw
// even when the display text is rewritten.
func decodeCardRow(fields []string) (model.Transaction, bool) {
	if len(fields) < cardMinFields {
		return model.Transaction{}, false
	}

	tokens := strings.Fields(fields[cardColDate])
	if len(tokens) == 0 {
		return model.Transaction{}, false
	}
	date := NormalizeDate(tokens[0])
	if !IsValidDate(date) {
		return model.Transaction{}, false
	}

	amount, ok := parseAmount(fields[cardColAmount])
	if !ok {
		return model.Transaction{}, false
	}

	raw := fields[cardColDesc]
	desc := raw
	if strings.Contains(desc, cardPaymentMarker) {
		desc = cardPaymentLabel
	}

	typ := model.Debit
	if len(fields) > cardColType && strings.EqualFold(fields[cardColType], cardCreditMarker) {
		typ = model.Credit
	}

	return model.Transaction{
		Date:        date,
		Description: desc,
		OriginalRaw: raw,
		Amount:      amount,
		Type:        typ,
	}, true
}

// decodeBankRow maps an HDFC_BANK row. The raw date is validated before
// normalization; withdrawal wins over deposit when both are nonzero and is
// treated as a debit.
func decodeBankRow(fields []string) (model.Transaction, bool) {
	if len(fields) < bankMinFields {
		return model.Transaction{}, false
	}
	if !IsValidDate(fields[bankColDate]) {
		return model.Transaction{}, false
	}

	withdrawal := parseAmountOrZero(fields[bankColWithdrawal])
	deposit := parseAmountOrZero(fields[bankColDeposit])
	if withdrawal.IsZero() && deposit.IsZero() {
		return model.Transaction{}, false
	}

	amount, typ := deposit, model.Credit
	if withdrawal.IsPositive() {
		amount, typ = withdrawal, model.Debit
	}

	return model.Transaction{
		Date:        NormalizeDate(fields[bankColDate]),
		Description: fields[bankColDesc],
		OriginalRaw: fields[bankColDesc],
		Amount:      amount,
		Type:        typ,
	}, true
}

// parseAmount strips thousands separators and parses a decimal magnitude.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Abs(), true
}

func parseAmountOrZero(s string) decimal.Decimal {
	d, ok := parseAmount(s)
	if !ok {
		return decimal.Zero
	}
	return d
}
