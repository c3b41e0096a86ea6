package model

import (
	"github.com/shopspring/decimal"
)

// TxnType is the direction of a statement transaction.
type TxnType string

const (
	Credit TxnType = "CREDIT"
	Debit  TxnType = "DEBIT"
)

// Transaction is one normalized statement row.
//
// OriginalRaw is the verbatim description field from the statement. It is the
// join key for memory lookups and oracle correlation and must never be
// mutated after decoding; Description is the mutable display label.
type Transaction struct {
	Date        string          `json:"date"` // slash-separated, 4-digit year; component order as exported
	Description string          `json:"description"`
	OriginalRaw string          `json:"originalRaw"`
	Amount      decimal.Decimal `json:"amount"` // non-negative magnitude
	Type        TxnType         `json:"type"`

	Category      string `json:"category,omitempty"`
	MemoryContext string `json:"memoryContext,omitempty"` // advisory hint passed to the oracle
	UserNote      string `json:"userNote,omitempty"`
	AIReasoning   string `json:"aiReasoning,omitempty"`

	// IsManuallyEdited locks the row: it is excluded from oracle submission
	// and immune to merge overwrites.
	IsManuallyEdited bool `json:"isManuallyEdited,omitempty"`
}
