package categorize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/varunriyer/ozark-app/internal/model"
)

// Request is one sanitized item submitted to the oracle.
type Request struct {
	ID            int             `json:"id"`
	SanitizedText string          `json:"sanitizedText"`
	Amount        decimal.Decimal `json:"amount"`
	Type          model.TxnType   `json:"type"`
	MemoryHint    string          `json:"memoryHint,omitempty"`
}

// Result is one oracle categorization, correlated to a Request by ID.
type Result struct {
	ID        int    `json:"id"`
	CleanName string `json:"cleanName"`
	Category  string `json:"category"`
	Reason    string `json:"reason"`
}

// Oracle is the external categorization service: a batch of sanitized
// transactions in, free-text structured suggestions out. Replies are
// untrusted and validated before use.
type Oracle interface {
	Categorize(ctx context.Context, batch []Request) ([]Result, error)
}

// ParseResults decodes an oracle reply. The payload must be a JSON array
// (markdown fences are tolerated and stripped); items violating the schema
// or carrying an out-of-range id are dropped rather than surfaced as errors.
func ParseResults(raw string, batchSize int) ([]Result, error) {
	clean := cleanModelJSON(raw)

	var items []any
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("unmarshaling oracle reply: %w", err)
	}

	var results []Result
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		r, ok := decodeResult(obj, batchSize)
		if !ok {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// decodeResult validates one reply object. Any schema violation means
// "no match" for that item.
func decodeResult(obj map[string]any, batchSize int) (Result, bool) {
	idVal, ok := obj["id"].(float64)
	if !ok || idVal != float64(int(idVal)) {
		return Result{}, false
	}
	id := int(idVal)
	if id < 0 || id >= batchSize {
		return Result{}, false
	}

	cleanName, ok := obj["cleanName"].(string)
	if !ok || strings.TrimSpace(cleanName) == "" {
		return Result{}, false
	}
	category, ok := obj["category"].(string)
	if !ok || strings.TrimSpace(category) == "" {
		return Result{}, false
	}
	reason, _ := obj["reason"].(string)

	return Result{
		ID:        id,
		CleanName: strings.TrimSpace(cleanName),
		Category:  strings.TrimSpace(category),
		Reason:    strings.TrimSpace(reason),
	}, true
}

// cleanModelJSON strips markdown fences and surrounding junk the model may
// wrap around the JSON array despite instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
