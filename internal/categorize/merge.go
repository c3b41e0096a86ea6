package categorize

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/varunriyer/ozark-app/internal/model"
)

// BatchSize bounds one oracle request payload and isolates partial failures.
const BatchSize = 15

// Service drives sanitization, sequential batched oracle calls, and the
// merge of oracle results back into the transaction list.
type Service struct {
	oracle Oracle
	log    zerolog.Logger
}

// NewService creates a categorization service.
func NewService(oracle Oracle, log zerolog.Logger) *Service {
	return &Service{oracle: oracle, log: log}
}

// resolution links an oracle result back to the transaction that produced
// it, keyed for the merge.
type resolution struct {
	originalRaw string
	amount      decimal.Decimal
	date        string
	result      Result
}

// Categorize enriches txns with oracle suggestions and returns a new list in
// the same order. Manually edited transactions are not submitted and never
// overwritten. A failed or unparseable batch leaves its transactions
// unmodified; other batches are unaffected, so the call still succeeds with
// best-effort enrichment.
func (s *Service) Categorize(ctx context.Context, txns []model.Transaction) []model.Transaction {
	var submit []int
	for i, t := range txns {
		if !t.IsManuallyEdited {
			submit = append(submit, i)
		}
	}
	if len(submit) == 0 {
		return txns
	}

	s.log.Info().Int("items", len(submit)).Msg("categorizing with memory context")

	var resolutions []resolution
	for start := 0; start < len(submit); start += BatchSize {
		end := min(start+BatchSize, len(submit))
		indices := submit[start:end]

		batch := make([]Request, len(indices))
		for i, ti := range indices {
			t := txns[ti]
			batch[i] = Request{
				ID:            i,
				SanitizedText: Sanitize(t.OriginalRaw),
				Amount:        t.Amount,
				Type:          t.Type,
				MemoryHint:    t.MemoryContext,
			}
		}

		results, err := s.oracle.Categorize(ctx, batch)
		if err != nil {
			s.log.Warn().Err(err).Int("batch_start", start).
				Msg("batch failed, passing transactions through unmodified")
			continue
		}

		for _, r := range results {
			if r.ID < 0 || r.ID >= len(indices) {
				continue
			}
			t := txns[indices[r.ID]]
			resolutions = append(resolutions, resolution{
				originalRaw: t.OriginalRaw,
				amount:      t.Amount,
				date:        t.Date,
				result:      r,
			})
		}
	}

	return merge(txns, resolutions)
}

// merge applies resolutions to the full list with deterministic precedence:
// a manual edit keeps the row unchanged, then an exact OriginalRaw match,
// then an (amount, date) fallback for responses whose text the oracle
// normalized, else the row passes through. Only Description, Category and
// AIReasoning are ever overwritten.
func merge(txns []model.Transaction, resolutions []resolution) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	for i := range out {
		t := &out[i]
		if t.IsManuallyEdited {
			continue
		}
		r, ok := matchResolution(*t, resolutions)
		if !ok {
			continue
		}
		t.Description = r.result.CleanName
		t.Category = r.result.Category
		t.AIReasoning = r.result.Reason
	}
	return out
}

func matchResolution(t model.Transaction, resolutions []resolution) (resolution, bool) {
	for _, r := range resolutions {
		if r.originalRaw == t.OriginalRaw {
			return r, true
		}
	}
	for _, r := range resolutions {
		if r.amount.Equal(t.Amount) && r.date == t.Date {
			return r, true
		}
	}
	return resolution{}, false
}
