package memory

import (
	"fmt"
	"sync"

	"github.com/varunriyer/ozark-app/internal/model"
)

// Entry is a remembered categorization keyed by a merchant signature.
type Entry struct {
	Category  string
	CleanName string
	Note      string
}

// Store is a durable merchant-key to entry mapping. The engine treats it as
// already open; lifecycle and persistence technology live with the caller.
type Store interface {
	Get(key string) (Entry, bool, error)
	Set(key string, e Entry) error
}

// MapStore is an in-memory Store.
type MapStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMapStore creates an empty in-memory store.
func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[string]Entry)}
}

// Get returns the entry for key, if present.
func (s *MapStore) Get(key string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok, nil
}

// Set upserts the entry for key.
func (s *MapStore) Set(key string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

// Inject supplies memory hints to decoded transactions. Matching entries set
// MemoryContext and UserNote only; category and description are left for the
// categorization step. Re-running injection produces the same result.
func Inject(txns []model.Transaction, store Store) error {
	for i := range txns {
		t := &txns[i]
		if t.IsManuallyEdited {
			continue
		}
		key := DeriveKey(t.OriginalRaw)
		e, ok, err := store.Get(key)
		if err != nil {
			return fmt.Errorf("memory lookup %q: %w", key, err)
		}
		if !ok {
			continue
		}
		t.MemoryContext = FormatHint(e)
		t.UserNote = e.Note
	}
	return nil
}

// FormatHint renders an entry as the advisory sentence passed to the oracle.
func FormatHint(e Entry) string {
	hint := "User said this is usually " + e.Category
	if e.Note != "" {
		hint += " (" + e.Note + ")"
	}
	return hint
}

// Edit is a user-confirmed categorization.
type Edit struct {
	Category  string
	CleanName string
	Note      string
}

// Commit is the single mutation path into the store. It upserts the memory
// entry for the transaction's merchant key, applies the edit to the
// transaction, and locks it against automated re-categorization.
func Commit(store Store, t *model.Transaction, edit Edit) error {
	key := DeriveKey(t.OriginalRaw)
	if err := store.Set(key, Entry(edit)); err != nil {
		return fmt.Errorf("saving memory %q: %w", key, err)
	}
	t.Description = edit.CleanName
	t.Category = edit.Category
	t.UserNote = edit.Note
	t.IsManuallyEdited = true
	return nil
}
