package cache

import (
	"sync"

	"github.com/varunriyer/ozark-app/internal/model"
	"github.com/varunriyer/ozark-app/internal/statement"
)

// Key identifies a parsed document by name and size.
type Key struct {
	Name string
	Size int64
}

// Cache memoizes the parse result for the most recent document. Putting a
// different key invalidates the previous entry. Results are copied on both
// sides so cached rows cannot be mutated by callers; the cache is advisory
// and never the source of truth for memory matching.
type Cache struct {
	mu     sync.Mutex
	key    Key
	txns   []model.Transaction
	format statement.Format
	ok     bool
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{}
}

// Get returns the cached parse for k, if the document identity matches.
func (c *Cache) Get(k Key) ([]model.Transaction, statement.Format, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ok || c.key != k {
		return nil, statement.FormatUnknown, false
	}
	return copyTxns(c.txns), c.format, true
}

// Put stores the parse result for k, replacing whatever was cached before.
func (c *Cache) Put(k Key, txns []model.Transaction, format statement.Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = k
	c.txns = copyTxns(txns)
	c.format = format
	c.ok = true
}

func copyTxns(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	return out
}
