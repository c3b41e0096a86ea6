package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunriyer/ozark-app/internal/model"
	"github.com/varunriyer/ozark-app/internal/statement"
)

func TestCache_MissWhenEmpty(t *testing.T) {
	c := New()
	_, _, ok := c.Get(Key{Name: "a.csv", Size: 10})
	assert.False(t, ok)
}

func TestCache_HitOnSameIdentity(t *testing.T) {
	c := New()
	k := Key{Name: "a.csv", Size: 10}
	c.Put(k, []model.Transaction{{OriginalRaw: "ZEPTO"}}, statement.FormatHDFCBank)

	txns, format, ok := c.Get(k)
	require.True(t, ok)
	assert.Equal(t, statement.FormatHDFCBank, format)
	require.Len(t, txns, 1)
	assert.Equal(t, "ZEPTO", txns[0].OriginalRaw)
}

func TestCache_InvalidatedOnIdentityChange(t *testing.T) {
	c := New()
	old := Key{Name: "a.csv", Size: 10}
	c.Put(old, []model.Transaction{{OriginalRaw: "OLD"}}, statement.FormatHDFCBank)
	c.Put(Key{Name: "b.csv", Size: 20}, []model.Transaction{{OriginalRaw: "NEW"}}, statement.FormatHDFCCard)

	_, _, ok := c.Get(old)
	assert.False(t, ok)
}

func TestCache_SizeChangeIsNewIdentity(t *testing.T) {
	c := New()
	c.Put(Key{Name: "a.csv", Size: 10}, nil, statement.FormatUnknown)
	_, _, ok := c.Get(Key{Name: "a.csv", Size: 11})
	assert.False(t, ok)
}

func TestCache_ReturnsCopies(t *testing.T) {
	// Mutating a cached result must not leak back into the cache; it is
	// never the source of truth for OriginalRaw matching.
	c := New()
	k := Key{Name: "a.csv", Size: 10}
	c.Put(k, []model.Transaction{{OriginalRaw: "ZEPTO"}}, statement.FormatHDFCBank)

	txns, _, ok := c.Get(k)
	require.True(t, ok)
	txns[0].Description = "mutated"

	fresh, _, ok := c.Get(k)
	require.True(t, ok)
	assert.Empty(t, fresh[0].Description)
}
