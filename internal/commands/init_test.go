package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunriyer/ozark-app/internal/config"
	"github.com/varunriyer/ozark-app/internal/model"
)

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultPath))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "model: gemini-2.5-flash")
	assert.Contains(t, contents, "memory.csv")
}

func TestInit_ConfigRoundTrips(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	cfg, err := config.Load(filepath.Join(dir, config.DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	txns := []model.Transaction{
		{
			Date:        "01/04/2024",
			Description: "Zepto",
			OriginalRaw: "UPI-ZEPTO MARKETPLACE-REF-[#]",
			Amount:      decimal.RequireFromString("450.5"),
			Type:        model.Debit,
			Category:    "Groceries",
			UserNote:    "weekly veggies",
		},
	}
	require.NoError(t, writeCSV(path, txns))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, exportHeader, lines[0])
	assert.Contains(t, lines[1], "450.50")
	assert.Contains(t, lines[1], "DEBIT")
	assert.Contains(t, lines[1], "Groceries")
}

func TestWriteCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exportHeader, strings.TrimSpace(string(data)))
}
