package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{
		"15/03/24",
		"15/03/2024",
		"1/2/23",
		"01-02-23",
		"01-02-2023",
		" 15/03/2024 ",
	}
	for _, s := range valid {
		assert.True(t, IsValidDate(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"1/2/3",     // too short
		"15/03-24",  // mixed separators
		"15.03.24",  // unsupported separator
		"2024/03/15x",
		"abc",
		"15/03/24 10:00", // trailing time
	}
	for _, s := range invalid {
		assert.False(t, IsValidDate(s), "expected invalid: %q", s)
	}
}

func TestNormalizeDate_WidensTwoDigitYear(t *testing.T) {
	assert.Equal(t, "01/02/2023", NormalizeDate("01-02-23"))
	assert.Equal(t, "15/03/2024", NormalizeDate("15/03/24"))
}

func TestNormalizeDate_KeepsFourDigitYear(t *testing.T) {
	assert.Equal(t, "12/25/2024", NormalizeDate("12/25/2024"))
	assert.Equal(t, "01/02/2023", NormalizeDate("01-02-2023"))
}

func TestNormalizeDate_PreservesComponentOrder(t *testing.T) {
	// Day/month order is kept exactly as the source wrote it.
	assert.Equal(t, "25/12/2024", NormalizeDate("25-12-24"))
}
