package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountHeader(t *testing.T) {
	text := "Die Gutschrift erfolgt mit Valuta auf Konto\n" +
		"DE12 3456 7890 1234 5678 90    EUR     15.05.2023        EUR      120,00\n"

	header, err := ParseAccountHeader(text)
	require.NoError(t, err)
	require.False(t, header.Empty())
	assert.Equal(t, "DE12 3456 7890 1234 5678 90", header.Account)
	assert.Equal(t, "EUR", header.AccountCurrency)
	assert.Equal(t, "2023-05-15", header.Date)
	assert.Equal(t, "EUR", header.TotalCostCurrency)
	assert.Equal(t, 120.00, header.TotalCost)
}

func TestParseAccountHeaderNoMatchYieldsEmptyHeader(t *testing.T) {
	header, err := ParseAccountHeader("Dividendengutschrift ohne Kontozeile")
	assert.NoError(t, err)
	assert.True(t, header.Empty())
}

// An amount next to an unknown currency token must not match: the closed
// currency set anchors the pattern.
func TestParseAccountHeaderUnknownCurrency(t *testing.T) {
	text := "DE12 3456 7890 1234 5678 90    XXX     15.05.2023        XXX      120,00\n"
	header, err := ParseAccountHeader(text)
	assert.NoError(t, err)
	assert.True(t, header.Empty())
}

func TestParseAccountHeaderThousandsAmount(t *testing.T) {
	text := "DE98 7654 3210 9876 5432 10    EUR     16.05.2023        EUR   12.332,60\n"
	header, err := ParseAccountHeader(text)
	require.NoError(t, err)
	assert.Equal(t, 12332.60, header.TotalCost)
}
