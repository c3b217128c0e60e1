package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/comdirectparser/src/models"
)

func TestParseAccountReport(t *testing.T) {
	doc := models.RawDocument{Filename: "finanzreport.pdf", Text: accountReportText}

	saldos, giros, err := ParseAccountReport(doc)
	require.NoError(t, err)

	require.Len(t, saldos, 3)
	for _, s := range saldos {
		assert.Equal(t, "2023-05-31", s.AsOfDate)
		assert.Equal(t, "EUR", s.Currency)
		assert.Equal(t, "finanzreport.pdf", s.Filename)
	}
	assert.Equal(t, "Girokonto", saldos[0].AccountLabel)
	assert.Equal(t, "1234567890", saldos[0].AccountNumber)
	assert.Equal(t, 3445.68, saldos[0].Balance)

	assert.Equal(t, "Tagesgeld PLUS", saldos[1].AccountLabel)
	assert.Equal(t, "1234567891", saldos[1].AccountNumber)
	assert.Equal(t, 10000.00, saldos[1].Balance)

	// No account number column for the Depot line.
	assert.Equal(t, "Depot", saldos[2].AccountLabel)
	assert.Empty(t, saldos[2].AccountNumber)
	assert.Equal(t, 5432.10, saldos[2].Balance)

	require.Len(t, giros, 2)
	// Day-first: 01.02.2023 is the 1st of February.
	assert.Equal(t, "2023-02-01", giros[0].BookingDate)
	assert.Equal(t, "2023-02-01", giros[0].ValueDate)
	assert.Equal(t, "Lastschrift", giros[0].TransactionType)
	assert.Equal(t, "REWE SAGT DANKE MANNHEIM", giros[0].Details)
	assert.Equal(t, -54.32, giros[0].Amount)
	assert.Equal(t, "EUR", giros[0].Currency)

	assert.Equal(t, "Übertrag", giros[1].TransactionType)
	assert.Equal(t, 2500.00, giros[1].Amount)
}

func TestParseAccountReportMissingOverviewFails(t *testing.T) {
	doc := models.RawDocument{Filename: "broken.pdf", Text: "Finanzreport Nr. 03 per 31.05.2023\nGirokonto\n"}
	_, _, err := ParseAccountReport(doc)
	assert.ErrorIs(t, err, ErrFieldMissing)
}

func TestParseAccountReportMissingDateFails(t *testing.T) {
	doc := models.RawDocument{Filename: "broken.pdf", Text: "Finanzreport\nKontoübersicht\nGesamtsaldo  +1,00\n"}
	_, _, err := ParseAccountReport(doc)
	assert.ErrorIs(t, err, ErrFieldMissing)
}

// A report without a Girokonto detail section still yields its saldo lines.
func TestParseAccountReportWithoutGiroSection(t *testing.T) {
	text := `Finanzreport Nr. 01 per 30.04.2023

Kontoübersicht
Kontoart                 Kontonummer             Saldo in EUR
Depot                                            +5.432,10
Gesamtsaldo                                      +5.432,10
`
	doc := models.RawDocument{Filename: "depot_only.pdf", Text: text}
	saldos, giros, err := ParseAccountReport(doc)
	require.NoError(t, err)
	require.Len(t, saldos, 1)
	assert.Empty(t, giros)
}
