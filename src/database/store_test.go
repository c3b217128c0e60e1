package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/comdirectparser/src/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	InitDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() {
		DB.Close()
		DB = nil
	})
}

func sampleResult() models.ParseResult {
	return models.ParseResult{
		Dividends: []models.DividendRecord{{
			Filename:           "dividend.pdf",
			Type:               models.DocTypeDividend,
			Account:            "DE12 3456 7890 1234 5678 90",
			AccountCurrency:    "EUR",
			Date:               "2023-05-15",
			NetBeforeTax:       120.00,
			WKN:                "A1B2C3",
			StockName:          "FOO CORP",
			Shares:             100,
			ISIN:               "US1234567890",
			DividendPerShare:   1.36,
			GrossAmount:        136.36,
			Fees:               models.AmountOf(16.36),
			TaxReferenceNumber: "09876543210",
		}},
		Trades: []models.TradeRecord{{
			Filename:        "buy.pdf",
			Type:            models.DocTypeBuy,
			Account:         "DE98 7654 3210 9876 5432 10",
			AccountCurrency: "EUR",
			Date:            "2023-05-16",
			TotalCost:       12357.40,
			StockName:       "SAP SE",
			WKN:             "716460",
			ISIN:            "DE0007164600",
			Shares:          100,
			CostCurrency:    "EUR",
			PricePerShare:   123.45,
			Commission:      models.AmountOf(9.90),
			Exchange:        "FRANKFURT",
		}},
		Taxes: []models.TaxRecord{{
			Filename:           "tax.pdf",
			Type:               models.DocTypeTax,
			Date:               "2023-05-20",
			TaxType:            models.TaxTypeDividend,
			BeforeTax:          100.00,
			AfterTax:           85.00,
			TotalTax:           15.00,
			TaxCurrency:        "EUR",
			TaxReferenceNumber: "09876543210",
		}},
		Saldos: []models.SaldoEntry{{
			Filename:     "finanzreport.pdf",
			AccountLabel: "Girokonto",
			Balance:      3445.68,
			Currency:     "EUR",
			AsOfDate:     "2023-05-31",
		}},
		GiroTransactions: []models.GiroTransactionEntry{{
			Filename:        "finanzreport.pdf",
			BookingDate:     "2023-02-01",
			ValueDate:       "2023-02-01",
			TransactionType: "Lastschrift",
			Details:         "REWE SAGT DANKE MANNHEIM",
			Amount:          -54.32,
			Currency:        "EUR",
		}},
	}
}

func TestInsertParseResult(t *testing.T) {
	setupTestDB(t)

	stats, err := InsertParseResult(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Inserted)
	assert.Equal(t, 0, stats.Duplicates)

	var count int
	require.NoError(t, DB.QueryRow(`SELECT COUNT(*) FROM div`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestInsertParseResultSkipsDuplicates(t *testing.T) {
	setupTestDB(t)

	_, err := InsertParseResult(sampleResult())
	require.NoError(t, err)

	stats, err := InsertParseResult(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Inserted)
	assert.Equal(t, 5, stats.Duplicates)

	var count int
	require.NoError(t, DB.QueryRow(`SELECT COUNT(*) FROM buy_sell`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestInsertParseResultStoresNullForUnavailableAmounts(t *testing.T) {
	setupTestDB(t)

	result := sampleResult()
	result.Trades[0].NetProceeds = models.Amount{}

	_, err := InsertParseResult(result)
	require.NoError(t, err)

	var netProceeds any
	require.NoError(t, DB.QueryRow(`SELECT net_proceeds FROM buy_sell`).Scan(&netProceeds))
	assert.Nil(t, netProceeds)

	var commission float64
	require.NoError(t, DB.QueryRow(`SELECT commission FROM buy_sell`).Scan(&commission))
	assert.Equal(t, 9.90, commission)
}
