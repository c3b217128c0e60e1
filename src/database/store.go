package database

import (
	"fmt"
	"strings"

	"github.com/username/comdirectparser/src/models"
)

// InsertStats reports how a batch insert went: how many records were stored
// and how many were dropped as duplicates of already stored rows.
type InsertStats struct {
	Inserted   int
	Duplicates int
}

// InsertParseResult stores every record of one parse run. Individual
// duplicate-key violations drop that record only; the rest of the batch
// proceeds and is committed.
func InsertParseResult(result models.ParseResult) (InsertStats, error) {
	var stats InsertStats

	tx, err := DB.Begin()
	if err != nil {
		return stats, fmt.Errorf("beginning database transaction: %w", err)
	}
	defer tx.Rollback()

	exec := func(query string, args ...any) error {
		if _, err := tx.Exec(query, args...); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed") {
				stats.Duplicates++
				return nil
			}
			return err
		}
		stats.Inserted++
		return nil
	}

	for _, d := range result.Dividends {
		err := exec(`INSERT INTO div (filename, type, account, account_currency, date, net_before_tax,
			wkn, stock_name, shares, isin, dividend_per_share, gross_amount, fees,
			source_tax_percentage, source_tax, tax_reference_number)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.Filename, string(d.Type), d.Account, d.AccountCurrency, d.Date, d.NetBeforeTax,
			d.WKN, d.StockName, d.Shares, d.ISIN, d.DividendPerShare, d.GrossAmount, nullable(d.Fees),
			nullable(d.SourceTaxPercentage), nullable(d.SourceTax), d.TaxReferenceNumber)
		if err != nil {
			return stats, fmt.Errorf("inserting dividend record %s: %w", d.Filename, err)
		}
	}

	for _, t := range result.Trades {
		err := exec(`INSERT INTO buy_sell (filename, type, account, account_currency, date,
			total_cost_currency, total_cost, stock_name, wkn, stock_type, isin, shares,
			cost_currency, price_per_share, commission, aggregate_fee, broker_fee,
			re_registration_fee, variable_exchange_fee, net_proceeds, exchange)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Filename, string(t.Type), t.Account, t.AccountCurrency, t.Date,
			t.TotalCostCurrency, t.TotalCost, t.StockName, t.WKN, t.StockType, t.ISIN, t.Shares,
			t.CostCurrency, t.PricePerShare, nullable(t.Commission), nullable(t.AggregateFee), nullable(t.BrokerFee),
			nullable(t.ReRegistrationFee), nullable(t.VariableExchangeFee), nullable(t.NetProceeds), t.Exchange)
		if err != nil {
			return stats, fmt.Errorf("inserting trade record %s: %w", t.Filename, err)
		}
	}

	for _, t := range result.Taxes {
		err := exec(`INSERT INTO tax (filename, type, account, account_currency, date, tax_type,
			before_tax, after_tax, total_tax, tax_currency, tax_reference_number)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Filename, string(t.Type), t.Account, t.AccountCurrency, t.Date, string(t.TaxType),
			t.BeforeTax, t.AfterTax, t.TotalTax, t.TaxCurrency, t.TaxReferenceNumber)
		if err != nil {
			return stats, fmt.Errorf("inserting tax record %s: %w", t.Filename, err)
		}
	}

	for _, s := range result.Saldos {
		err := exec(`INSERT INTO saldos (filename, account_label, account_number, balance, currency, date)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.Filename, s.AccountLabel, s.AccountNumber, s.Balance, s.Currency, s.AsOfDate)
		if err != nil {
			return stats, fmt.Errorf("inserting saldo entry %s: %w", s.Filename, err)
		}
	}

	for _, g := range result.GiroTransactions {
		err := exec(`INSERT INTO giro_transactions (filename, date, value_date, transaction_type, details, amount, currency)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.Filename, g.BookingDate, g.ValueDate, g.TransactionType, g.Details, g.Amount, g.Currency)
		if err != nil {
			return stats, fmt.Errorf("inserting giro transaction %s: %w", g.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("committing records: %w", err)
	}
	return stats, nil
}

// nullable maps an optional amount to its database representation: NULL when
// the value is not available.
func nullable(a models.Amount) any {
	if !a.Valid {
		return nil
	}
	return a.Value
}
