package parsers

import (
	"github.com/username/comdirectparser/src/models"
)

// JoinDividendsWithTax pairs each dividend record with the tax statement
// sharing its reference number. A reference number links a dividend to at
// most one tax record; dividends without a matching statement are omitted
// from the result.
func JoinDividendsWithTax(dividends []models.DividendRecord, taxes []models.TaxRecord) []models.DividendTaxJoin {
	byRef := make(map[string]models.TaxRecord, len(taxes))
	for _, tax := range taxes {
		if tax.TaxReferenceNumber == "" {
			continue
		}
		if _, exists := byRef[tax.TaxReferenceNumber]; !exists {
			byRef[tax.TaxReferenceNumber] = tax
		}
	}

	var joined []models.DividendTaxJoin
	for _, div := range dividends {
		if tax, ok := byRef[div.TaxReferenceNumber]; ok {
			joined = append(joined, models.DividendTaxJoin{Dividend: div, Tax: tax})
		}
	}
	return joined
}
