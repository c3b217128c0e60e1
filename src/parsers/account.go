package parsers

import (
	"fmt"
	"regexp"

	"github.com/username/comdirectparser/src/models"
	"github.com/username/comdirectparser/src/utils"
)

// accountHeaderRe matches the account block shared by all document types
// except the Finanzreport: an IBAN-like account number, the account
// currency, the transaction date and a trailing currency+amount pair whose
// meaning depends on the document type.
var accountHeaderRe = regexp.MustCompile(
	`([A-Z]{2}[0-9]{2}(?: ?[0-9]{4}){4}(?: ?[0-9]{1,2}))\s{2,}` + currencyPattern +
		`\s{2,}([0-9]{2}\.[0-9]{2}\.[0-9]{4})\s{2,}` + currencyPattern +
		`\s+(-?[0-9.]*,[0-9]+)`)

// ParseAccountHeader extracts account number, account currency, transaction
// date and the trailing amount from the document text. A non-matching text
// yields an empty header and no error; downstream extractors treat derived
// quantities as unavailable in that case.
func ParseAccountHeader(text string) (models.AccountHeader, error) {
	m := accountHeaderRe.FindStringSubmatch(text)
	if m == nil {
		return models.AccountHeader{}, nil
	}

	date, err := utils.NormalizeGermanDate(m[3])
	if err != nil {
		return models.AccountHeader{}, fmt.Errorf("%w: account header date %q: %v", ErrFieldMissing, m[3], err)
	}
	totalCost, err := utils.ParseGermanNumber(m[5])
	if err != nil {
		return models.AccountHeader{}, fmt.Errorf("%w: account header amount %q: %v", ErrFieldMissing, m[5], err)
	}

	return models.AccountHeader{
		Account:           m[1],
		AccountCurrency:   m[2],
		Date:              date,
		TotalCostCurrency: m[4],
		TotalCost:         totalCost,
	}, nil
}
