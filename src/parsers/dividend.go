package parsers

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/username/comdirectparser/src/models"
	"github.com/username/comdirectparser/src/utils"
)

var (
	// Dividendengutschrift: "USD  1,50   Dividende pro Stück"
	dividendPerShareRe = regexp.MustCompile(currencyPattern + `\s+([0-9.]*,[0-9]+)\s+Dividende pro Stück`)
	// Ertragsgutschrift: "USD  1,50 Ausschüttung pro Stück" and variants;
	// only the trailing unit word is stable across templates.
	incomePerShareRe = regexp.MustCompile(currencyPattern + `\s*([0-9]+(?:\.[0-9]+)?,[0-9]+).*Stück`)
	grossAmountRe    = regexp.MustCompile(`Bruttobetrag:\s+` + currencyPattern + `\s+(\S+)`)
	sourceTaxRe      = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?,[0-9]+)\s*% Quellensteuer\s+` + currencyPattern + `\s+([0-9]+(?:\.[0-9]+)?,[0-9]+)`)
	forexRateRe      = regexp.MustCompile(`Devisenkurs:\s+\S+\s+([0-9.]*,[0-9]+)`)
	// "(Referenz-Nr. 09876543210)" - the number is the join key to the later
	// Steuerliche Behandlung document.
	dividendRefRe = regexp.MustCompile(`Referenz\S*\s+(\S+)\)`)
)

// ParseDividend extracts a Dividendengutschrift document.
func ParseDividend(doc models.RawDocument, header models.AccountHeader) (models.DividendRecord, error) {
	return parseDividendDocument(doc, header, models.DocTypeDividend)
}

// ParseDividendIncome extracts an Ertragsgutschrift document. It differs
// from ParseDividend only in the per-share line shape and in additionally
// carrying the source tax percentage and amount.
func ParseDividendIncome(doc models.RawDocument, header models.AccountHeader) (models.DividendRecord, error) {
	return parseDividendDocument(doc, header, models.DocTypeDividendIncome)
}

func parseDividendDocument(doc models.RawDocument, header models.AccountHeader, docType models.DocumentType) (models.DividendRecord, error) {
	rec := models.DividendRecord{
		Filename:        doc.Filename,
		Type:            docType,
		Account:         header.Account,
		AccountCurrency: header.AccountCurrency,
		Date:            header.Date,
		NetBeforeTax:    header.TotalCost,
	}

	if inst, ok := extractDividendInstrument(doc.Text); ok {
		rec.WKN = inst.wkn
		rec.StockName = inst.stockName
		rec.Shares = inst.shares
		rec.ISIN = inst.isin
	}

	perShareRe := dividendPerShareRe
	if docType == models.DocTypeDividendIncome {
		perShareRe = incomePerShareRe
	}
	m := perShareRe.FindStringSubmatch(doc.Text)
	if m == nil {
		return rec, fmt.Errorf("%w: dividend per share in %s", ErrFieldMissing, doc.Filename)
	}
	dividendCurrency := m[1]
	perShare, err := utils.ParseGermanDecimal(m[2])
	if err != nil {
		return rec, fmt.Errorf("%w: dividend per share in %s: %v", ErrFieldMissing, doc.Filename, err)
	}

	gm := grossAmountRe.FindStringSubmatch(doc.Text)
	if gm == nil {
		return rec, fmt.Errorf("%w: Bruttobetrag in %s", ErrFieldMissing, doc.Filename)
	}
	gross, err := utils.ParseGermanDecimal(gm[2])
	if err != nil {
		return rec, fmt.Errorf("%w: Bruttobetrag in %s: %v", ErrFieldMissing, doc.Filename, err)
	}

	// The Devisenkurs line is only present (and only needed) when the
	// dividend is paid in a currency other than the account currency.
	rate := decimal.NewFromInt(1)
	if dividendCurrency != header.AccountCurrency {
		fm := forexRateRe.FindStringSubmatch(doc.Text)
		if fm == nil {
			return rec, fmt.Errorf("%w: Devisenkurs in %s", ErrFieldMissing, doc.Filename)
		}
		rate, err = utils.ParseGermanDecimal(fm[1])
		if err != nil {
			return rec, fmt.Errorf("%w: Devisenkurs in %s: %v", ErrFieldMissing, doc.Filename, err)
		}
		// A zero rate cannot be divided by; treat it like an absent line.
		if rate.IsZero() {
			return rec, fmt.Errorf("%w: Devisenkurs is zero in %s", ErrFieldMissing, doc.Filename)
		}
	}

	rec.DividendPerShare = ConvertAtRate(perShare, rate)
	rec.GrossAmount = ConvertAtRate(gross, rate)

	if docType == models.DocTypeDividendIncome {
		sm := sourceTaxRe.FindStringSubmatch(doc.Text)
		if sm == nil {
			return rec, fmt.Errorf("%w: Quellensteuer in %s", ErrFieldMissing, doc.Filename)
		}
		pct, err := utils.ParseGermanNumber(sm[1])
		if err != nil {
			return rec, fmt.Errorf("%w: Quellensteuer percentage in %s: %v", ErrFieldMissing, doc.Filename, err)
		}
		tax, err := utils.ParseGermanDecimal(sm[3])
		if err != nil {
			return rec, fmt.Errorf("%w: Quellensteuer amount in %s: %v", ErrFieldMissing, doc.Filename, err)
		}
		rec.SourceTaxPercentage = models.AmountOf(pct)
		rec.SourceTax = models.AmountOf(ConvertAtRate(tax, rate))
	}

	// Fees are derived from the already-converted gross and the net amount
	// the account header carries; without a header they stay unavailable.
	if !header.Empty() {
		rec.Fees = models.AmountOf(utils.RoundFloat(rec.GrossAmount-header.TotalCost, 2))
	}

	rm := dividendRefRe.FindStringSubmatch(doc.Text)
	if rm == nil {
		return rec, fmt.Errorf("%w: reference number in %s", ErrFieldMissing, doc.Filename)
	}
	rec.TaxReferenceNumber = rm[1]

	return rec, nil
}
