package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/username/comdirectparser/src/models"
	"github.com/username/comdirectparser/src/utils"
)

var (
	// "St.  100          EUR  123,45" - share count, cost currency and
	// price per share behind the unit marker.
	tradePriceRe = regexp.MustCompile(`(?:St\.|Stk)\s+(\S+)\s{2,}` + currencyPattern + `\s*([0-9.]*,[0-9]+)`)
	// "Ausführungsplatz  :  FRANKFURT"
	tradeExchangeRe = regexp.MustCompile(`Ausführungsplatz\s*:\s*(.*)`)
)

// tradeFeeLabels are the five fee lines a confirmation may carry. Each is
// independently optional; which ones appear varies by broker and venue.
var (
	feeCommission        = "Provision"
	feeAggregate         = "Summe Entgelte"
	feeBroker            = "Maklercourtage"
	feeReRegistration    = "Umschreibeentgelt"
	feeVariableExchange  = "Variable Börsenspesen"
	tradeNetProceedsLine = "Zu Ihren Gunsten nach Steuern"
)

// feeLineRe builds the pattern for one labeled fee line, e.g.
// "  Provision  : EUR  9,90". Extra words between label and colon are
// tolerated; the amount must be anchored on a known currency code.
func feeLineRe(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ ]*` + regexp.QuoteMeta(label) + `[^:\n]*:[ ]*` + currencyPattern + `[ ]*(-?[0-9.]*,[0-9]+)`)
}

var (
	commissionRe       = feeLineRe(feeCommission)
	aggregateFeeRe     = feeLineRe(feeAggregate)
	brokerFeeRe        = feeLineRe(feeBroker)
	reRegistrationRe   = feeLineRe(feeReRegistration)
	variableExchangeRe = feeLineRe(feeVariableExchange)
	tradeNetProceedsRe = feeLineRe(tradeNetProceedsLine)
)

// ParseTrade extracts a Wertpapierkauf or Wertpapierverkauf confirmation.
func ParseTrade(doc models.RawDocument, header models.AccountHeader, docType models.DocumentType) (models.TradeRecord, error) {
	rec := models.TradeRecord{
		Filename:          doc.Filename,
		Type:              docType,
		Account:           header.Account,
		AccountCurrency:   header.AccountCurrency,
		Date:              header.Date,
		TotalCostCurrency: header.TotalCostCurrency,
		TotalCost:         header.TotalCost,
	}

	if inst, ok := extractTradeInstrument(doc.Text); ok {
		rec.StockName = inst.stockName
		rec.WKN = inst.wkn
		rec.StockType = inst.stockType
		rec.ISIN = inst.isin
	}

	pm := tradePriceRe.FindStringSubmatch(doc.Text)
	if pm == nil {
		return rec, fmt.Errorf("%w: share count and price in %s", ErrFieldMissing, doc.Filename)
	}
	shares, err := utils.ParseGermanNumber(pm[1])
	if err != nil {
		return rec, fmt.Errorf("%w: share count %q in %s: %v", ErrFieldMissing, pm[1], doc.Filename, err)
	}
	price, err := utils.ParseGermanNumber(pm[3])
	if err != nil {
		return rec, fmt.Errorf("%w: price per share %q in %s: %v", ErrFieldMissing, pm[3], doc.Filename, err)
	}
	rec.Shares = shares
	rec.CostCurrency = pm[2]
	rec.PricePerShare = price

	// Absent fee lines are expected, not anomalous.
	rec.Commission = optionalAmount(commissionRe, doc.Text)
	rec.AggregateFee = optionalAmount(aggregateFeeRe, doc.Text)
	rec.BrokerFee = optionalAmount(brokerFeeRe, doc.Text)
	rec.ReRegistrationFee = optionalAmount(reRegistrationRe, doc.Text)
	rec.VariableExchangeFee = optionalAmount(variableExchangeRe, doc.Text)
	rec.NetProceeds = optionalAmount(tradeNetProceedsRe, doc.Text)

	em := tradeExchangeRe.FindStringSubmatch(doc.Text)
	if em == nil {
		return rec, fmt.Errorf("%w: Ausführungsplatz in %s", ErrFieldMissing, doc.Filename)
	}
	rec.Exchange = strings.TrimSpace(em[1])

	return rec, nil
}

// optionalAmount resolves one optional labeled line to a typed optional
// value: absent line -> not available, never an error.
func optionalAmount(re *regexp.Regexp, text string) models.Amount {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return models.Amount{}
	}
	v, err := utils.ParseGermanNumber(m[2])
	if err != nil {
		return models.Amount{}
	}
	return models.AmountOf(v)
}
