package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/username/comdirectparser/src/models"
	"github.com/username/comdirectparser/src/utils"
)

var (
	// "Finanzreport Nr. 03 per 31.05.2023" - the as-of date applies to every
	// saldo line of the report.
	reportAsOfRe = regexp.MustCompile(`per\s+([0-9]{2}\.[0-9]{2}\.[0-9]{4})`)
	// "Saldo in EUR" - the report states its currency once, in the column
	// header of the Kontoübersicht block.
	reportCurrencyRe = regexp.MustCompile(`Saldo in ` + currencyPattern)
	signedAmountRe   = regexp.MustCompile(`^[+-]?[0-9.]*,[0-9]{2}$`)
	germanDateRe     = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
	accountNumberRe  = regexp.MustCompile(`^[0-9][0-9 ]*$`)
)

// ParseAccountReport extracts a Finanzreport into its two sub-collections:
// one SaldoEntry per sub-account line of the Kontoübersicht block and one
// GiroTransactionEntry per line item of the Girokonto detail section. The
// report carries no account header; its own as-of date and currency are
// read from the report body.
func ParseAccountReport(doc models.RawDocument) ([]models.SaldoEntry, []models.GiroTransactionEntry, error) {
	am := reportAsOfRe.FindStringSubmatch(doc.Text)
	if am == nil {
		return nil, nil, fmt.Errorf("%w: report date (per DD.MM.YYYY) in %s", ErrFieldMissing, doc.Filename)
	}
	asOfDate, err := utils.NormalizeGermanDate(am[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: report date %q in %s: %v", ErrFieldMissing, am[1], doc.Filename, err)
	}

	lines := strings.Split(doc.Text, "\n")

	overviewStart, overviewEnd := regionBounds(lines, 0, "Kontoübersicht", "Gesamtsaldo")
	if overviewStart < 0 || overviewEnd < 0 {
		return nil, nil, fmt.Errorf("%w: Kontoübersicht block in %s", ErrFieldMissing, doc.Filename)
	}
	overview := lines[overviewStart+1 : overviewEnd]

	currency := ""
	for _, line := range overview {
		if cm := reportCurrencyRe.FindStringSubmatch(line); cm != nil {
			currency = cm[1]
			break
		}
	}
	if currency == "" {
		return nil, nil, fmt.Errorf("%w: report currency (Saldo in ...) in %s", ErrFieldMissing, doc.Filename)
	}

	var saldos []models.SaldoEntry
	for _, line := range overview {
		entry, ok := parseSaldoLine(line)
		if !ok {
			continue
		}
		entry.Filename = doc.Filename
		entry.Currency = currency
		entry.AsOfDate = asOfDate
		saldos = append(saldos, entry)
	}

	// The Girokonto detail section follows the overview; a report for an
	// account setup without a checking account simply lacks it.
	giros, err := parseGiroSection(doc, lines, overviewEnd, currency)
	if err != nil {
		return nil, nil, err
	}

	return saldos, giros, nil
}

// regionBounds finds the line indices of the startMarker line and the next
// endMarker line after it, scanning from the given offset. Either index is
// -1 when its marker does not occur.
func regionBounds(lines []string, from int, startMarker, endMarker string) (int, int) {
	start := -1
	for i := from; i < len(lines); i++ {
		if strings.Contains(lines[i], startMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, -1
	}
	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], endMarker) {
			return start, i
		}
	}
	return start, -1
}

// parseSaldoLine reads one sub-account line of the overview block:
//
//	Girokonto            1234567890        +1.234,56
//	Depot                                  +5.432,10
//
// Column 1 is the account label, the middle column an optional account
// number, the last column the signed balance. The balance may additionally
// carry the report currency as a prefix inside its column.
func parseSaldoLine(line string) (models.SaldoEntry, bool) {
	cols := SplitColumns(line)
	if len(cols) < 2 {
		return models.SaldoEntry{}, false
	}

	balanceCol := cols[len(cols)-1]
	if fields := strings.Fields(balanceCol); len(fields) == 2 && IsSupportedCurrency(fields[0]) {
		balanceCol = fields[1]
	}
	if !signedAmountRe.MatchString(balanceCol) {
		return models.SaldoEntry{}, false
	}
	balance, err := utils.ParseGermanNumber(strings.TrimPrefix(balanceCol, "+"))
	if err != nil {
		return models.SaldoEntry{}, false
	}

	entry := models.SaldoEntry{
		AccountLabel: cols[0],
		Balance:      balance,
	}
	if len(cols) > 2 && accountNumberRe.MatchString(cols[1]) {
		entry.AccountNumber = cols[1]
	}
	return entry, true
}

// parseGiroSection reads the transaction lines between the "Girokonto"
// section header and the "Alter"/"Neuer" Saldo footer:
//
//	01.02.2023   01.02.2023   Lastschrift   REWE SAGT DANKE   -54,32
func parseGiroSection(doc models.RawDocument, lines []string, from int, currency string) ([]models.GiroTransactionEntry, error) {
	start := -1
	for i := from + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], "Girokonto") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, nil
	}

	var giros []models.GiroTransactionEntry
	for _, line := range lines[start+1:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Alter") || strings.HasPrefix(trimmed, "Neuer") {
			break
		}
		cols := SplitColumns(line)
		if len(cols) < 4 || !germanDateRe.MatchString(cols[0]) || !germanDateRe.MatchString(cols[1]) {
			continue
		}
		amountCol := cols[len(cols)-1]
		if !signedAmountRe.MatchString(amountCol) {
			continue
		}

		bookingDate, err := utils.NormalizeGermanDate(cols[0])
		if err != nil {
			return nil, fmt.Errorf("%w: giro booking date %q in %s: %v", ErrFieldMissing, cols[0], doc.Filename, err)
		}
		valueDate, err := utils.NormalizeGermanDate(cols[1])
		if err != nil {
			return nil, fmt.Errorf("%w: giro value date %q in %s: %v", ErrFieldMissing, cols[1], doc.Filename, err)
		}
		amount, err := utils.ParseGermanNumber(strings.TrimPrefix(amountCol, "+"))
		if err != nil {
			return nil, fmt.Errorf("%w: giro amount %q in %s: %v", ErrFieldMissing, amountCol, doc.Filename, err)
		}

		giros = append(giros, models.GiroTransactionEntry{
			Filename:        doc.Filename,
			BookingDate:     bookingDate,
			ValueDate:       valueDate,
			TransactionType: cols[2],
			Details:         strings.Join(cols[3:len(cols)-1], " "),
			Amount:          amount,
			Currency:        currency,
		})
	}
	return giros, nil
}
