package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/username/comdirectparser/src/models"
	"github.com/username/comdirectparser/src/utils"
)

var (
	taxTreatmentRe = regexp.MustCompile(`(?m)^Steuerliche Behandlung:\s*(.*)`)
	taxRefRe       = regexp.MustCompile(`Referenz\S*\s+(\S+)`)
	// "Zu Ihren Gunsten vor Steuern   EUR   100,00" - two of these lines
	// appear in document order: before tax first, after tax second.
	taxValueRe = regexp.MustCompile(`(?m)^Zu Ihren \w+\s+\S+\s+\S+\s+` + currencyPattern + `\s*(-?[0-9.]*,[0-9]+)`)
)

// ParseTax extracts a Steuerliche Behandlung document.
func ParseTax(doc models.RawDocument, header models.AccountHeader) (models.TaxRecord, error) {
	rec := models.TaxRecord{
		Filename:        doc.Filename,
		Type:            models.DocTypeTax,
		Account:         header.Account,
		AccountCurrency: header.AccountCurrency,
		Date:            header.Date,
	}

	tm := taxTreatmentRe.FindStringSubmatch(doc.Text)
	if tm == nil {
		return rec, fmt.Errorf("%w: Steuerliche Behandlung line in %s", ErrFieldMissing, doc.Filename)
	}
	rec.TaxType = classifyTaxTreatment(tm[1])

	rm := taxRefRe.FindStringSubmatch(doc.Text)
	if rm == nil {
		return rec, fmt.Errorf("%w: reference number in %s", ErrFieldMissing, doc.Filename)
	}
	rec.TaxReferenceNumber = rm[1]

	values := taxValueRe.FindAllStringSubmatch(doc.Text, -1)
	if len(values) < 2 {
		return rec, fmt.Errorf("%w: expected two 'Zu Ihren' amount lines in %s, found %d", ErrFieldMissing, doc.Filename, len(values))
	}
	beforeTax, err := utils.ParseGermanNumber(values[0][2])
	if err != nil {
		return rec, fmt.Errorf("%w: before-tax amount in %s: %v", ErrFieldMissing, doc.Filename, err)
	}
	afterTax, err := utils.ParseGermanNumber(values[1][2])
	if err != nil {
		return rec, fmt.Errorf("%w: after-tax amount in %s: %v", ErrFieldMissing, doc.Filename, err)
	}

	rec.TaxCurrency = values[0][1]
	rec.BeforeTax = beforeTax
	rec.AfterTax = afterTax
	rec.TotalTax = utils.RoundFloat(beforeTax-afterTax, 2)

	return rec, nil
}

// classifyTaxTreatment maps the free-text treatment description to a tax
// type by substring rule.
func classifyTaxTreatment(treatment string) models.TaxType {
	switch {
	case strings.Contains(treatment, "Dividende"):
		return models.TaxTypeDividend
	case strings.Contains(strings.ToLower(treatment), "verkauf"):
		return models.TaxTypeSell
	default:
		return models.TaxTypeUnknown
	}
}
