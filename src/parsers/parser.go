package parsers

import (
	"log/slog"

	"github.com/username/comdirectparser/src/models"
)

// Parser turns raw document texts into typed financial records.
type Parser interface {
	Parse(docs []models.RawDocument) models.ParseResult
}

type documentParser struct {
	log *slog.Logger
}

// NewParser returns a Parser writing its diagnostics to the given logger.
func NewParser(log *slog.Logger) Parser {
	return &documentParser{log: log}
}

// Parse classifies and extracts every document in input order. A document
// that cannot be classified or is missing a mandatory field produces a
// diagnostic instead of a record; it never aborts the rest of the batch.
func (p *documentParser) Parse(docs []models.RawDocument) models.ParseResult {
	var result models.ParseResult
	for _, doc := range docs {
		if err := p.parseDocument(doc, &result); err != nil {
			p.log.Warn("skipping document", "filename", doc.Filename, "error", err)
			result.Skipped = append(result.Skipped, models.SkippedDocument{
				Filename: doc.Filename,
				Reason:   err.Error(),
			})
		}
	}
	return result
}

func (p *documentParser) parseDocument(doc models.RawDocument, result *models.ParseResult) error {
	docType := Classify(doc.Text)
	if docType == models.DocTypeUnclassified {
		return ErrUnclassified
	}
	p.log.Debug("classified document", "filename", doc.Filename, "type", docType)

	// The Finanzreport has no account header and fans out into two
	// collections instead of producing a single record.
	if docType == models.DocTypeReport {
		saldos, giros, err := ParseAccountReport(doc)
		if err != nil {
			return err
		}
		result.Saldos = append(result.Saldos, saldos...)
		result.GiroTransactions = append(result.GiroTransactions, giros...)
		return nil
	}

	header, err := ParseAccountHeader(doc.Text)
	if err != nil {
		return err
	}
	if header.Empty() {
		p.log.Debug("account header not found, derived fields will be unavailable", "filename", doc.Filename)
	}

	switch docType {
	case models.DocTypeDividend:
		rec, err := ParseDividend(doc, header)
		if err != nil {
			return err
		}
		result.Dividends = append(result.Dividends, rec)
	case models.DocTypeDividendIncome:
		rec, err := ParseDividendIncome(doc, header)
		if err != nil {
			return err
		}
		result.Dividends = append(result.Dividends, rec)
	case models.DocTypeBuy, models.DocTypeSell:
		rec, err := ParseTrade(doc, header, docType)
		if err != nil {
			return err
		}
		result.Trades = append(result.Trades, rec)
	case models.DocTypeTax:
		rec, err := ParseTax(doc, header)
		if err != nil {
			return err
		}
		result.Taxes = append(result.Taxes, rec)
	}
	return nil
}
