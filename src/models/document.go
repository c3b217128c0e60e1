package models

// DocumentType tags the kind of comdirect document a raw text was classified
// as. The string values double as the type column in the database and in
// JSON output.
type DocumentType string

const (
	DocTypeDividendIncome DocumentType = "divertrags" // Ertragsgutschrift
	DocTypeDividend       DocumentType = "div"        // Dividendengutschrift
	DocTypeBuy            DocumentType = "buy"        // Wertpapierkauf
	DocTypeSell           DocumentType = "sell"       // Wertpapierverkauf
	DocTypeTax            DocumentType = "tax"        // Steuerliche Behandlung
	DocTypeReport         DocumentType = "report"     // Finanzreport
	DocTypeUnclassified   DocumentType = "unclassified"
)

// RawDocument is the immutable input to the parsing pipeline: the file name
// and the plain text extracted from the PDF.
type RawDocument struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}
