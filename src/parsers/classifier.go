package parsers

import (
	"strings"

	"github.com/username/comdirectparser/src/models"
)

type markerMapping struct {
	marker  string
	docType models.DocumentType
}

// documentMarkers maps document-body markers to document types. The slice
// order is an observable tie-break: when a text contains several markers,
// the first one in this declared order wins, not the one appearing earliest
// in the text.
var documentMarkers = []markerMapping{
	{"Ertragsgutschrift", models.DocTypeDividendIncome},
	{"Dividendengutschrift", models.DocTypeDividend},
	{"Wertpapierkauf", models.DocTypeBuy},
	{"Wertpapierverkauf", models.DocTypeSell},
	{"Steuerliche Behandlung", models.DocTypeTax},
	{"Finanzreport", models.DocTypeReport},
}

// Classify determines the document type from the body text alone. Returns
// DocTypeUnclassified when no known marker occurs.
func Classify(text string) models.DocumentType {
	for _, m := range documentMarkers {
		if strings.Contains(text, m.marker) {
			return m.docType
		}
	}
	return models.DocTypeUnclassified
}
