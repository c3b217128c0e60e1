package utils

import (
	"time"
)

const (
	// GermanDateFormat is the day-first form comdirect documents use.
	GermanDateFormat = "02.01.2006"
	// ISODateFormat is the form records and database keys use.
	ISODateFormat = "2006-01-02"
)

// NormalizeGermanDate converts "31.05.2023" to "2023-05-31". Day-first
// interpretation: "01.02.2023" is the 1st of February, not the 2nd of
// January.
func NormalizeGermanDate(dateStr string) (string, error) {
	t, err := time.Parse(GermanDateFormat, dateStr)
	if err != nil {
		return "", err
	}
	return t.Format(ISODateFormat), nil
}
