package models

// Amount is a monetary value that may legitimately be absent from a document.
// Fee structure varies by broker and venue, so a missing fee line is expected
// rather than anomalous; the zero value means "not available". Modelled after
// sql.NullFloat64 so absence can never be confused with 0.00.
type Amount struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// AmountOf wraps a present value.
func AmountOf(v float64) Amount {
	return Amount{Value: v, Valid: true}
}
