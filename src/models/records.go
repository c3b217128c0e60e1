package models

// AccountHeader holds the account block shared by every document type except
// the Finanzreport: account number, account currency, transaction date and a
// trailing amount whose meaning depends on the document type (net before tax
// for dividend documents, total cost for trades). A zero value means the
// header pattern did not match; downstream extractors tolerate that by
// leaving derived quantities unavailable.
type AccountHeader struct {
	Account           string  `json:"account"`
	AccountCurrency   string  `json:"account_currency"`
	Date              string  `json:"date"` // YYYY-MM-DD
	TotalCostCurrency string  `json:"total_cost_currency"`
	TotalCost         float64 `json:"total_cost"`
}

// Empty reports whether the header pattern did not match.
func (h AccountHeader) Empty() bool {
	return h.Account == ""
}

// DividendRecord is one parsed Dividendengutschrift or Ertragsgutschrift.
// All monetary figures are expressed in the account currency, rounded to two
// decimal places.
type DividendRecord struct {
	Filename        string       `json:"filename"`
	Type            DocumentType `json:"type"`
	Account         string       `json:"account"`
	AccountCurrency string       `json:"account_currency"`
	Date            string       `json:"date"`
	NetBeforeTax    float64      `json:"net_before_tax"`

	WKN       string  `json:"wkn"`
	StockName string  `json:"stock_name"`
	Shares    float64 `json:"shares"`
	ISIN      string  `json:"isin"`

	DividendPerShare float64 `json:"dividend_per_share"`
	GrossAmount      float64 `json:"gross_amount"`
	Fees             Amount  `json:"fees"` // gross - net before tax; unavailable when the header was missing

	// Only the Ertragsgutschrift variant carries source tax.
	SourceTaxPercentage Amount `json:"source_tax_percentage"`
	SourceTax           Amount `json:"source_tax"`

	TaxReferenceNumber string `json:"tax_reference_number"`
}

// TradeRecord is one parsed Wertpapierkauf or Wertpapierverkauf.
type TradeRecord struct {
	Filename          string       `json:"filename"`
	Type              DocumentType `json:"type"` // buy or sell
	Account           string       `json:"account"`
	AccountCurrency   string       `json:"account_currency"`
	Date              string       `json:"date"`
	TotalCostCurrency string       `json:"total_cost_currency"`
	TotalCost         float64      `json:"total_cost"`

	StockName string  `json:"stock_name"`
	WKN       string  `json:"wkn"`
	StockType string  `json:"stock_type"`
	ISIN      string  `json:"isin"`
	Shares    float64 `json:"shares"`

	CostCurrency  string  `json:"cost_currency"`
	PricePerShare float64 `json:"price_per_share"`

	// Each fee line is independently optional.
	Commission          Amount `json:"commission"`            // Provision
	AggregateFee        Amount `json:"aggregate_fee"`         // Summe Entgelte
	BrokerFee           Amount `json:"broker_fee"`            // Maklercourtage
	ReRegistrationFee   Amount `json:"re_registration_fee"`   // Umschreibeentgelt
	VariableExchangeFee Amount `json:"variable_exchange_fee"` // Variable Börsenspesen
	NetProceeds         Amount `json:"net_proceeds"`          // Zu Ihren Gunsten nach Steuern

	Exchange string `json:"exchange"` // Ausführungsplatz
}

// TaxType classifies the free-text treatment line of a Steuerliche
// Behandlung document.
type TaxType string

const (
	TaxTypeDividend TaxType = "div"
	TaxTypeSell     TaxType = "sell"
	TaxTypeUnknown  TaxType = "unknown"
)

// TaxRecord is one parsed Steuerliche Behandlung document.
type TaxRecord struct {
	Filename        string       `json:"filename"`
	Type            DocumentType `json:"type"`
	Account         string       `json:"account"`
	AccountCurrency string       `json:"account_currency"`
	Date            string       `json:"date"`

	TaxType            TaxType `json:"tax_type"`
	BeforeTax          float64 `json:"before_tax"`
	AfterTax           float64 `json:"after_tax"`
	TotalTax           float64 `json:"total_tax"` // before - after
	TaxCurrency        string  `json:"tax_currency"`
	TaxReferenceNumber string  `json:"tax_reference_number"`
}

// SaldoEntry is one sub-account line from the Kontoübersicht section of a
// Finanzreport. The as-of date of the report is stamped on every entry.
type SaldoEntry struct {
	Filename      string  `json:"filename"`
	AccountLabel  string  `json:"account_label"`
	AccountNumber string  `json:"account_number,omitempty"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
	AsOfDate      string  `json:"as_of_date"` // YYYY-MM-DD
}

// GiroTransactionEntry is one line item from the Girokonto detail section of
// a Finanzreport.
type GiroTransactionEntry struct {
	Filename        string  `json:"filename"`
	BookingDate     string  `json:"booking_date"` // YYYY-MM-DD
	ValueDate       string  `json:"value_date"`   // YYYY-MM-DD
	TransactionType string  `json:"transaction_type"`
	Details         string  `json:"details"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// SkippedDocument names a document that produced no record, with the reason.
type SkippedDocument struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// ParseResult aggregates everything one parse run produced. Collections are
// append-only; order within each collection equals input processing order.
type ParseResult struct {
	Dividends        []DividendRecord       `json:"dividends"`
	Trades           []TradeRecord          `json:"trades"`
	Taxes            []TaxRecord            `json:"taxes"`
	Saldos           []SaldoEntry           `json:"saldos"`
	GiroTransactions []GiroTransactionEntry `json:"giro_transactions"`
	Skipped          []SkippedDocument      `json:"skipped"`
}

// DividendTaxJoin pairs a dividend record with the tax statement that shares
// its reference number.
type DividendTaxJoin struct {
	Dividend DividendRecord `json:"dividend"`
	Tax      TaxRecord      `json:"tax"`
}
