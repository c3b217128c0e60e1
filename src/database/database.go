package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/comdirectparser/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens (or creates) the sqlite database and ensures the five record
// tables exist. The uniqueness constraints implement the per-collection
// duplicate rules: re-inserting an already stored record is a tolerated
// no-op, not an error.
func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}
	DB = db

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS div (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		type TEXT NOT NULL,
		account TEXT,
		account_currency TEXT,
		date TEXT,
		net_before_tax REAL,
		wkn TEXT,
		stock_name TEXT,
		shares REAL,
		isin TEXT,
		dividend_per_share REAL,
		gross_amount REAL,
		fees REAL,
		source_tax_percentage REAL,
		source_tax REAL,
		tax_reference_number TEXT,
		UNIQUE(date, tax_reference_number, filename)
	);

	CREATE TABLE IF NOT EXISTS buy_sell (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		type TEXT NOT NULL,
		account TEXT,
		account_currency TEXT,
		date TEXT,
		total_cost_currency TEXT,
		total_cost REAL,
		stock_name TEXT,
		wkn TEXT,
		stock_type TEXT,
		isin TEXT,
		shares REAL,
		cost_currency TEXT,
		price_per_share REAL,
		commission REAL,
		aggregate_fee REAL,
		broker_fee REAL,
		re_registration_fee REAL,
		variable_exchange_fee REAL,
		net_proceeds REAL,
		exchange TEXT,
		tax_reference_number TEXT NOT NULL DEFAULT '',
		UNIQUE(date, tax_reference_number, filename)
	);

	CREATE TABLE IF NOT EXISTS tax (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		type TEXT NOT NULL,
		account TEXT,
		account_currency TEXT,
		date TEXT,
		tax_type TEXT,
		before_tax REAL,
		after_tax REAL,
		total_tax REAL,
		tax_currency TEXT,
		tax_reference_number TEXT,
		UNIQUE(date, tax_reference_number, filename)
	);

	CREATE TABLE IF NOT EXISTS saldos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		account_label TEXT NOT NULL,
		account_number TEXT,
		balance REAL,
		currency TEXT,
		date TEXT NOT NULL,
		UNIQUE(date, account_label)
	);

	CREATE TABLE IF NOT EXISTS giro_transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		date TEXT NOT NULL,
		value_date TEXT,
		transaction_type TEXT NOT NULL,
		details TEXT,
		amount REAL,
		currency TEXT,
		UNIQUE(date, transaction_type)
	);
	`

	if _, err := DB.Exec(createTableStatement); err != nil {
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("database tables ensured", "databasePath", databasePath)
	}
}
