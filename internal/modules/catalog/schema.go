package catalog

// Schema defines the catalog database: the purchasable properties and
// the borrowers (with their loan products) the grid enumerates.
// Loan product rows are ordered by insertion id; BestLoan's stable
// tie-break depends on that order being preserved.
const Schema = `
CREATE TABLE IF NOT EXISTS candidate_properties (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT NOT NULL,
	price REAL NOT NULL,
	rent_per_unit REAL NOT NULL,
	unit_count INTEGER NOT NULL,
	appreciation_rate REAL NOT NULL,
	monthly_carrying_cost REAL NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS borrowers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	monthly_income REAL NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS loan_products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	borrower_id INTEGER NOT NULL REFERENCES borrowers(id) ON DELETE CASCADE,
	category TEXT NOT NULL,
	annual_rate REAL NOT NULL,
	min_down_payment_pct REAL NOT NULL,
	monthly_insurance REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_loan_products_borrower ON loan_products(borrower_id);
`
