package catalog

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/database"
	"github.com/aristath/relocate/internal/domain"
)

// BorrowerRepository handles database operations for borrowers and
// their loan products.
type BorrowerRepository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewBorrowerRepository creates a new borrower repository.
func NewBorrowerRepository(db *database.DB, log zerolog.Logger) *BorrowerRepository {
	return &BorrowerRepository{
		db:  db,
		log: log.With().Str("component", "borrower_repository").Logger(),
	}
}

// List returns all borrowers with their loan products, both in
// insertion order. Product order matters: loan selection breaks rate
// ties by first product encountered.
func (r *BorrowerRepository) List() ([]domain.Borrower, error) {
	rows, err := r.db.Query(`SELECT id, name, monthly_income FROM borrowers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query borrowers: %w", err)
	}
	defer rows.Close()

	var borrowers []domain.Borrower
	var ids []int64
	for rows.Next() {
		var id int64
		var b domain.Borrower
		if err := rows.Scan(&id, &b.Name, &b.MonthlyIncome); err != nil {
			return nil, fmt.Errorf("failed to scan borrower: %w", err)
		}
		borrowers = append(borrowers, b)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		products, err := r.loanProducts(id)
		if err != nil {
			return nil, err
		}
		borrowers[i].LoanProducts = products
	}

	return borrowers, nil
}

func (r *BorrowerRepository) loanProducts(borrowerID int64) ([]domain.LoanProduct, error) {
	rows, err := r.db.Query(`
		SELECT category, annual_rate, min_down_payment_pct, monthly_insurance
		FROM loan_products
		WHERE borrower_id = ?
		ORDER BY id
	`, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan products for borrower %d: %w", borrowerID, err)
	}
	defer rows.Close()

	var products []domain.LoanProduct
	for rows.Next() {
		var p domain.LoanProduct
		if err := rows.Scan(&p.Category, &p.AnnualRate, &p.MinDownPaymentPct, &p.MonthlyInsurance); err != nil {
			return nil, fmt.Errorf("failed to scan loan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Add inserts a borrower and their loan products in one transaction.
func (r *BorrowerRepository) Add(b domain.Borrower) error {
	err := database.WithTransaction(r.db.Conn(), func(tx *sql.Tx) error {
		res, err := tx.Exec(`INSERT INTO borrowers (name, monthly_income) VALUES (?, ?)`, b.Name, b.MonthlyIncome)
		if err != nil {
			return fmt.Errorf("failed to insert borrower %s: %w", b.Name, err)
		}

		borrowerID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get borrower id: %w", err)
		}

		for _, p := range b.LoanProducts {
			if _, err := tx.Exec(`
				INSERT INTO loan_products (borrower_id, category, annual_rate, min_down_payment_pct, monthly_insurance)
				VALUES (?, ?, ?, ?, ?)
			`, borrowerID, p.Category, p.AnnualRate, p.MinDownPaymentPct, p.MonthlyInsurance); err != nil {
				return fmt.Errorf("failed to insert loan product %s: %w", p.Category, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.Debug().Str("name", b.Name).Int("products", len(b.LoanProducts)).Msg("Borrower added")
	return nil
}

// Count returns the number of stored borrowers.
func (r *BorrowerRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM borrowers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count borrowers: %w", err)
	}
	return n, nil
}
