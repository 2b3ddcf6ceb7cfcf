// Package catalog stores the enumeration inputs: candidate properties
// and borrowers with their loan products.
package catalog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/database"
	"github.com/aristath/relocate/internal/domain"
)

// PropertyRepository handles database operations for candidate properties.
type PropertyRepository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *database.DB, log zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{
		db:  db,
		log: log.With().Str("component", "property_repository").Logger(),
	}
}

// List returns all candidate properties in insertion order.
func (r *PropertyRepository) List() ([]domain.CandidateProperty, error) {
	rows, err := r.db.Query(`
		SELECT category, price, rent_per_unit, unit_count, appreciation_rate, monthly_carrying_cost
		FROM candidate_properties
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.CandidateProperty
	for rows.Next() {
		var p domain.CandidateProperty
		if err := rows.Scan(&p.Category, &p.Price, &p.RentPerUnit, &p.UnitCount, &p.AppreciationRate, &p.MonthlyCarryingCost); err != nil {
			return nil, fmt.Errorf("failed to scan candidate property: %w", err)
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

// Add inserts a candidate property.
func (r *PropertyRepository) Add(p domain.CandidateProperty) error {
	_, err := r.db.Exec(`
		INSERT INTO candidate_properties (category, price, rent_per_unit, unit_count, appreciation_rate, monthly_carrying_cost)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.Category, p.Price, p.RentPerUnit, p.UnitCount, p.AppreciationRate, p.MonthlyCarryingCost)
	if err != nil {
		return fmt.Errorf("failed to insert candidate property %s: %w", p.Category, err)
	}

	r.log.Debug().Str("category", p.Category).Float64("price", p.Price).Msg("Candidate property added")
	return nil
}

// Count returns the number of stored candidate properties.
func (r *PropertyRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM candidate_properties`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count candidate properties: %w", err)
	}
	return n, nil
}
