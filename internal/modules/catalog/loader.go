package catalog

import (
	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/domain"
)

// Seed inserts a starter catalog when both tables are empty, so a fresh
// deployment has something to evaluate before anything is added through
// the API. An already-populated catalog is left untouched.
func Seed(properties *PropertyRepository, borrowers *BorrowerRepository, log zerolog.Logger) error {
	propCount, err := properties.Count()
	if err != nil {
		return err
	}
	borrowerCount, err := borrowers.Count()
	if err != nil {
		return err
	}
	if propCount > 0 || borrowerCount > 0 {
		return nil
	}

	for _, p := range defaultProperties() {
		if err := properties.Add(p); err != nil {
			return err
		}
	}
	for _, b := range defaultBorrowers() {
		if err := borrowers.Add(b); err != nil {
			return err
		}
	}

	log.Info().
		Int("properties", len(defaultProperties())).
		Int("borrowers", len(defaultBorrowers())).
		Msg("Seeded empty catalog with defaults")

	return nil
}

func defaultProperties() []domain.CandidateProperty {
	return []domain.CandidateProperty{
		{Category: "condo", Price: 550000, RentPerUnit: 1200, UnitCount: 2, AppreciationRate: 0.03, MonthlyCarryingCost: 850},
		{Category: "townhouse", Price: 700000, RentPerUnit: 1400, UnitCount: 3, AppreciationRate: 0.035, MonthlyCarryingCost: 600},
		{Category: "single_family", Price: 850000, RentPerUnit: 1600, UnitCount: 3, AppreciationRate: 0.04, MonthlyCarryingCost: 500},
	}
}

func defaultBorrowers() []domain.Borrower {
	return []domain.Borrower{
		{
			Name:          "primary",
			MonthlyIncome: 8000,
			LoanProducts: []domain.LoanProduct{
				{Category: "conventional", AnnualRate: 0.062, MinDownPaymentPct: 0.05, MonthlyInsurance: 180},
				{Category: "va", AnnualRate: 0.055, MinDownPaymentPct: 0},
				{Category: "jumbo", AnnualRate: 0.068, MinDownPaymentPct: 0.20},
			},
		},
	}
}
