// Package financing selects the best qualifying loan product for a
// borrower at a given down-payment fraction.
package financing

import "github.com/aristath/relocate/internal/domain"

// BestLoan filters the borrower's products to those whose minimum
// down-payment requirement is satisfied and returns the lowest-rate
// survivor. Ties keep the first-encountered product, so the borrower's
// product order is significant only among equal rates.
//
// The second return value is false when no product qualifies. That is a
// normal outcome, not an error: the grid generator uses it to prune
// infeasible combinations.
func BestLoan(b domain.Borrower, downPaymentPct float64) (domain.LoanProduct, bool) {
	var best domain.LoanProduct
	found := false
	for _, p := range b.LoanProducts {
		if p.MinDownPaymentPct > downPaymentPct {
			continue
		}
		if !found || p.AnnualRate < best.AnnualRate {
			best = p
			found = true
		}
	}
	return best, found
}
