// Package proceeds computes net sale proceeds for the source property.
package proceeds

import "github.com/aristath/relocate/internal/domain"

// Net returns the cash left after selling the source property:
// market value converted into the target currency, less selling costs
// (taxes + agent fees).
//
// Precondition: p.ExchangeRate != 0. This is a caller contract, not a
// runtime check; a zero rate propagates Inf/NaN by design.
func Net(p domain.SourceProperty) float64 {
	return p.MarketValue / p.ExchangeRate * (1 - p.SellingCostRate)
}
