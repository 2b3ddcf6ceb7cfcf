package evaluation

// Policy holds the named constants the evaluator applies when a
// scenario does not pin them down itself. They are assumptions, not
// derived values; tests and configuration may override any of them.
type Policy struct {
	// ClosingCostRate is the fraction of the purchase price spent on
	// closing (escrow, title, lender fees).
	ClosingCostRate float64

	// DefaultLoanRate is used when no loan product qualifies for the
	// requested down payment. The grid generator prunes such
	// combinations, but the interactive single-scenario path does not,
	// so the fallback must stay.
	DefaultLoanRate float64

	// DefaultMonthlyIncome backs the risk ratios when a scenario has no
	// borrower attached.
	DefaultMonthlyIncome float64

	// InsuranceWaiverPct is the down-payment fraction at or above which
	// monthly loan insurance is waived.
	InsuranceWaiverPct float64

	// LoanTermYears is the mortgage term, independent of the analysis
	// horizon.
	LoanTermYears int

	// MaxDebtToIncome is the feasibility gate (percent) used by the
	// default frontier filter.
	MaxDebtToIncome float64
}

// DefaultPolicy returns the standard assumption set.
func DefaultPolicy() Policy {
	return Policy{
		ClosingCostRate:      0.03,
		DefaultLoanRate:      0.065,
		DefaultMonthlyIncome: 5000,
		InsuranceWaiverPct:   0.20,
		LoanTermYears:        30,
		MaxDebtToIncome:      43,
	}
}
