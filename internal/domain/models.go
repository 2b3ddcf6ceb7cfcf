// Package domain provides core domain models and types.
package domain

// SourceProperty is the asset being liquidated to fund a purchase.
// MarketValue and MonthlyRent are denominated in the source market's
// currency; ExchangeRate converts into the target market's currency
// (target amount = source amount / ExchangeRate).
type SourceProperty struct {
	MarketValue     float64 `json:"market_value"`
	MonthlyRent     float64 `json:"monthly_rent"`
	ExchangeRate    float64 `json:"exchange_rate"`
	SellingCostRate float64 `json:"selling_cost_rate"` // taxes + agent fees, as a fraction
}

// CandidateProperty is one purchasable option in the target market.
type CandidateProperty struct {
	Category            string  `json:"category"`
	Price               float64 `json:"price"`
	RentPerUnit         float64 `json:"rent_per_unit"`
	UnitCount           int     `json:"unit_count"`
	AppreciationRate    float64 `json:"appreciation_rate"`
	MonthlyCarryingCost float64 `json:"monthly_carrying_cost"` // HOA + tax + insurance
}

// LoanProduct is one financing option offered to a borrower.
// MonthlyInsurance applies only below the down-payment waiver threshold.
type LoanProduct struct {
	Category          string  `json:"category"`
	AnnualRate        float64 `json:"annual_rate"`
	MinDownPaymentPct float64 `json:"min_down_payment_pct"`
	MonthlyInsurance  float64 `json:"monthly_insurance"`
}

// Borrower holds income and the loan products available to them.
// Product order is preserved; qualification is computed per evaluation.
type Borrower struct {
	Name          string        `json:"name"`
	MonthlyIncome float64       `json:"monthly_income"`
	LoanProducts  []LoanProduct `json:"loan_products"`
}

// PurchasePlan carries the buy-side choices of a liquidate-and-buy
// scenario. Its presence on a Scenario is the variant tag: a Scenario
// without a PurchasePlan is a hold-and-rent scenario.
type PurchasePlan struct {
	Property       CandidateProperty `json:"property"`
	DownPaymentPct float64           `json:"down_payment_pct"`
	Borrower       *Borrower         `json:"borrower,omitempty"`
	UnitsRented    int               `json:"units_rented"` // 0..Property.UnitCount
}

// Scenario is the unit of evaluation. A pure value: constructed once,
// evaluated, then discarded. FallbackRent is the monthly rent paid in
// the target market when the source property is kept (hold-and-rent),
// or credited as imputed rent when buying.
type Scenario struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	FallbackRent float64       `json:"fallback_rent"`
	Purchase     *PurchasePlan `json:"purchase,omitempty"`
}

// Liquidate reports whether this scenario sells the source property to
// fund a purchase.
func (s Scenario) Liquidate() bool {
	return s.Purchase != nil
}

// CalculationResult bundles a Scenario with every derived figure the
// evaluator produces. Monetary fields are in the target currency;
// percentage fields are expressed as percentages (42.0 = 42%).
// Never mutated after creation.
type CalculationResult struct {
	Scenario Scenario `json:"scenario"`

	// Upfront
	InitialOutlay float64 `json:"initial_outlay"` // down payment + closing costs
	DownPayment   float64 `json:"down_payment"`
	ClosingCosts  float64 `json:"closing_costs"`
	LeftoverCash  float64 `json:"leftover_cash"` // may be negative

	// Monthly
	MonthlyMortgage          float64 `json:"monthly_mortgage"`
	MonthlyCarryingCost      float64 `json:"monthly_carrying_cost"`
	MonthlyInsurance         float64 `json:"monthly_insurance"`
	MonthlyRentalIncome      float64 `json:"monthly_rental_income"`
	MonthlyImputedRent       float64 `json:"monthly_imputed_rent"`
	MonthlyCombinedIncome    float64 `json:"monthly_combined_income"`
	MonthlyCashflow          float64 `json:"monthly_cashflow"`
	MonthlyEffectiveCashflow float64 `json:"monthly_effective_cashflow"`

	// Annualized
	AnnualCashflow          float64 `json:"annual_cashflow"`
	AnnualEffectiveCashflow float64 `json:"annual_effective_cashflow"`
	CashflowAPY             float64 `json:"cashflow_apy"`
	EffectiveCashflowAPY    float64 `json:"effective_cashflow_apy"`

	// Horizon projection
	HorizonYears       int     `json:"horizon_years"`
	HorizonValue       float64 `json:"horizon_value"`
	HorizonLoanBalance float64 `json:"horizon_loan_balance"`
	HorizonEquity      float64 `json:"horizon_equity"`
	HorizonNetWorth    float64 `json:"horizon_net_worth"`
	HorizonTotalReturn float64 `json:"horizon_total_return"`
	HorizonROI         float64 `json:"horizon_roi"`
	AnnualizedROI      float64 `json:"annualized_roi"`

	// Risk ratios
	DebtToIncome     float64 `json:"debt_to_income"`
	MortgageToIncome float64 `json:"mortgage_to_income"`
}
