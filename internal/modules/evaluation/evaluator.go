// Package evaluation computes the full financial outcome of a single
// relocation scenario.
//
// The evaluator is a pure function over its inputs: no stored state, no
// I/O, no side effects. Evaluating the same scenario twice yields
// identical results. All functions are total over their documented
// numeric domains; callers guarantee a non-zero initial outlay and
// non-zero net proceeds (division by zero is a contract violation, not
// a handled case).
package evaluation

import (
	"math"

	"github.com/aristath/relocate/internal/domain"
	"github.com/aristath/relocate/internal/modules/amortization"
	"github.com/aristath/relocate/internal/modules/financing"
	"github.com/aristath/relocate/internal/modules/proceeds"
)

// Evaluator evaluates scenarios under a fixed policy. Both the batch
// grid and the interactive single-selection path go through the same
// Evaluate method; the formulas must never fork.
type Evaluator struct {
	policy Policy
}

// New creates an evaluator with the given policy.
func New(policy Policy) *Evaluator {
	return &Evaluator{policy: policy}
}

// Policy returns the evaluator's policy constants.
func (e *Evaluator) Policy() Policy {
	return e.policy
}

// Evaluate produces the complete result for one scenario against the
// source property over the given horizon.
func (e *Evaluator) Evaluate(s domain.Scenario, src domain.SourceProperty, horizonYears int) domain.CalculationResult {
	if s.Liquidate() {
		return e.evaluatePurchase(s, src, horizonYears)
	}
	return e.evaluateHold(s, src, horizonYears)
}

// evaluateHold models keeping the source property, collecting its rent,
// and paying rent in the target market. No purchase, no mortgage, no
// imputed rent. The source asset's value is held flat over the horizon,
// so the terminal return is exactly the accumulated cashflow.
func (e *Evaluator) evaluateHold(s domain.Scenario, src domain.SourceProperty, horizonYears int) domain.CalculationResult {
	rentIncome := src.MonthlyRent / src.ExchangeRate
	monthlyCashflow := rentIncome - s.FallbackRent
	annualCashflow := monthlyCashflow * 12

	heldValue := src.MarketValue / src.ExchangeRate
	totalReturn := annualCashflow * float64(horizonYears)
	netWorth := heldValue + totalReturn

	apy := annualCashflow / heldValue * 100
	annualizedROI := (math.Pow(1+totalReturn/heldValue, 1/float64(horizonYears)) - 1) * 100

	return domain.CalculationResult{
		Scenario: s,

		MonthlyRentalIncome:      rentIncome,
		MonthlyCombinedIncome:    rentIncome,
		MonthlyCashflow:          monthlyCashflow,
		MonthlyEffectiveCashflow: monthlyCashflow,

		AnnualCashflow:          annualCashflow,
		AnnualEffectiveCashflow: annualCashflow,
		CashflowAPY:             apy,
		EffectiveCashflowAPY:    apy,

		HorizonYears:       horizonYears,
		HorizonValue:       heldValue,
		HorizonEquity:      heldValue,
		HorizonNetWorth:    netWorth,
		HorizonTotalReturn: totalReturn,
		HorizonROI:         totalReturn / heldValue * 100,
		AnnualizedROI:      annualizedROI,
	}
}

// evaluatePurchase models selling the source property and buying the
// scenario's candidate with the scenario's financing choices.
func (e *Evaluator) evaluatePurchase(s domain.Scenario, src domain.SourceProperty, horizonYears int) domain.CalculationResult {
	plan := s.Purchase
	prop := plan.Property

	downPayment := prop.Price * plan.DownPaymentPct
	closingCosts := prop.Price * e.policy.ClosingCostRate
	initialOutlay := downPayment + closingCosts
	loanAmount := prop.Price - downPayment

	// Financing. The generator prunes combinations with no qualifying
	// product, but the interactive path reaches here unfiltered, so an
	// unqualified scenario falls back to the policy default rate with
	// no insurance.
	rate := e.policy.DefaultLoanRate
	insurance := 0.0
	if plan.Borrower != nil {
		if loan, ok := financing.BestLoan(*plan.Borrower, plan.DownPaymentPct); ok {
			rate = loan.AnnualRate
			if plan.DownPaymentPct < e.policy.InsuranceWaiverPct {
				insurance = loan.MonthlyInsurance
			}
		}
	}

	netProceeds := proceeds.Net(src)
	leftoverCash := netProceeds - initialOutlay // may be negative; feasibility is the generator's job

	mortgage := amortization.MonthlyPayment(loanAmount, rate, e.policy.LoanTermYears)
	monthlyCosts := mortgage + prop.MonthlyCarryingCost + insurance

	rentalIncome := prop.RentPerUnit * float64(plan.UnitsRented)
	imputedRent := s.FallbackRent
	combinedIncome := rentalIncome + imputedRent

	monthlyCashflow := rentalIncome - monthlyCosts
	// Derived additively so that effective minus actual is exactly the
	// imputed-rent term, with no floating-point drift.
	monthlyEffective := monthlyCashflow + imputedRent

	annualCashflow := monthlyCashflow * 12
	annualEffective := monthlyEffective * 12

	horizonValue := prop.Price * math.Pow(1+prop.AppreciationRate, float64(horizonYears))
	horizonBalance := amortization.RemainingBalance(loanAmount, rate, e.policy.LoanTermYears, horizonYears*12)
	horizonEquity := horizonValue - horizonBalance

	netWorth := horizonEquity + leftoverCash + annualEffective*float64(horizonYears)
	totalReturn := netWorth - netProceeds

	// Annualized ROI compounds the net-worth ratio, not the return
	// ratio. Intentional: it answers "at what rate did the sale
	// proceeds grow into the terminal net worth".
	annualizedROI := (math.Pow(netWorth/netProceeds, 1/float64(horizonYears)) - 1) * 100

	income := e.policy.DefaultMonthlyIncome
	if plan.Borrower != nil {
		income = plan.Borrower.MonthlyIncome
	}

	return domain.CalculationResult{
		Scenario: s,

		InitialOutlay: initialOutlay,
		DownPayment:   downPayment,
		ClosingCosts:  closingCosts,
		LeftoverCash:  leftoverCash,

		MonthlyMortgage:          mortgage,
		MonthlyCarryingCost:      prop.MonthlyCarryingCost,
		MonthlyInsurance:         insurance,
		MonthlyRentalIncome:      rentalIncome,
		MonthlyImputedRent:       imputedRent,
		MonthlyCombinedIncome:    combinedIncome,
		MonthlyCashflow:          monthlyCashflow,
		MonthlyEffectiveCashflow: monthlyEffective,

		AnnualCashflow:          annualCashflow,
		AnnualEffectiveCashflow: annualEffective,
		CashflowAPY:             annualCashflow / initialOutlay * 100,
		EffectiveCashflowAPY:    annualEffective / initialOutlay * 100,

		HorizonYears:       horizonYears,
		HorizonValue:       horizonValue,
		HorizonLoanBalance: horizonBalance,
		HorizonEquity:      horizonEquity,
		HorizonNetWorth:    netWorth,
		HorizonTotalReturn: totalReturn,
		HorizonROI:         totalReturn / netProceeds * 100,
		AnnualizedROI:      annualizedROI,

		DebtToIncome:     monthlyCosts / income * 100,
		MortgageToIncome: mortgage / income * 100,
	}
}
