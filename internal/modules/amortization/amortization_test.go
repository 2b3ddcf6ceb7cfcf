package amortization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_MatchesClosedForm(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		termYears  int
	}{
		{"440k at 6.2% over 30y", 440000, 0.062, 30},
		{"300k at 5% over 30y", 300000, 0.05, 30},
		{"200k at 4% over 25y", 200000, 0.04, 25},
		{"150k at 3.5% over 20y", 150000, 0.035, 20},
		{"1 at 10% over 1y", 1, 0.10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.annualRate / 12
			n := float64(tc.termYears * 12)
			expected := tc.principal * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)

			got := MonthlyPayment(tc.principal, tc.annualRate, tc.termYears)

			assert.InEpsilon(t, expected, got, 1e-6)
		})
	}
}

func TestMonthlyPayment_KnownValues(t *testing.T) {
	// 440k loan at 6.2% over 30 years is roughly $2,693/month.
	got := MonthlyPayment(440000, 0.062, 30)
	assert.InDelta(t, 2693, got, 3)

	// 300k at 5% over 30 years, cross-checked against a standard calculator.
	got = MonthlyPayment(300000, 0.05, 30)
	assert.InDelta(t, 1610.46, got, 0.5)
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// Interest-free loans divide principal evenly across the term.
	got := MonthlyPayment(120000, 0, 10)
	assert.InDelta(t, 1000.0, got, 1e-9)
}

func TestRemainingBalance_Endpoints(t *testing.T) {
	principal := 440000.0
	rate := 0.062
	years := 30

	// No payments made: full principal outstanding.
	assert.InDelta(t, principal, RemainingBalance(principal, rate, years, 0), 1e-6)

	// All payments made: balance amortizes to zero.
	assert.InDelta(t, 0, RemainingBalance(principal, rate, years, years*12), 1e-3)
}

func TestRemainingBalance_DecreasesMonotonically(t *testing.T) {
	prev := math.Inf(1)
	for p := 0; p <= 360; p += 12 {
		bal := RemainingBalance(440000, 0.062, 30, p)
		assert.Less(t, bal, prev, "balance should decrease after %d payments", p)
		prev = bal
	}
}

func TestRemainingBalance_ZeroRateIsLinear(t *testing.T) {
	// 120 payments on a 240-payment interest-free loan leaves half the principal.
	got := RemainingBalance(200000, 0, 20, 120)
	assert.InDelta(t, 100000, got, 1e-9)
}
