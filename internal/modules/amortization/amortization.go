// Package amortization provides fixed-rate loan payment and balance math.
//
// Both functions are total over their documented domains: callers
// guarantee termYears > 0 and paymentsMade >= 0. No error returns.
package amortization

import "math"

// MonthlyPayment returns the level monthly payment for a fully
// amortizing fixed-rate loan.
//
// Standard annuity formula:
//
//	M = P * r(1+r)^n / ((1+r)^n - 1)
//
// with r = annualRate/12 and n = termYears*12. A zero rate degenerates
// to straight principal division.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if annualRate == 0 {
		return principal / n
	}
	r := annualRate / 12
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// RemainingBalance returns the outstanding principal after paymentsMade
// monthly payments on a fixed-rate loan.
//
// Standard amortization balance:
//
//	B = P * ((1+r)^n - (1+r)^p) / ((1+r)^n - 1)
//
// with p = paymentsMade. Zero rate amortizes linearly.
func RemainingBalance(principal, annualRate float64, termYears, paymentsMade int) float64 {
	n := float64(termYears * 12)
	if annualRate == 0 {
		return principal - (principal/n)*float64(paymentsMade)
	}
	r := annualRate / 12
	growth := math.Pow(1+r, n)
	paid := math.Pow(1+r, float64(paymentsMade))
	return principal * (growth - paid) / (growth - 1)
}
