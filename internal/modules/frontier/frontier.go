// Package frontier selects the Pareto-optimal subset of evaluated
// scenarios over two competing return objectives.
package frontier

import (
	"sort"

	"github.com/aristath/relocate/internal/domain"
)

// Objective extracts one maximized metric from a result.
type Objective func(domain.CalculationResult) float64

// Predicate filters results before frontier selection.
type Predicate func(domain.CalculationResult) bool

// EffectiveCashflowAPY is the default first objective.
func EffectiveCashflowAPY(r domain.CalculationResult) float64 {
	return r.EffectiveCashflowAPY
}

// AnnualizedROI is the default second objective.
func AnnualizedROI(r domain.CalculationResult) float64 {
	return r.AnnualizedROI
}

// MaxDebtToIncome returns the default feasibility predicate: a
// debt-to-income ratio strictly below the given percentage.
func MaxDebtToIncome(limit float64) Predicate {
	return func(r domain.CalculationResult) bool {
		return r.DebtToIncome < limit
	}
}

// Select returns the non-dominated subset of the feasible results.
//
// Result B dominates A iff B is at least as good on both objectives and
// strictly better on at least one. The scan is O(n²) over the filtered
// set, which is fine for the bounded grids this system produces
// (hundreds of points). The frontier is returned ascending by the first
// objective.
func Select(results []domain.CalculationResult, obj1, obj2 Objective, feasible Predicate) []domain.CalculationResult {
	filtered := make([]domain.CalculationResult, 0, len(results))
	for _, r := range results {
		if feasible == nil || feasible(r) {
			filtered = append(filtered, r)
		}
	}

	frontier := make([]domain.CalculationResult, 0, len(filtered))
	for i, a := range filtered {
		dominated := false
		for j, b := range filtered {
			if i == j {
				continue
			}
			if dominates(b, a, obj1, obj2) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, a)
		}
	}

	sort.SliceStable(frontier, func(i, j int) bool {
		return obj1(frontier[i]) < obj1(frontier[j])
	})

	return frontier
}

// dominates reports whether b weakly dominates a with at least one
// strict improvement.
func dominates(b, a domain.CalculationResult, obj1, obj2 Objective) bool {
	b1, b2 := obj1(b), obj2(b)
	a1, a2 := obj1(a), obj2(a)
	return b1 >= a1 && b2 >= a2 && (b1 > a1 || b2 > a2)
}

// Point is one frontier entry shaped for plotting.
type Point struct {
	Objective1 float64 `json:"objective1"`
	Objective2 float64 `json:"objective2"`
	Label      string  `json:"label"`
	ID         string  `json:"id"`
}

// Points projects a frontier onto (objective1, objective2, label, id)
// tuples, preserving order.
func Points(frontier []domain.CalculationResult, obj1, obj2 Objective) []Point {
	points := make([]Point, len(frontier))
	for i, r := range frontier {
		points[i] = Point{
			Objective1: obj1(r),
			Objective2: obj2(r),
			Label:      r.Scenario.Name,
			ID:         r.Scenario.ID,
		}
	}
	return points
}
