package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/relocate/internal/domain"
)

// result builds a minimal CalculationResult with the two default
// objectives and DTI pinned.
func result(id string, apy, roi, dti float64) domain.CalculationResult {
	return domain.CalculationResult{
		Scenario:             domain.Scenario{ID: id, Name: id},
		EffectiveCashflowAPY: apy,
		AnnualizedROI:        roi,
		DebtToIncome:         dti,
	}
}

func TestSelect_KeepsNonDominated(t *testing.T) {
	results := []domain.CalculationResult{
		result("a", 1.0, 9.0, 10), // frontier: best roi
		result("b", 5.0, 5.0, 10), // frontier: balanced
		result("c", 9.0, 1.0, 10), // frontier: best apy
		result("d", 4.0, 4.0, 10), // dominated by b
		result("e", 1.0, 8.0, 10), // dominated by a
	}

	frontier := Select(results, EffectiveCashflowAPY, AnnualizedROI, nil)

	require.Len(t, frontier, 3)
	assert.Equal(t, "a", frontier[0].Scenario.ID) // ascending by objective1
	assert.Equal(t, "b", frontier[1].Scenario.ID)
	assert.Equal(t, "c", frontier[2].Scenario.ID)
}

func TestSelect_WeakDominationRemovesTies(t *testing.T) {
	// Equal on apy, worse on roi: dominated.
	results := []domain.CalculationResult{
		result("better", 5.0, 5.0, 10),
		result("worse", 5.0, 4.0, 10),
	}

	frontier := Select(results, EffectiveCashflowAPY, AnnualizedROI, nil)

	require.Len(t, frontier, 1)
	assert.Equal(t, "better", frontier[0].Scenario.ID)
}

func TestSelect_IdenticalPointsBothSurvive(t *testing.T) {
	// Neither strictly improves on the other, so neither dominates.
	results := []domain.CalculationResult{
		result("x", 5.0, 5.0, 10),
		result("y", 5.0, 5.0, 10),
	}

	frontier := Select(results, EffectiveCashflowAPY, AnnualizedROI, nil)

	assert.Len(t, frontier, 2)
}

func TestSelect_FeasibilityFilterAppliedFirst(t *testing.T) {
	results := []domain.CalculationResult{
		result("risky", 9.0, 9.0, 60), // would dominate everything, but DTI too high
		result("safe", 5.0, 5.0, 20),
	}

	frontier := Select(results, EffectiveCashflowAPY, AnnualizedROI, MaxDebtToIncome(43))

	require.Len(t, frontier, 1)
	assert.Equal(t, "safe", frontier[0].Scenario.ID)
}

func TestSelect_DTIGateIsStrict(t *testing.T) {
	results := []domain.CalculationResult{
		result("at-limit", 5.0, 5.0, 43.0),
	}

	frontier := Select(results, EffectiveCashflowAPY, AnnualizedROI, MaxDebtToIncome(43))

	assert.Empty(t, frontier, "DTI exactly at the limit is infeasible")
}

// TestSelect_FrontierProperties checks both directions of the frontier
// definition on a denser point set: no member is dominated, and every
// excluded feasible point is dominated by some member.
func TestSelect_FrontierProperties(t *testing.T) {
	results := []domain.CalculationResult{
		result("p1", 0.0, 10.0, 10),
		result("p2", 2.0, 9.0, 10),
		result("p3", 2.0, 7.0, 10),
		result("p4", 4.0, 8.0, 10),
		result("p5", 5.0, 5.0, 10),
		result("p6", 6.0, 6.0, 10),
		result("p7", 7.0, 2.0, 10),
		result("p8", 8.0, 0.0, 10),
		result("p9", 3.0, 3.0, 10),
	}

	frontier := Select(results, EffectiveCashflowAPY, AnnualizedROI, nil)
	inFrontier := map[string]bool{}
	for _, f := range frontier {
		inFrontier[f.Scenario.ID] = true
	}

	for _, a := range frontier {
		for _, b := range results {
			if a.Scenario.ID == b.Scenario.ID {
				continue
			}
			assert.False(t, dominates(b, a, EffectiveCashflowAPY, AnnualizedROI),
				"frontier member %s is dominated by %s", a.Scenario.ID, b.Scenario.ID)
		}
	}

	for _, a := range results {
		if inFrontier[a.Scenario.ID] {
			continue
		}
		dominatedBySomeone := false
		for _, f := range frontier {
			if dominates(f, a, EffectiveCashflowAPY, AnnualizedROI) {
				dominatedBySomeone = true
				break
			}
		}
		assert.True(t, dominatedBySomeone,
			"excluded point %s is not dominated by any frontier member", a.Scenario.ID)
	}
}

func TestPoints(t *testing.T) {
	frontier := []domain.CalculationResult{
		result("a", 1.0, 9.0, 10),
		result("b", 5.0, 5.0, 10),
	}

	points := Points(frontier, EffectiveCashflowAPY, AnnualizedROI)

	require.Len(t, points, 2)
	assert.Equal(t, Point{Objective1: 1.0, Objective2: 9.0, Label: "a", ID: "a"}, points[0])
	assert.Equal(t, Point{Objective1: 5.0, Objective2: 5.0, Label: "b", ID: "b"}, points[1])
}

func TestSummarize(t *testing.T) {
	results := []domain.CalculationResult{
		result("a", 1.0, 9.0, 10),
		result("b", 5.0, 5.0, 10),
		result("c", 9.0, 1.0, 10),
		result("risky", 99.0, 99.0, 90),
	}

	s := Summarize(results, EffectiveCashflowAPY, AnnualizedROI, MaxDebtToIncome(43))

	assert.Equal(t, 3, s.FeasibleCount)
	assert.Equal(t, 3, s.FrontierSize)
	assert.InDelta(t, 5.0, s.Objective1.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Objective1.Min, 1e-9)
	assert.InDelta(t, 9.0, s.Objective1.Max, 1e-9)
	assert.InDelta(t, 5.0, s.Objective1.Median, 1e-9)
}

func TestSummarize_SinglePointHasZeroStdDev(t *testing.T) {
	results := []domain.CalculationResult{result("only", 5.0, 5.0, 10)}

	s := Summarize(results, EffectiveCashflowAPY, AnnualizedROI, nil)

	assert.Zero(t, s.Objective1.StdDev)
	assert.Zero(t, s.Objective2.StdDev)
}
