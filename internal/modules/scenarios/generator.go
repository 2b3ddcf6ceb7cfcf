// Package scenarios enumerates the decision grid and feeds it through
// the evaluator.
//
// The grid is the Cartesian product of candidate properties, the fixed
// down-payment steps, borrowers, and rented-unit counts. Enumeration is
// deliberately brute force: the grid is bounded (a few hundred points)
// and the discretization IS the semantics - a finer grid changes the
// answer, so no solver replaces it.
package scenarios

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/domain"
	"github.com/aristath/relocate/internal/modules/evaluation"
	"github.com/aristath/relocate/internal/modules/financing"
	"github.com/aristath/relocate/internal/modules/proceeds"
)

// DownPaymentGrid is the ordered set of down-payment fractions the
// generator explores. Coarser above 40% because loan pricing stops
// changing much there.
var DownPaymentGrid = []float64{0, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.50, 0.60, 0.70, 0.80}

// BaselineID identifies the synthetic hold-and-rent scenario every grid
// run includes as its comparison anchor.
const BaselineID = "baseline"

// GridRequest carries everything one grid run needs.
type GridRequest struct {
	Source       domain.SourceProperty      `json:"source"`
	Candidates   []domain.CandidateProperty `json:"candidates"`
	Borrowers    []domain.Borrower          `json:"borrowers"`
	FallbackRent float64                    `json:"fallback_rent"`
	HorizonYears int                        `json:"horizon_years"`
}

// Generator enumerates scenarios and evaluates them. The batch grid and
// the interactive path share the one evaluator it holds.
type Generator struct {
	evaluator *evaluation.Evaluator
	log       zerolog.Logger
}

// New creates a generator around an evaluator.
func New(evaluator *evaluation.Evaluator, log zerolog.Logger) *Generator {
	return &Generator{
		evaluator: evaluator,
		log:       log.With().Str("component", "scenario_generator").Logger(),
	}
}

// Evaluate runs a single scenario through the shared evaluator. This is
// the interactive "current selection" path: unlike the grid it applies
// no qualification or affordability pruning, so the evaluator's
// default-rate and default-income fallbacks may engage.
func (g *Generator) Evaluate(s domain.Scenario, src domain.SourceProperty, horizonYears int) domain.CalculationResult {
	return g.evaluator.Evaluate(s, src, horizonYears)
}

// Run enumerates the full grid and returns one result per feasible
// scenario, baseline first. Infeasible combinations are pruned before
// evaluation: no qualifying loan product, or an initial outlay the sale
// proceeds cannot cover.
func (g *Generator) Run(req GridRequest) []domain.CalculationResult {
	results := make([]domain.CalculationResult, 0, 1+g.upperBound(req))

	baseline := domain.Scenario{
		ID:           BaselineID,
		Name:         "Keep source property, rent locally",
		FallbackRent: req.FallbackRent,
	}
	results = append(results, g.evaluator.Evaluate(baseline, req.Source, req.HorizonYears))

	netProceeds := proceeds.Net(req.Source)
	closingRate := g.evaluator.Policy().ClosingCostRate
	skippedLoan := 0
	skippedAfford := 0

	for _, cand := range req.Candidates {
		for _, pct := range DownPaymentGrid {
			outlay := cand.Price*pct + cand.Price*closingRate
			for bi := range req.Borrowers {
				borrower := req.Borrowers[bi]
				if _, ok := financing.BestLoan(borrower, pct); !ok {
					skippedLoan++
					continue
				}
				if outlay > netProceeds {
					skippedAfford++
					continue
				}
				for units := 0; units <= cand.UnitCount; units++ {
					s := g.buildScenario(cand, pct, &req.Borrowers[bi], units, req.FallbackRent, len(req.Borrowers) > 1)
					results = append(results, g.evaluator.Evaluate(s, req.Source, req.HorizonYears))
				}
			}
		}
	}

	g.log.Debug().
		Int("results", len(results)).
		Int("skipped_no_loan", skippedLoan).
		Int("skipped_unaffordable", skippedAfford).
		Msg("Grid enumeration complete")

	return results
}

// buildScenario constructs one grid cell with its deterministic id.
// Ids encode property category, down-payment percent and rented-unit
// count so repeated runs label the same cell identically; a borrower
// segment is appended only when several borrowers are enumerated.
func (g *Generator) buildScenario(cand domain.CandidateProperty, pct float64, borrower *domain.Borrower, units int, fallbackRent float64, multiBorrower bool) domain.Scenario {
	pctInt := int(math.Round(pct * 100))
	id := fmt.Sprintf("%s-dp%d-r%d", slug(cand.Category), pctInt, units)
	name := fmt.Sprintf("%s, %d%% down, %d rented", cand.Category, pctInt, units)
	if multiBorrower {
		id = fmt.Sprintf("%s-b%s", id, slug(borrower.Name))
		name = fmt.Sprintf("%s (%s)", name, borrower.Name)
	}

	return domain.Scenario{
		ID:           id,
		Name:         name,
		FallbackRent: fallbackRent,
		Purchase: &domain.PurchasePlan{
			Property:       cand,
			DownPaymentPct: pct,
			Borrower:       borrower,
			UnitsRented:    units,
		},
	}
}

// upperBound sizes the result slice before pruning.
func (g *Generator) upperBound(req GridRequest) int {
	n := 0
	for _, cand := range req.Candidates {
		n += len(DownPaymentGrid) * len(req.Borrowers) * (cand.UnitCount + 1)
	}
	return n
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}
