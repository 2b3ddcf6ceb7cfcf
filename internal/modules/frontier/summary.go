package frontier

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/aristath/relocate/internal/domain"
)

// ObjectiveStats describes the distribution of one objective across the
// feasible result set.
type ObjectiveStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// Summary bundles distribution statistics for both objectives plus the
// set sizes, for the reporting layer.
type Summary struct {
	FeasibleCount int            `json:"feasible_count"`
	FrontierSize  int            `json:"frontier_size"`
	Objective1    ObjectiveStats `json:"objective1"`
	Objective2    ObjectiveStats `json:"objective2"`
}

// Summarize computes distribution statistics of the two objectives over
// the feasible subset of results, alongside the frontier size.
func Summarize(results []domain.CalculationResult, obj1, obj2 Objective, feasible Predicate) Summary {
	var xs, ys []float64
	for _, r := range results {
		if feasible == nil || feasible(r) {
			xs = append(xs, obj1(r))
			ys = append(ys, obj2(r))
		}
	}

	frontier := Select(results, obj1, obj2, feasible)

	return Summary{
		FeasibleCount: len(xs),
		FrontierSize:  len(frontier),
		Objective1:    describe(xs),
		Objective2:    describe(ys),
	}
}

func describe(values []float64) ObjectiveStats {
	if len(values) == 0 {
		return ObjectiveStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		// Sample stddev of one point is NaN, which JSON cannot encode.
		std = 0
	}

	return ObjectiveStats{
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}
