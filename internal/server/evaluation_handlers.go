package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/config"
	"github.com/aristath/relocate/internal/domain"
	"github.com/aristath/relocate/internal/modules/frontier"
	"github.com/aristath/relocate/internal/modules/scenarios"
)

// EvaluationHandlers serves the evaluator: single scenarios, full grid
// runs, and the Pareto frontier over a grid run.
type EvaluationHandlers struct {
	generator *scenarios.Generator
	cfg       *config.Config
	log       zerolog.Logger
}

// NewEvaluationHandlers creates evaluation handlers.
func NewEvaluationHandlers(generator *scenarios.Generator, cfg *config.Config, log zerolog.Logger) *EvaluationHandlers {
	return &EvaluationHandlers{
		generator: generator,
		cfg:       cfg,
		log:       log.With().Str("handler", "evaluation").Logger(),
	}
}

// EvaluateRequest is the single-scenario ("current selection") request.
type EvaluateRequest struct {
	Scenario     domain.Scenario       `json:"scenario"`
	Source       domain.SourceProperty `json:"source"`
	HorizonYears int                   `json:"horizon_years"`
}

// HandleEvaluate evaluates one scenario directly. Unlike the grid, this
// path applies no qualification or affordability pruning; the
// evaluator's documented fallbacks cover unqualified scenarios.
func (h *EvaluationHandlers) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.HorizonYears <= 0 {
		http.Error(w, "horizon_years must be positive", http.StatusBadRequest)
		return
	}
	if req.Source.ExchangeRate == 0 {
		http.Error(w, "source exchange_rate must be non-zero", http.StatusBadRequest)
		return
	}
	if req.Scenario.ID == "" {
		req.Scenario.ID = uuid.New().String()
	}

	result := h.generator.Evaluate(req.Scenario, req.Source, req.HorizonYears)
	writeJSON(w, http.StatusOK, result)
}

// HandleGrid runs the full scenario grid and returns every result,
// baseline first.
func (h *EvaluationHandlers) HandleGrid(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeGridRequest(w, r)
	if !ok {
		return
	}

	results := h.generator.Run(req)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// FrontierResponse bundles the Pareto frontier with plot points and
// distribution statistics over the feasible set.
type FrontierResponse struct {
	Frontier []domain.CalculationResult `json:"frontier"`
	Points   []frontier.Point           `json:"points"`
	Summary  frontier.Summary           `json:"summary"`
}

// HandleFrontier runs the grid and returns its Pareto-optimal subset
// over effective-cashflow APY and annualized ROI, gated on the policy's
// debt-to-income limit.
func (h *EvaluationHandlers) HandleFrontier(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeGridRequest(w, r)
	if !ok {
		return
	}

	results := h.generator.Run(req)

	obj1 := frontier.EffectiveCashflowAPY
	obj2 := frontier.AnnualizedROI
	feasible := frontier.MaxDebtToIncome(h.cfg.Policy.MaxDebtToIncome)

	selected := frontier.Select(results, obj1, obj2, feasible)

	writeJSON(w, http.StatusOK, FrontierResponse{
		Frontier: selected,
		Points:   frontier.Points(selected, obj1, obj2),
		Summary:  frontier.Summarize(results, obj1, obj2, feasible),
	})
}

func (h *EvaluationHandlers) decodeGridRequest(w http.ResponseWriter, r *http.Request) (scenarios.GridRequest, bool) {
	var req scenarios.GridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.HorizonYears <= 0 {
		http.Error(w, "horizon_years must be positive", http.StatusBadRequest)
		return req, false
	}
	if req.Source.ExchangeRate == 0 {
		http.Error(w, "source exchange_rate must be non-zero", http.StatusBadRequest)
		return req, false
	}
	return req, true
}
