package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/relocate/internal/config"
	"github.com/aristath/relocate/internal/database"
	"github.com/aristath/relocate/internal/domain"
	"github.com/aristath/relocate/internal/modules/catalog"
	"github.com/aristath/relocate/internal/modules/evaluation"
	"github.com/aristath/relocate/internal/modules/scenarios"
	"github.com/aristath/relocate/internal/modules/snapshots"
)

var memCounter int

func testServer(t *testing.T) *Server {
	t.Helper()

	memCounter++
	catalogDB, err := database.New(database.Config{
		Path: fmt.Sprintf("file:server_catalog_%d?mode=memory&cache=shared", memCounter),
		Name: "catalog",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalogDB.Close() })
	require.NoError(t, catalogDB.ApplySchema(catalog.Schema))

	snapDB, err := database.New(database.Config{
		Path:    fmt.Sprintf("file:server_snapshots_%d?mode=memory&cache=shared", memCounter),
		Profile: database.ProfileCache,
		Name:    "snapshots",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = snapDB.Close() })
	require.NoError(t, snapDB.ApplySchema(snapshots.Schema))

	cfg := &config.Config{
		Port:   8080,
		Policy: evaluation.DefaultPolicy(),
	}

	return New(Config{
		Log:        zerolog.Nop(),
		Cfg:        cfg,
		Generator:  scenarios.New(evaluation.New(cfg.Policy), zerolog.Nop()),
		Properties: catalog.NewPropertyRepository(catalogDB, zerolog.Nop()),
		Borrowers:  catalog.NewBorrowerRepository(catalogDB, zerolog.Nop()),
		Snapshots:  snapshots.NewRepository(snapDB, zerolog.Nop()),
	})
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func gridRequest() scenarios.GridRequest {
	return scenarios.GridRequest{
		Source: domain.SourceProperty{
			MarketValue:     2800000,
			MonthlyRent:     2800,
			ExchangeRate:    7.27,
			SellingCostRate: 0.036,
		},
		Candidates: []domain.CandidateProperty{
			{Category: "condo", Price: 550000, RentPerUnit: 1200, UnitCount: 2, AppreciationRate: 0.03, MonthlyCarryingCost: 850},
		},
		Borrowers: []domain.Borrower{
			{
				Name:          "primary",
				MonthlyIncome: 8000,
				LoanProducts: []domain.LoanProduct{
					{Category: "conventional", AnnualRate: 0.062, MinDownPaymentPct: 0.05, MonthlyInsurance: 180},
				},
			},
		},
		FallbackRent: 850,
		HorizonYears: 5,
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHandleEvaluate(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/api/evaluate", EvaluateRequest{
		Scenario: domain.Scenario{
			ID:           "manual",
			Name:         "Manual selection",
			FallbackRent: 850,
		},
		Source:       gridRequest().Source,
		HorizonYears: 5,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.CalculationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "manual", result.Scenario.ID)
	assert.InDelta(t, -464.86, result.MonthlyCashflow, 0.01)
}

func TestHandleEvaluate_AssignsIDWhenMissing(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/api/evaluate", EvaluateRequest{
		Scenario:     domain.Scenario{FallbackRent: 850},
		Source:       gridRequest().Source,
		HorizonYears: 5,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.CalculationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Scenario.ID)
}

func TestHandleEvaluate_RejectsBadInput(t *testing.T) {
	s := testServer(t)

	// Zero horizon.
	rec := postJSON(t, s, "/api/evaluate", EvaluateRequest{Source: gridRequest().Source})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Zero exchange rate.
	rec = postJSON(t, s, "/api/evaluate", EvaluateRequest{HorizonYears: 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGrid(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/api/grid", gridRequest())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int                        `json:"count"`
		Results []domain.CalculationResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Greater(t, resp.Count, 1)
	assert.Equal(t, scenarios.BaselineID, resp.Results[0].Scenario.ID)
}

func TestHandleFrontier(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/api/frontier", gridRequest())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FrontierResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Frontier)
	require.Len(t, resp.Points, len(resp.Frontier))
	assert.Positive(t, resp.Summary.FeasibleCount)
	assert.Equal(t, len(resp.Frontier), resp.Summary.FrontierSize)

	// Every frontier member respects the DTI gate.
	for _, r := range resp.Frontier {
		assert.Less(t, r.DebtToIncome, 43.0)
	}

	// Points come back ascending by the first objective.
	for i := 1; i < len(resp.Points); i++ {
		assert.LessOrEqual(t, resp.Points[i-1].Objective1, resp.Points[i].Objective1)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/api/catalog/properties", domain.CandidateProperty{
		Category: "condo", Price: 550000, RentPerUnit: 1200, UnitCount: 2, AppreciationRate: 0.03, MonthlyCarryingCost: 850,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/properties", nil)
	list := httptest.NewRecorder()
	s.Router().ServeHTTP(list, req)

	require.Equal(t, http.StatusOK, list.Code)
	var resp struct {
		Properties []domain.CandidateProperty `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	require.Len(t, resp.Properties, 1)
	assert.Equal(t, "condo", resp.Properties[0].Category)
}

func TestCatalogValidation(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/api/catalog/properties", domain.CandidateProperty{Category: "", Price: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, s, "/api/catalog/borrowers", domain.Borrower{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSnapshotEndpoints_NotFound(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/snapshots/missing", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
