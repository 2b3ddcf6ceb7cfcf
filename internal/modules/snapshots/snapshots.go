// Package snapshots persists completed grid runs so consecutive runs
// can be compared over time. Snapshots are derived data: the catalog
// plus the evaluator can always regenerate them, so they live in the
// cache-profile database.
package snapshots

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/database"
	"github.com/aristath/relocate/internal/domain"
)

// Schema defines the snapshots database.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	horizon_years INTEGER NOT NULL,
	scenario_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_results (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	scenario_id TEXT NOT NULL,
	scenario_name TEXT NOT NULL,
	effective_cashflow_apy REAL NOT NULL,
	annualized_roi REAL NOT NULL,
	monthly_cashflow REAL NOT NULL,
	monthly_effective_cashflow REAL NOT NULL,
	horizon_net_worth REAL NOT NULL,
	horizon_total_return REAL NOT NULL,
	debt_to_income REAL NOT NULL,
	PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);
`

// Run is one stored grid evaluation.
type Run struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	HorizonYears  int       `json:"horizon_years"`
	ScenarioCount int       `json:"scenario_count"`
}

// ResultRow is the persisted projection of one CalculationResult. Only
// the fields downstream comparisons need are stored; a full result can
// always be recomputed from the catalog.
type ResultRow struct {
	ScenarioID               string  `json:"scenario_id"`
	ScenarioName             string  `json:"scenario_name"`
	EffectiveCashflowAPY     float64 `json:"effective_cashflow_apy"`
	AnnualizedROI            float64 `json:"annualized_roi"`
	MonthlyCashflow          float64 `json:"monthly_cashflow"`
	MonthlyEffectiveCashflow float64 `json:"monthly_effective_cashflow"`
	HorizonNetWorth          float64 `json:"horizon_net_worth"`
	HorizonTotalReturn       float64 `json:"horizon_total_return"`
	DebtToIncome             float64 `json:"debt_to_income"`
}

// Repository handles database operations for stored runs.
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshots repository.
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("component", "snapshots_repository").Logger(),
	}
}

// Save stores a run and its result rows in one transaction.
func (r *Repository) Save(runID string, createdAt time.Time, horizonYears int, results []domain.CalculationResult) error {
	err := database.WithTransaction(r.db.Conn(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO runs (id, created_at, horizon_years, scenario_count)
			VALUES (?, ?, ?, ?)
		`, runID, createdAt.UTC(), horizonYears, len(results)); err != nil {
			return fmt.Errorf("failed to insert run %s: %w", runID, err)
		}

		for i, res := range results {
			if _, err := tx.Exec(`
				INSERT INTO run_results (
					run_id, position, scenario_id, scenario_name,
					effective_cashflow_apy, annualized_roi,
					monthly_cashflow, monthly_effective_cashflow,
					horizon_net_worth, horizon_total_return, debt_to_income
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, runID, i, res.Scenario.ID, res.Scenario.Name,
				res.EffectiveCashflowAPY, res.AnnualizedROI,
				res.MonthlyCashflow, res.MonthlyEffectiveCashflow,
				res.HorizonNetWorth, res.HorizonTotalReturn, res.DebtToIncome); err != nil {
				return fmt.Errorf("failed to insert result %s for run %s: %w", res.Scenario.ID, runID, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.Info().Str("run_id", runID).Int("results", len(results)).Msg("Grid run snapshot saved")
	return nil
}

// List returns stored runs, newest first.
func (r *Repository) List() ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT id, created_at, horizon_years, scenario_count
		FROM runs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.HorizonYears, &run.ScenarioCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Get returns one run and its result rows in stored order. The second
// return value is false when the run does not exist.
func (r *Repository) Get(runID string) (Run, []ResultRow, bool, error) {
	var run Run
	err := r.db.QueryRow(`
		SELECT id, created_at, horizon_years, scenario_count
		FROM runs WHERE id = ?
	`, runID).Scan(&run.ID, &run.CreatedAt, &run.HorizonYears, &run.ScenarioCount)
	if err == sql.ErrNoRows {
		return Run{}, nil, false, nil
	}
	if err != nil {
		return Run{}, nil, false, fmt.Errorf("failed to query run %s: %w", runID, err)
	}

	rows, err := r.db.Query(`
		SELECT scenario_id, scenario_name,
			effective_cashflow_apy, annualized_roi,
			monthly_cashflow, monthly_effective_cashflow,
			horizon_net_worth, horizon_total_return, debt_to_income
		FROM run_results
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return Run{}, nil, false, fmt.Errorf("failed to query results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		var row ResultRow
		if err := rows.Scan(&row.ScenarioID, &row.ScenarioName,
			&row.EffectiveCashflowAPY, &row.AnnualizedROI,
			&row.MonthlyCashflow, &row.MonthlyEffectiveCashflow,
			&row.HorizonNetWorth, &row.HorizonTotalReturn, &row.DebtToIncome); err != nil {
			return Run{}, nil, false, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, row)
	}

	return run, results, true, rows.Err()
}
