package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RELOCATE_DATA_DIR", t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Empty(t, cfg.ReevalSchedule)
	assert.Equal(t, 0.03, cfg.Policy.ClosingCostRate)
	assert.Equal(t, 0.065, cfg.Policy.DefaultLoanRate)
	assert.Equal(t, 30, cfg.Policy.LoanTermYears)
	assert.Equal(t, 5, cfg.Analysis.HorizonYears)
}

func TestLoad_PolicyOverrides(t *testing.T) {
	t.Setenv("RELOCATE_DATA_DIR", t.TempDir())
	t.Setenv("POLICY_CLOSING_COST_RATE", "0.025")
	t.Setenv("POLICY_DEFAULT_LOAN_RATE", "0.07")
	t.Setenv("POLICY_LOAN_TERM_YEARS", "15")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 0.025, cfg.Policy.ClosingCostRate)
	assert.Equal(t, 0.07, cfg.Policy.DefaultLoanRate)
	assert.Equal(t, 15, cfg.Policy.LoanTermYears)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("RELOCATE_DATA_DIR", t.TempDir())
	t.Setenv("PORT", "99999")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_DatabasePaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RELOCATE_DATA_DIR", dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Contains(t, cfg.CatalogDBPath(), "catalog.db")
	assert.Contains(t, cfg.SnapshotsDBPath(), "snapshots.db")
}
