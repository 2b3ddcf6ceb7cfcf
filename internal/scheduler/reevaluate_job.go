package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/config"
	"github.com/aristath/relocate/internal/modules/catalog"
	"github.com/aristath/relocate/internal/modules/scenarios"
	"github.com/aristath/relocate/internal/modules/snapshots"
)

// ReevaluateJob re-runs the full decision grid against the stored
// catalog and saves the outcome as a snapshot. Scheduled runs build a
// history of how the frontier drifts as the catalog changes.
type ReevaluateJob struct {
	generator  *scenarios.Generator
	properties *catalog.PropertyRepository
	borrowers  *catalog.BorrowerRepository
	snapshots  *snapshots.Repository
	analysis   config.AnalysisDefaults
	log        zerolog.Logger
}

// NewReevaluateJob creates the background re-evaluation job.
func NewReevaluateJob(
	generator *scenarios.Generator,
	properties *catalog.PropertyRepository,
	borrowers *catalog.BorrowerRepository,
	snapshotRepo *snapshots.Repository,
	analysis config.AnalysisDefaults,
	log zerolog.Logger,
) *ReevaluateJob {
	return &ReevaluateJob{
		generator:  generator,
		properties: properties,
		borrowers:  borrowers,
		snapshots:  snapshotRepo,
		analysis:   analysis,
		log:        log.With().Str("job", "reevaluate").Logger(),
	}
}

// Name returns the job identifier for scheduler logging.
func (j *ReevaluateJob) Name() string {
	return "reevaluate_grid"
}

// Run loads the catalog, evaluates the grid and stores a snapshot.
func (j *ReevaluateJob) Run() error {
	candidates, err := j.properties.List()
	if err != nil {
		return fmt.Errorf("failed to load candidate properties: %w", err)
	}
	borrowers, err := j.borrowers.List()
	if err != nil {
		return fmt.Errorf("failed to load borrowers: %w", err)
	}

	results := j.generator.Run(scenarios.GridRequest{
		Source:       j.analysis.Source,
		Candidates:   candidates,
		Borrowers:    borrowers,
		FallbackRent: j.analysis.FallbackRent,
		HorizonYears: j.analysis.HorizonYears,
	})

	runID := uuid.New().String()
	if err := j.snapshots.Save(runID, time.Now(), j.analysis.HorizonYears, results); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	j.log.Info().
		Str("run_id", runID).
		Int("scenarios", len(results)).
		Msg("Scheduled grid re-evaluation complete")

	return nil
}
