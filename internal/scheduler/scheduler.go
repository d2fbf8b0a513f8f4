// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"PairLens/internal/recorder"
)

// Scheduler manages the cron-driven maintenance tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Recorder  recorder.Recorder
	Retention time.Duration
	Log       zerolog.Logger
}

// New creates a Scheduler pruning audit rows older than retentionDays.
func New(rec recorder.Recorder, retentionDays int, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Recorder:  rec,
		Retention: time.Duration(retentionDays) * 24 * time.Hour,
		Log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the audit-prune task under the given cron expression.
func (s *Scheduler) Register(pruneCron string) error {
	if _, err := s.Cron.AddFunc(pruneCron, s.pruneTask); err != nil {
		return fmt.Errorf("register prune task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) pruneTask() {
	cutoff := time.Now().Add(-s.Retention)
	pruned, err := s.Recorder.PruneBefore(cutoff)
	if err != nil {
		s.Log.Error().Err(err).Msg("prune audit events")
		return
	}
	s.Log.Info().Int64("pruned", pruned).Time("cutoff", cutoff).Msg("audit events pruned")
}
