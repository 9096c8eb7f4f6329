package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
	"github.com/robfig/cron/v3"
)

// snapshotTimeout bounds one scheduled snapshot run.
const snapshotTimeout = 2 * time.Minute

// SnapshotService stores portfolio scores over time.
type SnapshotService struct {
	portfolioService *PortfolioService
	snapshotRepo     *repository.SnapshotRepository
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(portfolioService *PortfolioService, snapshotRepo *repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{
		portfolioService: portfolioService,
		snapshotRepo:     snapshotRepo,
	}
}

// TakeSnapshot computes the current portfolio score and stores it.
func (s *SnapshotService) TakeSnapshot(ctx context.Context) (*model.PortfolioSnapshot, error) {
	summary, err := s.portfolioService.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute portfolio summary: %w", err)
	}

	snapshot := &model.PortfolioSnapshot{
		ID:      uuid.New().String(),
		TakenAt: time.Now().UTC().Truncate(time.Second),
		Score:   summary.Score,
	}

	if err := s.snapshotRepo.InsertSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to store portfolio snapshot: %w", err)
	}

	return snapshot, nil
}

// GetHistory returns up to limit snapshots, newest first.
func (s *SnapshotService) GetHistory(ctx context.Context, limit int) ([]model.PortfolioSnapshot, error) {
	return s.snapshotRepo.GetSnapshots(ctx, limit)
}

// SnapshotScheduler takes portfolio snapshots on a cron schedule.
type SnapshotScheduler struct {
	cron      *cron.Cron
	snapshots *SnapshotService
}

// NewSnapshotScheduler creates a scheduler for the given service. Runs that
// overlap a still-running snapshot are skipped.
func NewSnapshotScheduler(snapshots *SnapshotService) *SnapshotScheduler {
	return &SnapshotScheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		snapshots: snapshots,
	}
}

// Start registers the job on spec (standard five-field or "@every 1h" style)
// and starts the scheduler in its own goroutine.
func (s *SnapshotScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once a running
// snapshot has finished.
func (s *SnapshotScheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *SnapshotScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	snapshot, err := s.snapshots.TakeSnapshot(ctx)
	if err != nil {
		log.Printf("Scheduled portfolio snapshot failed: %v", err)
		return
	}
	log.Printf("Stored portfolio snapshot %s (%d properties)", snapshot.ID, snapshot.Score.PropertyCount)
}
