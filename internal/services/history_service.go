package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 100
)

// SnapshotRepository stores dashboard summaries.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snap *models.DashboardSnapshot) error
	// ListSnapshots returns the owner's snapshots, newest first.
	ListSnapshots(ctx context.Context, owner string, limit int) ([]models.DashboardSnapshot, error)
}

// HistoryService records how a user's funnel evolves. A nil repository disables it.
type HistoryService struct {
	Repo SnapshotRepository
	now  func() time.Time
}

func NewHistoryService(repo SnapshotRepository) *HistoryService {
	return &HistoryService{Repo: repo, now: time.Now}
}

func (s *HistoryService) Enabled() bool {
	return s != nil && s.Repo != nil
}

// Record stores summary for owner unless it is identical to the last one stored.
// It reports whether a row was written.
func (s *HistoryService) Record(ctx context.Context, owner string, summary dashboard.AggregateResult) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}

	snap := snapshotFrom(summary)
	last, err := s.Repo.ListSnapshots(ctx, owner, 1)
	if err != nil {
		return false, fmt.Errorf("load last snapshot: %w", err)
	}
	if len(last) == 1 && sameFunnel(last[0], snap) {
		return false, nil
	}

	snap.ID = uuid.NewString()
	snap.Owner = owner
	snap.CreatedAt = s.now().UTC()
	if err := s.Repo.SaveSnapshot(ctx, &snap); err != nil {
		return false, fmt.Errorf("save snapshot: %w", err)
	}
	return true, nil
}

// List returns up to limit snapshots for owner, newest first.
func (s *HistoryService) List(ctx context.Context, owner string, limit int) ([]models.DashboardSnapshot, error) {
	if !s.Enabled() {
		return []models.DashboardSnapshot{}, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	snaps, err := s.Repo.ListSnapshots(ctx, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

func snapshotFrom(summary dashboard.AggregateResult) models.DashboardSnapshot {
	snap := models.DashboardSnapshot{
		Total:         summary.Total,
		SuccessRate:   summary.SuccessRate,
		RejectionRate: summary.RejectionRate,
	}
	for _, m := range summary.Milestones {
		switch m.ID {
		case dashboard.MilestoneInterviews:
			snap.Interviews = m.Count
		case dashboard.MilestoneOffers:
			snap.Offers = m.Count
		}
	}
	return snap
}

func sameFunnel(a, b models.DashboardSnapshot) bool {
	return a.Total == b.Total &&
		a.Interviews == b.Interviews &&
		a.Offers == b.Offers &&
		a.SuccessRate == b.SuccessRate &&
		a.RejectionRate == b.RejectionRate
}
