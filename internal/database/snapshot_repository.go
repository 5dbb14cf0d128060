package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

// SnapshotRepository stores dashboard snapshots in Postgres.
type SnapshotRepository struct {
	DB *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{DB: db}
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snap *models.DashboardSnapshot) error {
	return r.DB.WithContext(ctx).Create(snap).Error
}

func (r *SnapshotRepository) ListSnapshots(ctx context.Context, owner string, limit int) ([]models.DashboardSnapshot, error) {
	snaps := make([]models.DashboardSnapshot, 0, limit)
	err := r.DB.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at DESC").
		Limit(limit).
		Find(&snaps).Error
	return snaps, err
}
