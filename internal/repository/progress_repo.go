package repository

import (
	"context"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// ProgressRepository phase progress data access
type ProgressRepository interface {
	CreateBatch(ctx context.Context, rows []model.PhaseProgress) error
	GetByID(ctx context.Context, id string) (*model.PhaseProgress, error)
	Update(ctx context.Context, progress *model.PhaseProgress) error
	ListByRedesign(ctx context.Context, redesignID string) ([]model.PhaseProgress, error)
	ListPhaseIDsByRedesign(ctx context.Context, redesignID string) ([]string, error)
	ListIDsByRedesignIDs(ctx context.Context, redesignIDs []string) ([]string, error)
	CountCompletedByRedesign(ctx context.Context, redesignIDs []string) (map[string]int64, error)
	DeleteByRedesignIDs(ctx context.Context, redesignIDs []string) error
}

type progressRepo struct {
	db *gorm.DB
}

// NewProgressRepo creates a ProgressRepository
func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &progressRepo{db: db}
}

func (r *progressRepo) CreateBatch(ctx context.Context, rows []model.PhaseProgress) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Phase").Create(&rows).Error
}

func (r *progressRepo) GetByID(ctx context.Context, id string) (*model.PhaseProgress, error) {
	var progress model.PhaseProgress
	err := r.db.WithContext(ctx).
		Preload("Phase").
		Where("progress_id = ?", id).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepo) Update(ctx context.Context, progress *model.PhaseProgress) error {
	return r.db.WithContext(ctx).Omit("Phase").Save(progress).Error
}

// ListByRedesign ordered by phase sort_order, number
func (r *progressRepo) ListByRedesign(ctx context.Context, redesignID string) ([]model.PhaseProgress, error) {
	var rows []model.PhaseProgress
	err := r.db.WithContext(ctx).
		Select("phase_progress.*").
		Joins("JOIN phases ON phases.phase_id = phase_progress.phase_id").
		Preload("Phase").
		Where("phase_progress.redesign_id = ?", redesignID).
		Order("phases.sort_order ASC, phases.number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *progressRepo) ListPhaseIDsByRedesign(ctx context.Context, redesignID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.PhaseProgress{}).
		Where("redesign_id = ?", redesignID).
		Pluck("phase_id", &ids).Error
	return ids, err
}

func (r *progressRepo) ListIDsByRedesignIDs(ctx context.Context, redesignIDs []string) ([]string, error) {
	if len(redesignIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.PhaseProgress{}).
		Where("redesign_id IN ?", redesignIDs).
		Pluck("progress_id", &ids).Error
	return ids, err
}

// CountCompletedByRedesign completed rows per redesign; redesigns without any are absent
func (r *progressRepo) CountCompletedByRedesign(ctx context.Context, redesignIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(redesignIDs))
	if len(redesignIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		RedesignID string
		Total      int64
	}
	err := r.db.WithContext(ctx).Model(&model.PhaseProgress{}).
		Select("redesign_id, COUNT(*) AS total").
		Where("redesign_id IN ? AND completed = ?", redesignIDs, true).
		Group("redesign_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RedesignID] = row.Total
	}
	return out, nil
}

func (r *progressRepo) DeleteByRedesignIDs(ctx context.Context, redesignIDs []string) error {
	if len(redesignIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("redesign_id IN ?", redesignIDs).Delete(&model.PhaseProgress{}).Error
}
