package repository

import (
	"context"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// EvidenceRepository evidence data access
type EvidenceRepository interface {
	Create(ctx context.Context, evidence *model.Evidence) error
	GetByID(ctx context.Context, id string) (*model.Evidence, error)
	Delete(ctx context.Context, id string) error
	ListByProgress(ctx context.Context, progressID string) ([]model.Evidence, error)
	ListByProgressIDs(ctx context.Context, progressIDs []string) ([]model.Evidence, error)
	CountByProgressIDs(ctx context.Context, progressIDs []string) (map[string]int64, error)
	DeleteByProgressIDs(ctx context.Context, progressIDs []string) error
}

type evidenceRepo struct {
	db *gorm.DB
}

// NewEvidenceRepo creates an EvidenceRepository
func NewEvidenceRepo(db *gorm.DB) EvidenceRepository {
	return &evidenceRepo{db: db}
}

func (r *evidenceRepo) Create(ctx context.Context, evidence *model.Evidence) error {
	return r.db.WithContext(ctx).Omit("Progress").Create(evidence).Error
}

func (r *evidenceRepo) GetByID(ctx context.Context, id string) (*model.Evidence, error) {
	var evidence model.Evidence
	if err := r.db.WithContext(ctx).Where("evidence_id = ?", id).First(&evidence).Error; err != nil {
		return nil, err
	}
	return &evidence, nil
}

func (r *evidenceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("evidence_id = ?", id).Delete(&model.Evidence{}).Error
}

// ListByProgress newest first
func (r *evidenceRepo) ListByProgress(ctx context.Context, progressID string) ([]model.Evidence, error) {
	var items []model.Evidence
	err := r.db.WithContext(ctx).
		Where("progress_id = ?", progressID).
		Order("uploaded_at DESC").
		Find(&items).Error
	return items, err
}

func (r *evidenceRepo) ListByProgressIDs(ctx context.Context, progressIDs []string) ([]model.Evidence, error) {
	if len(progressIDs) == 0 {
		return nil, nil
	}
	var items []model.Evidence
	err := r.db.WithContext(ctx).Where("progress_id IN ?", progressIDs).Find(&items).Error
	return items, err
}

func (r *evidenceRepo) CountByProgressIDs(ctx context.Context, progressIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(progressIDs))
	if len(progressIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProgressID string
		Total      int64
	}
	err := r.db.WithContext(ctx).Model(&model.Evidence{}).
		Select("progress_id, COUNT(*) AS total").
		Where("progress_id IN ?", progressIDs).
		Group("progress_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProgressID] = row.Total
	}
	return out, nil
}

func (r *evidenceRepo) DeleteByProgressIDs(ctx context.Context, progressIDs []string) error {
	if len(progressIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("progress_id IN ?", progressIDs).Delete(&model.Evidence{}).Error
}
