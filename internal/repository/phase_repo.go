package repository

import (
	"context"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// PhaseRepository phase data access. Phases are read-only apart from seeding.
type PhaseRepository interface {
	Create(ctx context.Context, phase *model.Phase) error
	GetByNumber(ctx context.Context, number int) (*model.Phase, error)
	List(ctx context.Context) ([]model.Phase, error)
	Count(ctx context.Context) (int64, error)
}

type phaseRepo struct {
	db *gorm.DB
}

// NewPhaseRepo creates a PhaseRepository
func NewPhaseRepo(db *gorm.DB) PhaseRepository {
	return &phaseRepo{db: db}
}

func (r *phaseRepo) Create(ctx context.Context, phase *model.Phase) error {
	return r.db.WithContext(ctx).Create(phase).Error
}

func (r *phaseRepo) GetByNumber(ctx context.Context, number int) (*model.Phase, error) {
	var phase model.Phase
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&phase).Error; err != nil {
		return nil, err
	}
	return &phase, nil
}

// List ordered by sort_order, number
func (r *phaseRepo) List(ctx context.Context) ([]model.Phase, error) {
	var phases []model.Phase
	err := r.db.WithContext(ctx).Order("sort_order ASC, number ASC").Find(&phases).Error
	return phases, err
}

func (r *phaseRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Phase{}).Count(&count).Error
	return count, err
}
