package repository

import (
	"context"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// CampusRepository campus data access
type CampusRepository interface {
	Create(ctx context.Context, campus *model.Campus) error
	GetByID(ctx context.Context, id string) (*model.Campus, error)
	GetByName(ctx context.Context, name string) (*model.Campus, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, campus *model.Campus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Campus, error)
}

type campusRepo struct {
	db *gorm.DB
}

// NewCampusRepo creates a CampusRepository
func NewCampusRepo(db *gorm.DB) CampusRepository {
	return &campusRepo{db: db}
}

func (r *campusRepo) Create(ctx context.Context, campus *model.Campus) error {
	return r.db.WithContext(ctx).Create(campus).Error
}

func (r *campusRepo) GetByID(ctx context.Context, id string) (*model.Campus, error) {
	var campus model.Campus
	if err := r.db.WithContext(ctx).Where("campus_id = ?", id).First(&campus).Error; err != nil {
		return nil, err
	}
	return &campus, nil
}

func (r *campusRepo) GetByName(ctx context.Context, name string) (*model.Campus, error) {
	var campus model.Campus
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&campus).Error; err != nil {
		return nil, err
	}
	return &campus, nil
}

func (r *campusRepo) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Campus{}).Where("name = ?", name)
	if excludeID != "" {
		q = q.Where("campus_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *campusRepo) Update(ctx context.Context, campus *model.Campus) error {
	return r.db.WithContext(ctx).Save(campus).Error
}

func (r *campusRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("campus_id = ?", id).Delete(&model.Campus{}).Error
}

func (r *campusRepo) List(ctx context.Context) ([]model.Campus, error) {
	var campuses []model.Campus
	err := r.db.WithContext(ctx).Order("name ASC").Find(&campuses).Error
	return campuses, err
}
