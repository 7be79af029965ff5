package repository

import (
	"context"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// FacultyRepository faculty data access
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	GetByID(ctx context.Context, id string) (*model.Faculty, error)
	GetByName(ctx context.Context, name string) (*model.Faculty, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, faculty *model.Faculty) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Faculty, error)
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo creates a FacultyRepository
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepo) GetByID(ctx context.Context, id string) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).Where("faculty_id = ?", id).First(&faculty).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByName(ctx context.Context, name string) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&faculty).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Faculty{}).Where("name = ?", name)
	if excludeID != "" {
		q = q.Where("faculty_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *facultyRepo) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("faculty_id = ?", id).Delete(&model.Faculty{}).Error
}

func (r *facultyRepo) List(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).Order("name ASC").Find(&faculties).Error
	return faculties, err
}
