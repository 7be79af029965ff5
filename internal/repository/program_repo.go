package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// ProgramFilter listing filters; empty fields are ignored
type ProgramFilter struct {
	CampusID        string
	FacultyID       string
	Keyword         string
	IncludeInactive bool
}

// ProgramRepository program data access
type ProgramRepository interface {
	Create(ctx context.Context, program *model.Program) error
	GetByID(ctx context.Context, id string) (*model.Program, error)
	GetByKey(ctx context.Context, facultyID, campusID, name string) (*model.Program, error)
	ExistsByKey(ctx context.Context, facultyID, campusID, name, excludeID string) (bool, error)
	Update(ctx context.Context, program *model.Program) error
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
	List(ctx context.Context, filter ProgramFilter, offset, limit int) ([]model.Program, int64, error)
	ListIDsByCampus(ctx context.Context, campusID string) ([]string, error)
	ListIDsByFaculty(ctx context.Context, facultyID string) ([]string, error)
	CountActive(ctx context.Context) (int64, error)
	CountPerCampus(ctx context.Context) (map[string]int64, error)
	CountPerFaculty(ctx context.Context) (map[string]int64, error)
}

type programRepo struct {
	db *gorm.DB
}

// NewProgramRepo creates a ProgramRepository
func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{db: db}
}

func (r *programRepo) Create(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepo) GetByID(ctx context.Context, id string) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).
		Preload("Campus").
		Preload("Faculty").
		Where("program_id = ?", id).
		First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepo) GetByKey(ctx context.Context, facultyID, campusID, name string) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).
		Where("faculty_id = ? AND campus_id = ? AND name = ?", facultyID, campusID, name).
		First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepo) ExistsByKey(ctx context.Context, facultyID, campusID, name, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Program{}).
		Where("faculty_id = ? AND campus_id = ? AND name = ?", facultyID, campusID, name)
	if excludeID != "" {
		q = q.Where("program_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *programRepo) Update(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).
		Omit("Campus", "Faculty").
		Save(program).Error
}

func (r *programRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("program_id = ?", id).Delete(&model.Program{}).Error
}

func (r *programRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("program_id IN ?", ids).Delete(&model.Program{}).Error
}

// List ordered by campus name, faculty name, program name
func (r *programRepo) List(ctx context.Context, filter ProgramFilter, offset, limit int) ([]model.Program, int64, error) {
	var programs []model.Program
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Program{}).
		Joins("JOIN campuses ON campuses.campus_id = programs.campus_id").
		Joins("JOIN faculties ON faculties.faculty_id = programs.faculty_id")

	if !filter.IncludeInactive {
		db = db.Where("programs.is_active = ?", true)
	}
	if filter.CampusID != "" {
		db = db.Where("programs.campus_id = ?", filter.CampusID)
	}
	if filter.FacultyID != "" {
		db = db.Where("programs.faculty_id = ?", filter.FacultyID)
	}
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		db = db.Where("LOWER(programs.name) LIKE ? OR LOWER(faculties.name) LIKE ?", like, like)
	}

	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Select("programs.*").
		Preload("Campus").Preload("Faculty").
		Order("campuses.name ASC, faculties.name ASC, programs.name ASC").
		Offset(offset).Limit(limit).
		Find(&programs).Error; err != nil {
		return nil, 0, err
	}

	return programs, total, nil
}

func (r *programRepo) ListIDsByCampus(ctx context.Context, campusID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Program{}).
		Where("campus_id = ?", campusID).
		Pluck("program_id", &ids).Error
	return ids, err
}

func (r *programRepo) ListIDsByFaculty(ctx context.Context, facultyID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Program{}).
		Where("faculty_id = ?", facultyID).
		Pluck("program_id", &ids).Error
	return ids, err
}

func (r *programRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Program{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// CountPerCampus programs of every campus, inactive ones included
func (r *programRepo) CountPerCampus(ctx context.Context) (map[string]int64, error) {
	return r.countPer(ctx, "campus_id")
}

// CountPerFaculty programs of every faculty, inactive ones included
func (r *programRepo) CountPerFaculty(ctx context.Context) (map[string]int64, error) {
	return r.countPer(ctx, "faculty_id")
}

func (r *programRepo) countPer(ctx context.Context, column string) (map[string]int64, error) {
	var rows []struct {
		GroupKey string
		Total    int64
	}
	err := r.db.WithContext(ctx).Model(&model.Program{}).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.GroupKey] = row.Total
	}
	return out, nil
}
