package repository

import (
	"context"

	"gorm.io/gorm"

	"uatf-curricular/backend/internal/model"
)

// RedesignFilter listing filters; zero values are ignored
type RedesignFilter struct {
	Status   string
	Year     int
	CampusID string
}

// CampusCount in-progress redesigns of one campus
type CampusCount struct {
	CampusID   string `json:"campus_id"`
	CampusName string `json:"campus_name"`
	Total      int64  `json:"total"`
}

// RedesignRepository redesign data access
type RedesignRepository interface {
	Create(ctx context.Context, redesign *model.Redesign) error
	GetByID(ctx context.Context, id string) (*model.Redesign, error)
	ExistsByProgramYear(ctx context.Context, programID string, year int) (bool, error)
	Update(ctx context.Context, redesign *model.Redesign) error
	DeleteByIDs(ctx context.Context, ids []string) error
	List(ctx context.Context, filter RedesignFilter, offset, limit int) ([]model.Redesign, int64, error)
	ListInProgress(ctx context.Context) ([]model.Redesign, error)
	ListRecentlyUpdated(ctx context.Context, limit int) ([]model.Redesign, error)
	ListIDsByProgramIDs(ctx context.Context, programIDs []string) ([]string, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountInProgressByCampus(ctx context.Context) ([]CampusCount, error)
}

type redesignRepo struct {
	db *gorm.DB
}

// NewRedesignRepo creates a RedesignRepository
func NewRedesignRepo(db *gorm.DB) RedesignRepository {
	return &redesignRepo{db: db}
}

func (r *redesignRepo) Create(ctx context.Context, redesign *model.Redesign) error {
	return r.db.WithContext(ctx).Omit("Program", "Progress").Create(redesign).Error
}

func (r *redesignRepo) GetByID(ctx context.Context, id string) (*model.Redesign, error) {
	var redesign model.Redesign
	err := r.db.WithContext(ctx).
		Preload("Program.Campus").
		Preload("Program.Faculty").
		Where("redesign_id = ?", id).
		First(&redesign).Error
	if err != nil {
		return nil, err
	}
	return &redesign, nil
}

func (r *redesignRepo) ExistsByProgramYear(ctx context.Context, programID string, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Redesign{}).
		Where("program_id = ? AND year = ?", programID, year).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *redesignRepo) Update(ctx context.Context, redesign *model.Redesign) error {
	return r.db.WithContext(ctx).Omit("Program", "Progress").Save(redesign).Error
}

func (r *redesignRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("redesign_id IN ?", ids).Delete(&model.Redesign{}).Error
}

// List ordered by year desc, then program name
func (r *redesignRepo) List(ctx context.Context, filter RedesignFilter, offset, limit int) ([]model.Redesign, int64, error) {
	var redesigns []model.Redesign
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Redesign{}).
		Joins("JOIN programs ON programs.program_id = redesigns.program_id")

	if filter.Status != "" {
		db = db.Where("redesigns.status = ?", filter.Status)
	}
	if filter.Year != 0 {
		db = db.Where("redesigns.year = ?", filter.Year)
	}
	if filter.CampusID != "" {
		db = db.Where("programs.campus_id = ?", filter.CampusID)
	}

	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Select("redesigns.*").
		Preload("Program.Campus").
		Preload("Program.Faculty").
		Order("redesigns.year DESC, programs.name ASC").
		Offset(offset).Limit(limit).
		Find(&redesigns).Error; err != nil {
		return nil, 0, err
	}

	return redesigns, total, nil
}

// ListInProgress every in-progress redesign ordered by campus name, then program name
func (r *redesignRepo) ListInProgress(ctx context.Context) ([]model.Redesign, error) {
	var redesigns []model.Redesign
	err := r.db.WithContext(ctx).
		Select("redesigns.*").
		Joins("JOIN programs ON programs.program_id = redesigns.program_id").
		Joins("JOIN campuses ON campuses.campus_id = programs.campus_id").
		Preload("Program.Campus").
		Preload("Program.Faculty").
		Where("redesigns.status = ?", model.RedesignInProgress).
		Order("campuses.name ASC, programs.name ASC").
		Find(&redesigns).Error
	return redesigns, err
}

func (r *redesignRepo) ListRecentlyUpdated(ctx context.Context, limit int) ([]model.Redesign, error) {
	var redesigns []model.Redesign
	err := r.db.WithContext(ctx).
		Preload("Program.Campus").
		Preload("Program.Faculty").
		Order("updated_at DESC").
		Limit(limit).
		Find(&redesigns).Error
	return redesigns, err
}

func (r *redesignRepo) ListIDsByProgramIDs(ctx context.Context, programIDs []string) ([]string, error) {
	if len(programIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Redesign{}).
		Where("program_id IN ?", programIDs).
		Pluck("redesign_id", &ids).Error
	return ids, err
}

func (r *redesignRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Redesign{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountInProgressByCampus ordered by count desc, then campus name
func (r *redesignRepo) CountInProgressByCampus(ctx context.Context) ([]CampusCount, error) {
	var counts []CampusCount
	err := r.db.WithContext(ctx).
		Table("redesigns").
		Select("campuses.campus_id AS campus_id, campuses.name AS campus_name, COUNT(redesigns.redesign_id) AS total").
		Joins("JOIN programs ON programs.program_id = redesigns.program_id").
		Joins("JOIN campuses ON campuses.campus_id = programs.campus_id").
		Where("redesigns.status = ?", model.RedesignInProgress).
		Group("campuses.campus_id, campuses.name").
		Order("total DESC, campuses.name ASC").
		Scan(&counts).Error
	return counts, err
}
