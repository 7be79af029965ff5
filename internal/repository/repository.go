package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregate of every repository
type Repository struct {
	db *gorm.DB

	Campus   CampusRepository
	Faculty  FacultyRepository
	Program  ProgramRepository
	Phase    PhaseRepository
	Redesign RedesignRepository
	Progress ProgressRepository
	Evidence EvidenceRepository
	User     UserRepository
}

// NewRepository creates the aggregate
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		Campus:   NewCampusRepo(db),
		Faculty:  NewFacultyRepo(db),
		Program:  NewProgramRepo(db),
		Phase:    NewPhaseRepo(db),
		Redesign: NewRedesignRepo(db),
		Progress: NewProgressRepo(db),
		Evidence: NewEvidenceRepo(db),
		User:     NewUserRepo(db),
	}
}

// Transaction runs fn with an aggregate bound to a single transaction.
// Any error returned by fn rolls everything back.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
