package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
)

// SeedResult rows created by one seed run
type SeedResult struct {
	Campuses  int `json:"campuses"`
	Faculties int `json:"faculties"`
	Phases    int `json:"phases"`
	Programs  int `json:"programs"`
}

// Total rows created
func (r SeedResult) Total() int {
	return r.Campuses + r.Faculties + r.Phases + r.Programs
}

// SeedService loads the reference catalog. Safe to run repeatedly: existing
// rows are found by their natural key and left untouched.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewSeedService creates a SeedService
func NewSeedService(repo *repository.Repository, clock Clock, logger *zap.Logger) SeedService {
	return &seedService{repo: repo, clock: clock, logger: logger}
}

func (s *seedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		campuses := make(map[string]string, len(seedCampuses))
		for _, name := range seedCampuses {
			id, created, err := s.campus(ctx, tx, name)
			if err != nil {
				return err
			}
			campuses[name] = id
			if created {
				result.Campuses++
			}
		}

		faculties := make(map[string]string, len(seedFaculties))
		for _, name := range seedFaculties {
			id, created, err := s.faculty(ctx, tx, name)
			if err != nil {
				return err
			}
			faculties[name] = id
			if created {
				result.Faculties++
			}
		}

		for _, p := range seedPhases {
			created, err := s.phase(ctx, tx, p)
			if err != nil {
				return err
			}
			if created {
				result.Phases++
			}
		}

		// iterate campuses in declaration order so logs read top to bottom
		for _, campus := range seedCampuses {
			for _, p := range seedPrograms[campus] {
				created, err := s.program(ctx, tx, faculties[p.Faculty], campuses[campus], p)
				if err != nil {
					return err
				}
				if created {
					result.Programs++
					s.logger.Debug("program created", zap.String("program", p.Name), zap.String("campus", campus))
				}
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("seed failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("seed finished",
		zap.Int("campuses", result.Campuses),
		zap.Int("faculties", result.Faculties),
		zap.Int("phases", result.Phases),
		zap.Int("programs", result.Programs),
	)
	return result, nil
}

func (s *seedService) campus(ctx context.Context, tx *repository.Repository, name string) (string, bool, error) {
	existing, err := tx.Campus.GetByName(ctx, name)
	if err == nil {
		return existing.CampusID, false, nil
	}
	if !isNotFound(err) {
		return "", false, err
	}
	c := &model.Campus{Name: name}
	c.Touch(s.clock.Now())
	if err := tx.Campus.Create(ctx, c); err != nil {
		return "", false, fmt.Errorf("create campus %q: %w", name, err)
	}
	return c.CampusID, true, nil
}

func (s *seedService) faculty(ctx context.Context, tx *repository.Repository, name string) (string, bool, error) {
	existing, err := tx.Faculty.GetByName(ctx, name)
	if err == nil {
		return existing.FacultyID, false, nil
	}
	if !isNotFound(err) {
		return "", false, err
	}
	f := &model.Faculty{Name: name}
	f.Touch(s.clock.Now())
	if err := tx.Faculty.Create(ctx, f); err != nil {
		return "", false, fmt.Errorf("create faculty %q: %w", name, err)
	}
	return f.FacultyID, true, nil
}

// phase existing phases are never modified, whatever their current name
func (s *seedService) phase(ctx context.Context, tx *repository.Repository, p model.Phase) (bool, error) {
	_, err := tx.Phase.GetByNumber(ctx, p.Number)
	if err == nil {
		return false, nil
	}
	if !isNotFound(err) {
		return false, err
	}
	phase := p
	if err := tx.Phase.Create(ctx, &phase); err != nil {
		return false, fmt.Errorf("create phase %d: %w", p.Number, err)
	}
	return true, nil
}

func (s *seedService) program(ctx context.Context, tx *repository.Repository, facultyID, campusID string, p seedProgram) (bool, error) {
	_, err := tx.Program.GetByKey(ctx, facultyID, campusID, p.Name)
	if err == nil {
		return false, nil
	}
	if !isNotFound(err) {
		return false, err
	}
	program := &model.Program{
		FacultyID:   facultyID,
		CampusID:    campusID,
		Name:        p.Name,
		DegreeLevel: p.Degree,
		IsActive:    true,
	}
	program.Touch(s.clock.Now())
	if err := tx.Program.Create(ctx, program); err != nil {
		return false, fmt.Errorf("create program %q: %w", p.Name, err)
	}
	return true, nil
}
