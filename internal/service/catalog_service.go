package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	apperrors "uatf-curricular/backend/pkg/errors"
	"uatf-curricular/backend/pkg/storage"
)

// ── catalog errors ──

var (
	ErrCampusNotFound     = apperrors.New(apperrors.KindNotFound, 12001, "campus not found")
	ErrCampusNameExists   = apperrors.New(apperrors.KindUniqueness, 12002, "a campus with this name already exists")
	ErrFacultyNotFound    = apperrors.New(apperrors.KindNotFound, 12003, "faculty not found")
	ErrFacultyNameExists  = apperrors.New(apperrors.KindUniqueness, 12004, "a faculty with this name already exists")
	ErrProgramNotFound    = apperrors.New(apperrors.KindNotFound, 12005, "program not found")
	ErrProgramExists      = apperrors.New(apperrors.KindUniqueness, 12006, "this program already exists for the faculty and campus")
	ErrInvalidDegree      = apperrors.New(apperrors.KindValidation, 12007, "unknown degree level")
	ErrDeleteNeedsConfirm = apperrors.New(apperrors.KindValidation, 12008, "the record has dependent data; repeat with confirm=true to delete everything")
)

// CatalogService campuses, faculties, programs and the read-only phase list.
// Every mutation is reserved for administrators.
type CatalogService interface {
	ListCampuses(ctx context.Context) ([]dto.CampusResponse, error)
	CreateCampus(ctx context.Context, actor Actor, req *dto.CampusRequest) (*dto.CampusResponse, error)
	UpdateCampus(ctx context.Context, actor Actor, id string, req *dto.CampusRequest) (*dto.CampusResponse, error)
	DeleteCampus(ctx context.Context, actor Actor, id string, confirm bool) (*dto.DeleteResponse, error)

	ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error)
	CreateFaculty(ctx context.Context, actor Actor, req *dto.FacultyRequest) (*dto.FacultyResponse, error)
	UpdateFaculty(ctx context.Context, actor Actor, id string, req *dto.FacultyRequest) (*dto.FacultyResponse, error)
	DeleteFaculty(ctx context.Context, actor Actor, id string, confirm bool) (*dto.DeleteResponse, error)

	ListPrograms(ctx context.Context, req *dto.ProgramListRequest) ([]dto.ProgramResponse, int64, error)
	GetProgram(ctx context.Context, id string) (*dto.ProgramResponse, error)
	CreateProgram(ctx context.Context, actor Actor, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error)
	UpdateProgram(ctx context.Context, actor Actor, id string, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error)
	DeleteProgram(ctx context.Context, actor Actor, id string, confirm bool) (*dto.DeleteResponse, error)

	ListPhases(ctx context.Context) ([]dto.PhaseResponse, error)
}

type catalogService struct {
	repo    *repository.Repository
	cascade *cascader
	clock   Clock
	logger  *zap.Logger
}

// NewCatalogService creates a CatalogService
func NewCatalogService(repo *repository.Repository, store storage.Storage, clock Clock, logger *zap.Logger) CatalogService {
	return &catalogService{
		repo:    repo,
		cascade: &cascader{repo: repo, store: store, logger: logger},
		clock:   clock,
		logger:  logger,
	}
}

func requireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	return nil
}

// ────────────────────── Campus ──────────────────────

func (s *catalogService) ListCampuses(ctx context.Context) ([]dto.CampusResponse, error) {
	campuses, err := s.repo.Campus.List(ctx)
	if err != nil {
		s.logger.Error("list campuses failed", zap.Error(err))
		return nil, err
	}
	counts, err := s.repo.Program.CountPerCampus(ctx)
	if err != nil {
		s.logger.Warn("count programs per campus failed, falling back to 0", zap.Error(err))
		counts = map[string]int64{}
	}

	result := make([]dto.CampusResponse, 0, len(campuses))
	for i := range campuses {
		result = append(result, toCampusResponse(&campuses[i], counts[campuses[i].CampusID]))
	}
	return result, nil
}

func (s *catalogService) CreateCampus(ctx context.Context, actor Actor, req *dto.CampusRequest) (*dto.CampusResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.Campus.ExistsByName(ctx, name, "")
	if err != nil {
		s.logger.Error("check campus name failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrCampusNameExists
	}

	campus := &model.Campus{Name: name, Address: req.Address, Phone: req.Phone}
	campus.Touch(s.clock.Now())
	if err := s.repo.Campus.Create(ctx, campus); err != nil {
		if isDuplicate(err) {
			return nil, ErrCampusNameExists
		}
		s.logger.Error("create campus failed", zap.Error(err))
		return nil, err
	}

	resp := toCampusResponse(campus, 0)
	return &resp, nil
}

func (s *catalogService) UpdateCampus(ctx context.Context, actor Actor, id string, req *dto.CampusRequest) (*dto.CampusResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	campus, err := s.repo.Campus.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCampusNotFound
		}
		s.logger.Error("get campus failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.Campus.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCampusNameExists
	}

	campus.Name = name
	campus.Address = req.Address
	campus.Phone = req.Phone
	campus.UpdatedAt = s.clock.Now()
	if err := s.repo.Campus.Update(ctx, campus); err != nil {
		if isDuplicate(err) {
			return nil, ErrCampusNameExists
		}
		s.logger.Error("update campus failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	ids, err := s.repo.Program.ListIDsByCampus(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCampusResponse(campus, int64(len(ids)))
	return &resp, nil
}

func (s *catalogService) DeleteCampus(ctx context.Context, actor Actor, id string, confirm bool) (*dto.DeleteResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	campus, err := s.repo.Campus.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCampusNotFound
		}
		return nil, err
	}

	programIDs, err := s.repo.Program.ListIDsByCampus(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.deleteWithPrograms(ctx, "campus", campus.Name, programIDs, confirm, func(tx *repository.Repository) error {
		return tx.Campus.Delete(ctx, id)
	})
}

// ────────────────────── Faculty ──────────────────────

func (s *catalogService) ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("list faculties failed", zap.Error(err))
		return nil, err
	}
	counts, err := s.repo.Program.CountPerFaculty(ctx)
	if err != nil {
		s.logger.Warn("count programs per faculty failed, falling back to 0", zap.Error(err))
		counts = map[string]int64{}
	}

	result := make([]dto.FacultyResponse, 0, len(faculties))
	for i := range faculties {
		result = append(result, toFacultyResponse(&faculties[i], counts[faculties[i].FacultyID]))
	}
	return result, nil
}

func (s *catalogService) CreateFaculty(ctx context.Context, actor Actor, req *dto.FacultyRequest) (*dto.FacultyResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.Faculty.ExistsByName(ctx, name, "")
	if err != nil {
		s.logger.Error("check faculty name failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrFacultyNameExists
	}

	faculty := &model.Faculty{Name: name, Description: req.Description}
	faculty.Touch(s.clock.Now())
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		if isDuplicate(err) {
			return nil, ErrFacultyNameExists
		}
		s.logger.Error("create faculty failed", zap.Error(err))
		return nil, err
	}

	resp := toFacultyResponse(faculty, 0)
	return &resp, nil
}

func (s *catalogService) UpdateFaculty(ctx context.Context, actor Actor, id string, req *dto.FacultyRequest) (*dto.FacultyResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("get faculty failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.Faculty.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrFacultyNameExists
	}

	faculty.Name = name
	faculty.Description = req.Description
	faculty.UpdatedAt = s.clock.Now()
	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		if isDuplicate(err) {
			return nil, ErrFacultyNameExists
		}
		s.logger.Error("update faculty failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	ids, err := s.repo.Program.ListIDsByFaculty(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toFacultyResponse(faculty, int64(len(ids)))
	return &resp, nil
}

func (s *catalogService) DeleteFaculty(ctx context.Context, actor Actor, id string, confirm bool) (*dto.DeleteResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	programIDs, err := s.repo.Program.ListIDsByFaculty(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.deleteWithPrograms(ctx, "faculty", faculty.Name, programIDs, confirm, func(tx *repository.Repository) error {
		return tx.Faculty.Delete(ctx, id)
	})
}

// ────────────────────── Program ──────────────────────

func (s *catalogService) ListPrograms(ctx context.Context, req *dto.ProgramListRequest) ([]dto.ProgramResponse, int64, error) {
	filter := repository.ProgramFilter{
		CampusID:        req.CampusID,
		FacultyID:       req.FacultyID,
		Keyword:         req.Keyword,
		IncludeInactive: req.IncludeInactive,
	}
	programs, total, err := s.repo.Program.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list programs failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ProgramResponse, 0, len(programs))
	for i := range programs {
		result = append(result, *toProgramResponse(&programs[i]))
	}
	return result, total, nil
}

func (s *catalogService) GetProgram(ctx context.Context, id string) (*dto.ProgramResponse, error) {
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("get program failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toProgramResponse(program), nil
}

func (s *catalogService) CreateProgram(ctx context.Context, actor Actor, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	degree := req.DegreeLevel
	if degree == "" {
		degree = model.DegreeLicentiate
	}
	if !model.IsValidDegree(degree) {
		return nil, ErrInvalidDegree
	}
	if err := s.checkParents(ctx, req.FacultyID, req.CampusID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.Program.ExistsByKey(ctx, req.FacultyID, req.CampusID, name, "")
	if err != nil {
		s.logger.Error("check program key failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrProgramExists
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	program := &model.Program{
		FacultyID:   req.FacultyID,
		CampusID:    req.CampusID,
		Name:        name,
		DegreeLevel: degree,
		IsActive:    active,
	}
	program.Touch(s.clock.Now())
	if err := s.repo.Program.Create(ctx, program); err != nil {
		if isDuplicate(err) {
			return nil, ErrProgramExists
		}
		s.logger.Error("create program failed", zap.Error(err))
		return nil, err
	}

	return s.GetProgram(ctx, program.ProgramID)
}

func (s *catalogService) UpdateProgram(ctx context.Context, actor Actor, id string, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("get program failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.FacultyID != nil {
		program.FacultyID = *req.FacultyID
	}
	if req.CampusID != nil {
		program.CampusID = *req.CampusID
	}
	if req.Name != nil {
		program.Name = strings.TrimSpace(*req.Name)
	}
	if req.DegreeLevel != nil {
		if !model.IsValidDegree(*req.DegreeLevel) {
			return nil, ErrInvalidDegree
		}
		program.DegreeLevel = *req.DegreeLevel
	}
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if req.FacultyID != nil || req.CampusID != nil {
		if err := s.checkParents(ctx, program.FacultyID, program.CampusID); err != nil {
			return nil, err
		}
	}
	exists, err := s.repo.Program.ExistsByKey(ctx, program.FacultyID, program.CampusID, program.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProgramExists
	}

	program.UpdatedAt = s.clock.Now()
	program.Campus, program.Faculty = nil, nil
	if err := s.repo.Program.Update(ctx, program); err != nil {
		if isDuplicate(err) {
			return nil, ErrProgramExists
		}
		s.logger.Error("update program failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetProgram(ctx, id)
}

func (s *catalogService) DeleteProgram(ctx context.Context, actor Actor, id string, confirm bool) (*dto.DeleteResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	plan, err := s.cascade.planPrograms(ctx, []string{id})
	if err != nil {
		s.logger.Error("plan program delete failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if len(plan.redesignIDs) > 0 && !confirm {
		return nil, ErrDeleteNeedsConfirm.WithMessage(fmt.Sprintf(
			"program %q has %d redesign(s); repeat with confirm=true to delete them", program.Name, len(plan.redesignIDs)))
	}

	if err := s.cascade.execute(ctx, plan, nil); err != nil {
		s.logger.Error("delete program failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("program deleted",
		zap.String("id", id),
		zap.Int("redesigns", len(plan.redesignIDs)),
		zap.Int("evidences", len(plan.storageKeys)),
		zap.String("by", actor.UserID),
	)
	return &dto.DeleteResponse{Programs: 1, Redesigns: len(plan.redesignIDs), Evidences: len(plan.storageKeys)}, nil
}

// ────────────────────── Phase ──────────────────────

func (s *catalogService) ListPhases(ctx context.Context) ([]dto.PhaseResponse, error) {
	phases, err := s.repo.Phase.List(ctx)
	if err != nil {
		s.logger.Error("list phases failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.PhaseResponse, 0, len(phases))
	for i := range phases {
		result = append(result, *toPhaseResponse(&phases[i]))
	}
	return result, nil
}

// ── helpers ──

func (s *catalogService) checkParents(ctx context.Context, facultyID, campusID string) error {
	if _, err := s.repo.Faculty.GetByID(ctx, facultyID); err != nil {
		if isNotFound(err) {
			return ErrFacultyNotFound
		}
		return err
	}
	if _, err := s.repo.Campus.GetByID(ctx, campusID); err != nil {
		if isNotFound(err) {
			return ErrCampusNotFound
		}
		return err
	}
	return nil
}

// deleteWithPrograms guards and runs the delete of a campus or faculty that may own programs
func (s *catalogService) deleteWithPrograms(
	ctx context.Context,
	kind, name string,
	programIDs []string,
	confirm bool,
	last func(tx *repository.Repository) error,
) (*dto.DeleteResponse, error) {
	if len(programIDs) > 0 && !confirm {
		return nil, ErrDeleteNeedsConfirm.WithMessage(fmt.Sprintf(
			"%s %q has %d program(s); repeat with confirm=true to delete them with their redesigns", kind, name, len(programIDs)))
	}

	plan := &cascadePlan{}
	if len(programIDs) > 0 {
		var err error
		if plan, err = s.cascade.planPrograms(ctx, programIDs); err != nil {
			s.logger.Error("plan cascade failed", zap.String(kind, name), zap.Error(err))
			return nil, err
		}
	}

	if err := s.cascade.execute(ctx, plan, last); err != nil {
		s.logger.Error("cascade delete failed", zap.String(kind, name), zap.Error(err))
		return nil, err
	}

	s.logger.Info(kind+" deleted",
		zap.String("name", name),
		zap.Int("programs", len(plan.programIDs)),
		zap.Int("redesigns", len(plan.redesignIDs)),
		zap.Int("evidences", len(plan.storageKeys)),
	)
	return &dto.DeleteResponse{
		Programs:  len(plan.programIDs),
		Redesigns: len(plan.redesignIDs),
		Evidences: len(plan.storageKeys),
	}, nil
}
