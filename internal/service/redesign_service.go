package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	apperrors "uatf-curricular/backend/pkg/errors"
	"uatf-curricular/backend/pkg/storage"
)

// ── redesign errors ──

var (
	ErrRedesignNotFound      = apperrors.New(apperrors.KindNotFound, 13001, "redesign not found")
	ErrRedesignExists        = apperrors.New(apperrors.KindUniqueness, 13002, "the program already has a redesign for this year")
	ErrInvalidRedesignStatus = apperrors.New(apperrors.KindValidation, 13003, "unknown redesign status")
)

// RedesignService redesign efforts and their phase rows
type RedesignService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateRedesignRequest) (*dto.RedesignDetailResponse, error)
	Get(ctx context.Context, id string) (*dto.RedesignDetailResponse, error)
	List(ctx context.Context, req *dto.RedesignListRequest) ([]dto.RedesignResponse, int64, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateRedesignRequest) (*dto.RedesignResponse, error)
	Delete(ctx context.Context, actor Actor, id string) (*dto.DeleteResponse, error)
	// EnsureProgressRows adds rows for phases seeded after the redesign was created
	EnsureProgressRows(ctx context.Context, actor Actor, id string) (int, error)
}

type redesignService struct {
	repo    *repository.Repository
	cascade *cascader
	clock   Clock
	logger  *zap.Logger
}

// NewRedesignService creates a RedesignService
func NewRedesignService(repo *repository.Repository, store storage.Storage, clock Clock, logger *zap.Logger) RedesignService {
	return &redesignService{
		repo:    repo,
		cascade: &cascader{repo: repo, store: store, logger: logger},
		clock:   clock,
		logger:  logger,
	}
}

// ────────────────────── Create ──────────────────────

// Create inserts the redesign and one progress row per existing phase in a single transaction
func (s *redesignService) Create(ctx context.Context, actor Actor, req *dto.CreateRedesignRequest) (*dto.RedesignDetailResponse, error) {
	if !actor.IsAdmin() || !actor.CanEdit() {
		return nil, ErrPermissionDenied
	}

	if _, err := s.repo.Program.GetByID(ctx, req.ProgramID); err != nil {
		if isNotFound(err) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("get program failed", zap.String("program_id", req.ProgramID), zap.Error(err))
		return nil, err
	}

	now := s.clock.Now()
	year := req.Year
	if year == 0 {
		year = now.Year()
	}
	start := today(now)
	if req.StartDate != "" {
		parsed, _, err := parseDatePtr(&req.StartDate)
		if err != nil {
			return nil, err
		}
		start = *parsed
	}

	exists, err := s.repo.Redesign.ExistsByProgramYear(ctx, req.ProgramID, year)
	if err != nil {
		s.logger.Error("check redesign uniqueness failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrRedesignExists
	}

	redesign := &model.Redesign{
		ProgramID: req.ProgramID,
		Year:      year,
		StartDate: start,
		Status:    model.RedesignInProgress,
		Notes:     req.Notes,
		CreatedBy: actor.userRef(),
	}
	redesign.Touch(now)

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Redesign.Create(ctx, redesign); err != nil {
			return err
		}
		_, err := ensureProgressRows(ctx, tx, redesign.RedesignID, now)
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrRedesignExists
		}
		s.logger.Error("create redesign failed", zap.String("program_id", req.ProgramID), zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	s.logger.Info("redesign created",
		zap.String("id", redesign.RedesignID),
		zap.String("program_id", req.ProgramID),
		zap.Int("year", year),
		zap.String("by", actor.UserID),
	)
	return s.Get(ctx, redesign.RedesignID)
}

// ensureProgressRows creates the missing (redesign, phase) rows; existing rows are left alone
func ensureProgressRows(ctx context.Context, repo *repository.Repository, redesignID string, now time.Time) (int, error) {
	phases, err := repo.Phase.List(ctx)
	if err != nil {
		return 0, err
	}
	existing, err := repo.Progress.ListPhaseIDsByRedesign(ctx, redesignID)
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}

	var rows []model.PhaseProgress
	for _, ph := range phases {
		if have[ph.PhaseID] {
			continue
		}
		rows = append(rows, model.PhaseProgress{
			RedesignID: redesignID,
			PhaseID:    ph.PhaseID,
			UpdatedAt:  now,
		})
	}
	if err := repo.Progress.CreateBatch(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *redesignService) EnsureProgressRows(ctx context.Context, actor Actor, id string) (int, error) {
	if !actor.IsAdmin() {
		return 0, ErrPermissionDenied
	}
	if _, err := s.repo.Redesign.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return 0, ErrRedesignNotFound
		}
		return 0, err
	}

	var added int
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		added, err = ensureProgressRows(ctx, tx, id, s.clock.Now())
		return err
	})
	if err != nil {
		s.logger.Error("ensure progress rows failed", zap.String("id", id), zap.Error(err))
		return 0, err
	}
	return added, nil
}

// ────────────────────── Get ──────────────────────

func (s *redesignService) Get(ctx context.Context, id string) (*dto.RedesignDetailResponse, error) {
	redesign, err := s.repo.Redesign.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRedesignNotFound
		}
		s.logger.Error("get redesign failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.Progress.ListByRedesign(ctx, id)
	if err != nil {
		s.logger.Error("list progress rows failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var completed int64
	var caRows []string
	for i := range rows {
		if rows[i].Completed {
			completed++
		}
		if rows[i].AcceptsEvidence() {
			caRows = append(caRows, rows[i].ProgressID)
		}
	}
	evidenceCounts, err := s.repo.Evidence.CountByProgressIDs(ctx, caRows)
	if err != nil {
		s.logger.Warn("count evidence failed, falling back to 0", zap.Error(err))
		evidenceCounts = map[string]int64{}
	}

	progress := make([]dto.ProgressResponse, 0, len(rows))
	for i := range rows {
		progress = append(progress, toProgressResponse(&rows[i], evidenceCounts[rows[i].ProgressID]))
	}

	return &dto.RedesignDetailResponse{
		RedesignResponse: toRedesignResponse(redesign, completed),
		Progress:         progress,
	}, nil
}

// ────────────────────── List ──────────────────────

func (s *redesignService) List(ctx context.Context, req *dto.RedesignListRequest) ([]dto.RedesignResponse, int64, error) {
	filter := repository.RedesignFilter{Status: req.Status, Year: req.Year, CampusID: req.CampusID}
	redesigns, total, err := s.repo.Redesign.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list redesigns failed", zap.Error(err))
		return nil, 0, err
	}

	result, err := redesignResponses(ctx, s.repo, redesigns)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// redesignResponses batches the completed-phase counts to avoid one query per row
func redesignResponses(ctx context.Context, repo *repository.Repository, redesigns []model.Redesign) ([]dto.RedesignResponse, error) {
	ids := make([]string, 0, len(redesigns))
	for _, r := range redesigns {
		ids = append(ids, r.RedesignID)
	}
	counts, err := repo.Progress.CountCompletedByRedesign(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RedesignResponse, 0, len(redesigns))
	for i := range redesigns {
		result = append(result, toRedesignResponse(&redesigns[i], counts[redesigns[i].RedesignID]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *redesignService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateRedesignRequest) (*dto.RedesignResponse, error) {
	redesign, err := s.repo.Redesign.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRedesignNotFound
		}
		s.logger.Error("get redesign failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !actor.CanEdit() {
		return nil, ErrPermissionDenied
	}

	if req.Status != nil {
		if !model.IsValidRedesignStatus(*req.Status) {
			return nil, ErrInvalidRedesignStatus
		}
		redesign.Status = *req.Status
	}
	if date, ok, err := parseDatePtr(req.CompletionDate); err != nil {
		return nil, err
	} else if ok {
		redesign.CompletionDate = date
	}
	if req.Notes != nil {
		redesign.Notes = *req.Notes
	}

	redesign.UpdatedAt = s.clock.Now()
	if err := s.repo.Redesign.Update(ctx, redesign); err != nil {
		s.logger.Error("update redesign failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Progress.CountCompletedByRedesign(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	resp := toRedesignResponse(redesign, counts[id])
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *redesignService) Delete(ctx context.Context, actor Actor, id string) (*dto.DeleteResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if _, err := s.repo.Redesign.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, ErrRedesignNotFound
		}
		return nil, err
	}

	plan, err := s.cascade.planRedesigns(ctx, []string{id})
	if err != nil {
		s.logger.Error("plan redesign delete failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.cascade.execute(ctx, plan, nil); err != nil {
		s.logger.Error("delete redesign failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("redesign deleted", zap.String("id", id), zap.Int("evidences", len(plan.storageKeys)), zap.String("by", actor.UserID))
	return &dto.DeleteResponse{Redesigns: 1, Evidences: len(plan.storageKeys)}, nil
}
