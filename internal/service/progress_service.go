package service

import (
	"context"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/repository"
	apperrors "uatf-curricular/backend/pkg/errors"
)

// ── progress errors ──

var (
	ErrProgressNotFound = apperrors.New(apperrors.KindNotFound, 14001, "phase progress not found")
)

// ProgressService the phase-update workflow
type ProgressService interface {
	Get(ctx context.Context, id string) (*dto.ProgressResponse, error)
	// Update applies the edits in req; last writer wins
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateProgressRequest) (*dto.ProgressResponse, error)
}

type progressService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewProgressService creates a ProgressService
func NewProgressService(repo *repository.Repository, clock Clock, logger *zap.Logger) ProgressService {
	return &progressService{repo: repo, clock: clock, logger: logger}
}

func (s *progressService) Get(ctx context.Context, id string) (*dto.ProgressResponse, error) {
	progress, err := s.repo.Progress.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgressNotFound
		}
		s.logger.Error("get progress failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var evidences int64
	if progress.AcceptsEvidence() {
		counts, err := s.repo.Evidence.CountByProgressIDs(ctx, []string{id})
		if err != nil {
			return nil, err
		}
		evidences = counts[id]
	}

	resp := toProgressResponse(progress, evidences)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *progressService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateProgressRequest) (*dto.ProgressResponse, error) {
	progress, err := s.repo.Progress.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgressNotFound
		}
		s.logger.Error("get progress failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !actor.CanEdit() {
		return nil, ErrPermissionDenied
	}

	// parse both dates before touching the row
	start, setStart, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, err
	}
	completion, setCompletion, err := parseDatePtr(req.CompletionDate)
	if err != nil {
		return nil, err
	}

	if req.Completed != nil {
		progress.Completed = *req.Completed
	}
	if setStart {
		progress.StartDate = start
	}
	if setCompletion {
		progress.CompletionDate = completion
	}
	if req.Verification != nil {
		progress.Verification = *req.Verification
	}
	if req.Notes != nil {
		progress.Notes = *req.Notes
	}
	progress.UpdatedBy = actor.userRef()
	progress.UpdatedAt = s.clock.Now()

	if err := s.repo.Progress.Update(ctx, progress); err != nil {
		s.logger.Error("update progress failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("phase progress updated",
		zap.String("id", id),
		zap.String("redesign_id", progress.RedesignID),
		zap.Bool("completed", progress.Completed),
		zap.String("by", actor.UserID),
	)
	return s.Get(ctx, id)
}
