package service

import (
	"context"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
)

// recentRedesignsLimit redesigns shown as recently updated
const recentRedesignsLimit = 10

// DashboardService home page counters
type DashboardService interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	activePrograms, err := s.repo.Program.CountActive(ctx)
	if err != nil {
		s.logger.Error("count active programs failed", zap.Error(err))
		return nil, err
	}
	inProgress, err := s.repo.Redesign.CountByStatus(ctx, model.RedesignInProgress)
	if err != nil {
		s.logger.Error("count in-progress redesigns failed", zap.Error(err))
		return nil, err
	}
	perCampus, err := s.repo.Redesign.CountInProgressByCampus(ctx)
	if err != nil {
		s.logger.Error("count redesigns per campus failed", zap.Error(err))
		return nil, err
	}
	recent, err := s.repo.Redesign.ListRecentlyUpdated(ctx, recentRedesignsLimit)
	if err != nil {
		s.logger.Error("list recent redesigns failed", zap.Error(err))
		return nil, err
	}
	recentResp, err := redesignResponses(ctx, s.repo, recent)
	if err != nil {
		return nil, err
	}

	byCampus := make([]dto.CampusCountItem, 0, len(perCampus))
	for _, c := range perCampus {
		byCampus = append(byCampus, dto.CampusCountItem{CampusID: c.CampusID, CampusName: c.CampusName, Total: c.Total})
	}

	return &dto.DashboardResponse{
		ActivePrograms:      activePrograms,
		RedesignsInProgress: inProgress,
		InProgressByCampus:  byCampus,
		RecentlyUpdated:     recentResp,
	}, nil
}
