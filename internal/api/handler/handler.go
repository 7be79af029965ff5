package handler

import (
	"go.uber.org/zap"

	"uatf-curricular/backend/internal/service"
)

// Handler aggregate of every HTTP handler
type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Catalog   *CatalogHandler
	Redesign  *RedesignHandler
	Progress  *ProgressHandler
	Evidence  *EvidenceHandler
	Report    *ReportHandler
	Dashboard *DashboardHandler
}

// NewHandler creates the aggregate
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		User:      NewUserHandler(svc.User),
		Catalog:   NewCatalogHandler(svc.Catalog),
		Redesign:  NewRedesignHandler(svc.Redesign),
		Progress:  NewProgressHandler(svc.Progress),
		Evidence:  NewEvidenceHandler(svc.Evidence, logger),
		Report:    NewReportHandler(svc.Report, svc.Export),
		Dashboard: NewDashboardHandler(svc.Dashboard),
	}
}
