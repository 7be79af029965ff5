package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/pkg/jwt"
	"uatf-curricular/backend/pkg/storage"
)

// Service aggregate of every service
type Service struct {
	Auth      AuthService
	User      UserService
	Catalog   CatalogService
	Redesign  RedesignService
	Progress  ProgressService
	Evidence  EvidenceService
	Report    ReportService
	Export    ExportService
	Dashboard DashboardService
	Seed      SeedService
}

// Deps collaborators shared by the services
type Deps struct {
	Config    *config.Config
	Repo      *repository.Repository
	Storage   storage.Storage
	JWT       *jwt.Manager
	Blacklist TokenBlacklist // optional
	Clock     Clock          // defaults to SystemClock
	Logger    *zap.Logger
}

// NewService creates the aggregate
func NewService(d Deps) *Service {
	if d.Clock == nil {
		d.Clock = SystemClock{}
	}
	report := NewReportService(d.Repo, &d.Config.Report, d.Logger)
	return &Service{
		Auth:      NewAuthService(d.Repo, d.JWT, d.Blacklist, d.Clock, d.Logger),
		User:      NewUserService(d.Repo, d.Clock, d.Logger),
		Catalog:   NewCatalogService(d.Repo, d.Storage, d.Clock, d.Logger),
		Redesign:  NewRedesignService(d.Repo, d.Storage, d.Clock, d.Logger),
		Progress:  NewProgressService(d.Repo, d.Clock, d.Logger),
		Evidence:  NewEvidenceService(d.Repo, d.Storage, d.Clock, d.Logger),
		Report:    report,
		Export:    NewExportService(report, d.Logger),
		Dashboard: NewDashboardService(d.Repo, d.Logger),
		Seed:      NewSeedService(d.Repo, d.Clock, d.Logger),
	}
}

// ── actor ──

// Actor authenticated caller of a workflow
type Actor struct {
	UserID string
	Role   string
}

// CanEdit see model.CanEdit
func (a Actor) CanEdit() bool { return model.CanEdit(a.Role) }

// IsAdmin reports whether the actor manages the catalog
func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

func (a Actor) userRef() *string {
	if a.UserID == "" {
		return nil
	}
	id := a.UserID
	return &id
}

// ── clock ──

// Clock time source of every timestamp a workflow writes
type Clock interface {
	Now() time.Time
}

// SystemClock wall clock in UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// today midnight UTC of now's calendar date
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── token blacklist ──

// TokenBlacklist revoked access tokens, implemented by pkg/redis
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
