package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/internal/testutil"
	"uatf-curricular/backend/pkg/jwt"
)

// ── test setup ──

var testStart = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	ctx   context.Context
	db    *gorm.DB
	repo  *repository.Repository
	store *testutil.MemStorage
	clock *testutil.Clock
	svc   *Service

	admin       Actor
	coordinator Actor
	manager     Actor
	reviewer    Actor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
		Report: config.ReportConfig{
			Title:       "Rediseño Curricular",
			Institution: "Universidad Autónoma Tomás Frías",
			Year:        2025,
		},
	}

	db := testutil.NewDB(t)
	env := &testEnv{
		ctx:   context.Background(),
		db:    db,
		repo:  repository.NewRepository(db),
		store: testutil.NewMemStorage(),
		clock: testutil.NewClock(testStart),
	}
	env.svc = NewService(Deps{
		Config:  cfg,
		Repo:    env.repo,
		Storage: env.store,
		JWT:     jwt.NewManager(&cfg.Auth),
		Clock:   env.clock,
		Logger:  zap.NewNop(),
	})

	env.admin = env.user(t, "admin", model.RoleAdmin)
	env.coordinator = env.user(t, "coord", model.RoleCoordinator)
	env.manager = env.user(t, "gestor", model.RoleManager)
	env.reviewer = env.user(t, "revisor", model.RoleReviewer)
	return env
}

func (e *testEnv) user(t *testing.T, username, role string) Actor {
	t.Helper()
	u, err := CreateUser(e.ctx, e.repo, e.clock, NewUser{
		Username: username,
		Email:    username + "@uatf.edu.bo",
		FullName: "Usuario " + username,
		Role:     role,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return Actor{UserID: u.UserID, Role: u.Role}
}

// phases seeds the twelve redesign phases
func (e *testEnv) phases(t *testing.T) []model.Phase {
	t.Helper()
	out := make([]model.Phase, 0, len(seedPhases))
	for _, p := range seedPhases {
		phase := p
		if err := e.repo.Phase.Create(e.ctx, &phase); err != nil {
			t.Fatalf("create phase %d: %v", p.Number, err)
		}
		out = append(out, phase)
	}
	return out
}

func (e *testEnv) campus(t *testing.T, name string) *model.Campus {
	t.Helper()
	c := &model.Campus{Name: name}
	c.Touch(e.clock.Now())
	if err := e.repo.Campus.Create(e.ctx, c); err != nil {
		t.Fatalf("create campus: %v", err)
	}
	return c
}

func (e *testEnv) faculty(t *testing.T, name string) *model.Faculty {
	t.Helper()
	f := &model.Faculty{Name: name}
	f.Touch(e.clock.Now())
	if err := e.repo.Faculty.Create(e.ctx, f); err != nil {
		t.Fatalf("create faculty: %v", err)
	}
	return f
}

func (e *testEnv) program(t *testing.T, c *model.Campus, f *model.Faculty, name string) *model.Program {
	t.Helper()
	p := &model.Program{
		CampusID:    c.CampusID,
		FacultyID:   f.FacultyID,
		Name:        name,
		DegreeLevel: model.DegreeLicentiate,
		IsActive:    true,
	}
	p.Touch(e.clock.Now())
	if err := e.repo.Program.Create(e.ctx, p); err != nil {
		t.Fatalf("create program: %v", err)
	}
	return p
}

// redesign creates a redesign for program through the service
func (e *testEnv) redesign(t *testing.T, p *model.Program, year int) *dto.RedesignDetailResponse {
	t.Helper()
	r, err := e.svc.Redesign.Create(e.ctx, e.admin, &dto.CreateRedesignRequest{ProgramID: p.ProgramID, Year: year})
	if err != nil {
		t.Fatalf("create redesign: %v", err)
	}
	return r
}

// progressByCode row of the given phase code
func progressByCode(t *testing.T, r *dto.RedesignDetailResponse, code string) dto.ProgressResponse {
	t.Helper()
	for _, p := range r.Progress {
		if p.Phase != nil && p.Phase.Code == code {
			return p
		}
	}
	t.Fatalf("no progress row for phase %s", code)
	return dto.ProgressResponse{}
}

// complete marks the first n phases as completed
func (e *testEnv) complete(t *testing.T, r *dto.RedesignDetailResponse, n int) {
	t.Helper()
	done := true
	for i := 0; i < n; i++ {
		if _, err := e.svc.Progress.Update(e.ctx, e.admin, r.Progress[i].ID, &dto.UpdateProgressRequest{Completed: &done}); err != nil {
			t.Fatalf("complete phase %d: %v", i+1, err)
		}
	}
}

// basicCatalog one campus, faculty and program with the phases seeded
func (e *testEnv) basicCatalog(t *testing.T) *model.Program {
	t.Helper()
	e.phases(t)
	c := e.campus(t, "Potosí")
	f := e.faculty(t, "Facultad de Ingeniería")
	return e.program(t, c, f, "Ingeniería Civil")
}

func strPtr(s string) *string { return &s }
