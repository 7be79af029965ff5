package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/api/handler"
	"uatf-curricular/backend/internal/api/router"
	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/internal/testutil"
	"uatf-curricular/backend/pkg/jwt"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type apiServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 60 << 20},
		Auth: config.AuthConfig{
			JWTSecret:       "router-test-secret-0123456789",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
			LoginRateLimit:  10,
		},
		Report: config.ReportConfig{Title: "REPORTE DE REDISEÑO CURRICULAR", Institution: "UATF - POTOSÍ", Year: 2025},
	}
	logger := zap.NewNop()
	repo := repository.NewRepository(testutil.NewDB(t))
	jwtMgr := jwt.NewManager(&cfg.Auth)

	svc := service.NewService(service.Deps{
		Config:  cfg,
		Repo:    repo,
		Storage: testutil.NewMemStorage(),
		JWT:     jwtMgr,
		Logger:  logger,
	})

	ctx := context.Background()
	_, err := svc.Seed.Seed(ctx)
	require.NoError(t, err)
	for username, role := range map[string]string{"admin": model.RoleAdmin, "revisor": model.RoleReviewer} {
		_, err := service.CreateUser(ctx, repo, service.SystemClock{}, service.NewUser{
			Username: username,
			FullName: username,
			Role:     role,
			Password: "password123",
		})
		require.NoError(t, err)
	}

	engine := router.Setup(cfg, handler.NewHandler(svc, logger), jwtMgr, nil, logger)
	return &apiServer{t: t, engine: engine}
}

func (s *apiServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func (s *apiServer) login(username string) string {
	s.t.Helper()
	status, env := s.do("POST", "/api/v1/auth/login", "", dto.LoginRequest{Username: username, Password: "password123"})
	require.Equal(s.t, http.StatusOK, status)

	var tokens dto.TokenResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &tokens))
	return tokens.AccessToken
}

// ═══════════════════════════════════════════════════════════
// Tests
// ═══════════════════════════════════════════════════════════

func TestRouter_Health(t *testing.T) {
	s := newAPIServer(t)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newAPIServer(t)

	status, env := s.do("GET", "/api/v1/phases", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, 10002, env.Code)
}

func TestRouter_PhasesInOrder(t *testing.T) {
	s := newAPIServer(t)
	token := s.login("revisor")

	status, env := s.do("GET", "/api/v1/phases", token, nil)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		List []dto.PhaseResponse `json:"list"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.List, 12)
	assert.Equal(t, "RC", data.List[0].Code)
	assert.Equal(t, "CA", data.List[9].Code)
}

func TestRouter_ReviewerCannotManageCatalog(t *testing.T) {
	s := newAPIServer(t)
	token := s.login("revisor")

	status, env := s.do("POST", "/api/v1/campuses", token, dto.CampusRequest{Name: "Llallagua"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, 10003, env.Code)

	status, _ = s.do("GET", "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRouter_RedesignLifecycle(t *testing.T) {
	s := newAPIServer(t)
	admin := s.login("admin")

	status, env := s.do("GET", "/api/v1/programs?page_size=1", admin, nil)
	require.Equal(t, http.StatusOK, status)
	var page struct {
		List []dto.ProgramResponse `json:"list"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.List, 1)

	status, env = s.do("POST", "/api/v1/redesigns", admin, dto.CreateRedesignRequest{
		ProgramID: page.List[0].ID,
		Year:      2025,
		StartDate: "2025-03-10",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var detail dto.RedesignDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Len(t, detail.Progress, 12)
	assert.Equal(t, model.RedesignInProgress, detail.Status)

	// a second effort for the same year conflicts
	status, env = s.do("POST", "/api/v1/redesigns", admin, dto.CreateRedesignRequest{ProgramID: page.List[0].ID, Year: 2025})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, 13002, env.Code)

	// reviewers read but cannot edit progress
	reviewer := s.login("revisor")
	completed := true
	status, _ = s.do("PUT", "/api/v1/progress/"+detail.Progress[0].ID, reviewer, dto.UpdateProgressRequest{Completed: &completed})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do("PUT", "/api/v1/progress/"+detail.Progress[0].ID, admin, dto.UpdateProgressRequest{Completed: &completed})
	require.Equal(t, http.StatusOK, status)

	status, env = s.do("GET", "/api/v1/redesigns/"+detail.ID, reviewer, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, 10, detail.Percent)

	// evidence listing on the academic commission row
	status, _ = s.do("GET", "/api/v1/progress/"+detail.Progress[9].ID+"/evidences", reviewer, nil)
	assert.Equal(t, http.StatusOK, status)
}
