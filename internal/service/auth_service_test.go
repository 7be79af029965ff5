package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/pkg/jwt"
)

// ── test helpers ──

type memBlacklist struct {
	mu   sync.Mutex
	jtis map[string]time.Duration
}

func newMemBlacklist() *memBlacklist {
	return &memBlacklist{jtis: make(map[string]time.Duration)}
}

func (m *memBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jtis[jti] = ttl
	return nil
}

func (m *memBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.jtis[jti]
	return ok, nil
}

func setupTestAuthService(t *testing.T) (AuthService, *testEnv, *memBlacklist, *jwt.Manager) {
	t.Helper()
	env := newTestEnv(t)
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	bl := newMemBlacklist()
	svc := NewAuthService(env.repo, jwtMgr, bl, SystemClock{}, zap.NewNop())
	return svc, env, bl, jwtMgr
}

// ── Login ──

func TestLogin_Success(t *testing.T) {
	svc, env, _, jwtMgr := setupTestAuthService(t)

	result, err := svc.Login(env.ctx, &dto.LoginRequest{Username: "coord", Password: "password123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("tokens should not be empty")
	}
	if result.ExpiresIn != 900 {
		t.Errorf("expected ExpiresIn=900, got %d", result.ExpiresIn)
	}
	if result.User.Role != model.RoleCoordinator || !result.User.CanEdit {
		t.Errorf("unexpected user %+v", result.User)
	}

	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != env.coordinator.UserID || claims.Role != model.RoleCoordinator {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)

	_, err := svc.Login(env.ctx, &dto.LoginRequest{Username: "coord", Password: "wrong_password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)

	_, err := svc.Login(env.ctx, &dto.LoginRequest{Username: "nadie", Password: "password123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Inactive(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)

	u, _ := env.repo.User.GetByUsername(env.ctx, "gestor")
	u.IsActive = false
	if err := env.repo.User.Update(env.ctx, u); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := svc.Login(env.ctx, &dto.LoginRequest{Username: "gestor", Password: "password123"})
	if !errors.Is(err, ErrUserInactive) {
		t.Errorf("expected ErrUserInactive, got %v", err)
	}
}

// ── Register ──

func TestRegister_CreatesReviewer(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)

	user, err := svc.Register(env.ctx, &dto.RegisterRequest{
		Username:  "mquispe",
		Email:     "mquispe@uatf.edu.bo",
		FirstName: "María",
		LastName:  "Quispe",
		Password:  "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != model.RoleReviewer || user.CanEdit {
		t.Errorf("self registration must create a reviewer, got %+v", user)
	}
	if user.FullName != "María Quispe" {
		t.Errorf("unexpected full name %q", user.FullName)
	}

	if _, err := svc.Login(env.ctx, &dto.LoginRequest{Username: "mquispe", Password: "password123"}); err != nil {
		t.Errorf("new account should log in: %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)

	_, err := svc.Register(env.ctx, &dto.RegisterRequest{
		Username:  "admin",
		Email:     "otro@uatf.edu.bo",
		FirstName: "Otro",
		LastName:  "Admin",
		Password:  "password123",
	})
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("expected ErrUsernameExists, got %v", err)
	}
}

// ── Refresh / Logout / Me ──

func TestRefresh_SingleUse(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)
	tokens, _ := svc.Login(env.ctx, &dto.LoginRequest{Username: "admin", Password: "password123"})

	refreshed, err := svc.Refresh(env.ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("AccessToken should not be empty")
	}

	if _, err := svc.Refresh(env.ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("reusing a refresh token: expected ErrInvalidRefresh, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)
	tokens, _ := svc.Login(env.ctx, &dto.LoginRequest{Username: "admin", Password: "password123"})

	if _, err := svc.Refresh(env.ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken}); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("expected ErrInvalidRefresh, got %v", err)
	}
}

func TestLogout_BlacklistsToken(t *testing.T) {
	svc, env, bl, jwtMgr := setupTestAuthService(t)
	tokens, _ := svc.Login(env.ctx, &dto.LoginRequest{Username: "revisor", Password: "password123"})
	claims, _ := jwtMgr.ParseToken(tokens.AccessToken)

	if err := svc.Logout(env.ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	revoked, _ := bl.IsBlacklisted(env.ctx, claims.ID)
	if !revoked {
		t.Error("token should be blacklisted")
	}
	if ttl := bl.jtis[claims.ID]; ttl <= 0 || ttl > 15*time.Minute {
		t.Errorf("expected ttl up to the token expiry, got %v", ttl)
	}
}

func TestMe(t *testing.T) {
	svc, env, _, _ := setupTestAuthService(t)

	me, err := svc.Me(env.ctx, env.reviewer.UserID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.Username != "revisor" || me.RoleLabel == "" {
		t.Errorf("unexpected profile %+v", me)
	}

	if _, err := svc.Me(env.ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
