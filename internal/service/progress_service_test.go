package service

import (
	"errors"
	"testing"
	"time"

	"uatf-curricular/backend/internal/dto"
	apperrors "uatf-curricular/backend/pkg/errors"
)

func TestProgressService_Update(t *testing.T) {
	env := newTestEnv(t)
	program := env.basicCatalog(t)
	r := env.redesign(t, program, 2025)
	row := r.Progress[0]
	env.clock.Advance(2 * time.Hour)

	done := true
	got, err := env.svc.Progress.Update(env.ctx, env.manager, row.ID, &dto.UpdateProgressRequest{
		Completed:      &done,
		StartDate:      strPtr("2025-03-01"),
		CompletionDate: strPtr("2025-03-09"),
		Verification:   strPtr("Acta N° 12"),
		Notes:          strPtr("sin observaciones"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !got.Completed || got.StartDate != "2025-03-01" || got.CompletionDate != "2025-03-09" {
		t.Errorf("unexpected row %+v", got)
	}
	if got.Verification != "Acta N° 12" || got.Notes != "sin observaciones" {
		t.Errorf("text fields not saved: %+v", got)
	}
	if got.UpdatedBy != env.manager.UserID {
		t.Errorf("expected updated_by=%s, got %s", env.manager.UserID, got.UpdatedBy)
	}
	if got.UpdatedAt != "2025-03-10T11:00:00Z" {
		t.Errorf("expected updated_at from the clock, got %s", got.UpdatedAt)
	}
}

func TestProgressService_Update_PartialKeepsOtherFields(t *testing.T) {
	env := newTestEnv(t)
	program := env.basicCatalog(t)
	r := env.redesign(t, program, 2025)
	row := r.Progress[1]

	if _, err := env.svc.Progress.Update(env.ctx, env.admin, row.ID, &dto.UpdateProgressRequest{Notes: strPtr("primera")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := env.svc.Progress.Update(env.ctx, env.admin, row.ID, &dto.UpdateProgressRequest{StartDate: strPtr("2025-02-01")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Notes != "primera" || got.StartDate != "2025-02-01" {
		t.Errorf("partial update lost data: %+v", got)
	}
}

func TestProgressService_Update_ReviewerDenied(t *testing.T) {
	env := newTestEnv(t)
	program := env.basicCatalog(t)
	r := env.redesign(t, program, 2025)
	row := r.Progress[0]

	done := true
	_, err := env.svc.Progress.Update(env.ctx, env.reviewer, row.ID, &dto.UpdateProgressRequest{Completed: &done})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	after, _ := env.svc.Progress.Get(env.ctx, row.ID)
	if after.Completed || after.UpdatedBy != "" {
		t.Errorf("row should be unchanged, got %+v", after)
	}
}

func TestProgressService_Update_BadDate(t *testing.T) {
	env := newTestEnv(t)
	program := env.basicCatalog(t)
	r := env.redesign(t, program, 2025)
	row := r.Progress[0]

	done := true
	_, err := env.svc.Progress.Update(env.ctx, env.admin, row.ID, &dto.UpdateProgressRequest{
		Completed:      &done,
		CompletionDate: strPtr("2025-13-01"),
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("expected KindValidation, got %v", apperrors.KindOf(err))
	}

	after, _ := env.svc.Progress.Get(env.ctx, row.ID)
	if after.Completed {
		t.Error("no field should be written when a date is invalid")
	}
}

func TestProgressService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Progress.Update(env.ctx, env.reviewer, "00000000-0000-0000-0000-000000000000", &dto.UpdateProgressRequest{})
	if !errors.Is(err, ErrProgressNotFound) {
		t.Errorf("expected ErrProgressNotFound before the role check, got %v", err)
	}
}

func TestProgressService_Update_KeepsRedesignTimestamp(t *testing.T) {
	env := newTestEnv(t)
	program := env.basicCatalog(t)
	r := env.redesign(t, program, 2025)
	env.clock.Advance(24 * time.Hour)

	env.complete(t, r, 1)

	after, _ := env.svc.Redesign.Get(env.ctx, r.ID)
	if after.UpdatedAt != r.UpdatedAt {
		t.Errorf("redesign updated_at moved from %s to %s", r.UpdatedAt, after.UpdatedAt)
	}
}
