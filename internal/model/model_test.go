package model

import "testing"

func TestCanEdit(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleCoordinator, true},
		{RoleManager, true},
		{RoleReviewer, false},
		{"", false},
		{"superuser", false},
	}
	for _, tt := range tests {
		if got := CanEdit(tt.role); got != tt.want {
			t.Errorf("CanEdit(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		completed int64
		want      int
	}{
		{0, 0},
		{3, 30},
		{10, 100},
		{12, 120},
	}
	for _, tt := range tests {
		if got := ProgressPercent(tt.completed); got != tt.want {
			t.Errorf("ProgressPercent(%d) = %d, want %d", tt.completed, got, tt.want)
		}
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0 bytes"},
		{512, "512.0 bytes"},
		{1536, "1.5 KB"},
		{50 << 20, "50.0 MB"},
		{3 << 30, "3.0 GB"},
		{2 << 40, "2.0 TB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.size); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestPhaseProgress_AcceptsEvidence(t *testing.T) {
	ca := &PhaseProgress{Phase: &Phase{Code: PhaseCodeAcademicCommission}}
	rc := &PhaseProgress{Phase: &Phase{Code: "RC"}}
	bare := &PhaseProgress{}

	if !ca.AcceptsEvidence() {
		t.Error("CA row should accept evidence")
	}
	if rc.AcceptsEvidence() {
		t.Error("RC row should not accept evidence")
	}
	if bare.AcceptsEvidence() {
		t.Error("row without a loaded phase should not accept evidence")
	}
}

func TestEnsureID(t *testing.T) {
	id := ""
	ensureID(&id)
	if len(id) != 36 {
		t.Fatalf("expected uuid, got %q", id)
	}
	kept := "fixed"
	ensureID(&kept)
	if kept != "fixed" {
		t.Errorf("existing id overwritten: %q", kept)
	}
}
