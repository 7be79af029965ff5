package dto

// ── phase progress ──

// UpdateProgressRequest nil fields stay untouched; an empty date string clears the date
type UpdateProgressRequest struct {
	Completed      *bool   `json:"completed"`
	StartDate      *string `json:"start_date"`
	CompletionDate *string `json:"completion_date"`
	Verification   *string `json:"verification"`
	Notes          *string `json:"notes"`
}

// ProgressResponse one phase row of a redesign
type ProgressResponse struct {
	ID              string         `json:"id"`
	RedesignID      string         `json:"redesign_id"`
	Phase           *PhaseResponse `json:"phase,omitempty"`
	Completed       bool           `json:"completed"`
	StartDate       string         `json:"start_date,omitempty"`
	CompletionDate  string         `json:"completion_date,omitempty"`
	Verification    string         `json:"verification,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	AcceptsEvidence bool           `json:"accepts_evidence"`
	EvidenceCount   int64          `json:"evidence_count"`
	UpdatedBy       string         `json:"updated_by,omitempty"`
	UpdatedAt       string         `json:"updated_at"`
}
