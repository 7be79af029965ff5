package dto

// ── redesigns ──

// CreateRedesignRequest new redesign effort; year and start date default to the current ones
type CreateRedesignRequest struct {
	ProgramID string `json:"program_id" binding:"required,uuid"`
	Year      int    `json:"year"       binding:"omitempty,min=1900,max=2200"`
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Notes     string `json:"notes"`
}

// UpdateRedesignRequest status, completion date and notes; empty completion_date clears it
type UpdateRedesignRequest struct {
	Status         *string `json:"status"          binding:"omitempty,oneof=en_proceso completado suspendido"`
	CompletionDate *string `json:"completion_date"`
	Notes          *string `json:"notes"`
}

// RedesignListRequest listing filters
type RedesignListRequest struct {
	PaginationRequest
	Status   string `form:"status"    binding:"omitempty,oneof=en_proceso completado suspendido"`
	Year     int    `form:"year"      binding:"omitempty,min=1900,max=2200"`
	CampusID string `form:"campus_id" binding:"omitempty,uuid"`
}

// RedesignResponse summary row
type RedesignResponse struct {
	ID             string           `json:"id"`
	Year           int              `json:"year"`
	StartDate      string           `json:"start_date"`
	CompletionDate string           `json:"completion_date,omitempty"`
	Status         string           `json:"status"`
	StatusLabel    string           `json:"status_label"`
	Notes          string           `json:"notes,omitempty"`
	Percent        int              `json:"percent"`
	Program        *ProgramResponse `json:"program,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// RedesignDetailResponse redesign with its ordered phase rows
type RedesignDetailResponse struct {
	RedesignResponse
	Progress []ProgressResponse `json:"progress"`
}
