package dto

// ── campuses ──

// CampusRequest create or replace a campus
type CampusRequest struct {
	Name    string `json:"name"    binding:"required,max=100"`
	Address string `json:"address" binding:"omitempty"`
	Phone   string `json:"phone"   binding:"omitempty,max=20"`
}

// CampusResponse campus
type CampusResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProgramCount int64  `json:"program_count"`
}

// ── faculties ──

// FacultyRequest create or replace a faculty
type FacultyRequest struct {
	Name        string `json:"name"        binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty"`
}

// FacultyResponse faculty
type FacultyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ProgramCount int64  `json:"program_count"`
}

// ── programs ──

// CreateProgramRequest new program
type CreateProgramRequest struct {
	FacultyID   string `json:"faculty_id"   binding:"required,uuid"`
	CampusID    string `json:"campus_id"    binding:"required,uuid"`
	Name        string `json:"name"         binding:"required,max=200"`
	DegreeLevel string `json:"degree_level" binding:"omitempty,oneof=licenciatura tecnico_superior tecnico_medio"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateProgramRequest partial program edit
type UpdateProgramRequest struct {
	FacultyID   *string `json:"faculty_id"   binding:"omitempty,uuid"`
	CampusID    *string `json:"campus_id"    binding:"omitempty,uuid"`
	Name        *string `json:"name"         binding:"omitempty,min=1,max=200"`
	DegreeLevel *string `json:"degree_level" binding:"omitempty,oneof=licenciatura tecnico_superior tecnico_medio"`
	IsActive    *bool   `json:"is_active"`
}

// ProgramListRequest listing filters
type ProgramListRequest struct {
	PaginationRequest
	CampusID        string `form:"campus_id"        binding:"omitempty,uuid"`
	FacultyID       string `form:"faculty_id"       binding:"omitempty,uuid"`
	Keyword         string `form:"q"                binding:"omitempty,max=100"`
	IncludeInactive bool   `form:"include_inactive"`
}

// ProgramResponse program
type ProgramResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DegreeLevel string    `json:"degree_level"`
	DegreeLabel string    `json:"degree_label"`
	IsActive    bool      `json:"is_active"`
	Campus      *NamedRef `json:"campus,omitempty"`
	Faculty     *NamedRef `json:"faculty,omitempty"`
}

// ── deletes ──

// DeleteRequest cascading deletes need confirm=true when children exist
type DeleteRequest struct {
	Confirm bool `form:"confirm"`
}

// DeleteResponse what a delete removed
type DeleteResponse struct {
	Programs  int `json:"programs"`
	Redesigns int `json:"redesigns"`
	Evidences int `json:"evidences"`
}

// ── phases ──

// PhaseResponse phase definition
type PhaseResponse struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
}
