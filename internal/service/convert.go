package service

import (
	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
)

// ── model → dto ──

func toCampusResponse(c *model.Campus, programs int64) dto.CampusResponse {
	return dto.CampusResponse{
		ID:           c.CampusID,
		Name:         c.Name,
		Address:      c.Address,
		Phone:        c.Phone,
		ProgramCount: programs,
	}
}

func toFacultyResponse(f *model.Faculty, programs int64) dto.FacultyResponse {
	return dto.FacultyResponse{
		ID:           f.FacultyID,
		Name:         f.Name,
		Description:  f.Description,
		ProgramCount: programs,
	}
}

func toProgramResponse(p *model.Program) *dto.ProgramResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProgramResponse{
		ID:          p.ProgramID,
		Name:        p.Name,
		DegreeLevel: p.DegreeLevel,
		DegreeLabel: model.DegreeLabels[p.DegreeLevel],
		IsActive:    p.IsActive,
	}
	if p.Campus != nil {
		resp.Campus = &dto.NamedRef{ID: p.Campus.CampusID, Name: p.Campus.Name}
	}
	if p.Faculty != nil {
		resp.Faculty = &dto.NamedRef{ID: p.Faculty.FacultyID, Name: p.Faculty.Name}
	}
	return resp
}

func toPhaseResponse(p *model.Phase) *dto.PhaseResponse {
	if p == nil {
		return nil
	}
	return &dto.PhaseResponse{
		ID:          p.PhaseID,
		Number:      p.Number,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		SortOrder:   p.SortOrder,
	}
}

func toRedesignResponse(r *model.Redesign, completed int64) dto.RedesignResponse {
	return dto.RedesignResponse{
		ID:             r.RedesignID,
		Year:           r.Year,
		StartDate:      r.StartDate.Format(dto.DateLayout),
		CompletionDate: formatDate(r.CompletionDate),
		Status:         r.Status,
		StatusLabel:    model.RedesignStatusLabels[r.Status],
		Notes:          r.Notes,
		Percent:        model.ProgressPercent(completed),
		Program:        toProgramResponse(r.Program),
		CreatedBy:      derefString(r.CreatedBy),
		CreatedAt:      r.CreatedAt.UTC().Format(dto.TimeLayout),
		UpdatedAt:      r.UpdatedAt.UTC().Format(dto.TimeLayout),
	}
}

func toProgressResponse(p *model.PhaseProgress, evidences int64) dto.ProgressResponse {
	return dto.ProgressResponse{
		ID:              p.ProgressID,
		RedesignID:      p.RedesignID,
		Phase:           toPhaseResponse(p.Phase),
		Completed:       p.Completed,
		StartDate:       formatDate(p.StartDate),
		CompletionDate:  formatDate(p.CompletionDate),
		Verification:    p.Verification,
		Notes:           p.Notes,
		AcceptsEvidence: p.AcceptsEvidence(),
		EvidenceCount:   evidences,
		UpdatedBy:       derefString(p.UpdatedBy),
		UpdatedAt:       p.UpdatedAt.UTC().Format(dto.TimeLayout),
	}
}

func toEvidenceResponse(e *model.Evidence) dto.EvidenceResponse {
	return dto.EvidenceResponse{
		ID:           e.EvidenceID,
		ProgressID:   e.ProgressID,
		OriginalName: e.OriginalName,
		Description:  e.Description,
		SizeBytes:    e.SizeBytes,
		Size:         model.HumanSize(e.SizeBytes),
		MimeType:     e.MimeType,
		UploadedBy:   derefString(e.UploadedBy),
		UploadedAt:   e.UploadedAt.UTC().Format(dto.TimeLayout),
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		RoleLabel: model.RoleLabels[u.Role],
		CanEdit:   model.CanEdit(u.Role),
		Phone:     u.Phone,
		Position:  u.Position,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(dto.TimeLayout),
	}
	if u.Faculty != nil {
		resp.Faculty = &dto.NamedRef{ID: u.Faculty.FacultyID, Name: u.Faculty.Name}
	}
	return resp
}
