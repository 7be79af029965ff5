package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

// CatalogHandler campuses, faculties, programs and phases
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler creates CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ── campuses ──

// ListCampuses
// GET /api/v1/campuses
func (h *CatalogHandler) ListCampuses(c *gin.Context) {
	campuses, err := h.catalogSvc.ListCampuses(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": campuses})
}

// CreateCampus
// POST /api/v1/campuses
func (h *CatalogHandler) CreateCampus(c *gin.Context) {
	var req dto.CampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	campus, err := h.catalogSvc.CreateCampus(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, campus)
}

// UpdateCampus
// PUT /api/v1/campuses/:id
func (h *CatalogHandler) UpdateCampus(c *gin.Context) {
	var req dto.CampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	campus, err := h.catalogSvc.UpdateCampus(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, campus)
}

// DeleteCampus cascades to its programs with ?confirm=true
// DELETE /api/v1/campuses/:id
func (h *CatalogHandler) DeleteCampus(c *gin.Context) {
	h.delete(c, h.catalogSvc.DeleteCampus)
}

// ── faculties ──

// ListFaculties
// GET /api/v1/faculties
func (h *CatalogHandler) ListFaculties(c *gin.Context) {
	faculties, err := h.catalogSvc.ListFaculties(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": faculties})
}

// CreateFaculty
// POST /api/v1/faculties
func (h *CatalogHandler) CreateFaculty(c *gin.Context) {
	var req dto.FacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	faculty, err := h.catalogSvc.CreateFaculty(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, faculty)
}

// UpdateFaculty
// PUT /api/v1/faculties/:id
func (h *CatalogHandler) UpdateFaculty(c *gin.Context) {
	var req dto.FacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	faculty, err := h.catalogSvc.UpdateFaculty(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, faculty)
}

// DeleteFaculty
// DELETE /api/v1/faculties/:id
func (h *CatalogHandler) DeleteFaculty(c *gin.Context) {
	h.delete(c, h.catalogSvc.DeleteFaculty)
}

// ── programs ──

// ListPrograms filterable by campus, faculty and keyword
// GET /api/v1/programs
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	var req dto.ProgramListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	programs, total, err := h.catalogSvc.ListPrograms(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, programs, total, req.GetPage(), req.GetPageSize())
}

// GetProgram
// GET /api/v1/programs/:id
func (h *CatalogHandler) GetProgram(c *gin.Context) {
	program, err := h.catalogSvc.GetProgram(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, program)
}

// CreateProgram
// POST /api/v1/programs
func (h *CatalogHandler) CreateProgram(c *gin.Context) {
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	program, err := h.catalogSvc.CreateProgram(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, program)
}

// UpdateProgram
// PUT /api/v1/programs/:id
func (h *CatalogHandler) UpdateProgram(c *gin.Context) {
	var req dto.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	program, err := h.catalogSvc.UpdateProgram(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, program)
}

// DeleteProgram
// DELETE /api/v1/programs/:id
func (h *CatalogHandler) DeleteProgram(c *gin.Context) {
	h.delete(c, h.catalogSvc.DeleteProgram)
}

// ── phases ──

// ListPhases
// GET /api/v1/phases
func (h *CatalogHandler) ListPhases(c *gin.Context) {
	phases, err := h.catalogSvc.ListPhases(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": phases})
}

type deleteFunc func(ctx context.Context, actor service.Actor, id string, confirm bool) (*dto.DeleteResponse, error)

func (h *CatalogHandler) delete(c *gin.Context, fn deleteFunc) {
	var req dto.DeleteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), actor, c.Param("id"), req.Confirm)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}
