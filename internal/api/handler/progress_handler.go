package handler

import (
	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

// ProgressHandler per-phase progress rows
type ProgressHandler struct {
	progressSvc service.ProgressService
}

// NewProgressHandler creates ProgressHandler
func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// Get
// GET /api/v1/progress/:id
func (h *ProgressHandler) Get(c *gin.Context) {
	progress, err := h.progressSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, progress)
}

// Update
// PUT /api/v1/progress/:id
func (h *ProgressHandler) Update(c *gin.Context) {
	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	progress, err := h.progressSvc.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, progress)
}
