package handler

import (
	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

// RedesignHandler redesign efforts and their phase rows
type RedesignHandler struct {
	redesignSvc service.RedesignService
}

// NewRedesignHandler creates RedesignHandler
func NewRedesignHandler(redesignSvc service.RedesignService) *RedesignHandler {
	return &RedesignHandler{redesignSvc: redesignSvc}
}

// List
// GET /api/v1/redesigns?status=&year=&campus_id=
func (h *RedesignHandler) List(c *gin.Context) {
	var req dto.RedesignListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, total, err := h.redesignSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get detail with the progress rows in phase order
// GET /api/v1/redesigns/:id
func (h *RedesignHandler) Get(c *gin.Context) {
	detail, err := h.redesignSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, detail)
}

// Create
// POST /api/v1/redesigns
func (h *RedesignHandler) Create(c *gin.Context) {
	var req dto.CreateRedesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	detail, err := h.redesignSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, detail)
}

// Update
// PUT /api/v1/redesigns/:id
func (h *RedesignHandler) Update(c *gin.Context) {
	var req dto.UpdateRedesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	redesign, err := h.redesignSvc.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, redesign)
}

// Delete removes the redesign and every stored evidence file
// DELETE /api/v1/redesigns/:id
func (h *RedesignHandler) Delete(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.redesignSvc.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// EnsureProgress adds rows for phases seeded later
// POST /api/v1/redesigns/:id/progress/sync
func (h *RedesignHandler) EnsureProgress(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	added, err := h.redesignSvc.EnsureProgressRows(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"added": added})
}
