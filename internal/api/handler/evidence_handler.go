package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

// EvidenceHandler files attached to academic commission rows
type EvidenceHandler struct {
	evidenceSvc service.EvidenceService
	logger      *zap.Logger
}

// NewEvidenceHandler creates EvidenceHandler
func NewEvidenceHandler(evidenceSvc service.EvidenceService, logger *zap.Logger) *EvidenceHandler {
	return &EvidenceHandler{evidenceSvc: evidenceSvc, logger: logger}
}

// Upload multipart form with a "file" part and an optional "description"
// POST /api/v1/progress/:id/evidences
func (h *EvidenceHandler) Upload(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10007, "request body too large")
			return
		}
		badRequest(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer f.Close()

	evidence, err := h.evidenceSvc.Upload(c.Request.Context(), actor, c.Param("id"), uploadFrom(fh, f, c.PostForm("description")))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, evidence)
}

func uploadFrom(fh *multipart.FileHeader, f multipart.File, description string) *service.Upload {
	return &service.Upload{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Description: description,
		Body:        f,
	}
}

// List newest first
// GET /api/v1/progress/:id/evidences
func (h *EvidenceHandler) List(c *gin.Context) {
	list, err := h.evidenceSvc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// Download streams the stored file
// GET /api/v1/evidences/:id/download
func (h *EvidenceHandler) Download(c *gin.Context) {
	dl, err := h.evidenceSvc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	defer func() {
		if cerr := dl.Body.Close(); cerr != nil {
			h.logger.Warn("close evidence stream", zap.Error(cerr))
		}
	}()

	c.DataFromReader(http.StatusOK, dl.Size, dl.ContentType, dl.Body, map[string]string{
		"Content-Disposition": attachment(dl.Filename),
	})
}

// Delete
// DELETE /api/v1/evidences/:id
func (h *EvidenceHandler) Delete(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.evidenceSvc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OKMessage(c, "evidence deleted", nil)
}
