package handler

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler summary report and its downloads
type ReportHandler struct {
	reportSvc service.ReportService
	exportSvc service.ExportService
}

// NewReportHandler creates ReportHandler
func NewReportHandler(reportSvc service.ReportService, exportSvc service.ExportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, exportSvc: exportSvc}
}

// Summary report rows grouped by campus
// GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportSvc.Summary(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, summary)
}

// ExportPDF
// GET /api/v1/reports/summary.pdf
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPDF(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	sendFile(c, buf, filename, contentTypePDF)
}

// ExportXLSX
// GET /api/v1/reports/summary.xlsx
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportXLSX(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	sendFile(c, buf, filename, contentTypeXLSX)
}

func sendFile(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", attachment(filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// attachment Content-Disposition value with an RFC 5987 encoded filename
func attachment(filename string) string {
	return "attachment; filename*=UTF-8''" + url.PathEscape(filename)
}
