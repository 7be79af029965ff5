package service

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	apperrors "uatf-curricular/backend/pkg/errors"
	"uatf-curricular/backend/pkg/report"
)

// ── export errors ──

var (
	ErrExportGenerateFail = apperrors.New(apperrors.KindInternal, 16001, "failed to generate the report file")
)

const exportBaseName = "reporte_rediseno_curricular"

// ExportService renders the summary report to downloadable files.
//
// The file comes back as a bytes.Buffer; the handler sets the response
// headers and writes it out.
type ExportService interface {
	// ExportPDF A4 report
	ExportPDF(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportXLSX same content as a single-sheet workbook
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	report ReportService
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(report ReportService, logger *zap.Logger) ExportService {
	return &exportService{report: report, logger: logger}
}

func (s *exportService) ExportPDF(ctx context.Context) (*bytes.Buffer, string, error) {
	return s.export(ctx, report.PDFRenderer{})
}

func (s *exportService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	return s.export(ctx, report.XLSXRenderer{SheetName: "Reporte"})
}

// returns buf (file content), filename (suggested name), error
func (s *exportService) export(ctx context.Context, r report.Renderer) (*bytes.Buffer, string, error) {
	doc, err := s.report.Document(ctx)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if err := r.Render(buf, doc); err != nil {
		s.logger.Error("render report failed", zap.String("format", r.Extension()), zap.Error(err))
		return nil, "", ErrExportGenerateFail.Wrap(err)
	}

	return buf, exportBaseName + r.Extension(), nil
}
