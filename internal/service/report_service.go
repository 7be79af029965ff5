package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/pkg/report"
)

// facultyNameLimit runes kept before the faculty name is cut with "..."
const facultyNameLimit = 30

// ReportService aggregates the in-progress redesigns by campus
type ReportService interface {
	Summary(ctx context.Context) (*dto.ReportSummary, error)
	Document(ctx context.Context) (*report.Document, error)
}

type reportService struct {
	repo   *repository.Repository
	cfg    *config.ReportConfig
	logger *zap.Logger
}

// NewReportService creates a ReportService
func NewReportService(repo *repository.Repository, cfg *config.ReportConfig, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, cfg: cfg, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Summary
// ═══════════════════════════════════════════════════════════
//
//   - campuses by name ascending, skipping those without in-progress redesigns
//   - rows by program name, numbered from 1 within each campus
//   - faculty names longer than 30 runes are cut and suffixed with "..."

func (s *reportService) Summary(ctx context.Context) (*dto.ReportSummary, error) {
	activePrograms, err := s.repo.Program.CountActive(ctx)
	if err != nil {
		s.logger.Error("count active programs failed", zap.Error(err))
		return nil, err
	}
	inProgress, err := s.repo.Redesign.CountByStatus(ctx, model.RedesignInProgress)
	if err != nil {
		s.logger.Error("count in-progress redesigns failed", zap.Error(err))
		return nil, err
	}

	campuses, err := s.repo.Campus.List(ctx)
	if err != nil {
		s.logger.Error("list campuses failed", zap.Error(err))
		return nil, err
	}
	redesigns, err := s.repo.Redesign.ListInProgress(ctx)
	if err != nil {
		s.logger.Error("list in-progress redesigns failed", zap.Error(err))
		return nil, err
	}

	ids := make([]string, 0, len(redesigns))
	byCampus := make(map[string][]*model.Redesign)
	for i := range redesigns {
		r := &redesigns[i]
		ids = append(ids, r.RedesignID)
		if r.Program != nil {
			byCampus[r.Program.CampusID] = append(byCampus[r.Program.CampusID], r)
		}
	}
	completed, err := s.repo.Progress.CountCompletedByRedesign(ctx, ids)
	if err != nil {
		s.logger.Error("count completed phases failed", zap.Error(err))
		return nil, err
	}

	summary := &dto.ReportSummary{
		Title:               s.title(),
		Institution:         s.cfg.Institution,
		ActivePrograms:      activePrograms,
		RedesignsInProgress: inProgress,
		Campuses:            []dto.ReportCampus{},
	}
	for _, campus := range campuses {
		group := byCampus[campus.CampusID]
		if len(group) == 0 {
			continue
		}
		block := dto.ReportCampus{Name: campus.Name, Rows: make([]dto.ReportRow, 0, len(group))}
		for i, r := range group {
			var faculty string
			if r.Program.Faculty != nil {
				faculty = r.Program.Faculty.Name
			}
			block.Rows = append(block.Rows, dto.ReportRow{
				Index:       i + 1,
				ProgramName: r.Program.Name,
				FacultyName: TruncateFacultyName(faculty),
				Percent:     model.ProgressPercent(completed[r.RedesignID]),
			})
		}
		summary.Campuses = append(summary.Campuses, block)
	}

	return summary, nil
}

func (s *reportService) title() string {
	if s.cfg.Year > 0 {
		return fmt.Sprintf("%s %d", s.cfg.Title, s.cfg.Year)
	}
	return s.cfg.Title
}

// Document the summary laid out for the PDF and XLSX renderers
func (s *reportService) Document(ctx context.Context) (*report.Document, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return SummaryDocument(summary), nil
}

// SummaryDocument lays a summary out as a report.Document
func SummaryDocument(summary *dto.ReportSummary) *report.Document {
	doc := &report.Document{
		Title:    summary.Title,
		Subtitle: summary.Institution,
		Stats: []report.Stat{
			{Label: "Total de Carreras:", Value: fmt.Sprint(summary.ActivePrograms)},
			{Label: "Rediseños en Proceso:", Value: fmt.Sprint(summary.RedesignsInProgress)},
		},
	}
	for _, campus := range summary.Campuses {
		sec := report.Section{
			Heading: "SEDE: " + strings.ToUpper(campus.Name),
			Columns: []string{"#", "Carrera", "Facultad", "Progreso"},
			Widths:  []float64{0.5, 2.5, 2.5, 1},
		}
		for _, row := range campus.Rows {
			sec.Rows = append(sec.Rows, []string{
				fmt.Sprint(row.Index),
				row.ProgramName,
				row.FacultyName,
				fmt.Sprintf("%d%%", row.Percent),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

// TruncateFacultyName keeps the first 30 runes and appends "..." when longer
func TruncateFacultyName(name string) string {
	r := []rune(name)
	if len(r) <= facultyNameLimit {
		return name
	}
	return string(r[:facultyNameLimit]) + "..."
}
