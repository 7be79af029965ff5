package service

import (
	"bytes"
	"testing"
	"time"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
)

// reportFixture two campuses with in-progress redesigns and one without
func reportFixture(t *testing.T, env *testEnv) {
	t.Helper()
	env.phases(t)
	potosi := env.campus(t, "Potosí")
	tupiza := env.campus(t, "Tupiza")
	env.campus(t, "Uyuni")
	eco := env.faculty(t, "Facultad de Ciencias Económicas, Financieras y Administrativas")
	law := env.faculty(t, "Facultad de Derecho")

	economia := env.redesign(t, env.program(t, potosi, eco, "Economía"), 2025)
	admin := env.redesign(t, env.program(t, potosi, eco, "Administración de Empresas"), 2025)
	env.redesign(t, env.program(t, tupiza, law, "Programa Derecho"), 2025)

	suspended := env.redesign(t, env.program(t, tupiza, eco, "Contaduría Pública"), 2025)
	status := model.RedesignSuspended
	if _, err := env.svc.Redesign.Update(env.ctx, env.admin, suspended.ID, &dto.UpdateRedesignRequest{Status: &status}); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	env.complete(t, economia, 3)
	env.complete(t, admin, 5)
}

func TestReportService_Summary(t *testing.T) {
	env := newTestEnv(t)
	reportFixture(t, env)

	s, err := env.svc.Report.Summary(env.ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if s.Title != "Rediseño Curricular 2025" {
		t.Errorf("unexpected title %q", s.Title)
	}
	if s.ActivePrograms != 4 || s.RedesignsInProgress != 3 {
		t.Errorf("unexpected counters %d / %d", s.ActivePrograms, s.RedesignsInProgress)
	}

	// Uyuni has nothing in progress and is skipped
	if len(s.Campuses) != 2 || s.Campuses[0].Name != "Potosí" || s.Campuses[1].Name != "Tupiza" {
		t.Fatalf("unexpected campuses %+v", s.Campuses)
	}

	potosi := s.Campuses[0].Rows
	if len(potosi) != 2 {
		t.Fatalf("expected 2 Potosí rows, got %d", len(potosi))
	}
	if potosi[0].Index != 1 || potosi[0].ProgramName != "Administración de Empresas" || potosi[0].Percent != 50 {
		t.Errorf("unexpected first row %+v", potosi[0])
	}
	if potosi[1].Index != 2 || potosi[1].ProgramName != "Economía" || potosi[1].Percent != 30 {
		t.Errorf("unexpected second row %+v", potosi[1])
	}
	if potosi[0].FacultyName != "Facultad de Ciencias Económica..." {
		t.Errorf("faculty name should be truncated, got %q", potosi[0].FacultyName)
	}

	tupiza := s.Campuses[1].Rows
	if len(tupiza) != 1 || tupiza[0].Index != 1 || tupiza[0].FacultyName != "Facultad de Derecho" {
		t.Errorf("unexpected Tupiza rows %+v", tupiza)
	}
}

func TestReportService_Summary_Empty(t *testing.T) {
	env := newTestEnv(t)
	env.campus(t, "Llica")

	s, err := env.svc.Report.Summary(env.ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if s.Campuses == nil || len(s.Campuses) != 0 {
		t.Errorf("expected an empty campus list, got %+v", s.Campuses)
	}
}

func TestTruncateFacultyName(t *testing.T) {
	exact := "Facultad de Ingeniería Minera."
	if got := TruncateFacultyName(exact); got != exact {
		t.Errorf("30 runes should be kept as is, got %q", got)
	}
	if got := TruncateFacultyName("Facultad de Ingeniería Tecnológica"); got != "Facultad de Ingeniería Tecnoló..." {
		t.Errorf("unexpected %q", got)
	}
}

func TestSummaryDocument(t *testing.T) {
	doc := SummaryDocument(&dto.ReportSummary{
		Title:               "Rediseño Curricular 2025",
		ActivePrograms:      69,
		RedesignsInProgress: 2,
		Campuses: []dto.ReportCampus{{
			Name: "San Cristóbal",
			Rows: []dto.ReportRow{{Index: 1, ProgramName: "Ingeniería Eléctrica", FacultyName: "Facultad de Ingeniería Tecnoló...", Percent: 40}},
		}},
	})

	if doc.Stats[0].Value != "69" || doc.Stats[1].Value != "2" {
		t.Errorf("unexpected stats %+v", doc.Stats)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Heading != "SEDE: SAN CRISTÓBAL" {
		t.Fatalf("unexpected sections %+v", doc.Sections)
	}
	if row := doc.Sections[0].Rows[0]; row[0] != "1" || row[3] != "40%" {
		t.Errorf("unexpected row %v", row)
	}
}

// ── export ──

func TestExportService(t *testing.T) {
	env := newTestEnv(t)
	reportFixture(t, env)

	pdf, name, err := env.svc.Export.ExportPDF(env.ctx)
	if err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	if name != "reporte_rediseno_curricular.pdf" || !bytes.HasPrefix(pdf.Bytes(), []byte("%PDF")) {
		t.Errorf("unexpected pdf %s (%d bytes)", name, pdf.Len())
	}

	xlsx, name, err := env.svc.Export.ExportXLSX(env.ctx)
	if err != nil {
		t.Fatalf("ExportXLSX failed: %v", err)
	}
	if name != "reporte_rediseno_curricular.xlsx" || !bytes.HasPrefix(xlsx.Bytes(), []byte("PK")) {
		t.Errorf("unexpected xlsx %s (%d bytes)", name, xlsx.Len())
	}
}

// ── dashboard ──

func TestDashboardService_Get(t *testing.T) {
	env := newTestEnv(t)
	reportFixture(t, env)

	// touch one redesign later so it heads the recent list
	env.clock.Advance(time.Hour)
	list, _, _ := env.svc.Redesign.List(env.ctx, &dto.RedesignListRequest{Status: model.RedesignInProgress, Year: 2025})
	var target string
	for _, r := range list {
		if r.Program != nil && r.Program.Name == "Programa Derecho" {
			target = r.ID
		}
	}
	if _, err := env.svc.Redesign.Update(env.ctx, env.admin, target, &dto.UpdateRedesignRequest{Notes: strPtr("revisado")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	d, err := env.svc.Dashboard.Get(env.ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.ActivePrograms != 4 || d.RedesignsInProgress != 3 {
		t.Errorf("unexpected counters %+v", d)
	}
	if len(d.InProgressByCampus) != 2 || d.InProgressByCampus[0].CampusName != "Potosí" || d.InProgressByCampus[0].Total != 2 {
		t.Errorf("unexpected per-campus counts %+v", d.InProgressByCampus)
	}
	if len(d.RecentlyUpdated) != 4 || d.RecentlyUpdated[0].ID != target {
		t.Errorf("expected the touched redesign first, got %+v", d.RecentlyUpdated)
	}
}
