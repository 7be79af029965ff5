package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/internal/testutil"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo *repository.Repository
	ctx  context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		repo: repository.NewRepository(testutil.NewDB(t)),
		ctx:  context.Background(),
	}
}

func (f *fixture) campus(t *testing.T, name string) *model.Campus {
	t.Helper()
	c := &model.Campus{Name: name, BaseModel: model.BaseModel{CreatedAt: testNow, UpdatedAt: testNow}}
	require.NoError(t, f.repo.Campus.Create(f.ctx, c))
	return c
}

func (f *fixture) faculty(t *testing.T, name string) *model.Faculty {
	t.Helper()
	fac := &model.Faculty{Name: name, BaseModel: model.BaseModel{CreatedAt: testNow, UpdatedAt: testNow}}
	require.NoError(t, f.repo.Faculty.Create(f.ctx, fac))
	return fac
}

func (f *fixture) program(t *testing.T, c *model.Campus, fac *model.Faculty, name string, active bool) *model.Program {
	t.Helper()
	p := &model.Program{
		CampusID:    c.CampusID,
		FacultyID:   fac.FacultyID,
		Name:        name,
		DegreeLevel: model.DegreeLicentiate,
		IsActive:    active,
		BaseModel:   model.BaseModel{CreatedAt: testNow, UpdatedAt: testNow},
	}
	require.NoError(t, f.repo.Program.Create(f.ctx, p))
	return p
}

func (f *fixture) redesign(t *testing.T, p *model.Program, year int, status string, updated time.Time) *model.Redesign {
	t.Helper()
	r := &model.Redesign{
		ProgramID: p.ProgramID,
		Year:      year,
		StartDate: testNow,
		Status:    status,
		BaseModel: model.BaseModel{CreatedAt: testNow, UpdatedAt: updated},
	}
	require.NoError(t, f.repo.Redesign.Create(f.ctx, r))
	return r
}

func (f *fixture) phase(t *testing.T, number int, code string) *model.Phase {
	t.Helper()
	ph := &model.Phase{Number: number, Code: code, Name: code, SortOrder: number}
	require.NoError(t, f.repo.Phase.Create(f.ctx, ph))
	return ph
}

// ═══════════════════════════════════════════════════════════
// Program
// ═══════════════════════════════════════════════════════════

func TestProgramRepo_ListFiltersAndOrder(t *testing.T) {
	f := newFixture(t)
	potosi := f.campus(t, "Potosí")
	uyuni := f.campus(t, "Uyuni")
	ing := f.faculty(t, "Facultad de Ingeniería")
	der := f.faculty(t, "Facultad de Derecho")

	f.program(t, uyuni, ing, "Ingeniería Civil", true)
	f.program(t, potosi, ing, "Ingeniería de Sistemas", true)
	f.program(t, potosi, der, "Derecho", true)
	f.program(t, potosi, ing, "Ingeniería Minera", false)

	all, total, err := f.repo.Program.List(f.ctx, repository.ProgramFilter{}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	// campus name, faculty name, program name
	assert.Equal(t, "Derecho", all[0].Name)
	assert.Equal(t, "Ingeniería de Sistemas", all[1].Name)
	assert.Equal(t, "Ingeniería Civil", all[2].Name)
	require.NotNil(t, all[0].Campus)
	assert.Equal(t, "Potosí", all[0].Campus.Name)

	byCampus, total, err := f.repo.Program.List(f.ctx, repository.ProgramFilter{CampusID: uyuni.CampusID}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Ingeniería Civil", byCampus[0].Name)

	// keyword matches the faculty name too
	byKeyword, _, err := f.repo.Program.List(f.ctx, repository.ProgramFilter{Keyword: "DERECHO"}, 0, 20)
	require.NoError(t, err)
	require.Len(t, byKeyword, 1)
	assert.Equal(t, der.FacultyID, byKeyword[0].FacultyID)

	withInactive, total, err := f.repo.Program.List(f.ctx, repository.ProgramFilter{IncludeInactive: true}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, withInactive, 2)

	active, err := f.repo.Program.CountActive(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), active)
}

func TestProgramRepo_ExistsByKey(t *testing.T) {
	f := newFixture(t)
	c := f.campus(t, "Potosí")
	fac := f.faculty(t, "Facultad de Ingeniería")
	p := f.program(t, c, fac, "Ingeniería de Sistemas", true)

	exists, err := f.repo.Program.ExistsByKey(f.ctx, fac.FacultyID, c.CampusID, "Ingeniería de Sistemas", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.repo.Program.ExistsByKey(f.ctx, fac.FacultyID, c.CampusID, "Ingeniería de Sistemas", p.ProgramID)
	require.NoError(t, err)
	assert.False(t, exists, "the program itself should be excluded")
}

// ═══════════════════════════════════════════════════════════
// Redesign
// ═══════════════════════════════════════════════════════════

func TestRedesignRepo_ListInProgressOrder(t *testing.T) {
	f := newFixture(t)
	potosi := f.campus(t, "Potosí")
	tupiza := f.campus(t, "Tupiza")
	fac := f.faculty(t, "Facultad de Ingeniería")

	f.redesign(t, f.program(t, tupiza, fac, "Agronomía", true), 2025, model.RedesignInProgress, testNow)
	f.redesign(t, f.program(t, potosi, fac, "Ingeniería Minera", true), 2025, model.RedesignInProgress, testNow)
	f.redesign(t, f.program(t, potosi, fac, "Geología", true), 2025, model.RedesignInProgress, testNow)
	f.redesign(t, f.program(t, potosi, fac, "Civil", true), 2025, model.RedesignCompleted, testNow)

	rows, err := f.repo.Redesign.ListInProgress(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Geología", rows[0].Program.Name)
	assert.Equal(t, "Ingeniería Minera", rows[1].Program.Name)
	assert.Equal(t, "Agronomía", rows[2].Program.Name)
	assert.Equal(t, "Tupiza", rows[2].Program.Campus.Name)

	counts, err := f.repo.Redesign.CountInProgressByCampus(f.ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Potosí", counts[0].CampusName)
	assert.Equal(t, int64(2), counts[0].Total)
	assert.Equal(t, int64(1), counts[1].Total)

	inProgress, err := f.repo.Redesign.CountByStatus(f.ctx, model.RedesignInProgress)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inProgress)
}

func TestRedesignRepo_ListRecentlyUpdated(t *testing.T) {
	f := newFixture(t)
	c := f.campus(t, "Potosí")
	fac := f.faculty(t, "Facultad de Ingeniería")

	old := f.redesign(t, f.program(t, c, fac, "A", true), 2024, model.RedesignInProgress, testNow)
	recent := f.redesign(t, f.program(t, c, fac, "B", true), 2025, model.RedesignInProgress, testNow.Add(time.Hour))

	rows, err := f.repo.Redesign.ListRecentlyUpdated(f.ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, recent.RedesignID, rows[0].RedesignID)
	assert.NotEqual(t, old.RedesignID, rows[0].RedesignID)
}

func TestRedesignRepo_ListFilters(t *testing.T) {
	f := newFixture(t)
	c := f.campus(t, "Potosí")
	fac := f.faculty(t, "Facultad de Ingeniería")
	p := f.program(t, c, fac, "Sistemas", true)

	f.redesign(t, p, 2024, model.RedesignCompleted, testNow)
	f.redesign(t, p, 2025, model.RedesignInProgress, testNow)

	rows, total, err := f.repo.Redesign.List(f.ctx, repository.RedesignFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, 2025, rows[0].Year, "newest year first")

	rows, total, err = f.repo.Redesign.List(f.ctx, repository.RedesignFilter{Status: model.RedesignCompleted}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 2024, rows[0].Year)
}

// ═══════════════════════════════════════════════════════════
// Progress & Evidence
// ═══════════════════════════════════════════════════════════

func TestProgressRepo_CountsAndOrder(t *testing.T) {
	f := newFixture(t)
	c := f.campus(t, "Potosí")
	fac := f.faculty(t, "Facultad de Ingeniería")
	r := f.redesign(t, f.program(t, c, fac, "Sistemas", true), 2025, model.RedesignInProgress, testNow)

	second := f.phase(t, 2, "PC")
	first := f.phase(t, 1, "RC")

	require.NoError(t, f.repo.Progress.CreateBatch(f.ctx, []model.PhaseProgress{
		{RedesignID: r.RedesignID, PhaseID: second.PhaseID, Completed: true, UpdatedAt: testNow},
		{RedesignID: r.RedesignID, PhaseID: first.PhaseID, UpdatedAt: testNow},
	}))

	rows, err := f.repo.Progress.ListByRedesign(f.ctx, r.RedesignID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "RC", rows[0].Phase.Code)
	assert.Equal(t, "PC", rows[1].Phase.Code)

	counts, err := f.repo.Progress.CountCompletedByRedesign(f.ctx, []string{r.RedesignID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[r.RedesignID])
	assert.Zero(t, counts["missing"])

	evidenceCounts, err := f.repo.Evidence.CountByProgressIDs(f.ctx, []string{rows[0].ProgressID})
	require.NoError(t, err)
	assert.Empty(t, evidenceCounts)
}

func TestEvidenceRepo_ListNewestFirst(t *testing.T) {
	f := newFixture(t)
	c := f.campus(t, "Potosí")
	fac := f.faculty(t, "Facultad de Ingeniería")
	r := f.redesign(t, f.program(t, c, fac, "Sistemas", true), 2025, model.RedesignInProgress, testNow)
	ph := f.phase(t, 10, model.PhaseCodeAcademicCommission)
	require.NoError(t, f.repo.Progress.CreateBatch(f.ctx, []model.PhaseProgress{
		{RedesignID: r.RedesignID, PhaseID: ph.PhaseID, UpdatedAt: testNow},
	}))
	rows, err := f.repo.Progress.ListByRedesign(f.ctx, r.RedesignID)
	require.NoError(t, err)
	progressID := rows[0].ProgressID

	for i, name := range []string{"old.pdf", "new.pdf"} {
		require.NoError(t, f.repo.Evidence.Create(f.ctx, &model.Evidence{
			ProgressID:   progressID,
			StorageKey:   "k" + name,
			OriginalName: name,
			SizeBytes:    10,
			MimeType:     "application/pdf",
			UploadedAt:   testNow.Add(time.Duration(i) * time.Minute),
		}))
	}

	items, err := f.repo.Evidence.ListByProgress(f.ctx, progressID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "new.pdf", items[0].OriginalName)

	counts, err := f.repo.Evidence.CountByProgressIDs(f.ctx, []string{progressID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[progressID])
}

// ═══════════════════════════════════════════════════════════
// Transaction
// ═══════════════════════════════════════════════════════════

func TestRepository_TransactionRollsBack(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")

	err := f.repo.Transaction(f.ctx, func(tx *repository.Repository) error {
		c := &model.Campus{Name: "Llallagua", BaseModel: model.BaseModel{CreatedAt: testNow, UpdatedAt: testNow}}
		if err := tx.Campus.Create(f.ctx, c); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	campuses, err := f.repo.Campus.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, campuses)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	f := newFixture(t)
	u := &model.User{
		Username:     "jperez",
		FullName:     "Juan Pérez",
		Email:        "jperez@uatf.edu.bo",
		PasswordHash: "x",
		Role:         model.RoleReviewer,
		IsActive:     true,
		BaseModel:    model.BaseModel{CreatedAt: testNow, UpdatedAt: testNow},
	}
	require.NoError(t, f.repo.User.Create(f.ctx, u))

	got, err := f.repo.User.GetByUsername(f.ctx, "jperez")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	exists, err := f.repo.User.ExistsByUsername(f.ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}
