package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() *Document {
	return &Document{
		Title:    "REPORTE DE REDISEÑO CURRICULAR 2025",
		Subtitle: "UATF - POTOSÍ",
		Stats: []Stat{
			{Label: "Total de Carreras:", Value: "3"},
			{Label: "Rediseños en Proceso:", Value: "2"},
		},
		Sections: []Section{{
			Heading: "SEDE: POTOSÍ",
			Columns: []string{"#", "Carrera", "Facultad", "Progreso"},
			Widths:  []float64{0.5, 2.5, 2.5, 1},
			Rows: [][]string{
				{"1", "Ingeniería de Sistemas", "Facultad de Ingeniería", "30%"},
				{"2", "Derecho", "Facultad de Derecho", "0%"},
			},
		}},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDFRenderer{}.Render(&buf, sampleDocument()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is not a pdf")
	assert.Equal(t, "application/pdf", PDFRenderer{}.ContentType())
}

func TestPDFRenderer_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDFRenderer{}.Render(&buf, &Document{Title: "vacío"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestXLSXRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXRenderer{}.Render(&buf, sampleDocument()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")), "output is not a zip container")

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Reporte", "A1")
	require.NoError(t, err)
	assert.Equal(t, "REPORTE DE REDISEÑO CURRICULAR 2025", title)

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	var found bool
	for _, r := range rows {
		if len(r) >= 2 && r[1] == "Ingeniería de Sistemas" {
			found = true
		}
	}
	assert.True(t, found, "program row missing from sheet")
}

func TestRelativeWidths(t *testing.T) {
	sec := Section{Columns: []string{"a", "b"}, Widths: []float64{1, 3}}
	assert.Equal(t, []float64{25, 75}, relativeWidths(sec, 100))

	sec.Widths = nil
	assert.Equal(t, []float64{50, 50}, relativeWidths(sec, 100))
}
