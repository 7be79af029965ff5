package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXRenderer single-sheet workbook with the same content as the PDF
type XLSXRenderer struct {
	SheetName string
}

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXRenderer) Extension() string { return ".xlsx" }

func (r XLSXRenderer) Render(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := r.SheetName
	if sheet == "" {
		sheet = "Reporte"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	maxCols := 2
	for _, sec := range doc.Sections {
		if len(sec.Columns) > maxCols {
			maxCols = len(sec.Columns)
		}
	}
	lastCol := colName(maxCols - 1)

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", lastCol, 36)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "#1A5490"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#F5F5F5"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1A5490"}, Pattern: 1},
	})

	row := 1
	f.SetCellValue(sheet, cell("A", row), doc.Title)
	f.MergeCell(sheet, cell("A", row), cell(lastCol, row))
	f.SetCellStyle(sheet, cell("A", row), cell("A", row), titleStyle)
	row++
	if doc.Subtitle != "" {
		f.SetCellValue(sheet, cell("A", row), doc.Subtitle)
		f.MergeCell(sheet, cell("A", row), cell(lastCol, row))
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), titleStyle)
		row++
	}
	row++

	for _, st := range doc.Stats {
		f.SetCellValue(sheet, cell("A", row), st.Label)
		f.SetCellValue(sheet, cell("B", row), st.Value)
		f.SetCellStyle(sheet, cell("A", row), cell("B", row), boldStyle)
		row++
	}

	for _, sec := range doc.Sections {
		row++
		f.SetCellValue(sheet, cell("A", row), sec.Heading)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), boldStyle)
		row++

		for i, col := range sec.Columns {
			f.SetCellValue(sheet, cell(colName(i), row), col)
		}
		f.SetCellStyle(sheet, cell("A", row), cell(colName(len(sec.Columns)-1), row), headerStyle)
		row++

		for _, values := range sec.Rows {
			for i, v := range values {
				f.SetCellValue(sheet, cell(colName(i), row), v)
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
