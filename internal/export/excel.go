package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

const (
	jobsSheet = "Jobs"
	// XLSXContentType is the media type of a workbook written by WriteJobsXLSX.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var jobColumns = []struct {
	header string
	width  float64
}{
	{"Title", 35},
	{"Company", 25},
	{"Status", 28},
	{"Date Applied", 15},
}

// WriteJobsXLSX writes jobs as a single-sheet workbook with one row per job.
func WriteJobsXLSX(w io.Writer, jobs []models.Job) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", jobsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, col := range jobColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(jobsSheet, name, name, col.width); err != nil {
			return err
		}
		if err := f.SetCellValue(jobsSheet, name+"1", col.header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(jobsSheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, j := range jobs {
		row := i + 2
		values := []interface{}{j.Title, j.CompanyName, string(j.Status), j.DateApplied.String()}
		if err := f.SetSheetRow(jobsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
