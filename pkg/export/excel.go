package export

import (
	"bytes"
	"fmt"
	"time"

	"go-talentmatch-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// AuditWorkbook renders the cross-recruiter audit table as an .xlsx
// download.
func AuditWorkbook(entries []domain.AuditEntry) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Matches"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"SCORE", "JOB", "CANDIDATE", "JOB RECRUITER", "CANDIDATE RECRUITER", "SCOPE", "REASONING", "UPDATED",
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, entry := range entries {
		scope := "INTERNAL"
		if entry.IsExternal {
			scope = "EXTERNAL"
		}
		values := []interface{}{
			entry.Match.Score,
			entry.JobTitle,
			entry.CandidateName,
			entry.JobRecruiterName,
			entry.CandidateRecruiterName,
			scope,
			entry.Match.Reasoning,
			entry.Match.UpdatedAt.Format(time.RFC3339),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("match_audit_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
