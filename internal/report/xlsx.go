package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/coralsci/isoshell/internal/isostat"
)

const summarySheet = "Descriptive_Summary"

// WriteSummaryXLSX exports the descriptive table as a one-sheet workbook,
// same row order as the text rendering.
func WriteSummaryXLSX(rows []isostat.SummaryRow, path string) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)

	headers := []string{"Subset", "N", "Variable", "Mean", "SD"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		_ = f.SetColWidth(summarySheet, cell, cell, 24)
	}
	for i, r := range rows {
		row := i + 2
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), r.Subset)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), r.N)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), string(r.Variable))
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), r.Mean)
		if math.IsNaN(r.SD) {
			_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), "NA")
		} else {
			_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), r.SD)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
