package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"timesheet-bot/internal/model"
)

const (
	ShiftsSheet  = "Shifts"
	SummarySheet = "Summary"
)

var shiftHeaders = []string{"Date", "Weekday", "Start", "End", "Type", "Rate", "Hours", "Amount"}

// ReportXLSX собирает книгу из двух листов: смены и итоги.
func ReportXLSX(report model.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Лист по умолчанию переименовываем, чтобы не оставлять пустой "Sheet1".
	if err := f.SetSheetName(f.GetSheetName(0), ShiftsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	for i, h := range shiftHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ShiftsSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, e := range report.Entries {
		row := i + 2
		values := []any{e.Date, e.DayOfWeek, e.Start, e.End, string(e.ShiftType), e.Rate, e.DurationHours, e.Amount}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(ShiftsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	_ = f.SetColWidth(ShiftsSheet, "A", "A", 12)
	_ = f.SetColWidth(ShiftsSheet, "B", "B", 12)
	_ = f.SetColWidth(ShiftsSheet, "C", "H", 10)

	summary := [][2]any{
		{"Entries", report.EntryCount},
		{"Day hours", report.TotalDayHours},
		{"Night hours", report.TotalNightHours},
		{"Total amount", report.TotalAmount},
		{"Source", report.Source},
		{"Extracted at", report.ExtractedAt.Format(time.RFC3339)},
	}
	for i, kv := range summary {
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", i+1), kv[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", i+1), kv[1]); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 16)
	_ = f.SetColWidth(SummarySheet, "B", "B", 28)

	idx, _ := f.GetSheetIndex(ShiftsSheet)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
