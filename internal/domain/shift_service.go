package domain

import (
	"time"

	"timesheet-bot/internal/model"
)

type ShiftService interface {
	ImportReport(employeeID int, checksum string, report model.Report) (model.Import, error)
	CalculateSalary(employeeID int, from, to time.Time) (model.Summary, error)
	CalculateUnpaidSalary(employeeID int) (float64, error)
	MarkShiftsPaid(employeeID int, from, to time.Time) error
	MarkShiftsPaidAmount(employeeID int, amount float64) error
	GetShifts(employeeID int, from, to time.Time) ([]model.StoredShift, error)
}
