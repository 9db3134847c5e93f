package domain

import (
	"errors"
	"time"

	"timesheet-bot/internal/model"
)

// ErrDuplicateImport: этот документ уже загружен сотрудником.
var ErrDuplicateImport = errors.New("document already imported")

type ShiftRepo interface {
	AddImport(imp model.Import, records []model.ShiftRecord) error
	GetShifts(employeeID int, from, to time.Time) ([]model.StoredShift, error)
	MarkShiftsPaid(employeeID int, from, to time.Time) error
	MarkShiftPaidByID(id int) error
	UpdateShiftAmount(id int, amount float64) error
}
