package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/model"
	"timesheet-bot/internal/timesheet"
)

var (
	allTimeFrom = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	allTimeTo   = func() time.Time { return time.Now().AddDate(10, 0, 0) }
)

type ShiftServiceImpl struct {
	Repo domain.ShiftRepo
	Now  func() time.Time
}

func NewShiftService(repo domain.ShiftRepo) *ShiftServiceImpl {
	return &ShiftServiceImpl{Repo: repo, Now: time.Now}
}

// ImportReport сохраняет смены разобранного табеля за сотрудником.
// Повторная загрузка того же документа (по checksum) возвращает domain.ErrDuplicateImport.
func (s *ShiftServiceImpl) ImportReport(employeeID int, checksum string, report model.Report) (model.Import, error) {
	imp := model.Import{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Source:     report.Source,
		Checksum:   checksum,
		CreatedAt:  s.Now(),
	}
	if err := s.Repo.AddImport(imp, report.Entries); err != nil {
		return model.Import{}, err
	}
	return imp, nil
}

// CalculateSalary считает часы и сумму за период по сохранённым сменам.
func (s *ShiftServiceImpl) CalculateSalary(employeeID int, from, to time.Time) (model.Summary, error) {
	shifts, err := s.Repo.GetShifts(employeeID, from, to)
	if err != nil {
		return model.Summary{}, err
	}
	return timesheet.Summarize(toRecords(shifts)), nil
}

func (s *ShiftServiceImpl) CalculateUnpaidSalary(employeeID int) (float64, error) {
	shifts, err := s.Repo.GetShifts(employeeID, allTimeFrom, allTimeTo())
	if err != nil {
		return 0, err
	}
	var total float64
	for _, shift := range shifts {
		if !shift.Paid {
			total += shift.Amount
		}
	}
	return timesheet.Round2(total), nil
}

func (s *ShiftServiceImpl) MarkShiftsPaid(employeeID int, from, to time.Time) error {
	return s.Repo.MarkShiftsPaid(employeeID, from, to)
}

func (s *ShiftServiceImpl) GetShifts(employeeID int, from, to time.Time) ([]model.StoredShift, error) {
	return s.Repo.GetShifts(employeeID, from, to)
}

// MarkShiftsPaidAmount закрывает смены на сумму выплаты: сначала самые мелкие целиком,
// остаток вычитается из самой ранней неоплаченной смены.
func (s *ShiftServiceImpl) MarkShiftsPaidAmount(employeeID int, amount float64) error {
	shifts, err := s.Repo.GetShifts(employeeID, allTimeFrom, allTimeTo())
	if err != nil {
		return err
	}

	unpaid := make([]model.StoredShift, 0, len(shifts))
	for _, sh := range shifts {
		if !sh.Paid {
			unpaid = append(unpaid, sh)
		}
	}
	if len(unpaid) == 0 || amount <= 0 {
		return nil
	}

	sort.Slice(unpaid, func(i, j int) bool {
		if unpaid[i].Amount == unpaid[j].Amount {
			return unpaid[i].Date.Before(unpaid[j].Date)
		}
		return unpaid[i].Amount < unpaid[j].Amount
	})
	remaining := amount
	paidSet := make(map[int]struct{})
	for _, sh := range unpaid {
		if remaining <= 0 {
			break
		}
		if sh.Amount <= remaining {
			if err := s.Repo.MarkShiftPaidByID(sh.ID); err != nil {
				return err
			}
			paidSet[sh.ID] = struct{}{}
			remaining -= sh.Amount
		}
	}
	if remaining <= 0 {
		return nil
	}

	var earliest *model.StoredShift
	for i := range unpaid {
		sh := &unpaid[i]
		if _, ok := paidSet[sh.ID]; ok {
			continue
		}
		if earliest == nil || sh.Date.Before(earliest.Date) {
			earliest = sh
		}
	}
	if earliest == nil {
		return nil
	}
	newAmount := timesheet.Round2(earliest.Amount - remaining)
	if newAmount <= 0 {
		return s.Repo.MarkShiftPaidByID(earliest.ID)
	}
	return s.Repo.UpdateShiftAmount(earliest.ID, newAmount)
}

func toRecords(shifts []model.StoredShift) []model.ShiftRecord {
	out := make([]model.ShiftRecord, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, model.ShiftRecord{
			Date:          sh.Date.Format("2006-01-02"),
			Start:         sh.Start,
			End:           sh.End,
			DayOfWeek:     sh.Date.Weekday().String(),
			ShiftType:     sh.ShiftType,
			Rate:          sh.Rate,
			DurationHours: sh.Hours,
			Amount:        sh.Amount,
		})
	}
	return out
}
