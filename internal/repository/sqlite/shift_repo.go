package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/model"
)

type SqliteShiftRepo struct {
	db *sql.DB
}

func NewSqliteShiftRepo(db *sql.DB) *SqliteShiftRepo {
	return &SqliteShiftRepo{db: db}
}

// AddImport сохраняет документ и его смены одной транзакцией.
func (r *SqliteShiftRepo) AddImport(imp model.Import, records []model.ShiftRecord) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		`INSERT INTO imports (id, employee_id, source, checksum, created_at) VALUES (?, ?, ?, ?, ?)`,
		imp.ID,
		imp.EmployeeID,
		imp.Source,
		imp.Checksum,
		imp.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicateImport
		}
		return fmt.Errorf("insert import: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO shifts (employee_id, import_id, date, start_time, end_time, shift_type, rate, hours, amount, paid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err = stmt.Exec(imp.EmployeeID, imp.ID, rec.Date, rec.Start, rec.End, string(rec.ShiftType), rec.Rate, rec.DurationHours, rec.Amount); err != nil {
			return fmt.Errorf("insert shift %s: %w", rec.Date, err)
		}
	}
	return tx.Commit()
}

// GetShifts возвращает смены за период включительно, упорядоченные по дате.
func (r *SqliteShiftRepo) GetShifts(employeeID int, from, to time.Time) ([]model.StoredShift, error) {
	rows, err := r.db.Query(
		`SELECT id, employee_id, import_id, date, start_time, end_time, shift_type, rate, hours, amount, paid
		   FROM shifts WHERE employee_id = ? AND date BETWEEN ? AND ? ORDER BY date, id`,
		employeeID,
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []model.StoredShift
	for rows.Next() {
		var s model.StoredShift
		var dateStr, shiftType string
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.ImportID, &dateStr, &s.Start, &s.End, &shiftType, &s.Rate, &s.Hours, &s.Amount, &s.Paid); err != nil {
			return nil, err
		}
		s.Date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}
		s.ShiftType = model.ShiftType(shiftType)
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *SqliteShiftRepo) MarkShiftsPaid(employeeID int, from, to time.Time) error {
	_, err := r.db.Exec(
		`UPDATE shifts SET paid = 1 WHERE employee_id = ? AND date BETWEEN ? AND ?`,
		employeeID,
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	)
	return err
}

func (r *SqliteShiftRepo) MarkShiftPaidByID(id int) error {
	_, err := r.db.Exec(`UPDATE shifts SET paid = 1 WHERE id = ?`, id)
	return err
}

func (r *SqliteShiftRepo) UpdateShiftAmount(id int, amount float64) error {
	_, err := r.db.Exec(`UPDATE shifts SET amount = ? WHERE id = ?`, amount, id)
	return err
}
