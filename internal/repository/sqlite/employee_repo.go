package sqlite

import (
	"database/sql"
	"errors"

	"timesheet-bot/internal/domain"
)

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

func (r *SqliteEmployeeRepo) CreateOrUpdateEmployee(e domain.Employee) error {
	_, err := r.db.Exec(
		`INSERT INTO employees (id, name, chat_id, role) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, chat_id = excluded.chat_id, role = excluded.role`,
		e.ID, e.Name, e.ChatID, e.Role,
	)
	return err
}

func (r *SqliteEmployeeRepo) GetAllEmployees() ([]domain.Employee, error) {
	rows, err := r.db.Query(`SELECT id, name, chat_id, role FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.ChatID, &e.Role); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *SqliteEmployeeRepo) GetEmployeeByID(id int) (domain.Employee, error) {
	var e domain.Employee
	err := r.db.QueryRow(`SELECT id, name, chat_id, role FROM employees WHERE id = ?`, id).Scan(&e.ID, &e.Name, &e.ChatID, &e.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return e, domain.ErrEmployeeNotFound
	}
	return e, err
}
