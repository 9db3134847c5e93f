package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepo interface {
	GetAllEmployees() ([]Employee, error)
	GetEmployeeByID(id int) (Employee, error)
	CreateOrUpdateEmployee(e Employee) error
}

// Employee: водитель, загружающий свои табели через бота
type Employee struct {
	ID     int
	Name   string
	ChatID int64
	Role   string
}
