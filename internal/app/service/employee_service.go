package service

import (
	"errors"

	"timesheet-bot/internal/domain"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
}

func NewEmployeeService(repo domain.EmployeeRepo) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

// EnsureEmployee регистрирует сотрудника при первом обращении. Возвращает true, если он новый.
func (s *EmployeeService) EnsureEmployee(e domain.Employee) (bool, error) {
	_, err := s.Repo.GetEmployeeByID(e.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return false, err
	}
	return true, s.Repo.CreateOrUpdateEmployee(e)
}

func (s *EmployeeService) GetAllEmployees() ([]domain.Employee, error) {
	return s.Repo.GetAllEmployees()
}
