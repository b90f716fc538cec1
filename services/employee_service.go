package services

import (
	"context"
	"strings"

	"HRMS-Lite/models"
	util "HRMS-Lite/pkg/utils"
	"HRMS-Lite/repository"
)

// EmployeeRemover deletes an employee together with everything that
// references it.
type EmployeeRemover interface {
	RemoveEmployeeCascading(ctx context.Context, id string) (*models.DeletionResult, error)
}

// EmployeeService is the employee directory.
type EmployeeService struct {
	repo    repository.EmployeeRepository
	remover EmployeeRemover
	clock   Clock
}

func NewEmployeeService(repo repository.EmployeeRepository, remover EmployeeRemover, clock Clock) *EmployeeService {
	if clock == nil {
		clock = SystemClock()
	}
	return &EmployeeService{repo: repo, remover: remover, clock: clock}
}

// ListEmployees returns employees newest first, optionally narrowed by a
// search term over name and department.
func (s *EmployeeService) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

// AddEmployee validates input and inserts it. Code and email uniqueness is
// left to the store; a collision comes back as *apperror.DuplicateKeyError.
func (s *EmployeeService) AddEmployee(ctx context.Context, input models.EmployeeCreatePayload) (*models.Employee, error) {
	input.EmployeeCode = strings.TrimSpace(input.EmployeeCode)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Department = strings.TrimSpace(input.Department)

	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	employee := &models.Employee{
		EmployeeCode: input.EmployeeCode,
		FullName:     input.FullName,
		Email:        input.Email,
		Department:   input.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	objID, err := parseID("employee", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, objID)
}

// RemoveEmployee deletes the employee and all of its attendance.
func (s *EmployeeService) RemoveEmployee(ctx context.Context, id string) (*models.DeletionResult, error) {
	return s.remover.RemoveEmployeeCascading(ctx, id)
}
