package services

import (
	"context"

	"HRMS-Lite/models"
	"HRMS-Lite/repository"
)

// CascadeCoordinator removes an employee and its attendance. Attendance is
// deleted first; outside a transaction a failure in between leaves the
// employee without records, never records without the employee.
type CascadeCoordinator struct {
	employees   repository.EmployeeRepository
	attendances repository.AttendanceRepository
	tx          repository.TxManager
}

func NewCascadeCoordinator(employees repository.EmployeeRepository, attendances repository.AttendanceRepository, tx repository.TxManager) *CascadeCoordinator {
	if tx == nil {
		tx = repository.NoopTxManager{}
	}
	return &CascadeCoordinator{employees: employees, attendances: attendances, tx: tx}
}

func (c *CascadeCoordinator) RemoveEmployeeCascading(ctx context.Context, id string) (*models.DeletionResult, error) {
	employeeID, err := parseID("employee", id)
	if err != nil {
		return nil, err
	}

	var deleted int64
	err = c.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := c.attendances.DeleteByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if err := c.employees.Delete(ctx, employeeID); err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.DeletionResult{
		Message:           "Employee and related attendance deleted",
		EmployeeID:        employeeID.Hex(),
		AttendanceDeleted: deleted,
	}, nil
}
