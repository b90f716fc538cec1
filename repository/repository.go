package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HRMS-Lite/models"
)

// EmployeeRepository persists employees. Implementations must reject a second
// employee with the same code or email atomically and report it as
// *apperror.DuplicateKeyError.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
}

// AttendanceRepository persists attendance. Implementations must reject a
// second record for the same (employee, date) atomically with
// apperror.ErrDuplicateAttendance.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	ListWithEmployee(ctx context.Context) ([]models.AttendanceWithEmployee, error)
	FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error)
	DeleteByEmployee(ctx context.Context, employeeID primitive.ObjectID) (int64, error)
	CountByStatus(ctx context.Context, date string) (map[models.AttendanceStatus]int64, error)
}

// TxManager runs fn so that every repository call made with the context it
// receives commits or aborts together.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(context.Context) error) error
}

// NoopTxManager runs fn directly, for stores without multi-document transactions.
type NoopTxManager struct{}

func (NoopTxManager) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
