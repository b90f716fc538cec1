package services

import (
	"context"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
	util "HRMS-Lite/pkg/utils"
	"HRMS-Lite/repository"
)

// AttendanceService is the attendance ledger.
type AttendanceService struct {
	attendances repository.AttendanceRepository
	employees   repository.EmployeeRepository
	clock       Clock
}

func NewAttendanceService(attendances repository.AttendanceRepository, employees repository.EmployeeRepository, clock Clock) *AttendanceService {
	if clock == nil {
		clock = SystemClock()
	}
	return &AttendanceService{attendances: attendances, employees: employees, clock: clock}
}

// ListAttendance returns every record in insertion order with the employee's
// code and name attached.
func (s *AttendanceService) ListAttendance(ctx context.Context) ([]models.AttendanceWithEmployee, error) {
	return s.attendances.ListWithEmployee(ctx)
}

// MarkAttendance records a status for one employee on one day. A second
// record for the same day is rejected by the store with
// apperror.ErrDuplicateAttendance.
func (s *AttendanceService) MarkAttendance(ctx context.Context, input models.AttendanceCreatePayload) (*models.Attendance, error) {
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	employeeID, err := parseID("employee", input.EmployeeID)
	if err != nil {
		return nil, err
	}
	// A cascade landing between this lookup and the insert below can leave
	// one orphaned record; the store offers no cross-collection check.
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	date, err := util.NormalizeDate(input.Date)
	if err != nil {
		return nil, apperror.Validation("date", "date", err.Error())
	}

	status := models.AttendanceStatus(input.Status)
	if status == "" {
		status = models.StatusPresent
	}

	now := s.clock.Now()
	record := &models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.attendances.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListAttendanceForEmployee returns one employee's records, latest date first.
// An unknown id yields an empty list.
func (s *AttendanceService) ListAttendanceForEmployee(ctx context.Context, id string) ([]models.Attendance, error) {
	employeeID, err := parseID("employee", id)
	if err != nil {
		return []models.Attendance{}, nil
	}
	return s.attendances.FindByEmployee(ctx, employeeID)
}
