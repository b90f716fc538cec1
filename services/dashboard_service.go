package services

import (
	"context"
	"strings"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
	util "HRMS-Lite/pkg/utils"
	"HRMS-Lite/repository"
)

type DashboardService struct {
	employees   repository.EmployeeRepository
	attendances repository.AttendanceRepository
	clock       Clock
}

func NewDashboardService(employees repository.EmployeeRepository, attendances repository.AttendanceRepository, clock Clock) *DashboardService {
	if clock == nil {
		clock = SystemClock()
	}
	return &DashboardService{employees: employees, attendances: attendances, clock: clock}
}

// Summary counts employees, departments and the statuses marked on date.
// An empty date means today.
func (s *DashboardService) Summary(ctx context.Context, date string) (*models.DashboardSummary, error) {
	day := s.clock.Now().Format(models.DateLayout)
	if strings.TrimSpace(date) != "" {
		normalized, err := util.NormalizeDate(date)
		if err != nil {
			return nil, apperror.Validation("date", "date", err.Error())
		}
		day = normalized
	}

	total, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.employees.DistinctDepartments(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.attendances.CountByStatus(ctx, day)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		TotalEmployees:   total,
		TotalDepartments: int64(len(departments)),
		Date:             day,
		Present:          counts[models.StatusPresent],
		Absent:           counts[models.StatusAbsent],
		Leave:            counts[models.StatusLeave],
	}, nil
}
