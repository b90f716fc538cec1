package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/teambition/rrule-go"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

// WorkweekRule is the recurrence used to pick seeded attendance days.
const WorkweekRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

type Ledger interface {
	MarkAttendance(ctx context.Context, input models.AttendanceCreatePayload) (*models.Attendance, error)
}

// Workdays returns the weekdays in the `days` calendar days ending at `until`,
// oldest first, as YYYY-MM-DD.
func Workdays(until time.Time, days int) ([]string, error) {
	if days <= 0 {
		return nil, nil
	}

	end := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	rOption, err := rrule.StrToROption(WorkweekRule)
	if err != nil {
		return nil, fmt.Errorf("parse rule: %w", err)
	}
	rOption.Dtstart = start

	rr, err := rrule.NewRRule(*rOption)
	if err != nil {
		return nil, fmt.Errorf("build rule: %w", err)
	}

	ruleSet := rrule.Set{}
	ruleSet.RRule(rr)

	var out []string
	for _, instance := range ruleSet.Between(start, end, true) {
		out = append(out, instance.Format(models.DateLayout))
	}
	return out, nil
}

// statusFor spreads a few absences and leave days over the seeded data
// without randomness, so reseeding yields the same picture.
func statusFor(employee, day int) models.AttendanceStatus {
	switch n := employee*31 + day*7; {
	case n%23 == 0:
		return models.StatusLeave
	case n%9 == 0:
		return models.StatusAbsent
	default:
		return models.StatusPresent
	}
}

// SeedAttendance marks every current employee on each workday of the last
// `days` days. Days that already have a record are skipped.
func SeedAttendance(ctx context.Context, directory Directory, ledger Ledger, until time.Time, days int) (int, error) {
	dates, err := Workdays(until, days)
	if err != nil {
		return 0, err
	}
	employees, err := directory.ListEmployees(ctx, models.EmployeeFilter{})
	if err != nil {
		return 0, fmt.Errorf("list employees: %w", err)
	}

	log.Printf("Seeding attendance for %d employees over %d workdays...", len(employees), len(dates))

	created := 0
	for i, e := range employees {
		for j, date := range dates {
			_, err := ledger.MarkAttendance(ctx, models.AttendanceCreatePayload{
				EmployeeID: e.ID.Hex(),
				Date:       date,
				Status:     string(statusFor(i, j)),
			})
			switch {
			case err == nil:
				created++
			case errors.Is(err, apperror.ErrDuplicateAttendance):
			default:
				return created, fmt.Errorf("mark %s on %s: %w", e.EmployeeCode, date, err)
			}
		}
	}

	log.Printf("Seeded %d attendance records", created)
	return created, nil
}
