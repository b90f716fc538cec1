package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

// Directory is the part of the employee service the seeder drives.
type Directory interface {
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	AddEmployee(ctx context.Context, input models.EmployeeCreatePayload) (*models.Employee, error)
	RemoveEmployee(ctx context.Context, id string) (*models.DeletionResult, error)
}

// SampleEmployees is the demo roster loaded by -seed.
var SampleEmployees = []models.EmployeeCreatePayload{
	{EmployeeCode: "EMP001", FullName: "James Wilson", Email: "james.wilson@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP002", FullName: "Linda Martinez", Email: "linda.martinez@company.com", Department: "HR"},
	{EmployeeCode: "EMP003", FullName: "Robert Brown", Email: "robert.brown@company.com", Department: "Sales"},
	{EmployeeCode: "EMP004", FullName: "Michael Davis", Email: "michael.davis@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP005", FullName: "Jennifer Garcia", Email: "jennifer.garcia@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP006", FullName: "William Rodriguez", Email: "william.rodriguez@company.com", Department: "Finance"},
	{EmployeeCode: "EMP007", FullName: "David Miller", Email: "david.miller@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP008", FullName: "Elizabeth Taylor", Email: "elizabeth.taylor@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP009", FullName: "Barbara Anderson", Email: "barbara.anderson@company.com", Department: "HR"},
	{EmployeeCode: "EMP010", FullName: "Richard Thomas", Email: "richard.thomas@company.com", Department: "Sales"},
	{EmployeeCode: "EMP011", FullName: "Joseph Moore", Email: "joseph.moore@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP012", FullName: "Susan Jackson", Email: "susan.jackson@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP013", FullName: "Thomas White", Email: "thomas.white@company.com", Department: "Finance"},
	{EmployeeCode: "EMP014", FullName: "Jessica Harris", Email: "jessica.harris@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP015", FullName: "Charles Martin", Email: "charles.martin@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP016", FullName: "Karen Thompson", Email: "karen.thompson@company.com", Department: "HR"},
	{EmployeeCode: "EMP017", FullName: "Christopher Garcia", Email: "christopher.garcia@company.com", Department: "Sales"},
	{EmployeeCode: "EMP018", FullName: "Sarah Martinez", Email: "sarah.martinez@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP019", FullName: "Daniel Robinson", Email: "daniel.robinson@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP020", FullName: "Lisa Clark", Email: "lisa.clark@company.com", Department: "Finance"},
	{EmployeeCode: "EMP021", FullName: "Matthew Rodriguez", Email: "matthew.rodriguez@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP022", FullName: "Betty Lewis", Email: "betty.lewis@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP023", FullName: "Anthony Lee", Email: "anthony.lee@company.com", Department: "HR"},
	{EmployeeCode: "EMP024", FullName: "Sandra Walker", Email: "sandra.walker@company.com", Department: "Sales"},
	{EmployeeCode: "EMP025", FullName: "Mark Hall", Email: "mark.hall@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP026", FullName: "Ashley Allen", Email: "ashley.allen@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP027", FullName: "Donald Young", Email: "donald.young@company.com", Department: "Finance"},
	{EmployeeCode: "EMP028", FullName: "Steven Hernandez", Email: "steven.hernandez@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP029", FullName: "Paul King", Email: "paul.king@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP030", FullName: "Kimberly Wright", Email: "kimberly.wright@company.com", Department: "HR"},
	{EmployeeCode: "EMP031", FullName: "Andrew Lopez", Email: "andrew.lopez@company.com", Department: "Sales"},
	{EmployeeCode: "EMP032", FullName: "Emily Hill", Email: "emily.hill@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP033", FullName: "Joshua Scott", Email: "joshua.scott@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP034", FullName: "Michelle Green", Email: "michelle.green@company.com", Department: "Finance"},
	{EmployeeCode: "EMP035", FullName: "Kevin Adams", Email: "kevin.adams@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP036", FullName: "Brian Baker", Email: "brian.baker@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP037", FullName: "George Gonzalez", Email: "george.gonzalez@company.com", Department: "HR"},
	{EmployeeCode: "EMP038", FullName: "Edward Nelson", Email: "edward.nelson@company.com", Department: "Sales"},
	{EmployeeCode: "EMP039", FullName: "Ronald Carter", Email: "ronald.carter@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP040", FullName: "Timothy Mitchell", Email: "timothy.mitchell@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP041", FullName: "Jason Perez", Email: "jason.perez@company.com", Department: "Finance"},
	{EmployeeCode: "EMP042", FullName: "Jeffrey Roberts", Email: "jeffrey.roberts@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP043", FullName: "Ryan Turner", Email: "ryan.turner@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP044", FullName: "Jacob Phillips", Email: "jacob.phillips@company.com", Department: "HR"},
	{EmployeeCode: "EMP045", FullName: "Gary Campbell", Email: "gary.campbell@company.com", Department: "Sales"},
	{EmployeeCode: "EMP046", FullName: "Nicholas Parker", Email: "nicholas.parker@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP047", FullName: "Eric Evans", Email: "eric.evans@company.com", Department: "Marketing"},
	{EmployeeCode: "EMP048", FullName: "Stephen Edwards", Email: "stephen.edwards@company.com", Department: "Finance"},
	{EmployeeCode: "EMP049", FullName: "Larry Collins", Email: "larry.collins@company.com", Department: "Engineering"},
	{EmployeeCode: "EMP050", FullName: "Justin Stewart", Email: "justin.stewart@company.com", Department: "Operations"},
}

// SeedEmployees adds every sample employee through the directory, so the
// usual validation and unique indexes apply. Employees whose code or email
// is already taken are skipped.
func SeedEmployees(ctx context.Context, directory Directory) (int, error) {
	log.Println("Seeding employees...")

	created := 0
	for _, input := range SampleEmployees {
		_, err := directory.AddEmployee(ctx, input)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperror.ErrDuplicateKey):
			log.Printf("Skipping %s: %v", input.EmployeeCode, err)
		default:
			return created, fmt.Errorf("seed employee %s: %w", input.EmployeeCode, err)
		}
	}

	log.Printf("Seeded %d of %d employees", created, len(SampleEmployees))
	return created, nil
}

// ResetData removes every employee, and with it all attendance, through the
// cascade.
func ResetData(ctx context.Context, directory Directory) (int, error) {
	employees, err := directory.ListEmployees(ctx, models.EmployeeFilter{})
	if err != nil {
		return 0, fmt.Errorf("list employees: %w", err)
	}

	removed := 0
	var attendance int64
	for _, e := range employees {
		res, err := directory.RemoveEmployee(ctx, e.ID.Hex())
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				continue
			}
			return removed, fmt.Errorf("remove employee %s: %w", e.EmployeeCode, err)
		}
		removed++
		attendance += res.AttendanceDeleted
	}

	log.Printf("Removed %d employees and %d attendance records", removed, attendance)
	return removed, nil
}
