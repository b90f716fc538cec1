package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

// MemoryStore is an in-process stand-in for the Mongo collections, used with
// STORE_DRIVER=memory and in tests. One mutex guards every check-and-insert,
// so unique keys behave like Mongo unique indexes: of two concurrent writers
// exactly one wins.
type MemoryStore struct {
	mu sync.RWMutex

	employees   []models.Employee
	byCode      map[string]primitive.ObjectID
	byEmail     map[string]primitive.ObjectID
	attendances []models.Attendance
	byDay       map[attendanceKey]primitive.ObjectID
}

type attendanceKey struct {
	EmployeeID primitive.ObjectID
	Date       string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCode:  make(map[string]primitive.ObjectID),
		byEmail: make(map[string]primitive.ObjectID),
		byDay:   make(map[attendanceKey]primitive.ObjectID),
	}
}

// Employees returns the EmployeeRepository view of the store.
func (s *MemoryStore) Employees() EmployeeRepository { return memoryEmployees{s} }

// Attendances returns the AttendanceRepository view of the store.
func (s *MemoryStore) Attendances() AttendanceRepository { return memoryAttendances{s} }

type memoryEmployees struct{ s *MemoryStore }

func (m memoryEmployees) Create(_ context.Context, employee *models.Employee) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byCode[employee.EmployeeCode]; taken {
		return &apperror.DuplicateKeyError{Field: "employeeCode"}
	}
	if _, taken := s.byEmail[employee.Email]; taken {
		return &apperror.DuplicateKeyError{Field: "email"}
	}

	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	s.employees = append(s.employees, *employee)
	s.byCode[employee.EmployeeCode] = employee.ID
	s.byEmail[employee.Email] = employee.ID
	return nil
}

func (m memoryEmployees) FindByID(_ context.Context, id primitive.ObjectID) (*models.Employee, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			found := s.employees[i]
			return &found, nil
		}
	}
	return nil, apperror.NotFound("employee", id.Hex())
}

func (m memoryEmployees) List(_ context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.FullName), term) &&
			!strings.Contains(strings.ToLower(e.Department), term) {
			continue
		}
		out = append(out, e)
	}

	// newest first; later inserts win ties like the _id tiebreak in Mongo
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	reverseTies(out)
	return out, nil
}

// reverseTies flips runs of equal CreatedAt so the later insert comes first.
func reverseTies(list []models.Employee) {
	for start := 0; start < len(list); {
		end := start + 1
		for end < len(list) && list[end].CreatedAt.Equal(list[start].CreatedAt) {
			end++
		}
		for i, j := start, end-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
		start = end
	}
}

func (m memoryEmployees) Delete(_ context.Context, id primitive.ObjectID) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		removed := s.employees[i]
		s.employees = append(s.employees[:i], s.employees[i+1:]...)
		delete(s.byCode, removed.EmployeeCode)
		delete(s.byEmail, removed.Email)
		return nil
	}
	return apperror.NotFound("employee", id.Hex())
}

func (m memoryEmployees) Count(_ context.Context) (int64, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.employees)), nil
}

func (m memoryEmployees) DistinctDepartments(_ context.Context) ([]string, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range s.employees {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	sort.Strings(out)
	return out, nil
}

type memoryAttendances struct{ s *MemoryStore }

func (m memoryAttendances) Create(_ context.Context, attendance *models.Attendance) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := attendanceKey{EmployeeID: attendance.EmployeeID, Date: attendance.Date}
	if _, taken := s.byDay[key]; taken {
		return apperror.ErrDuplicateAttendance
	}

	if attendance.ID.IsZero() {
		attendance.ID = primitive.NewObjectID()
	}
	s.attendances = append(s.attendances, *attendance)
	s.byDay[key] = attendance.ID
	return nil
}

func (m memoryAttendances) ListWithEmployee(_ context.Context) ([]models.AttendanceWithEmployee, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := make(map[primitive.ObjectID]*models.EmployeeRef, len(s.employees))
	for _, e := range s.employees {
		refs[e.ID] = &models.EmployeeRef{ID: e.ID, EmployeeCode: e.EmployeeCode, FullName: e.FullName}
	}

	out := make([]models.AttendanceWithEmployee, 0, len(s.attendances))
	for _, a := range s.attendances {
		row := models.AttendanceWithEmployee{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			Date:       a.Date,
			Status:     a.Status,
			CreatedAt:  a.CreatedAt,
			UpdatedAt:  a.UpdatedAt,
		}
		if ref, ok := refs[a.EmployeeID]; ok {
			copied := *ref
			row.Employee = &copied
		}
		out = append(out, row)
	}
	return out, nil
}

func (m memoryAttendances) FindByEmployee(_ context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Attendance{}
	for _, a := range s.attendances {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m memoryAttendances) DeleteByEmployee(_ context.Context, employeeID primitive.ObjectID) (int64, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.attendances[:0]
	var deleted int64
	for _, a := range s.attendances {
		if a.EmployeeID == employeeID {
			delete(s.byDay, attendanceKey{EmployeeID: a.EmployeeID, Date: a.Date})
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	s.attendances = kept
	return deleted, nil
}

func (m memoryAttendances) CountByStatus(_ context.Context, date string) (map[models.AttendanceStatus]int64, error) {
	s := m.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.AttendanceStatus]int64)
	for _, a := range s.attendances {
		if a.Date == date {
			counts[a.Status]++
		}
	}
	return counts, nil
}
