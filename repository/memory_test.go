package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

func newEmployee(code, email string, createdAt time.Time) *models.Employee {
	return &models.Employee{
		EmployeeCode: code,
		FullName:     "Test " + code,
		Email:        email,
		Department:   "Eng",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestMemoryEmployees_UniqueIndexes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().Employees()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newEmployee("EMP001", "a@x.com", now)))

	err := repo.Create(ctx, newEmployee("EMP001", "b@x.com", now))
	var dup *apperror.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "employeeCode", dup.Field)

	err = repo.Create(ctx, newEmployee("EMP002", "a@x.com", now))
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "email", dup.Field)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMemoryEmployees_ConcurrentCreateOneWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().Employees()

	const writers = 32
	var (
		wg        sync.WaitGroup
		successes int64
		dups      int64
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// same email, distinct codes
			err := repo.Create(ctx, newEmployee(fmt.Sprintf("EMP%03d", i), "same@x.com", time.Now()))
			switch {
			case err == nil:
				atomic.AddInt64(&successes, 1)
			case errors.Is(err, apperror.ErrDuplicateKey):
				atomic.AddInt64(&dups, 1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, successes)
	assert.EqualValues(t, writers-1, dups)

	list, err := repo.List(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryEmployees_ListNewestFirstAndSearch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().Employees()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := newEmployee("EMP001", "a@x.com", base)
	first.FullName, first.Department = "James Wilson", "Engineering"
	second := newEmployee("EMP002", "b@x.com", base.Add(time.Hour))
	second.FullName, second.Department = "Linda Martinez", "HR"
	third := newEmployee("EMP003", "c@x.com", base.Add(time.Hour))
	third.FullName, third.Department = "Robert Brown", "Sales"

	for _, e := range []*models.Employee{first, second, third} {
		require.NoError(t, repo.Create(ctx, e))
	}

	list, err := repo.List(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"EMP003", "EMP002", "EMP001"}, codes(list))

	list, err = repo.List(ctx, models.EmployeeFilter{Search: "  hr "})
	require.NoError(t, err)
	assert.Equal(t, []string{"EMP002"}, codes(list))

	list, err = repo.List(ctx, models.EmployeeFilter{Search: "WILSON"})
	require.NoError(t, err)
	assert.Equal(t, []string{"EMP001"}, codes(list))
}

func TestMemoryEmployees_DeleteFreesUniqueKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().Employees()
	e := newEmployee("EMP001", "a@x.com", time.Now())
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, repo.Delete(ctx, e.ID))
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), apperror.ErrNotFound)

	_, err := repo.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, repo.Create(ctx, newEmployee("EMP001", "a@x.com", time.Now())))
}

func TestMemoryAttendances_ConcurrentMarkOneWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryStore().Attendances()
	employeeID := primitive.NewObjectID()

	const writers = 32
	var (
		wg        sync.WaitGroup
		successes int64
		dups      int64
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := repo.Create(ctx, &models.Attendance{EmployeeID: employeeID, Date: "2024-01-10", Status: models.StatusPresent})
			switch {
			case err == nil:
				atomic.AddInt64(&successes, 1)
			case errors.Is(err, apperror.ErrDuplicateAttendance):
				atomic.AddInt64(&dups, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, successes)
	assert.EqualValues(t, writers-1, dups)

	records, err := repo.FindByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryAttendances_QueriesAndCascadeDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	employees, attendances := store.Employees(), store.Attendances()

	ada := newEmployee("EMP100", "ada@x.com", time.Now())
	require.NoError(t, employees.Create(ctx, ada))
	other := primitive.NewObjectID()

	for _, a := range []models.Attendance{
		{EmployeeID: ada.ID, Date: "2024-01-09", Status: models.StatusPresent},
		{EmployeeID: other, Date: "2024-01-10", Status: models.StatusAbsent},
		{EmployeeID: ada.ID, Date: "2024-01-11", Status: models.StatusLeave},
		{EmployeeID: ada.ID, Date: "2024-01-10", Status: models.StatusPresent},
	} {
		a := a
		require.NoError(t, attendances.Create(ctx, &a))
	}

	all, err := attendances.ListWithEmployee(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2024-01-09", all[0].Date, "insertion order")
	require.NotNil(t, all[0].Employee)
	assert.Equal(t, "EMP100", all[0].Employee.EmployeeCode)
	assert.Nil(t, all[1].Employee, "dangling reference resolves to nil")

	mine, err := attendances.FindByEmployee(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-11", "2024-01-10", "2024-01-09"}, dates(mine))

	counts, err := attendances.CountByStatus(ctx, "2024-01-10")
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[models.StatusPresent])
	assert.EqualValues(t, 1, counts[models.StatusAbsent])

	deleted, err := attendances.DeleteByEmployee(ctx, ada.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	mine, err = attendances.FindByEmployee(ctx, ada.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// the (employee, date) slot is free again
	require.NoError(t, attendances.Create(ctx, &models.Attendance{EmployeeID: ada.ID, Date: "2024-01-10", Status: models.StatusPresent}))
}

func codes(list []models.Employee) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.EmployeeCode)
	}
	return out
}

func dates(list []models.Attendance) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Date)
	}
	return out
}
