package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

func duplicateResponse(index string) bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: hrms.employees index: " + index + " dup key: { : \"x\" }",
	})
}

func TestEmployeeRepository_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		e := &models.Employee{EmployeeCode: "EMP100", FullName: "Ada Lovelace", Email: "ada@x.com", Department: "Eng"}
		require.NoError(t, repo.Create(context.Background(), e))
		assert.False(t, e.ID.IsZero())
	})

	mt.Run("duplicate code", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(duplicateResponse(IndexEmployeeCode))

		err := repo.Create(context.Background(), &models.Employee{EmployeeCode: "EMP100"})
		var dup *apperror.DuplicateKeyError
		require.True(t, errors.As(err, &dup), "got %v", err)
		assert.Equal(t, "employeeCode", dup.Field)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(duplicateResponse(IndexEmail))

		err := repo.Create(context.Background(), &models.Employee{EmployeeCode: "EMP101"})
		var dup *apperror.DuplicateKeyError
		require.True(t, errors.As(err, &dup), "got %v", err)
		assert.Equal(t, "email", dup.Field)
	})

	mt.Run("duplicate id is a store failure", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(duplicateResponse("_id_"))

		err := repo.Create(context.Background(), &models.Employee{EmployeeCode: "EMP103"})
		assert.ErrorIs(t, err, apperror.ErrStore)
		assert.NotErrorIs(t, err, apperror.ErrDuplicateKey)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hrms.employees", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("list decodes", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		id := primitive.NewObjectID()
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hrms.employees", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "employee_code", Value: "EMP100"},
			{Key: "full_name", Value: "Ada Lovelace"},
			{Key: "email", Value: "ada@x.com"},
			{Key: "department", Value: "Eng"},
			{Key: "created_at", Value: created},
			{Key: "updated_at", Value: created},
		}))

		list, err := repo.List(context.Background(), models.EmployeeFilter{Search: "ada"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0].ID)
		assert.Equal(t, "Ada Lovelace", list[0].FullName)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	mt.Run("delete existing", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(t, repo.Delete(context.Background(), primitive.NewObjectID()))
	})

	mt.Run("distinct departments", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"Eng", "HR"}}))

		departments, err := repo.DistinctDepartments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Eng", "HR"}, departments)
	})

	mt.Run("store failure is classified", func(mt *mtest.T) {
		repo := NewEmployeeRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))

		err := repo.Create(context.Background(), &models.Employee{EmployeeCode: "EMP102"})
		assert.ErrorIs(t, err, apperror.ErrStore)
	})
}

func TestAttendanceRepository_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("duplicate day", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.Coll, mt.DB.Collection("employees"))
		mt.AddMockResponses(duplicateResponse(IndexEmployeeDate))

		err := repo.Create(context.Background(), &models.Attendance{EmployeeID: primitive.NewObjectID(), Date: "2024-01-10"})
		assert.ErrorIs(t, err, apperror.ErrDuplicateAttendance)
	})

	mt.Run("list with employee", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.Coll, mt.DB.Collection("employees"))
		empID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hrms.attendances", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "employee_id", Value: empID},
				{Key: "date", Value: "2024-01-10"},
				{Key: "status", Value: "Present"},
				{Key: "employee", Value: bson.D{
					{Key: "_id", Value: empID},
					{Key: "employee_code", Value: "EMP100"},
					{Key: "full_name", Value: "Ada Lovelace"},
				}},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "employee_id", Value: primitive.NewObjectID()},
				{Key: "date", Value: "2024-01-10"},
				{Key: "status", Value: "Absent"},
			},
		))

		rows, err := repo.ListWithEmployee(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.NotNil(t, rows[0].Employee)
		assert.Equal(t, "EMP100", rows[0].Employee.EmployeeCode)
		assert.Equal(t, models.StatusPresent, rows[0].Status)
		assert.Nil(t, rows[1].Employee)
	})

	mt.Run("delete by employee", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.Coll, mt.DB.Collection("employees"))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		n, err := repo.DeleteByEmployee(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})

	mt.Run("count by status", func(mt *mtest.T) {
		repo := NewAttendanceRepository(mt.Coll, mt.DB.Collection("employees"))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hrms.attendances", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "Present"}, {Key: "count", Value: int32(4)}},
			bson.D{{Key: "_id", Value: "Leave"}, {Key: "count", Value: int32(1)}},
		))

		counts, err := repo.CountByStatus(context.Background(), "2024-01-10")
		require.NoError(t, err)
		assert.EqualValues(t, 4, counts[models.StatusPresent])
		assert.EqualValues(t, 1, counts[models.StatusLeave])
		assert.EqualValues(t, 0, counts[models.StatusAbsent])
	})
}

func TestDuplicateIndex(t *testing.T) {
	t.Parallel()

	err := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: hrms.employees index: uniq_email dup key: { email: \"ada@x.com\" }",
	}}}
	index, dup := duplicateIndex(err)
	assert.True(t, dup)
	assert.Equal(t, IndexEmail, index)

	_, dup = duplicateIndex(errors.New("connection refused"))
	assert.False(t, dup)
}

func TestTranslateEmployeeWriteError(t *testing.T) {
	t.Parallel()

	dupOn := func(index string) error {
		return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: hrms.employees index: " + index + " dup key: { : 1 }",
		}}}
	}

	cases := []struct {
		index string
		field string
	}{
		{IndexEmployeeCode, "employeeCode"},
		{"employee_code_1", "employeeCode"},
		{IndexEmail, "email"},
		{"email_1", "email"},
	}
	for _, tc := range cases {
		err := translateEmployeeWriteError("insert employee", dupOn(tc.index))
		var dup *apperror.DuplicateKeyError
		require.True(t, errors.As(err, &dup), tc.index)
		assert.Equal(t, tc.field, dup.Field, tc.index)
	}

	for _, index := range []string{"_id_", "some_other_index"} {
		err := translateEmployeeWriteError("insert employee", dupOn(index))
		assert.ErrorIs(t, err, apperror.ErrStore, index)
		assert.NotErrorIs(t, err, apperror.ErrDuplicateKey, index)
	}

	assert.NoError(t, translateEmployeeWriteError("insert employee", nil))
}
