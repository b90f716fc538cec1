package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
	employeeCollection   string
}

// NewAttendanceRepository returns the Mongo-backed AttendanceRepository.
// employees is only used as the $lookup source for identity resolution.
func NewAttendanceRepository(attendances, employees *mongo.Collection) AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: attendances,
		employeeCollection:   employees.Name(),
	}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	if attendance.ID.IsZero() {
		attendance.ID = primitive.NewObjectID()
	}

	if _, err := r.attendanceCollection.InsertOne(ctx, attendance); err != nil {
		return translateAttendanceWriteError("insert attendance", err)
	}
	return nil
}

// ListWithEmployee returns every record in insertion order (ObjectIDs grow
// monotonically) with the referenced employee's code and name.
func (r *attendanceRepository) ListWithEmployee(ctx context.Context) ([]models.AttendanceWithEmployee, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.employeeCollection},
			{Key: "localField", Value: "employee_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "employee"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$employee"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "employee_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "status", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
			{Key: "employee._id", Value: 1},
			{Key: "employee.employee_code", Value: 1},
			{Key: "employee.full_name", Value: 1},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Store("aggregate attendance", err)
	}
	defer cursor.Close(ctx)

	results := []models.AttendanceWithEmployee{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperror.Store("decode attendance", err)
	}
	return results, nil
}

func (r *attendanceRepository) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.attendanceCollection.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, apperror.Store("find attendance by employee", err)
	}
	defer cursor.Close(ctx)

	results := []models.Attendance{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperror.Store("decode attendance", err)
	}
	return results, nil
}

func (r *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID primitive.ObjectID) (int64, error) {
	res, err := r.attendanceCollection.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, apperror.Store("delete attendance by employee", err)
	}
	return res.DeletedCount, nil
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, date string) (map[models.AttendanceStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date", Value: date}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Store("count attendance", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.AttendanceStatus `bson:"_id"`
		Count  int64                   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, apperror.Store("decode attendance counts", err)
	}

	counts := make(map[models.AttendanceStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
