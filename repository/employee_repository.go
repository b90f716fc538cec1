package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

type employeeRepository struct {
	collection *mongo.Collection
}

// NewEmployeeRepository returns the Mongo-backed EmployeeRepository. The
// collection must carry the unique indexes created by config.InitDatabase.
func NewEmployeeRepository(collection *mongo.Collection) EmployeeRepository {
	return &employeeRepository{collection: collection}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, employee); err != nil {
		return translateEmployeeWriteError("insert employee", err)
	}
	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("employee", id.Hex())
		}
		return nil, apperror.Store("find employee", err)
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	query := bson.M{}
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		query["$or"] = []bson.M{
			{"full_name": pattern},
			{"department": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, apperror.Store("list employees", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, apperror.Store("decode employees", err)
	}
	return employees, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Store("delete employee", err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("employee", id.Hex())
	}
	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperror.Store("count employees", err)
	}
	return n, nil
}

func (r *employeeRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "department", bson.M{})
	if err != nil {
		return nil, apperror.Store("distinct departments", err)
	}

	departments := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			departments = append(departments, s)
		}
	}
	return departments, nil
}
