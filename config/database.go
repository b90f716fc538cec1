package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"HRMS-Lite/repository"
)

var MongoConn *mongo.Client

var (
	EmployeeCollection   = "employees"
	AttendanceCollection = "attendances"
)

// MongoConnect dials uri and pings the primary.
func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
	return client, nil
}

func DisconnectDB(ctx context.Context) {
	if MongoConn == nil {
		return
	}
	if err := MongoConn.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
		return
	}
	MongoConn = nil
	log.Println("Disconnected from MongoDB")
}

// IndexModels lists the indexes each collection needs. The unique ones are
// what reject duplicate employees and duplicate attendance days.
func IndexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		EmployeeCollection: {
			{
				Keys:    bson.D{{Key: "employee_code", Value: 1}},
				Options: options.Index().SetName(repository.IndexEmployeeCode).SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName(repository.IndexEmail).SetUnique(true),
			},
		},
		AttendanceCollection: {
			{
				Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetName(repository.IndexEmployeeDate).SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "employee_id", Value: 1}},
				Options: options.Index().SetName(repository.IndexEmployee),
			},
		},
	}
}

// InitDatabase creates the indexes. It is idempotent and must succeed before
// the API accepts writes.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{EmployeeCollection, AttendanceCollection} {
		models := IndexModels()[name]
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
