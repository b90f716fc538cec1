package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	EmployeeCode string             `json:"employeeCode" bson:"employee_code"`
	FullName     string             `json:"fullName" bson:"full_name"`
	Email        string             `json:"email" bson:"email"`
	Department   string             `json:"department" bson:"department"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}

// EmployeeCreatePayload is the body of POST /employees.
type EmployeeCreatePayload struct {
	EmployeeCode string `json:"employeeCode" validate:"required"`
	FullName     string `json:"fullName" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,hremail"`
	Department   string `json:"department" validate:"required"`
}

// EmployeeFilter narrows ListEmployees. The zero value lists everyone.
type EmployeeFilter struct {
	Search string
}

// EmployeeRef is the employee identity resolved onto attendance rows.
type EmployeeRef struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	EmployeeCode string             `json:"employeeCode" bson:"employee_code"`
	FullName     string             `json:"fullName" bson:"full_name"`
}

// DeletionResult confirms a cascading employee removal.
type DeletionResult struct {
	Message           string `json:"message"`
	EmployeeID        string `json:"employeeId"`
	AttendanceDeleted int64  `json:"attendanceDeleted"`
}
