package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusLeave   AttendanceStatus = "Leave"
)

// DateLayout is the stored form of Attendance.Date.
const DateLayout = "2006-01-02"

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	default:
		return false
	}
}

// Attendance is write-once; EmployeeID is a plain reference and does not own
// the employee.
type Attendance struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employee_id"`
	Date       string             `json:"date" bson:"date"`
	Status     AttendanceStatus   `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}

// AttendanceCreatePayload is the body of POST /attendance.
type AttendanceCreatePayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=Present Absent Leave"`
}

// AttendanceWithEmployee is an attendance row with the referenced employee's
// identity. Employee is nil when the reference no longer resolves.
type AttendanceWithEmployee struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employee_id"`
	Employee   *EmployeeRef       `json:"employee" bson:"employee,omitempty"`
	Date       string             `json:"date" bson:"date"`
	Status     AttendanceStatus   `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}
