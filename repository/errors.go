package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"HRMS-Lite/pkg/apperror"
)

// Index names created by config.InitDatabase.
const (
	IndexEmployeeCode = "uniq_employee_code"
	IndexEmail        = "uniq_email"
	IndexEmployeeDate = "uniq_employee_date"
	IndexEmployee     = "idx_employee"
)

// duplicateIndex returns the index named in an E11000 error, or "" when err is
// not a duplicate key error.
func duplicateIndex(err error) (string, bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}

	var msgs []string
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			msgs = append(msgs, e.Message)
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		msgs = append(msgs, ce.Message)
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}

	for _, msg := range msgs {
		// E11000 duplicate key error collection: db.employees index: uniq_email dup key: { ... }
		idx := strings.Index(msg, "index: ")
		if idx < 0 {
			continue
		}
		rest := msg[idx+len("index: "):]
		if end := strings.IndexByte(rest, ' '); end >= 0 {
			rest = rest[:end]
		}
		return rest, true
	}
	return "", true
}

func translateEmployeeWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	index, dup := duplicateIndex(err)
	if !dup {
		return apperror.Store(op, err)
	}

	switch {
	case index == IndexEmail || strings.HasPrefix(index, "email_"):
		return &apperror.DuplicateKeyError{Field: "email"}
	case index == IndexEmployeeCode || strings.HasPrefix(index, "employee_code_"):
		return &apperror.DuplicateKeyError{Field: "employeeCode"}
	default:
		// _id or an unknown index: not a rule the caller can act on
		return apperror.Store(op, err)
	}
}

func translateAttendanceWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, dup := duplicateIndex(err); dup {
		return apperror.ErrDuplicateAttendance
	}
	return apperror.Store(op, err)
}
