package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsMatchSentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		target error
	}{
		{"validation", Validation("fullName", "min", "too short"), ErrValidation},
		{"duplicate key", &DuplicateKeyError{Field: "email"}, ErrDuplicateKey},
		{"not found", NotFound("employee", "abc"), ErrNotFound},
		{"store", Store("insert", errors.New("boom")), ErrStore},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("employee", "")), ErrNotFound},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.err, tc.target)
		})
	}
}

func TestDuplicateKeyError_Message(t *testing.T) {
	t.Parallel()

	err := &DuplicateKeyError{Field: "employeeCode"}
	assert.Equal(t, "Duplicate value entered for employeeCode", err.Error())

	var dup *DuplicateKeyError
	require.True(t, errors.As(fmt.Errorf("create: %w", err), &dup))
	assert.Equal(t, "employeeCode", dup.Field)
}

func TestStore_KeepsClassifiedErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Store("op", nil))
	assert.Same(t, ErrDuplicateAttendance, Store("insert", ErrDuplicateAttendance))

	cause := errors.New("connection reset")
	wrapped := Store("find", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "find")
}

func TestValidationError_JoinsMessages(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: []FieldError{
		{Field: "fullName", Tag: "min", Message: "Name must be at least 3 chars"},
		{Field: "email", Tag: "email", Message: "Please add a valid email"},
	}}
	assert.Equal(t, "Name must be at least 3 chars; Please add a valid email", err.Error())
	assert.Equal(t, ErrValidation.Error(), (&ValidationError{}).Error())
}
