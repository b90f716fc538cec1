package models

import "HRMS-Lite/pkg/apperror"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string                `json:"message" example:"Duplicate value entered for email"`
	Field   string                `json:"field,omitempty" example:"email"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Message string `json:"message" example:"HRMS Lite API"`
	Status  string `json:"status" example:"running"`
	Docs    string `json:"docs" example:"/docs/index.html"`
}
