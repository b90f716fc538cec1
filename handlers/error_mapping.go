package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"HRMS-Lite/models"
	"HRMS-Lite/pkg/apperror"
)

// writeError is the single place where error kinds become status codes.
func writeError(c *fiber.Ctx, err error) error {
	var (
		verr *apperror.ValidationError
		dup  *apperror.DuplicateKeyError
		nf   *apperror.NotFoundError
	)

	switch {
	case errors.As(err, &verr):
		body := models.ErrorResponse{Message: verr.Error(), Errors: verr.Fields}
		if len(verr.Fields) == 1 {
			body.Field = verr.Fields[0].Field
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.As(err, &dup):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: dup.Error(), Field: dup.Field})
	case errors.Is(err, apperror.ErrDuplicateAttendance):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: apperror.ErrDuplicateAttendance.Error(), Field: "date"})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Message: notFoundMessage(nf)})
	default:
		log.Printf("[%v] %s %s failed: %v", c.Locals(requestid.ConfigDefault.ContextKey), c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Message: "Server Error"})
	}
}

func notFoundMessage(nf *apperror.NotFoundError) string {
	switch nf.Resource {
	case "employee":
		return "Employee not found"
	default:
		return nf.Error()
	}
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: "Invalid request body: " + err.Error()})
}
